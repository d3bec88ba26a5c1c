package knight

import "github.com/knightlang/knight-go/charset"

// coreBuiltins implements every operator spec.md §4.7 defines
// unconditionally. Extension operators live in package ext and are
// reached through Environment.extOps instead (see optable.go's dispatch).
//
// Grounded on cfunction.go's CFunction dispatch shape (a Go function
// wrapping VM/target/locals/msg); narrowed here to (env, unevaluated
// args) since Knight has no receiver/target distinct from the
// Environment and no variadic arity.
var coreBuiltins = map[string]Builtin{
	"T": func(env *Environment, args []Node) (Value, error) { return Boolean(true), nil },
	"F": func(env *Environment, args []Node) (Value, error) { return Boolean(false), nil },
	"N": func(env *Environment, args []Node) (Value, error) { return NullValue, nil },
	"@": func(env *Environment, args []Node) (Value, error) { return List{}, nil },
	"P": func(env *Environment, args []Node) (Value, error) { return env.Prompt() },
	"R": func(env *Environment, args []Node) (Value, error) { return env.Random(), nil },

	":":      evalNoOp,
	"B":      evalBlock,
	"C":      evalCall,
	"Q":      evalQuit,
	"!":      evalNot,
	"L":      evalLength,
	"D":      evalDump,
	"O":      evalOutput,
	"A":      evalAscii,
	"~":      evalNeg,
	",":      evalBox,
	"[":      evalHead,
	"]":      evalTail,
	"+":      evalAdd,
	"-":      evalSub,
	"*":      evalMul,
	"/":      evalDiv,
	"%":      evalMod,
	"^":      evalPow,
	"?":      evalEquals,
	"<":      evalLess,
	">":      evalGreater,
	"&":      evalAnd,
	"|":      evalOr,
	";":      evalThen,
	"=":      evalAssign,
	"W":      evalWhile,
	"I":      evalIf,
	"G":      evalGet,
	"S":      evalSet,
}

func evalNoOp(env *Environment, args []Node) (Value, error) {
	return args[0].Eval(env)
}

// evalBlock implements `B`: the one operator whose argument is NOT
// evaluated (spec.md §4.7).
func evalBlock(env *Environment, args []Node) (Value, error) {
	return Block{Body: args[0]}, nil
}

// evalCall implements `C`: evaluate the argument; if it is a Block,
// evaluate its captured body in the current Environment; otherwise,
// under check_call_arg raise TypeError, else return the value unchanged.
func evalCall(env *Environment, args []Node) (Value, error) {
	v, err := args[0].Eval(env)
	if err != nil {
		return nil, err
	}
	if b, ok := v.(Block); ok {
		return b.Run(env)
	}
	if env.Flags.CheckCallArg {
		return nil, newErrorf(ErrTypeError, "CALL argument is %s, not a Block", v.Kind())
	}
	return v, nil
}

func evalQuit(env *Environment, args []Node) (Value, error) {
	v, err := args[0].Eval(env)
	if err != nil {
		return nil, err
	}
	n, err := ToInteger(env.Flags, v)
	if err != nil {
		return nil, err
	}
	code := n.Value
	if env.Flags.CheckQuitBounds && (code < 0 || code > 127) {
		return nil, newErrorf(ErrDomainError, "quit code %d out of [0,127]", code)
	}
	return nil, &Quit{Code: int(code & 0x7F)}
}

func evalNot(env *Environment, args []Node) (Value, error) {
	v, err := args[0].Eval(env)
	if err != nil {
		return nil, err
	}
	b, err := ToBoolean(v)
	if err != nil {
		return nil, err
	}
	return !b, nil
}

func evalLength(env *Environment, args []Node) (Value, error) {
	v, err := args[0].Eval(env)
	if err != nil {
		return nil, err
	}
	switch x := v.(type) {
	case Null:
		return Integer{0}, nil
	case Boolean:
		if x {
			return Integer{1}, nil
		}
		return Integer{0}, nil
	case Integer:
		return Integer{int64(x.DigitLength())}, nil
	case String:
		return Integer{int64(x.Len())}, nil
	case List:
		return Integer{int64(x.Len())}, nil
	default:
		return nil, newErrorf(ErrTypeError, "cannot take length of %s", v.Kind())
	}
}

func evalDump(env *Environment, args []Node) (Value, error) {
	v, err := args[0].Eval(env)
	if err != nil {
		return nil, err
	}
	if err := env.Output(dumpRepr(v), false); err != nil {
		return nil, err
	}
	return v, nil
}

// Dump renders v the way the `D` operator and the REPL's result display
// do: strings backslash-escaped and double-quoted, lists as
// `[a, b, ...]`, Null as `null`.
func Dump(v Value) string { return dumpRepr(v) }

// dumpRepr is Dump's recursive implementation.
func dumpRepr(v Value) string {
	switch x := v.(type) {
	case Null:
		return "null"
	case Boolean:
		if x {
			return "true"
		}
		return "false"
	case Integer:
		return x.String()
	case String:
		return x.DumpQuoted()
	case List:
		parts := make([]string, len(x.Elements))
		for i, e := range x.Elements {
			parts[i] = dumpRepr(e)
		}
		out := "["
		for i, p := range parts {
			if i > 0 {
				out += ", "
			}
			out += p
		}
		return out + "]"
	default:
		return v.String()
	}
}

func evalOutput(env *Environment, args []Node) (Value, error) {
	v, err := args[0].Eval(env)
	if err != nil {
		return nil, err
	}
	s, err := ToString(env.Flags, v)
	if err != nil {
		return nil, err
	}
	text := s.Value
	nl := true
	if len(text) > 0 && text[len(text)-1] == '\\' {
		text = text[:len(text)-1]
		nl = false
	}
	if err := env.Output(text, nl); err != nil {
		return nil, err
	}
	return NullValue, nil
}

// evalAscii implements `A`: Integer→single-byte String, non-empty
// String→Integer of its first byte. Under knight_encoding, the Integer
// case is restricted to the 0..0x7E code point range; off, a byte outside
// that range is decoded as ISO-8859-1 Latin-1 (charset.DecodeLatin1)
// rather than cast straight into a Go string, which would otherwise
// produce invalid UTF-8 for any code point above 0x7F.
func evalAscii(env *Environment, args []Node) (Value, error) {
	v, err := args[0].Eval(env)
	if err != nil {
		return nil, err
	}
	switch x := v.(type) {
	case Integer:
		if env.Flags.KnightEncoding {
			if x.Value < 0 || x.Value > 0x7E {
				return nil, newError(ErrDomainError, "ascii: code point outside knight_encoding")
			}
			return NewString(env.Flags, string([]byte{byte(x.Value)}))
		}
		if x.Value >= 0 && x.Value <= 0x7E {
			return NewString(env.Flags, string([]byte{byte(x.Value)}))
		}
		s, err := charset.DecodeLatin1([]byte{byte(x.Value)})
		if err != nil {
			return nil, newErrorf(ErrIoError, "ascii: %v", err)
		}
		return NewString(env.Flags, s)
	case String:
		if x.Value == "" {
			return nil, newError(ErrDomainError, "ascii of empty string")
		}
		return Integer{int64(x.Value[0])}, nil
	default:
		return nil, newErrorf(ErrTypeError, "ascii expects Integer or String, got %s", v.Kind())
	}
}

// evalNeg implements `~`: arithmetic negation of an Integer. Under
// negating_a_list_inverts_it, a List is reversed instead; every other kind
// is a TypeError (spec.md §4.7 defines `~` for Integer only).
func evalNeg(env *Environment, args []Node) (Value, error) {
	v, err := args[0].Eval(env)
	if err != nil {
		return nil, err
	}
	switch x := v.(type) {
	case Integer:
		return x.Neg(env)
	case List:
		if env.Flags.NegatingAListInvertsIt {
			return x.Reverse(), nil
		}
		return nil, newError(ErrTypeError, "cannot negate a List")
	default:
		return nil, newErrorf(ErrTypeError, "cannot negate %s", v.Kind())
	}
}

func evalBox(env *Environment, args []Node) (Value, error) {
	v, err := args[0].Eval(env)
	if err != nil {
		return nil, err
	}
	return NewList(env.Flags, []Value{v})
}

func evalHead(env *Environment, args []Node) (Value, error) {
	v, err := args[0].Eval(env)
	if err != nil {
		return nil, err
	}
	switch x := v.(type) {
	case String:
		return x.Head()
	case List:
		return x.Head()
	default:
		return nil, newErrorf(ErrTypeError, "cannot take head of %s", v.Kind())
	}
}

func evalTail(env *Environment, args []Node) (Value, error) {
	v, err := args[0].Eval(env)
	if err != nil {
		return nil, err
	}
	switch x := v.(type) {
	case String:
		return x.Tail()
	case List:
		return x.Tail()
	default:
		return nil, newErrorf(ErrTypeError, "cannot take tail of %s", v.Kind())
	}
}

func evalArith2(env *Environment, args []Node) (lhs Value, rhs Value, err error) {
	lhs, err = args[0].Eval(env)
	if err != nil {
		return nil, nil, err
	}
	rhs, err = args[1].Eval(env)
	return lhs, rhs, err
}

func evalAdd(env *Environment, args []Node) (Value, error) {
	lhs, rhs, err := evalArith2(env, args)
	if err != nil {
		return nil, err
	}
	switch l := lhs.(type) {
	case Integer:
		r, err := ToInteger(env.Flags, rhs)
		if err != nil {
			return nil, err
		}
		return l.Add(env, r)
	case String:
		r, err := ToString(env.Flags, rhs)
		if err != nil {
			return nil, err
		}
		return l.Concat(env.Flags, r)
	case List:
		r, err := ToList(env.Flags, rhs)
		if err != nil {
			return nil, err
		}
		return l.Concat(env.Flags, r)
	case Boolean:
		if env.Flags.TypeExtensions {
			r, err := ToBoolean(rhs)
			if err != nil {
				return nil, err
			}
			return l || r, nil
		}
		return nil, newErrorf(ErrTypeError, "cannot add %s", lhs.Kind())
	default:
		return nil, newErrorf(ErrTypeError, "cannot add %s", lhs.Kind())
	}
}

func evalSub(env *Environment, args []Node) (Value, error) {
	lhs, rhs, err := evalArith2(env, args)
	if err != nil {
		return nil, err
	}
	l, ok := lhs.(Integer)
	if !ok {
		return nil, newErrorf(ErrTypeError, "cannot subtract from %s", lhs.Kind())
	}
	r, err := ToInteger(env.Flags, rhs)
	if err != nil {
		return nil, err
	}
	return l.Sub(env, r)
}

func evalMul(env *Environment, args []Node) (Value, error) {
	lhs, rhs, err := evalArith2(env, args)
	if err != nil {
		return nil, err
	}
	switch l := lhs.(type) {
	case Integer:
		r, err := ToInteger(env.Flags, rhs)
		if err != nil {
			return nil, err
		}
		return l.Mul(env, r)
	case String:
		if env.Flags.ListExtensions {
			if rl, ok := rhs.(List); ok {
				return rl.Join(env.Flags, l.Value)
			}
		}
		r, err := ToInteger(env.Flags, rhs)
		if err != nil {
			return nil, err
		}
		return l.Repeat(env.Flags, r.Value)
	case List:
		r, err := ToInteger(env.Flags, rhs)
		if err != nil {
			return nil, err
		}
		return l.Repeat(env.Flags, r.Value)
	case Boolean:
		if env.Flags.TypeExtensions {
			r, err := ToBoolean(rhs)
			if err != nil {
				return nil, err
			}
			return l && r, nil
		}
		return nil, newErrorf(ErrTypeError, "cannot multiply %s", lhs.Kind())
	default:
		return nil, newErrorf(ErrTypeError, "cannot multiply %s", lhs.Kind())
	}
}

func evalDiv(env *Environment, args []Node) (Value, error) {
	lhs, rhs, err := evalArith2(env, args)
	if err != nil {
		return nil, err
	}
	if s, ok := lhs.(String); ok && env.Flags.TypeExtensions {
		sep, err := ToString(env.Flags, rhs)
		if err != nil {
			return nil, err
		}
		return s.Split(sep.Value), nil
	}
	l, ok := lhs.(Integer)
	if !ok {
		return nil, newErrorf(ErrTypeError, "cannot divide %s", lhs.Kind())
	}
	r, err := ToInteger(env.Flags, rhs)
	if err != nil {
		return nil, err
	}
	return l.Div(env, r)
}

func evalMod(env *Environment, args []Node) (Value, error) {
	lhs, rhs, err := evalArith2(env, args)
	if err != nil {
		return nil, err
	}
	l, ok := lhs.(Integer)
	if !ok {
		return nil, newErrorf(ErrTypeError, "cannot modulo %s", lhs.Kind())
	}
	r, err := ToInteger(env.Flags, rhs)
	if err != nil {
		return nil, err
	}
	return l.Mod(env, r)
}

func evalPow(env *Environment, args []Node) (Value, error) {
	lhs, rhs, err := evalArith2(env, args)
	if err != nil {
		return nil, err
	}
	if l, ok := lhs.(List); ok {
		sep, err := ToString(env.Flags, rhs)
		if err != nil {
			return nil, err
		}
		return l.Join(env.Flags, sep.Value)
	}
	l, ok := lhs.(Integer)
	if !ok {
		return nil, newErrorf(ErrTypeError, "cannot exponentiate %s", lhs.Kind())
	}
	r, err := ToInteger(env.Flags, rhs)
	if err != nil {
		return nil, err
	}
	return l.Pow(env, r)
}

func evalEquals(env *Environment, args []Node) (Value, error) {
	lhs, rhs, err := evalArith2(env, args)
	if err != nil {
		return nil, err
	}
	return Equal(env.Flags, lhs, rhs)
}

func evalLess(env *Environment, args []Node) (Value, error) {
	lhs, rhs, err := evalArith2(env, args)
	if err != nil {
		return nil, err
	}
	c, err := Compare(env.Flags, lhs, rhs)
	if err != nil {
		return nil, err
	}
	return Boolean(c < 0), nil
}

func evalGreater(env *Environment, args []Node) (Value, error) {
	lhs, rhs, err := evalArith2(env, args)
	if err != nil {
		return nil, err
	}
	c, err := Compare(env.Flags, lhs, rhs)
	if err != nil {
		return nil, err
	}
	return Boolean(c > 0), nil
}

// evalAnd implements `&`: short-circuits without evaluating the second
// argument when the first is falsy.
func evalAnd(env *Environment, args []Node) (Value, error) {
	lhs, err := args[0].Eval(env)
	if err != nil {
		return nil, err
	}
	b, err := ToBoolean(lhs)
	if err != nil {
		return nil, err
	}
	if !bool(b) {
		return lhs, nil
	}
	return args[1].Eval(env)
}

// evalOr implements `|`: short-circuits without evaluating the second
// argument when the first is truthy.
func evalOr(env *Environment, args []Node) (Value, error) {
	lhs, err := args[0].Eval(env)
	if err != nil {
		return nil, err
	}
	b, err := ToBoolean(lhs)
	if err != nil {
		return nil, err
	}
	if bool(b) {
		return lhs, nil
	}
	return args[1].Eval(env)
}

func evalThen(env *Environment, args []Node) (Value, error) {
	if _, err := args[0].Eval(env); err != nil {
		return nil, err
	}
	return args[1].Eval(env)
}

// evalAssign implements `=`: ordinarily the target is a VarRef taken
// unevaluated. Four assign-to-X extensions (spec.md's Open Questions;
// grounded on original_source/knightrs/src/value/value.rs's assign() and
// env/output.rs's redirection) let the target instead be a call to PROMPT,
// OUTPUT, `$`, or an arbitrary expression whose value names a variable.
// Each of PROMPT/OUTPUT/$ is itself a word with its own fixed arity (0 for
// PROMPT, 1 for OUTPUT and $), so the parser has already consumed one
// throwaway argument node for OUTPUT/$ by the time evalAssign sees them;
// that node is never evaluated, matching how knightrs's tree-walking
// assign() special-cases the already-parsed Ast rather than needing its
// own grammar carve-out:
//
//   - assign_to_prompt: `= PROMPT v` edits the prompt injection queue
//     instead of assigning a variable named "PROMPT" (which cannot exist;
//     PROMPT is a reserved word, not a valid identifier).
//   - assign_to_output: `= OUTPUT v` redirects future Output writes into
//     the variable v names (taken as an unevaluated VarRef, the same way
//     the ordinary VarRef-target case above does), or clears an active
//     redirection when v evaluates to Null.
//   - assign_to_system: `= $ v` edits the system-command injection queue
//     the same way PROMPT's queue is edited.
//   - assign_to_text: when the target is anything else, it is evaluated;
//     if the result is a String, v is assigned to the variable it names.
func evalAssign(env *Environment, args []Node) (Value, error) {
	if ref, ok := args[0].(VarRef); ok {
		v, err := args[1].Eval(env)
		if err != nil {
			return nil, err
		}
		env.Assign(ref.Name, v)
		return v, nil
	}

	if call, ok := args[0].(Call); ok {
		switch {
		case env.Flags.AssignToPrompt && call.Operator == "P":
			return assignToQueue(env, args[1], &env.promptQueue)
		case env.Flags.AssignToOutput && call.Operator == "O":
			return assignToOutput(env, args[1])
		case env.Flags.AssignToSystem && call.Operator == "$":
			return assignToQueue(env, args[1], &env.systemQueue)
		}
	}

	if env.Flags.AssignToText {
		target, err := args[0].Eval(env)
		if err != nil {
			return nil, err
		}
		if name, ok := target.(String); ok {
			v, err := args[1].Eval(env)
			if err != nil {
				return nil, err
			}
			env.Assign(name.Value, v)
			return v, nil
		}
	}

	return nil, newErrorf(ErrTypeError, "assignment target must be a variable")
}

// assignToQueue implements the PROMPT/$ assign-to-X cases: Null or false
// clears the queue (later reads fall through to stdin or the command
// runner), true leaves it unchanged, and any other value is appended as a
// new queue entry.
func assignToQueue(env *Environment, rhs Node, q *[]Value) (Value, error) {
	v, err := rhs.Eval(env)
	if err != nil {
		return nil, err
	}
	switch val := v.(type) {
	case Null:
		*q = nil
	case Boolean:
		if !val {
			*q = nil
		}
	default:
		*q = append(*q, v)
	}
	return v, nil
}

// assignToOutput implements the OUTPUT assign-to-X case: rhs named as a
// bare variable redirects future Output writes there (appended as Text);
// rhs evaluating to Null clears an active redirection. Anything else is a
// TypeError.
func assignToOutput(env *Environment, rhs Node) (Value, error) {
	if ref, ok := rhs.(VarRef); ok {
		v := env.Var(ref.Name)
		env.outputRedirect = &v
		return NullValue, nil
	}
	v, err := rhs.Eval(env)
	if err != nil {
		return nil, err
	}
	if _, ok := v.(Null); ok {
		env.outputRedirect = nil
		return NullValue, nil
	}
	return nil, newErrorf(ErrTypeError, "assignment to OUTPUT must be a variable or Null")
}

func evalWhile(env *Environment, args []Node) (Value, error) {
	for {
		c, err := args[0].Eval(env)
		if err != nil {
			return nil, err
		}
		b, err := ToBoolean(c)
		if err != nil {
			return nil, err
		}
		if !bool(b) {
			return NullValue, nil
		}
		if _, err := args[1].Eval(env); err != nil {
			return nil, err
		}
	}
}

func evalIf(env *Environment, args []Node) (Value, error) {
	c, err := args[0].Eval(env)
	if err != nil {
		return nil, err
	}
	b, err := ToBoolean(c)
	if err != nil {
		return nil, err
	}
	if bool(b) {
		return args[1].Eval(env)
	}
	return args[2].Eval(env)
}

// resolveIndex applies negative_indexing (spec.md §4.7's `G`/`S` rule) to
// a raw index against a container of the given length.
func resolveIndex(env *Environment, i int64, length int) int64 {
	if env.Flags.NegativeIndexing && i < 0 {
		return i + int64(length)
	}
	return i
}

func evalGet(env *Environment, args []Node) (Value, error) {
	s, err := args[0].Eval(env)
	if err != nil {
		return nil, err
	}
	iv, err := args[1].Eval(env)
	if err != nil {
		return nil, err
	}
	i, err := ToInteger(env.Flags, iv)
	if err != nil {
		return nil, err
	}
	lv, err := args[2].Eval(env)
	if err != nil {
		return nil, err
	}
	l, err := ToInteger(env.Flags, lv)
	if err != nil {
		return nil, err
	}
	switch x := s.(type) {
	case String:
		start := resolveIndex(env, i.Value, x.Len())
		return x.Substring(int(start), int(l.Value))
	case List:
		start := resolveIndex(env, i.Value, x.Len())
		return x.Slice(int(start), int(l.Value))
	default:
		return nil, newErrorf(ErrTypeError, "cannot slice %s", s.Kind())
	}
}

func evalSet(env *Environment, args []Node) (Value, error) {
	s, err := args[0].Eval(env)
	if err != nil {
		return nil, err
	}
	iv, err := args[1].Eval(env)
	if err != nil {
		return nil, err
	}
	i, err := ToInteger(env.Flags, iv)
	if err != nil {
		return nil, err
	}
	lv, err := args[2].Eval(env)
	if err != nil {
		return nil, err
	}
	l, err := ToInteger(env.Flags, lv)
	if err != nil {
		return nil, err
	}
	rv, err := args[3].Eval(env)
	if err != nil {
		return nil, err
	}
	switch x := s.(type) {
	case String:
		r, err := ToString(env.Flags, rv)
		if err != nil {
			return nil, err
		}
		start := resolveIndex(env, i.Value, x.Len())
		return x.Replace(env.Flags, int(start), int(l.Value), r)
	case List:
		r, err := ToList(env.Flags, rv)
		if err != nil {
			return nil, err
		}
		start := resolveIndex(env, i.Value, x.Len())
		return x.Splice(env.Flags, int(start), int(l.Value), r)
	default:
		return nil, newErrorf(ErrTypeError, "cannot splice %s", s.Kind())
	}
}
