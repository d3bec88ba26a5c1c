package knight

// coreArity is the fixed argument count for every operator spec.md §4.7
// defines unconditionally (arities 0 through 4). Extension operators are
// not listed here: they are registered onto an Environment at runtime by
// package ext, each only when its gating flag is set, so their arity is
// looked up dynamically via Environment.ArityOf instead of this static
// table.
//
// Grounded on optable.go's name→Operator map, narrowed from Io's
// precedence/associativity pair (infix parsing) to arity (prefix parsing
// needs no precedence climbing).
var coreArity = map[string]int{
	"T": 0, "F": 0, "N": 0, "@": 0, "P": 0, "R": 0,

	":": 1, "B": 1, "C": 1, "Q": 1, "!": 1, "L": 1, "D": 1, "O": 1,
	"A": 1, "~": 1, ",": 1, "[": 1, "]": 1,

	"+": 2, "-": 2, "*": 2, "/": 2, "%": 2, "^": 2, "?": 2, "<": 2,
	">": 2, "&": 2, "|": 2, ";": 2, "=": 2, "W": 2,

	"I": 3, "G": 3,

	"S": 4,
}

// Builtin is an operator's dispatch function: given the Environment and
// the unevaluated argument nodes (most builtins evaluate them; a few,
// like `B`, deliberately do not), it produces a result or an error.
type Builtin func(env *Environment, args []Node) (Value, error)

// opEntry pairs an extension operator's arity with its dispatch function,
// as registered by package ext.
type opEntry struct {
	arity int
	fn    Builtin
}

// RegisterOperator adds an extension operator to env's operator table.
// Grounded on addon.go's addon-registration step: a late-bound operator
// becomes available exactly like a built-in one once registered, without
// the root package needing to import the code that defines it.
func (env *Environment) RegisterOperator(name string, arity int, fn Builtin) {
	if env.extOps == nil {
		env.extOps = make(map[string]opEntry)
	}
	env.extOps[name] = opEntry{arity: arity, fn: fn}
}

// ArityOf reports the fixed argument count for op if it is recognized,
// either as a core operator or as one registered via RegisterOperator.
func (env *Environment) ArityOf(op string) (arity int, ok bool) {
	if n, known := coreArity[op]; known {
		return n, true
	}
	if e, known := env.extOps[op]; known {
		return e.arity, true
	}
	return 0, false
}

// dispatch evaluates a Call node: it looks up op's builtin (core or
// extension) and invokes it, wrapping frame push/pop around the call for
// stacktrace.go's shadow stack. When Flags.Stacktrace is enabled, the first
// *Error to escape a dispatch call (innermost first, since an outer
// dispatch's defer only fills in a still-nil Stack) gets env.captureStack()
// attached before its frame is popped.
func (env *Environment) dispatch(call Call) (val Value, err error) {
	env.pushFrame(call.Operator, call.Span())
	defer func() {
		if e, ok := err.(*Error); ok && e.Stack == nil {
			e.Stack = env.captureStack()
		}
		env.popFrame()
	}()

	if fn, ok := coreBuiltins[call.Operator]; ok {
		val, err = fn(env, call.Args)
		return
	}
	if e, ok := env.extOps[call.Operator]; ok {
		val, err = e.fn(env, call.Args)
		return
	}
	err = newErrorf(ErrParseUnknownFunction, "unknown function %q", call.Operator)
	return
}
