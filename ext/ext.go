// Package ext registers Knight's extension operators onto an Environment.
// Each operator is wired in only when its gating flag is set, keeping the
// root package free of any code path a bare-compliance build never
// touches.
//
// Grounded on addon.go's addon-registration step (an addon's Init
// installs the protos it provides onto a VM); narrowed here to a single
// static RegisterAll instead of addon.go's dynamic plugin loader, since
// Knight's extension set is fixed at compile time and only its
// activation is a runtime decision.
package ext

import (
	"io/ioutil"

	"github.com/knightlang/knight-go"
)

// RegisterAll installs every extension operator whose flag is set in
// env.Flags onto env's operator table.
func RegisterAll(env *knight.Environment) {
	f := env.Flags

	if f.ValueFunction {
		env.RegisterOperator("VALUE", 1, value)
	}
	if f.EvalFunction {
		env.RegisterOperator("EVAL", 1, eval)
	}
	if f.HandleFunction {
		env.RegisterOperator("HANDLE", 2, handle)
	}
	if f.YeetFunction {
		env.RegisterOperator("YEET", 1, yeet)
	}
	if f.UseFunction {
		env.RegisterOperator("USE", 1, use)
	}
	if f.SystemFunction {
		env.RegisterOperator("$", 1, system)
	}
	if f.StdinFunction {
		env.RegisterOperator("XSYSTEM", 2, xsystem)
	}
	if f.XSRand {
		env.RegisterOperator("XSRAND", 1, xsrand)
	}
	if f.XRange {
		env.RegisterOperator("XRANGE", 2, xrange)
	}
	if f.XReverse {
		env.RegisterOperator("XREVERSE", 1, xreverse)
	}
	if f.ListExtensions {
		env.RegisterOperator("XGET", 2, xget)
		env.RegisterOperator("XSET", 3, xset)
	}
}

// value implements VALUE s: s is coerced to a variable name and the current
// value bound to that name is returned (spec.md §4.4's var(name) then
// get(var), collapsed into one step the way VarRef.Eval does for literal
// variable references).
func value(env *knight.Environment, args []knight.Node) (knight.Value, error) {
	v, err := args[0].Eval(env)
	if err != nil {
		return nil, err
	}
	name, err := knight.ToString(env.Flags, v)
	if err != nil {
		return nil, err
	}
	return env.Var(name.Value).Get()
}

// eval implements EVAL s: parse and evaluate s as a fresh fragment of
// Knight source against the current Environment.
func eval(env *knight.Environment, args []knight.Node) (knight.Value, error) {
	v, err := args[0].Eval(env)
	if err != nil {
		return nil, err
	}
	code, err := knight.ToString(env.Flags, v)
	if err != nil {
		return nil, err
	}
	return knight.Run(code.Value, env)
}

// handle implements HANDLE body catch, delegating the catch-stack
// mechanics to Environment.RunHandle (spec.md §4.7, §7).
func handle(env *knight.Environment, args []knight.Node) (knight.Value, error) {
	return env.RunHandle(args[0], args[1])
}

// yeet implements YEET msg: raise a CustomError carrying msg, to be
// caught by the nearest enclosing HANDLE or surfaced uncaught at the top
// level.
func yeet(env *knight.Environment, args []knight.Node) (knight.Value, error) {
	v, err := args[0].Eval(env)
	if err != nil {
		return nil, err
	}
	return nil, knight.NewYeetError(v)
}

// use implements USE path: read the named file and play its contents as
// Knight source against the current Environment.
func use(env *knight.Environment, args []knight.Node) (knight.Value, error) {
	v, err := args[0].Eval(env)
	if err != nil {
		return nil, err
	}
	name, err := knight.ToString(env.Flags, v)
	if err != nil {
		return nil, err
	}
	data, ioErr := ioutil.ReadFile(name.Value)
	if ioErr != nil {
		return nil, knight.NewErrorf(knight.ErrIoError, "USE: %v", ioErr)
	}
	return knight.Run(string(data), env)
}

// system implements `$` cmd: run cmd via the Environment's command
// collaborator, returning captured stdout.
func system(env *knight.Environment, args []knight.Node) (knight.Value, error) {
	v, err := args[0].Eval(env)
	if err != nil {
		return nil, err
	}
	cmd, err := knight.ToString(env.Flags, v)
	if err != nil {
		return nil, err
	}
	return env.System(cmd.Value)
}

// xsystem implements the two-argument XSYSTEM cmd stdin extension: like
// `$`, but additionally pipes a String (or, for Null, nothing) into the
// child process's stdin.
//
// Grounded on knightrs's function.rs XSYSTEM.
func xsystem(env *knight.Environment, args []knight.Node) (knight.Value, error) {
	cv, err := args[0].Eval(env)
	if err != nil {
		return nil, err
	}
	cmd, err := knight.ToString(env.Flags, cv)
	if err != nil {
		return nil, err
	}
	sv, err := args[1].Eval(env)
	if err != nil {
		return nil, err
	}
	var stdin string
	switch s := sv.(type) {
	case knight.String:
		stdin = s.Value
	case knight.Null:
		stdin = ""
	default:
		return nil, knight.NewErrorf(knight.ErrTypeError, "XSYSTEM stdin must be String or Null, got %s", sv.Kind())
	}
	return env.SystemWithStdin(cmd.Value, stdin)
}

// xsrand implements XSRAND seed: re-seed the RNG.
func xsrand(env *knight.Environment, args []knight.Node) (knight.Value, error) {
	v, err := args[0].Eval(env)
	if err != nil {
		return nil, err
	}
	n, err := knight.ToInteger(env.Flags, v)
	if err != nil {
		return nil, err
	}
	env.Reseed(n.Value)
	return knight.NullValue, nil
}

// xreverse implements XREVERSE xs: reverse a List in place-of-original
// (returning a new List; Values are immutable).
func xreverse(env *knight.Environment, args []knight.Node) (knight.Value, error) {
	v, err := args[0].Eval(env)
	if err != nil {
		return nil, err
	}
	l, ok := v.(knight.List)
	if !ok {
		return nil, knight.NewErrorf(knight.ErrTypeError, "XREVERSE expects a List, got %s", v.Kind())
	}
	return l.Reverse(), nil
}

// xrange implements XRANGE start stop: the ascending list of integers
// [start, stop). knightrs's own XRANGE leaves the descending case as an
// unfinished stub; rather than carry that over, a start > stop here is a
// documented DomainError.
func xrange(env *knight.Environment, args []knight.Node) (knight.Value, error) {
	sv, err := args[0].Eval(env)
	if err != nil {
		return nil, err
	}
	start, ok := sv.(knight.Integer)
	if !ok {
		return nil, knight.NewErrorf(knight.ErrTypeError, "XRANGE expects an Integer start, got %s", sv.Kind())
	}
	ev, err := args[1].Eval(env)
	if err != nil {
		return nil, err
	}
	stop, err := knight.ToInteger(env.Flags, ev)
	if err != nil {
		return nil, err
	}
	if start.Value > stop.Value {
		return nil, knight.NewErrorf(knight.ErrDomainError, "XRANGE: start %d greater than stop %d", start.Value, stop.Value)
	}
	elems := make([]knight.Value, 0, stop.Value-start.Value)
	for i := start.Value; i < stop.Value; i++ {
		elems = append(elems, knight.NewInteger(i))
	}
	return knight.NewList(env.Flags, elems)
}

// xget implements XGET list index: the element at index, or Null if out
// of bounds (matching knightrs's `unwrap_or_default`).
func xget(env *knight.Environment, args []knight.Node) (knight.Value, error) {
	lv, err := args[0].Eval(env)
	if err != nil {
		return nil, err
	}
	list, err := knight.ToList(env.Flags, lv)
	if err != nil {
		return nil, err
	}
	iv, err := args[1].Eval(env)
	if err != nil {
		return nil, err
	}
	index, err := knight.ToInteger(env.Flags, iv)
	if err != nil {
		return nil, err
	}
	if index.Value < 0 || int(index.Value) >= list.Len() {
		return knight.NullValue, nil
	}
	return list.At(int(index.Value)), nil
}

// xset implements XSET list index value: a copy of list with the element
// at index replaced by value. knightrs's own XSET is an unfinished
// `todo!()` stub; this completes it using List.Splice.
func xset(env *knight.Environment, args []knight.Node) (knight.Value, error) {
	lv, err := args[0].Eval(env)
	if err != nil {
		return nil, err
	}
	list, err := knight.ToList(env.Flags, lv)
	if err != nil {
		return nil, err
	}
	iv, err := args[1].Eval(env)
	if err != nil {
		return nil, err
	}
	index, err := knight.ToInteger(env.Flags, iv)
	if err != nil {
		return nil, err
	}
	vv, err := args[2].Eval(env)
	if err != nil {
		return nil, err
	}
	if index.Value < 0 || int(index.Value) >= list.Len() {
		return nil, knight.NewErrorf(knight.ErrDomainError, "XSET index %d out of bounds", index.Value)
	}
	return list.Splice(env.Flags, int(index.Value), 1, knight.List{Elements: []knight.Value{vv}})
}
