package knight

// Variable is a reference to a named slot in an Environment's variable
// table. VarRef.Eval and the VALUE extension read through one
// (Environment.Var then Get), and the assign_to_output redirection holds
// one to write into; no operator evaluates to a Variable.
//
// Grounded on slots.go's name-indexed binding table; Knight's table is
// process-wide rather than per-object, so Variable only needs to carry the
// name and a back-pointer to the owning Environment.
type Variable struct {
	Name string
	env  *Environment
}

func NewVariable(env *Environment, name string) Variable {
	return Variable{Name: name, env: env}
}

// Var implements spec.md §4.4's var(name) → Variable: interning by name is
// idempotent here because a Variable carries no state of its own beyond the
// name and its owning Environment, so two calls with the same name are
// already interchangeable without a lookup table to maintain.
func (env *Environment) Var(name string) Variable {
	return NewVariable(env, name)
}

func (Variable) Kind() Kind     { return KindVariable }
func (v Variable) String() string { return v.Name }
func (Variable) knightValue()   {}

// Get reads the variable's current value.
func (v Variable) Get() (Value, error) {
	return v.env.Lookup(v.Name)
}

// Assign stores val under v's name and returns val.
func (v Variable) Assign(val Value) Value {
	v.env.Assign(v.Name, val)
	return val
}
