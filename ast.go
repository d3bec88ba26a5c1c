package knight

// Node is a parsed Knight program fragment: a literal value, a variable
// reference, or a function call. Evaluating a Node produces a Value.
//
// Grounded on message.go's Message type (the Io parser's own AST node,
// carrying a name plus argument sub-messages); Knight's fixed arities let
// this be a closed three-case union instead of message.go's open-ended
// name+arglist shape.
type Node interface {
	// Eval evaluates the node against env, returning the resulting Value or
	// an error (including YEET propagation and the Q quit signal).
	Eval(env *Environment) (Value, error)

	// Span reports the node's source byte range, for stacktrace.go frames.
	Span() Span
}

// Literal is a Node wrapping an already-constructed constant Value: an
// integer or string from the source, or the empty list a list_literal
// `{ ... }` expansion starts from. TRUE, FALSE and NULL parse as Calls.
type Literal struct {
	Value Value
	span  Span
}

func NewLiteral(v Value, span Span) Literal { return Literal{Value: v, span: span} }

func (n Literal) Eval(env *Environment) (Value, error) { return n.Value, nil }
func (n Literal) Span() Span                            { return n.span }

// VarRef is a Node referencing a variable by name; evaluating it looks the
// name up in env's variable table.
type VarRef struct {
	Name string
	span Span
}

func NewVarRef(name string, span Span) VarRef { return VarRef{Name: name, span: span} }

func (n VarRef) Eval(env *Environment) (Value, error) {
	return env.Var(n.Name).Get()
}

func (n VarRef) Span() Span { return n.span }

// Call is a Node invoking a named operator over a fixed number of argument
// nodes. The arity is implied by len(Args) and checked once at parse time
// (parser.go), so eval.go's dispatch never needs to re-validate it.
type Call struct {
	Operator string
	Args     []Node
	span     Span
}

func NewCall(op string, args []Node, span Span) Call {
	return Call{Operator: op, Args: args, span: span}
}

func (n Call) Eval(env *Environment) (Value, error) {
	return env.dispatch(n)
}

func (n Call) Span() Span { return n.span }
