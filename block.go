package knight

// Block is a suspended, unevaluated Node: the Value produced by the `B`
// operator. Only CALL runs it; coercing it to Boolean, Integer, String or
// List raises TypeError.
//
// Grounded on block.go's Block wrapping a *Message until Activate runs it;
// Knight narrows this to a single deferred Node with no argument binding,
// since user-defined functions are out of scope (spec.md §1 Non-goals).
type Block struct {
	Body Node
}

func (Block) Kind() Kind     { return KindBlock }
func (Block) String() string { return "[block]" }
func (Block) knightValue()   {}

// Run evaluates the suspended body. CALL uses it, and so does a Block
// queued on the prompt or system injection queue (Environment.dequeue).
func (b Block) Run(env *Environment) (Value, error) {
	return b.Body.Eval(env)
}
