package knight

// Value is any Knight runtime value: Null, Boolean, Integer, String, List,
// Variable, or Block. The set is closed — to satisfy this interface outside
// this module is to misuse it, since the evaluator and coercion table are
// written against an exhaustive type switch over these seven kinds.
//
// Values are immutable; "mutation" is always replacement of a variable's
// slot (see Environment.Assign), never an in-place edit of a String or List.
type Value interface {
	// Kind reports which of the closed set of kinds this value belongs to.
	Kind() Kind

	// String renders the value the way Knight's string coercion does,
	// i.e. it is equivalent to ToString(f, v).Value for any f, since no
	// kind's string coercion depends on flags. Variable and Block have no
	// string coercion; their String is a name and "[block]" respectively.
	String() string

	knightValue()
}

// Null is Knight's singleton null value.
type Null struct{}

// NullValue is the one Null instance. Construct Values by comparing against
// or returning this, never a fresh Null{} (they are equal either way, but
// sharing one instance matches Invariant 2: values are cheap to share).
var NullValue = Null{}

func (Null) Kind() Kind   { return KindNull }
func (Null) String() string { return "null" }
func (Null) knightValue()  {}

// Boolean is a Knight boolean.
type Boolean bool

func (Boolean) Kind() Kind { return KindBoolean }
func (b Boolean) String() string {
	if b {
		return "true"
	}
	return "false"
}
func (Boolean) knightValue() {}
