package knight

// Kind identifies which of Knight's closed set of value variants a Value
// belongs to. The set is fixed: Knight has no user-defined types.
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindInteger
	KindString
	KindList
	KindVariable
	KindBlock
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBoolean:
		return "Boolean"
	case KindInteger:
		return "Integer"
	case KindString:
		return "String"
	case KindList:
		return "List"
	case KindVariable:
		return "Variable"
	case KindBlock:
		return "Block"
	default:
		return "Unknown"
	}
}
