package knight

import "strings"

// List is a Knight list: an immutable, ordered sequence of Values.
// Grounded on sequence.go's Sequence, narrowed to the single closed
// element type Value demands instead of Sequence's numeric-kind switch.
type List struct {
	Elements []Value
}

func (List) Kind() Kind { return KindList }

func (l List) String() string {
	parts := make([]string, len(l.Elements))
	for i, v := range l.Elements {
		parts[i] = v.String()
	}
	return strings.Join(parts, "\n")
}

func (List) knightValue() {}

// NewList validates the length bound and wraps elems as a Knight List.
func NewList(f Flags, elems []Value) (List, error) {
	if f.CheckContainerLength && len(elems) > maxContainerLength {
		return List{}, newError(ErrContainerTooLarge, "list exceeds container length limit")
	}
	return List{Elements: elems}, nil
}

// Len returns the number of elements.
func (l List) Len() int { return len(l.Elements) }

// Concat implements `+` on two lists.
func (l List) Concat(f Flags, rhs List) (List, error) {
	out := make([]Value, 0, len(l.Elements)+len(rhs.Elements))
	out = append(out, l.Elements...)
	out = append(out, rhs.Elements...)
	return NewList(f, out)
}

// Repeat implements `*` on a list with a nonnegative integer count.
func (l List) Repeat(f Flags, n int64) (List, error) {
	if n < 0 {
		return List{}, newError(ErrDomainError, "negative repeat count")
	}
	if f.CheckContainerLength && n > 0 && int64(len(l.Elements)) > int64(maxContainerLength)/n {
		return List{}, newError(ErrContainerTooLarge, "repeated list exceeds container length limit")
	}
	out := make([]Value, 0, int64(len(l.Elements))*n)
	for i := int64(0); i < n; i++ {
		out = append(out, l.Elements...)
	}
	return NewList(f, out)
}

// Join renders every element as a string and joins them with sep. It backs
// `^` on a list, List→String coercion (ToText), and the list_extensions
// overload of `*` (String * List).
func (l List) Join(f Flags, sep string) (String, error) {
	parts := make([]string, len(l.Elements))
	for i, v := range l.Elements {
		parts[i] = v.String()
	}
	return NewString(f, strings.Join(parts, sep))
}

// Head implements `[` on a nonempty list.
func (l List) Head() (Value, error) {
	if len(l.Elements) == 0 {
		return nil, newError(ErrDomainError, "head of empty list")
	}
	return l.Elements[0], nil
}

// Tail implements `]` on a nonempty list.
func (l List) Tail() (List, error) {
	if len(l.Elements) == 0 {
		return List{}, newError(ErrDomainError, "tail of empty list")
	}
	return List{Elements: l.Elements[1:]}, nil
}

// At returns the element at index i.
func (l List) At(i int) Value { return l.Elements[i] }

// Slice implements `G`'s slicing rule on a list (see Substring for strings).
func (l List) Slice(start, length int) (List, error) {
	if start < 0 || length < 0 || start+length > len(l.Elements) {
		return List{}, newError(ErrDomainError, "slice out of bounds")
	}
	out := make([]Value, length)
	copy(out, l.Elements[start:start+length])
	return List{Elements: out}, nil
}

// Splice implements `S`'s replace rule on a list.
func (l List) Splice(f Flags, start, length int, repl List) (List, error) {
	if start < 0 || length < 0 || start+length > len(l.Elements) {
		return List{}, newError(ErrDomainError, "splice out of bounds")
	}
	out := make([]Value, 0, len(l.Elements)-length+len(repl.Elements))
	out = append(out, l.Elements[:start]...)
	out = append(out, repl.Elements...)
	out = append(out, l.Elements[start+length:]...)
	return NewList(f, out)
}

// Reverse implements the xreverse extension's list overload (spec.md
// SPEC_FULL extension table).
func (l List) Reverse() List {
	out := make([]Value, len(l.Elements))
	for i, v := range l.Elements {
		out[len(out)-1-i] = v
	}
	return List{Elements: out}
}

// ToBoolean implements List→Boolean coercion: non-empty is true.
func (l List) ToBoolean() Boolean { return Boolean(len(l.Elements) != 0) }

// ToInteger implements List→Integer coercion: the list's length.
func (l List) ToInteger() Integer { return Integer{int64(len(l.Elements))} }

// ToText implements List→String coercion: elements joined by newline
// (spec.md §4.2).
func (l List) ToText(f Flags) (String, error) {
	return l.Join(f, "\n")
}

// Equal implements deep structural equality for `?` between two lists:
// same length and every element recursively equal.
func (l List) Equal(rhs List, eq func(a, b Value) bool) bool {
	if len(l.Elements) != len(rhs.Elements) {
		return false
	}
	for i := range l.Elements {
		if !eq(l.Elements[i], rhs.Elements[i]) {
			return false
		}
	}
	return true
}

// Compare implements `<`/`>` between two lists: elementwise, then by
// length, the same ordering strings.Compare gives byte sequences.
func (l List) Compare(rhs List, cmp func(a, b Value) int) int {
	n := len(l.Elements)
	if len(rhs.Elements) < n {
		n = len(rhs.Elements)
	}
	for i := 0; i < n; i++ {
		if c := cmp(l.Elements[i], rhs.Elements[i]); c != 0 {
			return c
		}
	}
	return len(l.Elements) - len(rhs.Elements)
}
