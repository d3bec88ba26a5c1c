package knight

import (
	"strings"

	"github.com/knightlang/knight-go/charset"
)

// String is a Knight string: an immutable byte sequence. Go's string type
// already is one, so no separate []byte buffer is needed — this is the Open
// Question decision recorded in DESIGN.md: strings are raw bytes, not
// UTF-8 codepoints, matching spec.md's own stated default.
type String struct {
	Value string
}

func (String) Kind() Kind        { return KindString }
func (s String) String() string  { return s.Value }
func (String) knightValue()      {}

// NewString validates and wraps a Go string as a Knight String. Charset
// validation (spec.md §3: only 0x09|0x0A|0x0D|0x20..0x7E under
// knight_encoding) and the length bound are both applied here, so every
// constructor path (literal, concatenation, repetition, coercion) is
// checked uniformly — grounded on sequence-immutable.go's discipline of
// validating once at construction rather than on every read.
func NewString(f Flags, s string) (String, error) {
	if f.KnightEncoding {
		if err := charset.Validate(s); err != nil {
			return String{}, newErrorf(ErrDomainError, "%v", err)
		}
	}
	if f.CheckContainerLength && len(s) > maxContainerLength {
		return String{}, newError(ErrContainerTooLarge, "string exceeds container length limit")
	}
	return String{Value: s}, nil
}

// maxContainerLength is the 31-bit length bound spec.md §3 imposes under
// check_container_length.
const maxContainerLength = 1<<31 - 1

// Len returns the character length of s; Knight characters are bytes
// (spec.md §4.2).
func (s String) Len() int { return len(s.Value) }

// Concat implements `+` on two strings.
func (s String) Concat(f Flags, rhs String) (String, error) {
	return NewString(f, s.Value+rhs.Value)
}

// Repeat implements `*` on a string; rhs must be nonnegative (spec.md §4.7).
func (s String) Repeat(f Flags, n int64) (String, error) {
	if n < 0 {
		return String{}, newError(ErrDomainError, "negative repeat count")
	}
	if f.CheckContainerLength && n > 0 && int64(len(s.Value)) > int64(maxContainerLength)/n {
		return String{}, newError(ErrContainerTooLarge, "repeated string exceeds container length limit")
	}
	return NewString(f, strings.Repeat(s.Value, int(n)))
}

// Compare implements lexicographic ordering for `<`/`>` between two
// strings, by byte value (spec.md treats strings as byte sequences).
func (s String) Compare(rhs String) int {
	return strings.Compare(s.Value, rhs.Value)
}

// At returns the byte at index i as a one-byte String.
func (s String) At(i int) String {
	return String{Value: s.Value[i : i+1]}
}

// Head implements `[` on a nonempty string.
func (s String) Head() (String, error) {
	if s.Value == "" {
		return String{}, newError(ErrDomainError, "head of empty string")
	}
	return String{Value: s.Value[:1]}, nil
}

// Tail implements `]` on a nonempty string.
func (s String) Tail() (String, error) {
	if s.Value == "" {
		return String{}, newError(ErrDomainError, "tail of empty string")
	}
	return String{Value: s.Value[1:]}, nil
}

// ToInteger implements String→Integer coercion (spec.md §4.2).
func (s String) ToInteger(f Flags) (Integer, error) {
	return parseIntegerText(f, s.Value)
}

// ToBoolean implements String→Boolean coercion: non-empty is true.
func (s String) ToBoolean() Boolean { return Boolean(s.Value != "") }

// ToList implements String→List coercion: one Value per character.
func (s String) ToList() List {
	elems := make([]Value, len(s.Value))
	for i := 0; i < len(s.Value); i++ {
		elems[i] = String{Value: s.Value[i : i+1]}
	}
	return List{Elements: elems}
}

// Split implements the type_extensions `/` overload: divide s on every
// occurrence of sep, as a List of Strings. An empty sep falls back to
// ToList's one-character-per-element split, matching knightrs-bytecode's
// StringSlice::split.
func (s String) Split(sep string) List {
	if sep == "" {
		return s.ToList()
	}
	parts := strings.Split(s.Value, sep)
	elems := make([]Value, len(parts))
	for i, p := range parts {
		elems[i] = String{Value: p}
	}
	return List{Elements: elems}
}

// Substring implements `G`'s slicing rule, shared with `S`'s replace.
// start and length are already resolved (negative-index handling, if the
// extension is on, happens in eval.go before this is called). Returns a
// DomainError on out-of-bounds per spec.md §4.7.
func (s String) Substring(start, length int) (String, error) {
	if start < 0 || length < 0 || start+length > len(s.Value) {
		return String{}, newError(ErrDomainError, "substring out of bounds")
	}
	return String{Value: s.Value[start : start+length]}, nil
}

// Replace implements `S`'s replace rule: the length-l slice at i replaced
// by r.
func (s String) Replace(f Flags, start, length int, r String) (String, error) {
	if start < 0 || length < 0 || start+length > len(s.Value) {
		return String{}, newError(ErrDomainError, "replace out of bounds")
	}
	return NewString(f, s.Value[:start]+r.Value+s.Value[start+length:])
}

// DumpQuoted renders s the way `D` (dump) quotes strings: double-quoted,
// with \\, \", \n, \r, \t backslash-escaped.
func (s String) DumpQuoted() string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s.Value); i++ {
		switch c := s.Value[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
