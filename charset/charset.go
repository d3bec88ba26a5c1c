// Package charset validates and converts the byte ranges Knight strings are
// allowed to contain under the knight_encoding compliance check (spec.md
// §3), and provides the Latin-1 fallback decode the `A` (ascii) operator
// uses for a code point above 0x7E when knight_encoding is off.
//
// Grounded on sequence-string.go's use of golang.org/x/text/encoding's
// charmap/unicode packages to move between Io's internal encodings; Knight
// only needs one direction (arbitrary bytes in, Knight-legal text out), so
// only charmap.ISO8859_1 is wired here.
package charset

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// Valid reports whether b is legal inside a Knight string under
// knight_encoding: tab, newline, carriage return, or 0x20..0x7E.
func Valid(b byte) bool {
	switch b {
	case 0x09, 0x0A, 0x0D:
		return true
	default:
		return b >= 0x20 && b <= 0x7E
	}
}

// Validate checks every byte of s against Valid, returning an error naming
// the first offending byte and its offset.
func Validate(s string) error {
	for i := 0; i < len(s); i++ {
		if !Valid(s[i]) {
			return fmt.Errorf("byte 0x%02x at offset %d is not valid under knight_encoding", s[i], i)
		}
	}
	return nil
}

// DecodeLatin1 reinterprets raw as ISO-8859-1 (Latin-1) and returns the
// resulting UTF-8 Go string, for the `A` operator's code points above
// 0x7E. Latin-1 maps every byte value to a codepoint, so this never fails;
// it exists to give `A` a documented, library-backed decoding step instead
// of casting a raw byte into a Go string as if it were UTF-8.
func DecodeLatin1(raw []byte) (string, error) {
	return charmap.ISO8859_1.NewDecoder().String(string(raw))
}
