//go:build !unix

package knight

import crand "crypto/rand"

// osSeed is the non-Unix counterpart to random_unix.go's getrandom(2) seed:
// crypto/rand is the portable OS entropy source everywhere getrandom isn't
// available.
func osSeed() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return 0
	}
	var seed int64
	for _, b := range buf {
		seed = seed<<8 | int64(b)
	}
	return seed
}
