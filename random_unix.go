//go:build unix

package knight

import "golang.org/x/sys/unix"

// osSeed draws 8 bytes of OS entropy via getrandom(2) for the default RNG
// seed when an embedder leaves Config.Seed unset. Grounded on
// system_windows.go's platform-specific seeding split, retargeted from
// querying a registry key to drawing random bytes.
func osSeed() int64 {
	var buf [8]byte
	if _, err := unix.Getrandom(buf[:], 0); err != nil {
		return 0
	}
	var seed int64
	for _, b := range buf {
		seed = seed<<8 | int64(b)
	}
	return seed
}
