//go:build !386 && !arm && !mips && !mipsle

package hashmem

// Word-width parameters for platforms with 8-byte words. Architectures not
// listed in the 32-bit constraint land here.
const (
	offsetBasis uintptr = offset64
	prime       uintptr = prime64
)

// Size is the length of a word-width sum in bytes.
const Size = 8
