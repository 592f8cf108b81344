//go:build 386 || arm || mips || mipsle

package hashmem

// Word-width parameters for platforms with 4-byte words.
const (
	offsetBasis uintptr = offset32
	prime       uintptr = prime32
)

// Size is the length of a word-width sum in bytes.
const Size = 4
