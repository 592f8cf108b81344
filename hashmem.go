// Package hashmem hashes in-memory byte sequences with FNV-1a at the
// platform's native word width.
//
// Sum, SumString and SumPointer compute the same function C++ standard
// libraries use behind their unordered containers (libc++ exports it as
// std::__1::__hash_memory): 64-bit FNV-1a on platforms with 8-byte words,
// 32-bit FNV-1a on platforms with 4-byte words, using the canonical offset
// basis and prime for each width. Unlike the seeded hash behind Go maps,
// the result is stable across processes, so it can key persisted or shared
// structures. The fixed-width Sum64 and Sum32 are also portable across
// platforms.
//
// All functions are pure. They never allocate or fail and are safe for
// concurrent use.
package hashmem

import "unsafe"

// Canonical FNV-1a parameters, per http://www.isthe.com/chongo/tech/comp/fnv/.
const (
	offset64 = 14695981039346656037
	prime64  = 1099511628211
	offset32 = 2166136261
	prime32  = 16777619
)

// Sum returns the FNV-1a hash of data at the platform's word width.
func Sum(data []byte) uintptr {
	h := offsetBasis
	for _, c := range data {
		h ^= uintptr(c)
		h *= prime
	}
	return h
}

// SumString is Sum for a string, avoiding the copy a []byte(s)
// conversion would make.
func SumString(s string) uintptr {
	h := offsetBasis
	for i := 0; i < len(s); i++ {
		h ^= uintptr(s[i])
		h *= prime
	}
	return h
}

// SumPointer returns the FNV-1a hash of the n bytes at p, at the platform's
// word width. p must point to at least n readable bytes that stay live for
// the duration of the call. When n is zero p is never dereferenced and may
// be nil.
func SumPointer(p unsafe.Pointer, n uintptr) uintptr {
	h := offsetBasis
	for i := uintptr(0); i < n; i++ {
		h ^= uintptr(*(*byte)(unsafe.Add(p, i)))
		h *= prime
	}
	return h
}

// Sum64 returns the 64-bit FNV-1a hash of data on every platform.
func Sum64(data []byte) uint64 {
	h := uint64(offset64)
	for _, c := range data {
		h ^= uint64(c)
		h *= prime64
	}
	return h
}

// Sum64String is Sum64 for a string.
func Sum64String(s string) uint64 {
	h := uint64(offset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime64
	}
	return h
}

// Sum32 returns the 32-bit FNV-1a hash of data on every platform.
func Sum32(data []byte) uint32 {
	h := uint32(offset32)
	for _, c := range data {
		h ^= uint32(c)
		h *= prime32
	}
	return h
}

// Sum32String is Sum32 for a string.
func Sum32String(s string) uint32 {
	h := uint32(offset32)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= prime32
	}
	return h
}
