//go:build cgo

// Package cref carries a plain C rendition of the word-width FNV-1a memory
// hash. Tests compare the Go implementation against it bit for bit, so the
// loop below is written the way a C toolchain sees it: size_t arithmetic,
// width picked by the preprocessor.
package cref

/*
#cgo CFLAGS: -O2 -std=c99
#cgo !windows CFLAGS: -fPIC
#include <stddef.h>
#include <stdint.h>

static inline size_t hash_memory_ref(const void* ptr, size_t len) {
#if SIZE_MAX > 0xFFFFFFFFu
    const size_t offset = (size_t)14695981039346656037ULL;
    const size_t prime  = (size_t)1099511628211ULL;
#else
    const size_t offset = (size_t)2166136261u;
    const size_t prime  = (size_t)16777619u;
#endif
    const unsigned char* data = (const unsigned char*)ptr;
    size_t hash = offset;
    size_t i;
    for (i = 0; i < len; i++) {
        hash ^= (size_t)data[i];
        hash *= prime;
    }
    return hash;
}
*/
import "C"
import "unsafe"

func Sum(b []byte) uintptr {
	if len(b) == 0 {
		return uintptr(C.hash_memory_ref(nil, 0))
	}
	return uintptr(C.hash_memory_ref(unsafe.Pointer(&b[0]), C.size_t(len(b))))
}
