//go:build !cgo

package cref

import "github.com/dibu28/hashmem"

// Sum falls back to the Go implementation when cgo is unavailable, so the
// comparison tests still run (and trivially pass).
func Sum(b []byte) uintptr { return hashmem.Sum(b) }
