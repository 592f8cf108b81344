package hashmem

// A Digest is the running state of a word-width FNV-1a hash, for callers
// that receive their input in pieces. It implements hash.Hash. Hashing a
// byte sequence through a Digest gives the same value as Sum over the
// concatenated input.
type Digest uintptr

// New returns a Digest ready to absorb input.
func New() *Digest {
	d := Digest(offsetBasis)
	return &d
}

// Write absorbs p into the hash state. The returned error is always nil.
func (d *Digest) Write(p []byte) (int, error) {
	h := uintptr(*d)
	for _, c := range p {
		h ^= uintptr(c)
		h *= prime
	}
	*d = Digest(h)
	return len(p), nil
}

// WriteString absorbs s into the hash state without copying it.
func (d *Digest) WriteString(s string) (int, error) {
	h := uintptr(*d)
	for i := 0; i < len(s); i++ {
		h ^= uintptr(s[i])
		h *= prime
	}
	*d = Digest(h)
	return len(s), nil
}

// Reset restores the Digest to its initial state.
func (d *Digest) Reset() { *d = Digest(offsetBasis) }

// Size returns the number of bytes Sum appends.
func (d *Digest) Size() int { return Size }

// BlockSize returns the hash's block size.
func (d *Digest) BlockSize() int { return 1 }

// Sum appends the current hash to b in big-endian order and returns the
// resulting slice. It does not change the underlying state.
func (d *Digest) Sum(b []byte) []byte {
	v := uintptr(*d)
	if Size == 8 {
		return append(b,
			byte(v>>56), byte(v>>48), byte(v>>40), byte(v>>32),
			byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	}
	return append(b, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// Sum64 returns the current hash as a uint64. On platforms with 4-byte
// words the 32-bit value is zero-extended.
func (d *Digest) Sum64() uint64 { return uint64(*d) }
