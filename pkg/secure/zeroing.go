// Package secure provides best-effort memory wiping for ML-KEM secret
// material (seeds, noise polynomials, intermediate products, decapsulation
// keys). Go offers no hardened-memory primitive, so this is a
// straightforward byte-by-byte overwrite plus runtime.KeepAlive to deter
// the compiler from eliding the store as dead code — not a guarantee
// against a sufficiently aggressive optimizer or a paging/swap leak.
package secure

import "runtime"

// Zero32 wipes a 32-byte secret (a seed, a shared secret, an implicit
// rejection key) from memory.
func Zero32(key *[32]byte) {
	if key == nil {
		return
	}
	for i := range key {
		key[i] = 0
	}
	runtime.KeepAlive(key)
}

// ZeroSlice wipes a variable-length secret buffer from memory (a noise
// polynomial's byte encoding, a PRF output, a decapsulation key blob).
func ZeroSlice(data []byte) {
	if len(data) == 0 {
		return
	}
	for i := range data {
		data[i] = 0
	}
	runtime.KeepAlive(data)
}

// ZeroUint16s wipes a coefficient array (a ring element or NTT element
// still holding secret values after it's no longer needed).
func ZeroUint16s(data []uint16) {
	if len(data) == 0 {
		return
	}
	for i := range data {
		data[i] = 0
	}
	runtime.KeepAlive(data)
}
