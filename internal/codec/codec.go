// Package codec implements ML-KEM's bit-packed serialization and lossy
// compression: ByteEncode/ByteDecode at widths 1, d_u, d_v, 12, and
// Compress/Decompress. All bit packing is little-endian within bytes: bit
// j of byte i is global bit index 8i+j.
package codec

import "github.com/shadowmesh/mlkem-core/internal/ring"

// ByteEncode packs 256 coefficients into 32*d bytes, d little-endian bits
// per coefficient, each reduced mod m (m = 2^d if d<12, else q).
func ByteEncode(d int, coeffs [ring.N]uint16) []byte {
	m := uint32(1) << uint(d)
	if d >= 12 {
		m = ring.Q
	}
	out := make([]byte, 32*d)
	var acc uint32
	var accBits uint
	pos := 0
	for i := 0; i < ring.N; i++ {
		a := uint32(coeffs[i]) % m
		acc |= a << accBits
		accBits += uint(d)
		for accBits >= 8 {
			out[pos] = byte(acc)
			acc >>= 8
			accBits -= 8
			pos++
		}
	}
	return out
}

// ByteDecode is the inverse of ByteEncode. When d == 12 this routine does
// NOT reduce the extracted 12-bit value mod q — a coefficient in
// [q, 4095] is passed through unchanged; validity is the caller's
// responsibility.
func ByteDecode(d int, b []byte) [ring.N]uint16 {
	mask := uint32(1)<<uint(d) - 1
	var out [ring.N]uint16
	var acc uint32
	var accBits uint
	pos := 0
	for i := 0; i < ring.N; i++ {
		for accBits < uint(d) {
			acc |= uint32(b[pos]) << accBits
			accBits += 8
			pos++
		}
		out[i] = uint16(acc & mask)
		acc >>= uint(d)
		accBits -= uint(d)
	}
	return out
}

// Compress computes floor((2^d*x + floor(q/2)) / q) mod 2^d for a single
// coefficient.
func Compress(d int, x uint16) uint16 {
	num := (uint64(x) << uint(d)) + ring.Q/2
	y := num / ring.Q
	return uint16(y & (uint64(1)<<uint(d) - 1))
}

// Decompress computes floor((q*y + 2^(d-1)) / 2^d) for a single coefficient.
func Decompress(d int, y uint16) uint16 {
	num := uint64(ring.Q)*uint64(y) + (uint64(1) << uint(d-1))
	return uint16(num >> uint(d))
}

// CompressPoly applies Compress to every coefficient of f.
func CompressPoly(d int, f ring.Poly) [ring.N]uint16 {
	var out [ring.N]uint16
	for i, c := range f {
		out[i] = Compress(d, c)
	}
	return out
}

// DecompressPoly applies Decompress to every coefficient of y and returns a
// standard-domain polynomial.
func DecompressPoly(d int, y [ring.N]uint16) ring.Poly {
	var out ring.Poly
	for i, c := range y {
		out[i] = Decompress(d, c)
	}
	return out
}
