// Package ring implements polynomial arithmetic over R_q = Z_q[X]/(X^256+1),
// q = 3329, including the number-theoretic transform used by ML-KEM.
//
// Two element types exist on purpose: Poly (standard domain, coefficients of
// X^0..X^255) and NTTPoly (NTT domain, 128 interleaved degree-1 evaluations).
// They are distinct Go types so that a matrix-vector product or an inverse
// transform can never be called on the wrong domain by accident — the
// compiler enforces the distinction instead of a runtime check.
package ring

// Q is the ML-KEM modulus.
const Q = 3329

// N is the ring dimension (polynomial degree bound).
const N = 256

// invN is n^-1 mod q = 3303, used to finish the inverse NTT.
const invN = 3303

// Poly is a ring element in the standard (coefficient) domain.
type Poly [N]uint16

// NTTPoly is a ring element in the NTT domain: 128 interleaved degree-1
// residues modulo (X^2 - zeta^(2*BitRev7(i)+1)).
type NTTPoly [N]uint16

// Vector is an ordered sequence of k ring elements, always in the NTT
// domain: matrix-vector products and dot products are only defined there.
type Vector []NTTPoly

// Matrix is a k-by-k row-major collection of NTT-domain ring elements.
type Matrix [][]NTTPoly

func reduce(x uint32) uint16 {
	return uint16(x % Q)
}

// Add computes f+g mod q, mod X^256+1.
func Add(f, g Poly) Poly {
	var out Poly
	for i := range out {
		out[i] = reduce(uint32(f[i]) + uint32(g[i]))
	}
	return out
}

// Sub computes f-g mod q, mod X^256+1.
func Sub(f, g Poly) Poly {
	var out Poly
	for i := range out {
		out[i] = reduce(uint32(f[i]) + Q - uint32(g[i]))
	}
	return out
}

// AddNTT is Add specialized to the NTT domain (coordinate-wise, since
// addition commutes with the transform).
func AddNTT(f, g NTTPoly) NTTPoly {
	var out NTTPoly
	for i := range out {
		out[i] = reduce(uint32(f[i]) + uint32(g[i]))
	}
	return out
}

// NTT computes the forward number-theoretic transform of f. This is a
// 7-layer decimation-in-time butterfly (FIPS 203 Algorithm 9): layer sizes
// proceed 128, 64, 32, ..., 2, each block uses one twiddle drawn in order
// from zetaNTT[1..127].
func NTT(f Poly) NTTPoly {
	out := f
	k := 1
	for length := 128; length >= 2; length /= 2 {
		for start := 0; start < N; start += 2 * length {
			zeta := uint32(zetaNTT[k])
			k++
			for j := start; j < start+length; j++ {
				t := reduce(zeta * uint32(out[j+length]))
				out[j+length] = reduce(uint32(out[j]) + Q - uint32(t))
				out[j] = reduce(uint32(out[j]) + uint32(t))
			}
		}
	}
	return NTTPoly(out)
}

// InverseNTT computes the inverse number-theoretic transform of f, walking
// layers 2, 4, ..., 128 and consuming zetaNTT from index 127 downward, then
// scaling every coefficient by n^-1 mod q (FIPS 203 Algorithm 10).
func InverseNTT(f NTTPoly) Poly {
	out := Poly(f)
	k := 127
	for length := 2; length <= 128; length *= 2 {
		for start := 0; start < N; start += 2 * length {
			zeta := uint32(zetaNTT[k])
			k--
			for j := start; j < start+length; j++ {
				t := out[j]
				out[j] = reduce(uint32(t) + uint32(out[j+length]))
				out[j+length] = reduce(zeta * (uint32(out[j+length]) + Q - uint32(t)))
			}
		}
	}
	for i := range out {
		out[i] = reduce(uint32(out[i]) * invN)
	}
	return out
}

// baseCaseMultiply computes the product of two degree-1 residues modulo
// (X^2 - gamma), per FIPS 203 Algorithm 12: c0 = a0*b0 + a1*b1*gamma,
// c1 = a0*b1 + a1*b0.
func baseCaseMultiply(a0, a1, b0, b1 uint16, gamma int32) (c0, c1 uint16) {
	g := uint32(((gamma % Q) + Q) % Q)
	c0 = reduce(uint32(a0)*uint32(b0) + (uint32(a1)*uint32(b1)%Q)*g%Q)
	c1 = reduce(uint32(a0)*uint32(b1) + uint32(a1)*uint32(b0))
	return c0, c1
}

// MultiplyNTTs computes the NTT-domain product of f and g: pairwise
// multiplication of 128 degree-1 residues, not coordinate-wise
// multiplication (FIPS 203 Algorithm 11).
func MultiplyNTTs(f, g NTTPoly) NTTPoly {
	var out NTTPoly
	for i := 0; i < N; i += 2 {
		c0, c1 := baseCaseMultiply(f[i], f[i+1], g[i], g[i+1], zetaMul[i/2])
		out[i] = c0
		out[i+1] = c1
	}
	return out
}

// DotProduct computes sum_i a[i]*b[i] in the NTT domain.
func DotProduct(a, b Vector) NTTPoly {
	var out NTTPoly
	for i := range a {
		out = AddNTT(out, MultiplyNTTs(a[i], b[i]))
	}
	return out
}

// MatVecMul computes A*s in the NTT domain, row by row.
func MatVecMul(a Matrix, s Vector) Vector {
	out := make(Vector, len(a))
	for i := range a {
		var acc NTTPoly
		for j := range s {
			acc = AddNTT(acc, MultiplyNTTs(a[i][j], s[j]))
		}
		out[i] = acc
	}
	return out
}
