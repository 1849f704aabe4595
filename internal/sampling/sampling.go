// Package sampling implements ML-KEM's deterministic sampling routines:
// uniform rejection sampling of NTT-domain polynomials from SHAKE128,
// centered-binomial noise sampling from SHAKE256-derived PRF output, and
// deterministic matrix generation.
package sampling

import (
	"github.com/shadowmesh/mlkem-core/internal/ring"
	"golang.org/x/crypto/sha3"
)

// SampleNTT squeezes SHAKE128(seed) three bytes at a time, splitting each
// triple into two 12-bit candidates and rejecting any candidate >= q, until
// 256 coefficients have been accepted. The result is interpreted directly
// as an NTT-domain polynomial — no transform is applied (FIPS 203
// Algorithm 7).
func SampleNTT(seed []byte) ring.NTTPoly {
	xof := sha3.NewShake128()
	xof.Write(seed)

	var out ring.NTTPoly
	var buf [3]byte
	j := 0
	for j < ring.N {
		xof.Read(buf[:])
		d1 := uint16(buf[0]) | uint16(buf[1]&0x0F)<<8
		d2 := uint16(buf[1]>>4) | uint16(buf[2])<<4
		if d1 < ring.Q {
			out[j] = d1
			j++
		}
		if d2 < ring.Q && j < ring.N {
			out[j] = d2
			j++
		}
	}
	return out
}

// SamplePolyCBD samples a polynomial from the centered binomial
// distribution B_eta given exactly 64*eta bytes (512*eta bits) of PRF
// output (FIPS 203 Algorithm 8).
func SamplePolyCBD(eta int, buf []byte) ring.Poly {
	bit := func(i int) uint16 {
		return uint16(buf[i/8]>>uint(i%8)) & 1
	}

	var out ring.Poly
	for i := 0; i < ring.N; i++ {
		var x, y uint16
		for j := 0; j < eta; j++ {
			x += bit(2*i*eta + j)
			y += bit((2*i+1)*eta + j)
		}
		out[i] = (x + ring.Q - y) % ring.Q
	}
	return out
}

// PRF is SHAKE256(s || b) squeezed to 64*eta bytes, where b is a
// single-byte counter.
func PRF(eta int, s []byte, b byte) []byte {
	xof := sha3.NewShake256()
	xof.Write(s)
	xof.Write([]byte{b})
	out := make([]byte, 64*eta)
	xof.Read(out)
	return out
}

// SamplePolyVector samples `length` CBD_eta polynomials from seed, using
// sequential PRF counters starting at counterStart.
func SamplePolyVector(length, eta int, seed []byte, counterStart int) []ring.Poly {
	out := make([]ring.Poly, length)
	for i := 0; i < length; i++ {
		out[i] = SamplePolyCBD(eta, PRF(eta, seed, byte(counterStart+i)))
	}
	return out
}

// GenerateMatrix generates the k-by-k matrix A (or its transpose) from seed
// rho, sampling A[i][j] from seed rho || [j, i]. For the transpose, seed
// bytes [i, j] are swapped — equivalently the same table read with axes
// exchanged.
func GenerateMatrix(rho []byte, k int, transpose bool) ring.Matrix {
	a := make(ring.Matrix, k)
	for i := 0; i < k; i++ {
		a[i] = make([]ring.NTTPoly, k)
		for j := 0; j < k; j++ {
			seed := make([]byte, 0, len(rho)+2)
			seed = append(seed, rho...)
			seed = append(seed, byte(j), byte(i))
			a[i][j] = SampleNTT(seed)
		}
	}
	if !transpose {
		return a
	}
	at := make(ring.Matrix, k)
	for i := 0; i < k; i++ {
		at[i] = make([]ring.NTTPoly, k)
		for j := 0; j < k; j++ {
			at[i][j] = a[j][i]
		}
	}
	return at
}
