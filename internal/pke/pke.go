// Package pke implements K-PKE, the IND-CPA public-key encryption scheme
// ML-KEM is built on. It consumes internal/ring, internal/codec, and
// internal/sampling and exposes KeyGen/Encrypt/Decrypt exactly as FIPS 203
// Algorithms 13-15.
package pke

import (
	"fmt"

	"github.com/shadowmesh/mlkem-core/internal/codec"
	"github.com/shadowmesh/mlkem-core/internal/ring"
	"github.com/shadowmesh/mlkem-core/internal/sampling"
	"github.com/shadowmesh/mlkem-core/pkg/secure"
	"golang.org/x/crypto/sha3"
)

// Params is a named (k, eta1, eta2, du, dv) tuple, per FIPS 203 Table 2.
type Params struct {
	K    int
	Eta1 int
	Eta2 int
	Du   int
	Dv   int
}

// EncKeySize is the byte length of ek_PKE: 384*k + 32.
func (p Params) EncKeySize() int { return 384*p.K + 32 }

// DecKeySize is the byte length of dk_PKE: 384*k.
func (p Params) DecKeySize() int { return 384 * p.K }

// CiphertextSize is the byte length of a K-PKE ciphertext: 32*(du*k + dv).
func (p Params) CiphertextSize() int { return 32 * (p.Du*p.K + p.Dv) }

func g(x []byte) (rho, sigma [32]byte) {
	h := sha3.Sum512(x)
	copy(rho[:], h[:32])
	copy(sigma[:], h[32:])
	return rho, sigma
}

func nttToArray(p ring.NTTPoly) [ring.N]uint16 { return [ring.N]uint16(p) }
func arrayToNTT(a [ring.N]uint16) ring.NTTPoly { return ring.NTTPoly(a) }

// KeyGen is FIPS 203 Algorithm 13, K-PKE.KeyGen(d). d must be a 32-byte
// seed. Returns ek_PKE (384*k+32 bytes) and dk_PKE (384*k bytes).
func KeyGen(p Params, d []byte) (ekPKE, dkPKE []byte, err error) {
	if len(d) != 32 {
		return nil, nil, fmt.Errorf("pke: keygen seed must be 32 bytes, got %d", len(d))
	}

	rho, sigma := g(append(append([]byte{}, d...), byte(p.K)))
	defer secure.Zero32(&sigma)

	a := sampling.GenerateMatrix(rho[:], p.K, false)

	sNoise := sampling.SamplePolyVector(p.K, p.Eta1, sigma[:], 0)
	eNoise := sampling.SamplePolyVector(p.K, p.Eta1, sigma[:], p.K)

	s := make(ring.Vector, p.K)
	e := make(ring.Vector, p.K)
	for i := 0; i < p.K; i++ {
		s[i] = ring.NTT(sNoise[i])
		e[i] = ring.NTT(eNoise[i])
	}

	t := ring.MatVecMul(a, s)
	for i := range t {
		t[i] = ring.AddNTT(t[i], e[i])
	}

	ekBuf := make([]byte, 0, p.EncKeySize())
	for i := 0; i < p.K; i++ {
		ekBuf = append(ekBuf, codec.ByteEncode(12, nttToArray(t[i]))...)
	}
	ekBuf = append(ekBuf, rho[:]...)

	dkBuf := make([]byte, 0, p.DecKeySize())
	for i := 0; i < p.K; i++ {
		dkBuf = append(dkBuf, codec.ByteEncode(12, nttToArray(s[i]))...)
	}

	return ekBuf, dkBuf, nil
}

// Encrypt is FIPS 203 Algorithm 14, K-PKE.Encrypt(ek_PKE, m, r). m and r
// must each be 32 bytes. Returns ciphertext of CiphertextSize() bytes.
func Encrypt(p Params, ekPKE, m, r []byte) ([]byte, error) {
	if len(ekPKE) != p.EncKeySize() {
		return nil, fmt.Errorf("pke: ek_PKE must be %d bytes, got %d", p.EncKeySize(), len(ekPKE))
	}
	if len(m) != 32 {
		return nil, fmt.Errorf("pke: message must be 32 bytes, got %d", len(m))
	}
	if len(r) != 32 {
		return nil, fmt.Errorf("pke: randomness must be 32 bytes, got %d", len(r))
	}

	t := make(ring.Vector, p.K)
	for i := 0; i < p.K; i++ {
		t[i] = arrayToNTT(codec.ByteDecode(12, ekPKE[384*i:384*(i+1)]))
	}
	rho := ekPKE[384*p.K : 384*p.K+32]

	at := sampling.GenerateMatrix(rho, p.K, true)

	n := 0
	yNoise := sampling.SamplePolyVector(p.K, p.Eta1, r, n)
	n += p.K
	e1 := sampling.SamplePolyVector(p.K, p.Eta2, r, n)
	n += p.K
	e2 := sampling.SamplePolyCBD(p.Eta2, sampling.PRF(p.Eta2, r, byte(n)))

	y := make(ring.Vector, p.K)
	for i := 0; i < p.K; i++ {
		y[i] = ring.NTT(yNoise[i])
	}

	uHat := ring.MatVecMul(at, y)
	u := make([]ring.Poly, p.K)
	for i := 0; i < p.K; i++ {
		u[i] = ring.Add(ring.InverseNTT(uHat[i]), e1[i])
	}

	muBits := codec.ByteDecode(1, m)
	mu := codec.DecompressPoly(1, muBits)

	vHat := ring.DotProduct(t, y)
	v := ring.Add(ring.Add(ring.InverseNTT(vHat), e2), mu)

	c1 := make([]byte, 0, 32*p.Du*p.K)
	for i := 0; i < p.K; i++ {
		c1 = append(c1, codec.ByteEncode(p.Du, codec.CompressPoly(p.Du, u[i]))...)
	}
	c2 := codec.ByteEncode(p.Dv, codec.CompressPoly(p.Dv, v))

	return append(c1, c2...), nil
}

// Decrypt is FIPS 203 Algorithm 15, K-PKE.Decrypt(dk_PKE, c). It returns an
// error only when dk_PKE or c has the wrong length; a correctly sized but
// malformed ciphertext never fails — it may return a garbage message, which
// the FO transform's re-encryption check catches at the KEM layer.
func Decrypt(p Params, dkPKE, c []byte) ([]byte, error) {
	if len(dkPKE) != p.DecKeySize() {
		return nil, fmt.Errorf("pke: dk_PKE must be %d bytes, got %d", p.DecKeySize(), len(dkPKE))
	}
	if len(c) != p.CiphertextSize() {
		return nil, fmt.Errorf("pke: ciphertext must be %d bytes, got %d", p.CiphertextSize(), len(c))
	}

	c1 := c[:32*p.Du*p.K]
	c2 := c[32*p.Du*p.K:]

	uPrime := make([]ring.Poly, p.K)
	for i := 0; i < p.K; i++ {
		chunk := c1[32*p.Du*i : 32*p.Du*(i+1)]
		uPrime[i] = codec.DecompressPoly(p.Du, codec.ByteDecode(p.Du, chunk))
	}
	vPrime := codec.DecompressPoly(p.Dv, codec.ByteDecode(p.Dv, c2))

	s := make(ring.Vector, p.K)
	for i := 0; i < p.K; i++ {
		s[i] = arrayToNTT(codec.ByteDecode(12, dkPKE[384*i:384*(i+1)]))
	}

	var wHat ring.NTTPoly
	for i := 0; i < p.K; i++ {
		wHat = ring.AddNTT(wHat, ring.MultiplyNTTs(s[i], ring.NTT(uPrime[i])))
	}
	w := ring.Sub(vPrime, ring.InverseNTT(wHat))

	m := codec.ByteEncode(1, codec.CompressPoly(1, w))
	return m, nil
}

// DecodedSecretInRange reports whether every coefficient decoded from
// dk_PKE at width 12 lies in [0, q). The KEM layer runs this before any
// cryptographic work.
func DecodedSecretInRange(p Params, dkPKE []byte) bool {
	if len(dkPKE) != p.DecKeySize() {
		return false
	}
	for i := 0; i < p.K; i++ {
		coeffs := codec.ByteDecode(12, dkPKE[384*i:384*(i+1)])
		for _, v := range coeffs {
			if v >= ring.Q {
				return false
			}
		}
	}
	return true
}
