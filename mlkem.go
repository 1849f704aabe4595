// Package mlkem implements ML-KEM, the Module-Lattice-based Key
// Encapsulation Mechanism standardized in NIST FIPS 203. It lifts the
// IND-CPA K-PKE scheme in internal/pke to an IND-CCA2 KEM via the
// Fujisaki-Okamoto transform: keygen, encaps, decaps, with implicit
// rejection on any tampered ciphertext.
package mlkem

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/shadowmesh/mlkem-core/internal/pke"
	"github.com/shadowmesh/mlkem-core/pkg/secure"
	"golang.org/x/crypto/sha3"
)

// ErrParameterSet indicates an unknown parameter-set name at construction.
// Fatal to the constructor; no Scheme is produced.
var ErrParameterSet = errors.New("mlkem: unknown parameter set")

// ErrValidation indicates a byte-length mismatch of ek/dk/c relative to the
// active parameter set, or an out-of-range coefficient in dk_PKE. Implicit
// rejection is deliberately NOT this error — a tampered-but-well-formed
// ciphertext returns a pseudorandom key, never an error.
var ErrValidation = errors.New("mlkem: validation failed")

// Scheme is an immutable ML-KEM instance bound to one parameter set.
// Nothing rebinds an instance's parameter set after construction; callers
// that need a different parameter set construct a fresh Scheme.
type Scheme struct {
	name   string
	params pke.Params
}

// Named parameter sets from FIPS 203 Table 2.
var (
	ML_KEM_512  = Scheme{name: "ML-KEM-512", params: pke.Params{K: 2, Eta1: 3, Eta2: 2, Du: 10, Dv: 4}}
	ML_KEM_768  = Scheme{name: "ML-KEM-768", params: pke.Params{K: 3, Eta1: 2, Eta2: 2, Du: 10, Dv: 4}}
	ML_KEM_1024 = Scheme{name: "ML-KEM-1024", params: pke.Params{K: 4, Eta1: 2, Eta2: 2, Du: 11, Dv: 5}}
)

// New constructs a Scheme bound to the named parameter set: "ML-KEM-512",
// "ML-KEM-768", or "ML-KEM-1024".
func New(name string) (*Scheme, error) {
	switch name {
	case ML_KEM_512.name:
		s := ML_KEM_512
		return &s, nil
	case ML_KEM_768.name:
		s := ML_KEM_768
		return &s, nil
	case ML_KEM_1024.name:
		s := ML_KEM_1024
		return &s, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrParameterSet, name)
	}
}

// Name returns the parameter-set name this Scheme was constructed with.
func (s *Scheme) Name() string { return s.name }

// EncapsulationKeySize is |ek| in bytes for this parameter set.
func (s *Scheme) EncapsulationKeySize() int { return s.params.EncKeySize() }

// DecapsulationKeySize is |dk| in bytes: 768*k + 96 (dk_PKE || ek || H(ek) || z).
func (s *Scheme) DecapsulationKeySize() int { return 768*s.params.K + 96 }

// CiphertextSize is |c| in bytes: 32*(d_u*k + d_v).
func (s *Scheme) CiphertextSize() int { return s.params.CiphertextSize() }

// SharedSecretSize is always 32 bytes.
const SharedSecretSize = 32

func h(x []byte) [32]byte {
	return sha3.Sum256(x)
}

func g(x []byte) (k, r [32]byte) {
	full := sha3.Sum512(x)
	copy(k[:], full[:32])
	copy(r[:], full[32:])
	return k, r
}

func j(x []byte) [32]byte {
	xof := sha3.NewShake256()
	xof.Write(x)
	var out [32]byte
	xof.Read(out[:])
	return out
}

// randomBytes returns n uniformly random bytes from the platform CSPRNG.
// This is the only source of non-determinism in the package.
func randomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("mlkem: entropy source failed: %w", err)
	}
	return buf, nil
}

// keygenInternal is FIPS 203 Algorithm 16, ML-KEM.KeyGen_internal(d, z).
// d and z must each be 32 bytes.
func (s *Scheme) keygenInternal(d, z []byte) (ek, dk []byte, err error) {
	ekPKE, dkPKE, err := pke.KeyGen(s.params, d)
	if err != nil {
		return nil, nil, err
	}
	ekHash := h(ekPKE)

	dkBuf := make([]byte, 0, s.DecapsulationKeySize())
	dkBuf = append(dkBuf, dkPKE...)
	dkBuf = append(dkBuf, ekPKE...)
	dkBuf = append(dkBuf, ekHash[:]...)
	dkBuf = append(dkBuf, z...)

	return ekPKE, dkBuf, nil
}

// encapsInternal is FIPS 203 Algorithm 17, ML-KEM.Encaps_internal(ek, m).
// m must be 32 bytes.
func (s *Scheme) encapsInternal(ek, m []byte) (sharedSecret, ciphertext []byte, err error) {
	ekHash := h(ek)
	k, r := g(append(append([]byte{}, m...), ekHash[:]...))
	defer secure.Zero32(&r)

	c, err := pke.Encrypt(s.params, ek, m, r[:])
	if err != nil {
		return nil, nil, err
	}
	out := make([]byte, 32)
	copy(out, k[:])
	return out, c, nil
}

// decapsInternal is FIPS 203 Algorithm 18, ML-KEM.Decaps_internal(dk, c).
// dk must already have passed DecodedSecretInRange / length validation;
// this never errors on a malformed-but-correctly-sized ciphertext, it
// falls through to implicit rejection instead.
func (s *Scheme) decapsInternal(dk, c []byte) ([]byte, error) {
	k := s.params.K
	dkPKE := dk[0 : 384*k]
	ekPKE := dk[384*k : 768*k+32]
	hVal := dk[768*k+32 : 768*k+64]
	z := dk[768*k+64 : 768*k+96]

	mPrime, err := pke.Decrypt(s.params, dkPKE, c)
	if err != nil {
		return nil, err
	}

	kPrime, rPrime := g(append(append([]byte{}, mPrime...), hVal...))
	defer secure.Zero32(&rPrime)

	kBar := j(append(append([]byte{}, z...), c...))

	cPrime, err := pke.Encrypt(s.params, ekPKE, mPrime, rPrime[:])
	if err != nil {
		return nil, err
	}

	// Constant-time select in place of a data-dependent "if c != cp"
	// branch: crypto/subtle gives byte-wise comparison and copy without a
	// data-dependent branch on secret-derived values.
	equal := subtle.ConstantTimeCompare(c, cPrime)
	out := make([]byte, 32)
	subtle.ConstantTimeCopy(equal, out, kPrime[:])
	subtle.ConstantTimeCopy(1-equal, out, kBar[:])

	return out, nil
}

// KeyGen samples fresh seeds and returns an encapsulation key ek and a
// decapsulation key dk (FIPS 203 Algorithm 19).
func (s *Scheme) KeyGen() (ek, dk []byte, err error) {
	d, err := randomBytes(32)
	if err != nil {
		return nil, nil, err
	}
	defer secure.ZeroSlice(d)
	z, err := randomBytes(32)
	if err != nil {
		return nil, nil, err
	}
	defer secure.ZeroSlice(z)

	return s.keygenInternal(d, z)
}

// Encaps samples fresh randomness and encapsulates against ek, returning
// the shared secret and ciphertext (FIPS 203 Algorithm 20).
func (s *Scheme) Encaps(ek []byte) (sharedSecret, ciphertext []byte, err error) {
	if len(ek) != s.EncapsulationKeySize() {
		return nil, nil, fmt.Errorf("%w: ek must be %d bytes, got %d", ErrValidation, s.EncapsulationKeySize(), len(ek))
	}
	m, err := randomBytes(32)
	if err != nil {
		return nil, nil, err
	}
	defer secure.ZeroSlice(m)

	return s.encapsInternal(ek, m)
}

// Decaps decapsulates ciphertext c under decapsulation key dk (FIPS 203
// Algorithm 21). Length- and format-validation failures are reported
// before any cryptographic work; a well-formed but tampered ciphertext
// never errors — it silently yields the implicit-rejection key.
func (s *Scheme) Decaps(dk, c []byte) ([]byte, error) {
	if len(dk) != s.DecapsulationKeySize() {
		return nil, fmt.Errorf("%w: dk must be %d bytes, got %d", ErrValidation, s.DecapsulationKeySize(), len(dk))
	}
	if len(c) != s.CiphertextSize() {
		return nil, fmt.Errorf("%w: c must be %d bytes, got %d", ErrValidation, s.CiphertextSize(), len(c))
	}
	dkPKE := dk[0 : 384*s.params.K]
	if !pke.DecodedSecretInRange(s.params, dkPKE) {
		return nil, fmt.Errorf("%w: dk_PKE contains a coefficient outside [0, q)", ErrValidation)
	}

	return s.decapsInternal(dk, c)
}
