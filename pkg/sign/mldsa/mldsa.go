// Package mldsa wraps ML-DSA-87 (Dilithium5) signatures for authenticating
// ML-KEM ciphertexts and encapsulation keys in transit. It does not
// implement ML-DSA itself — mlkem-core's domain is ML-KEM — but a sealed
// capsule (an encapsulation key or ciphertext plus a signature over it)
// needs a signature scheme from somewhere, and circl's mode5 package is
// what this module's dependency tree already carries for that job.
package mldsa

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cloudflare/circl/sign/dilithium/mode5"
)

const (
	PublicKeySize  = mode5.PublicKeySize
	PrivateKeySize = mode5.PrivateKeySize
	SignatureSize  = mode5.SignatureSize
)

var (
	ErrKeyGenerationFailed = errors.New("mldsa: keypair generation failed")
	ErrInvalidPrivateKey   = errors.New("mldsa: invalid private key")
	ErrInvalidPublicKey    = errors.New("mldsa: invalid public key")
)

// Keypair is a signing identity for capsules: a ciphertext or
// encapsulation key plus a signature authenticating its origin.
type Keypair struct {
	PublicKey  []byte
	PrivateKey []byte
}

// GenerateKeypair produces a fresh ML-DSA-87 signing identity.
func GenerateKeypair() (*Keypair, error) {
	pub, priv, err := mode5.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyGenerationFailed, err)
	}
	pubBytes, err := pub.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("%w: marshal public key: %v", ErrKeyGenerationFailed, err)
	}
	privBytes, err := priv.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("%w: marshal private key: %v", ErrKeyGenerationFailed, err)
	}
	return &Keypair{PublicKey: pubBytes, PrivateKey: privBytes}, nil
}

// encodeCapsule binds a ciphertext to the parameter set it was produced
// under before signing: a 4-byte length prefix followed by the parameter
// set name, then the ciphertext itself. Without this, a valid signature
// over an ML-KEM-512 ciphertext would verify just as well if relabeled
// and replayed as an ML-KEM-1024 ciphertext of the same byte length
// range, since mode5.Sign has no notion of what the signed bytes mean.
func encodeCapsule(parameterSet string, ciphertext []byte) []byte {
	tag := []byte(parameterSet)
	buf := make([]byte, 0, 4+len(tag)+len(ciphertext))
	var lenPrefix [4]byte
	binary.BigEndian.PutUint32(lenPrefix[:], uint32(len(tag)))
	buf = append(buf, lenPrefix[:]...)
	buf = append(buf, tag...)
	buf = append(buf, ciphertext...)
	return buf
}

// SignCapsule signs a ciphertext together with the parameter set name it
// was produced under, so the resulting signature cannot be reinterpreted
// as authenticating a ciphertext from a different parameter set.
func SignCapsule(parameterSet string, ciphertext []byte, privateKey []byte) ([]byte, error) {
	if len(privateKey) != PrivateKeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidPrivateKey, PrivateKeySize, len(privateKey))
	}
	var priv mode5.PrivateKey
	if err := priv.UnmarshalBinary(privateKey); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	sig := make([]byte, SignatureSize)
	mode5.SignTo(&priv, encodeCapsule(parameterSet, ciphertext), sig)
	return sig, nil
}

// VerifyCapsule checks a capsule signature against a public key and the
// parameter set the verifier expects the ciphertext to belong to. A
// malformed public key or signature length, or a parameter set mismatch,
// is treated as a verification failure, not an error — callers get a
// single boolean to branch on.
func VerifyCapsule(parameterSet string, ciphertext, signature, publicKey []byte) bool {
	if len(publicKey) != PublicKeySize || len(signature) != SignatureSize {
		return false
	}
	var pub mode5.PublicKey
	if err := pub.UnmarshalBinary(publicKey); err != nil {
		return false
	}
	return mode5.Verify(&pub, encodeCapsule(parameterSet, ciphertext), signature)
}
