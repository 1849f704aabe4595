// Package aead provides XChaCha20-Poly1305 encryption keyed from an
// ML-KEM shared secret. It never uses the shared secret as an AEAD key
// directly: New runs it through SHAKE256 alongside a caller-supplied
// context label to derive a sub-key, the same extendable-output
// construction internal/sampling uses for its PRF. The context is also
// bound in as associated data, so a payload sealed under one context
// cannot be replayed as if it belonged to another even though both share
// the same underlying secret.
package aead

import (
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/sha3"
)

// SharedSecretSize is the length of an ML-KEM shared secret accepted by New.
const SharedSecretSize = 32

// Cipher wraps an XChaCha20-Poly1305 AEAD bound to a derived key and a context.
type Cipher struct {
	aead    cipher.AEAD
	context []byte
}

// New derives an AEAD key from an ML-KEM shared secret (as returned by
// Encaps or Decaps) and a context label, then builds an XChaCha20-Poly1305
// cipher bound to both. Two Ciphers built from the same secret but
// different contexts never share key material, and ciphertexts from one
// context fail authentication under the other.
func New(sharedSecret []byte, context string) (*Cipher, error) {
	if len(sharedSecret) != SharedSecretSize {
		return nil, fmt.Errorf("aead: shared secret must be %d bytes, got %d", SharedSecretSize, len(sharedSecret))
	}
	key := deriveKey(sharedSecret, context)
	a, err := chacha20poly1305.NewX(key[:])
	if err != nil {
		return nil, fmt.Errorf("aead: %w", err)
	}
	return &Cipher{aead: a, context: []byte(context)}, nil
}

// deriveKey squeezes SHAKE256(sharedSecret || context) to a 32-byte key.
func deriveKey(sharedSecret []byte, context string) [chacha20poly1305.KeySize]byte {
	var key [chacha20poly1305.KeySize]byte
	xof := sha3.NewShake256()
	xof.Write(sharedSecret)
	xof.Write([]byte(context))
	xof.Read(key[:])
	return key
}

// Seal encrypts plaintext under the derived key, authenticating the
// cipher's context as associated data, and returns nonce || ciphertext || tag.
func (c *Cipher) Seal(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("aead: generating nonce: %w", err)
	}
	return c.aead.Seal(nonce, nonce, plaintext, c.context), nil
}

// Open reverses Seal, verifying both the authentication tag and that the
// ciphertext was sealed under this Cipher's context.
func (c *Cipher) Open(sealed []byte) ([]byte, error) {
	n := chacha20poly1305.NonceSizeX
	if len(sealed) < n {
		return nil, fmt.Errorf("aead: sealed payload too short")
	}
	nonce, ciphertext := sealed[:n], sealed[n:]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, c.context)
	if err != nil {
		return nil, fmt.Errorf("aead: authentication failed: %w", err)
	}
	return plaintext, nil
}
