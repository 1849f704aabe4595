package aead

import (
	"bytes"
	"testing"
)

func secret32(v byte) []byte {
	s := make([]byte, 32)
	for i := range s {
		s[i] = v
	}
	return s
}

func TestSealOpenRoundTrip(t *testing.T) {
	c, err := New(secret32(0x42), "mlkem-cli/seal")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	msg := []byte("a message protected by a shared secret")
	sealed, err := c.Seal(msg)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	got, err := c.Open(sealed)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !bytes.Equal(got, msg) {
		t.Fatalf("Open(Seal(m)) = %q, want %q", got, msg)
	}
}

func TestOpenRejectsTampering(t *testing.T) {
	c, err := New(secret32(0x11), "mlkem-cli/seal")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sealed, err := c.Seal([]byte("payload"))
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	sealed[len(sealed)-1] ^= 0xFF
	if _, err := c.Open(sealed); err == nil {
		t.Fatal("Open accepted a tampered payload")
	}
}

func TestOpenRejectsWrongSecret(t *testing.T) {
	c1, _ := New(secret32(0x01), "mlkem-cli/seal")
	c2, _ := New(secret32(0x02), "mlkem-cli/seal")
	sealed, err := c1.Seal([]byte("payload"))
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if _, err := c2.Open(sealed); err == nil {
		t.Fatal("Open accepted a payload sealed under a different shared secret")
	}
}

func TestOpenRejectsMismatchedContext(t *testing.T) {
	secret := secret32(0x07)
	sealer, err := New(secret, "mlkem-cli/seal")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	opener, err := New(secret, "some-other-context")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sealed, err := sealer.Seal([]byte("payload"))
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if _, err := opener.Open(sealed); err == nil {
		t.Fatal("Open accepted a payload sealed under a different context")
	}
}

func TestNewRejectsWrongSecretLength(t *testing.T) {
	if _, err := New(make([]byte, 10), "mlkem-cli/seal"); err == nil {
		t.Fatal("New accepted a malformed shared secret")
	}
}
