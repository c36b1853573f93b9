// Package cryptox seals values kept in the durable credential store.
package cryptox

import (
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// KeySize is the length of a sealing key in bytes.
const KeySize = chacha20poly1305.KeySize

var (
	ErrInvalidKey       = errors.New("invalid key size")
	ErrMalformedPayload = errors.New("malformed sealed payload")
)

// Sealer encrypts and authenticates small values with XChaCha20-Poly1305.
//
// A sealed payload is laid out as nonce || ciphertext. The 24-byte nonce is
// random per call, which is safe for the lifetime of a single key given the
// extended nonce size.
//
// The associated data passed to Seal must be passed unchanged to Open. The
// credential stores pass the record key, so a ciphertext stored under
// "accessToken" cannot be replayed under "user".
type Sealer struct {
	key []byte
}

// NewSealer copies key and returns a Sealer bound to it. The key must be
// exactly KeySize bytes.
func NewSealer(key []byte) (*Sealer, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKey, len(key), KeySize)
	}
	k := make([]byte, KeySize)
	copy(k, key)
	return &Sealer{key: k}, nil
}

// GenerateKey returns a fresh random sealing key.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}

// Seal encrypts plaintext, binding it to ad.
//
// Example:
//
//	s, _ := cryptox.NewSealer(key)
//	sealed, err := s.Seal([]byte("tok-123"), []byte("accessToken"))
//	if err != nil {
//	    return err
//	}
//	plain, err := s.Open(sealed, []byte("accessToken"))
func (s *Sealer) Seal(plaintext, ad []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return nil, err
	}

	out := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := rand.Read(out); err != nil {
		return nil, err
	}

	return aead.Seal(out, out[:aead.NonceSize()], plaintext, ad), nil
}

// Open decrypts a payload produced by Seal. It fails if the payload was
// tampered with, sealed under another key, or sealed with different ad.
func (s *Sealer) Open(sealed, ad []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return nil, err
	}

	if len(sealed) < aead.NonceSize()+aead.Overhead() {
		return nil, ErrMalformedPayload
	}

	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	return aead.Open(nil, nonce, ciphertext, ad)
}
