package service

import (
	"crypto/cipher"

	"golang.org/x/crypto/chacha20poly1305"

	cryptoDomain "github.com/allisson/envseal/internal/crypto/domain"
)

// ChaCha20Poly1305Cipher implements the AEAD interface using ChaCha20-Poly1305.
//
// ChaCha20-Poly1305 is a high-speed authenticated encryption algorithm that
// combines the ChaCha20 stream cipher with the Poly1305 MAC for authentication.
// It's particularly efficient on platforms without hardware AES acceleration.
type ChaCha20Poly1305Cipher struct {
	aead cipher.AEAD
}

// NewChaCha20Poly1305 creates a new ChaCha20-Poly1305 cipher instance.
//
// The key must be exactly 32 bytes (256 bits). Returns ErrInvalidKeyMaterial
// if the key size is wrong or cipher initialization fails.
func NewChaCha20Poly1305(key []byte) (*ChaCha20Poly1305Cipher, error) {
	if len(key) != cryptoDomain.ChaCha20.KeySize() {
		return nil, cryptoDomain.ErrInvalidKeyMaterial
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, cryptoDomain.ErrInvalidKeyMaterial
	}

	return &ChaCha20Poly1305Cipher{aead: aead}, nil
}

// Encrypt encrypts plaintext using ChaCha20-Poly1305 with the caller-supplied nonce.
//
// The nonce must be exactly 12 bytes; a wrong length fails with
// ErrInvalidKeyMaterial before any cryptographic work. The returned
// ciphertext includes the Poly1305 authentication tag appended to the end.
// Nonce uniqueness per distinct plaintext is the caller's responsibility.
func (c *ChaCha20Poly1305Cipher) Encrypt(nonce, plaintext []byte) ([]byte, error) {
	if len(nonce) != c.aead.NonceSize() {
		return nil, cryptoDomain.ErrInvalidKeyMaterial
	}

	return c.aead.Seal(nil, nonce, plaintext, nil), nil
}

// Decrypt decrypts ciphertext using ChaCha20-Poly1305 with the caller-supplied nonce.
//
// This method verifies the Poly1305 authentication tag before returning
// plaintext. Any verification failure is reported as ErrAuthenticationFailed
// without distinguishing wrong key, wrong nonce, tampering, or truncation.
func (c *ChaCha20Poly1305Cipher) Decrypt(nonce, ciphertext []byte) ([]byte, error) {
	if len(nonce) != c.aead.NonceSize() {
		return nil, cryptoDomain.ErrInvalidKeyMaterial
	}

	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, cryptoDomain.ErrAuthenticationFailed
	}
	return plaintext, nil
}
