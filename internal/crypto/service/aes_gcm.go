package service

import (
	"crypto/aes"
	"crypto/cipher"

	cryptoDomain "github.com/allisson/envseal/internal/crypto/domain"
)

// AESGCMCipher implements the AEAD interface using AES-256-GCM
// (Advanced Encryption Standard with Galois/Counter Mode).
//
// AES-GCM provides authenticated encryption, combining the confidentiality of
// AES encryption with the authenticity of GMAC. This implementation uses
// AES-256 with a 256-bit key.
//
// Security properties:
//   - 256-bit key size
//   - 12-byte nonce (96 bits, supplied by the caller)
//   - 16-byte authentication tag (128 bits, appended to ciphertext)
//   - Authenticated encryption prevents tampering and forgery
//
// Thread safety:
//
//	The cipher instance is stateless and safe for concurrent use from
//	multiple goroutines.
//
// Because the caller supplies the nonce, nonce uniqueness is the caller's
// responsibility. Encrypting two different plaintexts under the same
// (key, nonce) pair leaks the XOR of their keystreams.
type AESGCMCipher struct {
	aead cipher.AEAD
}

// NewAESGCM creates a new AES-256-GCM cipher instance.
//
// The key must be exactly 32 bytes (256 bits) for AES-256.
//
// Parameters:
//   - key: A 32-byte (256-bit) encryption key
//
// Returns:
//   - A new AESGCMCipher instance ready for encryption/decryption
//   - ErrInvalidKeyMaterial if the key size is wrong, or a wrapped error if
//     cipher initialization fails
func NewAESGCM(key []byte) (*AESGCMCipher, error) {
	if len(key) != cryptoDomain.AESGCM.KeySize() {
		return nil, cryptoDomain.ErrInvalidKeyMaterial
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, cryptoDomain.ErrInvalidKeyMaterial
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, cryptoDomain.ErrInvalidKeyMaterial
	}

	return &AESGCMCipher{aead: aead}, nil
}

// Encrypt encrypts plaintext using AES-256-GCM with the caller-supplied nonce.
//
// The nonce must be exactly 12 bytes; a wrong length fails with
// ErrInvalidKeyMaterial before any cryptographic work. The returned
// ciphertext includes the 16-byte authentication tag appended to the end.
//
// Parameters:
//   - nonce: The 12-byte nonce to encrypt under
//   - plaintext: The data to encrypt (can be empty)
//
// Returns:
//   - The encrypted data with authentication tag appended
//   - ErrInvalidKeyMaterial if the nonce has the wrong length
func (a *AESGCMCipher) Encrypt(nonce, plaintext []byte) ([]byte, error) {
	if len(nonce) != a.aead.NonceSize() {
		return nil, cryptoDomain.ErrInvalidKeyMaterial
	}

	return a.aead.Seal(nil, nonce, plaintext, nil), nil
}

// Decrypt decrypts ciphertext using AES-256-GCM with the caller-supplied nonce.
//
// This method verifies the authentication tag before returning plaintext. If
// verification fails, no plaintext is returned and the error is always
// ErrAuthenticationFailed: wrong key, wrong nonce, tampering, and truncation
// are deliberately indistinguishable.
//
// Parameters:
//   - nonce: The 12-byte nonce that was used during encryption
//   - ciphertext: The encrypted data to decrypt (includes authentication tag)
//
// Returns:
//   - The decrypted plaintext
//   - ErrInvalidKeyMaterial if the nonce has the wrong length, or
//     ErrAuthenticationFailed if tag verification fails
func (a *AESGCMCipher) Decrypt(nonce, ciphertext []byte) ([]byte, error) {
	if len(nonce) != a.aead.NonceSize() {
		return nil, cryptoDomain.ErrInvalidKeyMaterial
	}

	plaintext, err := a.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, cryptoDomain.ErrAuthenticationFailed
	}
	return plaintext, nil
}
