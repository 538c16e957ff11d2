// Package service provides the cryptographic services behind sealed values:
// AEAD ciphers (AES-256-GCM, ChaCha20-Poly1305), deterministic password-based
// key/nonce derivation, and the textual envelope codec.
package service

import (
	cryptoDomain "github.com/allisson/envseal/internal/crypto/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
//
// The key is fixed at construction; the nonce is supplied per call because it
// is derived from the operator's password rather than generated per message.
type AEAD interface {
	// Encrypt encrypts plaintext with the provided nonce and returns the
	// ciphertext with the authentication tag appended.
	Encrypt(nonce, plaintext []byte) ([]byte, error)

	// Decrypt decrypts ciphertext using the provided nonce, verifying the
	// authentication tag before returning plaintext.
	Decrypt(nonce, ciphertext []byte) ([]byte, error)
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	// CreateCipher creates an AEAD cipher instance for the specified algorithm.
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}

// KeyDeriver defines the interface for deterministic password-based derivation
// of key and nonce material.
type KeyDeriver interface {
	// DeriveKey derives the algorithm's key from a password.
	DeriveKey(password string, alg cryptoDomain.Algorithm) ([]byte, error)

	// DeriveNonce derives the algorithm's nonce from a password.
	DeriveNonce(password string, alg cryptoDomain.Algorithm) ([]byte, error)

	// DeriveSessionKeys derives both key and nonce, possibly from two
	// independent passwords, and bundles them with the algorithm.
	DeriveSessionKeys(
		keyPassword, noncePassword string,
		alg cryptoDomain.Algorithm,
	) (*cryptoDomain.SessionKeys, error)
}

// Sealer defines the interface for converting between plaintext values and
// their durable textual envelope form.
type Sealer interface {
	// Seal encrypts plaintext and encodes it as a storable envelope string.
	Seal(alg cryptoDomain.Algorithm, key, nonce []byte, plaintext string) (string, error)

	// Open parses an envelope string, verifies its algorithm tag against the
	// caller's algorithm, and decrypts it back to plaintext.
	Open(alg cryptoDomain.Algorithm, key, nonce []byte, sealed string) (string, error)
}
