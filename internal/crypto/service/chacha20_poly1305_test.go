package service

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/envseal/internal/crypto/domain"
)

func TestNewChaCha20Poly1305(t *testing.T) {
	t.Run("valid 256-bit key", func(t *testing.T) {
		key := make([]byte, 32)
		_, err := rand.Read(key)
		require.NoError(t, err)

		cipher, err := NewChaCha20Poly1305(key)
		assert.NoError(t, err)
		assert.NotNil(t, cipher)
	})

	t.Run("invalid key size - too small", func(t *testing.T) {
		key := make([]byte, 16)
		cipher, err := NewChaCha20Poly1305(key)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeyMaterial)
		assert.Nil(t, cipher)
	})

	t.Run("invalid key size - too large", func(t *testing.T) {
		key := make([]byte, 64)
		cipher, err := NewChaCha20Poly1305(key)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeyMaterial)
		assert.Nil(t, cipher)
	})
}

func TestChaCha20Poly1305Cipher_Encrypt(t *testing.T) {
	key := make([]byte, 32)
	nonce := make([]byte, 12)
	_, err := rand.Read(key)
	require.NoError(t, err)
	_, err = rand.Read(nonce)
	require.NoError(t, err)

	cipher, err := NewChaCha20Poly1305(key)
	require.NoError(t, err)

	t.Run("encrypt plaintext", func(t *testing.T) {
		plaintext := []byte("Hello, World!")

		ciphertext, err := cipher.Encrypt(nonce, plaintext)
		assert.NoError(t, err)
		assert.NotEqual(t, plaintext, ciphertext)
		assert.Equal(t, len(plaintext)+16, len(ciphertext))
	})

	t.Run("encrypt empty plaintext", func(t *testing.T) {
		ciphertext, err := cipher.Encrypt(nonce, []byte(""))
		assert.NoError(t, err)
		assert.Equal(t, 16, len(ciphertext))
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		plaintext := []byte("same input")

		first, err := cipher.Encrypt(nonce, plaintext)
		require.NoError(t, err)
		second, err := cipher.Encrypt(nonce, plaintext)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("wrong nonce size", func(t *testing.T) {
		_, err := cipher.Encrypt(make([]byte, 24), []byte("data"))
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeyMaterial)
	})
}

func TestChaCha20Poly1305Cipher_Decrypt(t *testing.T) {
	key := make([]byte, 32)
	nonce := make([]byte, 12)
	_, err := rand.Read(key)
	require.NoError(t, err)
	_, err = rand.Read(nonce)
	require.NoError(t, err)

	cipher, err := NewChaCha20Poly1305(key)
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		plaintext := []byte("sensitive configuration value")

		ciphertext, err := cipher.Encrypt(nonce, plaintext)
		require.NoError(t, err)

		decrypted, err := cipher.Decrypt(nonce, ciphertext)
		assert.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	})

	t.Run("tampered ciphertext", func(t *testing.T) {
		ciphertext, err := cipher.Encrypt(nonce, []byte("data"))
		require.NoError(t, err)

		ciphertext[len(ciphertext)-1] ^= 0x01

		_, err = cipher.Decrypt(nonce, ciphertext)
		assert.ErrorIs(t, err, cryptoDomain.ErrAuthenticationFailed)
	})

	t.Run("truncated ciphertext", func(t *testing.T) {
		ciphertext, err := cipher.Encrypt(nonce, []byte("data"))
		require.NoError(t, err)

		_, err = cipher.Decrypt(nonce, ciphertext[:3])
		assert.ErrorIs(t, err, cryptoDomain.ErrAuthenticationFailed)
	})

	t.Run("wrong key", func(t *testing.T) {
		ciphertext, err := cipher.Encrypt(nonce, []byte("data"))
		require.NoError(t, err)

		otherKey := make([]byte, 32)
		_, err = rand.Read(otherKey)
		require.NoError(t, err)

		otherCipher, err := NewChaCha20Poly1305(otherKey)
		require.NoError(t, err)

		_, err = otherCipher.Decrypt(nonce, ciphertext)
		assert.ErrorIs(t, err, cryptoDomain.ErrAuthenticationFailed)
	})

	t.Run("wrong nonce", func(t *testing.T) {
		ciphertext, err := cipher.Encrypt(nonce, []byte("data"))
		require.NoError(t, err)

		otherNonce := make([]byte, 12)
		_, err = rand.Read(otherNonce)
		require.NoError(t, err)

		_, err = cipher.Decrypt(otherNonce, ciphertext)
		assert.ErrorIs(t, err, cryptoDomain.ErrAuthenticationFailed)
	})

	t.Run("wrong nonce size", func(t *testing.T) {
		_, err := cipher.Decrypt(make([]byte, 8), []byte("ciphertext"))
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeyMaterial)
	})
}
