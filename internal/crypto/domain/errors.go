package domain

import (
	"github.com/allisson/envseal/internal/errors"
)

// Cryptographic operation error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors
// to provide context for cryptographic failures. The CLI layer maps them
// to user-facing messages without exposing secret material.
var (
	// ErrUnsupportedAlgorithm indicates the requested encryption algorithm is not supported.
	//
	// Supported algorithms: AESGCM (AES-256-GCM), ChaCha20 (ChaCha20-Poly1305)
	// This error is returned when an invalid or unknown algorithm is specified
	// for derivation, sealing, or opening.
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrInvalidKeyMaterial indicates a key or nonce has the wrong length for
	// the selected algorithm.
	//
	// Both AES-256-GCM and ChaCha20-Poly1305 require a 32-byte key and a
	// 12-byte nonce. The check happens before any cipher operation is
	// attempted, so the caller can always recover by re-deriving correctly.
	ErrInvalidKeyMaterial = errors.Wrap(errors.ErrInvalidInput, "invalid key material")

	// ErrAuthenticationFailed indicates AEAD tag verification failed during decryption.
	//
	// This error can occur due to:
	//   - Wrong password-derived key or nonce
	//   - Ciphertext has been tampered with or truncated
	//   - Corrupted stored data
	//
	// For security reasons, the specific cause is not disclosed to prevent
	// information leakage that could aid attackers.
	ErrAuthenticationFailed = errors.Wrap(errors.ErrInvalidInput, "authentication failed")

	// ErrMalformedEnvelope indicates a stored string is not a valid sealed value.
	//
	// The string is missing the envelope prefix, has the wrong number of
	// parts, carries an unknown scheme, version, or algorithm tag, or its
	// ciphertext is not valid base64. This usually means corruption or a file
	// not produced by this tool.
	ErrMalformedEnvelope = errors.Wrap(errors.ErrInvalidInput, "malformed envelope")

	// ErrAlgorithmMismatch indicates the caller-specified algorithm does not
	// match the algorithm tag embedded in the sealed value.
	ErrAlgorithmMismatch = errors.Wrap(errors.ErrInvalidInput, "algorithm mismatch")
)
