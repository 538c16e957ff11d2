package service

import (
	cryptoDomain "github.com/allisson/envseal/internal/crypto/domain"
)

// SealerService implements the Sealer interface, combining an AEAD cipher
// with the textual envelope encoding.
//
// Seal and Open are exact inverses: for any supported algorithm, valid
// key/nonce, and any plaintext (including the empty string and arbitrary
// UTF-8), Open(alg, key, nonce, Seal(alg, key, nonce, s)) == s.
//
// The caller supplies one (key, nonce) pair per session, so every value
// sealed in a session shares that pair. See SessionKeys for the resulting
// multi-value limitation.
type SealerService struct {
	aeadManager AEADManager
}

// NewSealer creates a new SealerService using the provided AEADManager to
// construct cipher instances.
func NewSealer(aeadManager AEADManager) *SealerService {
	return &SealerService{aeadManager: aeadManager}
}

// Seal encrypts plaintext under the algorithm's cipher and returns the
// storable envelope string "envseal:v1:algorithm:ciphertext-base64".
//
// Returns ErrUnsupportedAlgorithm for an unknown algorithm and
// ErrInvalidKeyMaterial when the key or nonce length does not match the
// algorithm's requirement.
func (s *SealerService) Seal(
	alg cryptoDomain.Algorithm,
	key, nonce []byte,
	plaintext string,
) (string, error) {
	aead, err := s.aeadManager.CreateCipher(key, alg)
	if err != nil {
		return "", err
	}

	ciphertext, err := aead.Encrypt(nonce, []byte(plaintext))
	if err != nil {
		return "", err
	}

	sealed := cryptoDomain.SealedValue{Algorithm: alg, Ciphertext: ciphertext}
	return sealed.String(), nil
}

// Open parses a sealed envelope string and decrypts it back to plaintext.
//
// The steps run in a fixed order so the caller always gets the most specific
// error:
//  1. Parse the envelope — ErrMalformedEnvelope on bad scheme, version,
//     algorithm tag, or base64.
//  2. Compare the embedded algorithm tag with the caller's algorithm —
//     ErrAlgorithmMismatch if they differ.
//  3. Decrypt — ErrInvalidKeyMaterial on wrong key/nonce length,
//     ErrAuthenticationFailed on tag verification failure.
//
// A failed Open never returns the raw envelope text as plaintext.
func (s *SealerService) Open(
	alg cryptoDomain.Algorithm,
	key, nonce []byte,
	sealed string,
) (string, error) {
	sealedValue, err := cryptoDomain.ParseSealedValue(sealed)
	if err != nil {
		return "", err
	}

	if sealedValue.Algorithm != alg {
		return "", cryptoDomain.ErrAlgorithmMismatch
	}

	aead, err := s.aeadManager.CreateCipher(key, alg)
	if err != nil {
		return "", err
	}

	plaintext, err := aead.Decrypt(nonce, sealedValue.Ciphertext)
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}
