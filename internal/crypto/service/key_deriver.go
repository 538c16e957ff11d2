package service

import (
	"fmt"

	"golang.org/x/crypto/argon2"

	cryptoDomain "github.com/allisson/envseal/internal/crypto/domain"
)

// Argon2id parameters for password-based derivation (OWASP recommendation).
//
// These values are pinned: changing any of them changes every derived key and
// nonce, which would make previously sealed values undecryptable. A parameter
// change requires a new envelope version.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
)

// Derivation purposes. Each purpose gets its own salt label so key and nonce
// material stay computationally independent even when one password is used
// for both.
const (
	purposeKey   = "key"
	purposeNonce = "nonce"
)

// KeyDeriverService implements the KeyDeriver interface using Argon2id.
//
// Derivation is a pure function of (password, purpose, algorithm): the same
// inputs always produce the same bytes, which is what lets a later process
// re-derive the key and nonce from the operator's passwords and open values
// sealed by an earlier one. The password cannot be recovered from the output.
//
// There is no per-user random salt. The salt is a fixed domain-separation
// label; determinism across processes rules out storing a random one, so the
// memory-hard Argon2id parameters are the only brute-force hardening.
// Password quality remains the operator's responsibility, and an empty
// password is accepted rather than rejected.
type KeyDeriverService struct{}

// NewKeyDeriver creates a new KeyDeriverService.
func NewKeyDeriver() *KeyDeriverService {
	return &KeyDeriverService{}
}

// DeriveKey derives the algorithm's encryption key from a password.
//
// Returns a byte slice of exactly alg.KeySize() bytes, or
// ErrUnsupportedAlgorithm for an unknown algorithm.
func (kd *KeyDeriverService) DeriveKey(password string, alg cryptoDomain.Algorithm) ([]byte, error) {
	return derive(password, purposeKey, alg, alg.KeySize())
}

// DeriveNonce derives the algorithm's nonce from a password.
//
// Returns a byte slice of exactly alg.NonceSize() bytes, or
// ErrUnsupportedAlgorithm for an unknown algorithm.
func (kd *KeyDeriverService) DeriveNonce(password string, alg cryptoDomain.Algorithm) ([]byte, error) {
	return derive(password, purposeNonce, alg, alg.NonceSize())
}

// DeriveSessionKeys derives the key from keyPassword and the nonce from
// noncePassword and bundles them with the algorithm.
//
// Using two independent passwords means compromise of one does not compromise
// the other; passing the same password for both is permitted and still yields
// independent key and nonce material thanks to the per-purpose salt labels.
//
// Callers should defer Close on the returned SessionKeys to limit how long
// the derived material stays in memory.
func (kd *KeyDeriverService) DeriveSessionKeys(
	keyPassword, noncePassword string,
	alg cryptoDomain.Algorithm,
) (*cryptoDomain.SessionKeys, error) {
	key, err := kd.DeriveKey(keyPassword, alg)
	if err != nil {
		return nil, err
	}

	nonce, err := kd.DeriveNonce(noncePassword, alg)
	if err != nil {
		cryptoDomain.Zero(key)
		return nil, err
	}

	return cryptoDomain.NewSessionKeys(alg, key, nonce)
}

// derive runs Argon2id over the password with a purpose- and
// algorithm-specific salt label.
func derive(password, purpose string, alg cryptoDomain.Algorithm, length int) ([]byte, error) {
	if !alg.Valid() {
		return nil, cryptoDomain.ErrUnsupportedAlgorithm
	}

	salt := []byte(fmt.Sprintf("envseal/v1:%s:%s", purpose, alg))
	return argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, uint32(length)), nil
}
