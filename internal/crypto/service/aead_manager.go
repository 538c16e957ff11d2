package service

import (
	cryptoDomain "github.com/allisson/envseal/internal/crypto/domain"
)

// AEADManagerService implements the AEADManager interface for creating AEAD cipher instances.
type AEADManagerService struct{}

// NewAEADManager creates a new AEADManagerService.
func NewAEADManager() *AEADManagerService {
	return &AEADManagerService{}
}

// CreateCipher creates an AEAD cipher instance for the specified algorithm.
// Returns ErrInvalidKeyMaterial if the key has the wrong length for the
// algorithm or ErrUnsupportedAlgorithm if the algorithm is unknown.
func (am *AEADManagerService) CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error) {
	// Validate algorithm before key size so an unknown algorithm is reported
	// as such rather than as bad key material
	if !alg.Valid() {
		return nil, cryptoDomain.ErrUnsupportedAlgorithm
	}

	if len(key) != alg.KeySize() {
		return nil, cryptoDomain.ErrInvalidKeyMaterial
	}

	switch alg {
	case cryptoDomain.AESGCM:
		return NewAESGCM(key)
	case cryptoDomain.ChaCha20:
		return NewChaCha20Poly1305(key)
	default:
		return nil, cryptoDomain.ErrUnsupportedAlgorithm
	}
}
