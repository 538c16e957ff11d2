package domain

// SessionKeys holds the key and nonce derived from the operator's passwords
// for one run of the tool, bound to the algorithm they were derived for.
//
// The key and nonce are never persisted. They must be re-derived from the
// same passwords on every run, which is why derivation is deterministic.
//
// Because the nonce is derived from a password rather than generated per
// message, every value sealed in one session shares the same (key, nonce)
// pair. Sealing the identical plaintext again is idempotent and harmless,
// but sealing two different plaintexts under the same pair leaks the XOR of
// their keystreams to anyone holding both sealed values. Callers must treat
// this as a known limitation of password-derived nonces.
type SessionKeys struct {
	Algorithm Algorithm
	Key       []byte
	Nonce     []byte
}

// NewSessionKeys creates a SessionKeys instance after validating that the key
// and nonce lengths match the algorithm's requirements.
//
// Returns ErrUnsupportedAlgorithm for an unknown algorithm and
// ErrInvalidKeyMaterial when either buffer has the wrong length.
func NewSessionKeys(alg Algorithm, key, nonce []byte) (*SessionKeys, error) {
	if !alg.Valid() {
		return nil, ErrUnsupportedAlgorithm
	}
	if len(key) != alg.KeySize() || len(nonce) != alg.NonceSize() {
		return nil, ErrInvalidKeyMaterial
	}

	return &SessionKeys{
		Algorithm: alg,
		Key:       key,
		Nonce:     nonce,
	}, nil
}

// Close zeroes the key and nonce buffers. Callers should defer Close as soon
// as the keys are derived so the material does not outlive the batch of
// operations it was derived for.
func (sk *SessionKeys) Close() {
	if sk == nil {
		return
	}
	Zero(sk.Key)
	Zero(sk.Nonce)
}
