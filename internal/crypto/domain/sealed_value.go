package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const (
	// envelopeScheme is the leading token of every sealed value's textual form.
	envelopeScheme = "envseal"

	// envelopeVersion identifies the envelope layout. A future revision that
	// changes the layout (for example, embedding a per-value nonce) must bump
	// this token so old and new envelopes stay distinguishable.
	envelopeVersion = "v1"

	// envelopePrefix is the cheap marker used to tell sealed values apart
	// from plaintext entries in a store.
	envelopePrefix = envelopeScheme + ":"
)

// SealedValue represents an encrypted environment-variable value.
//
// The value carries the algorithm that produced it and the raw ciphertext
// (which includes the AEAD authentication tag). Its durable form is the
// textual envelope: "envseal:v1:algorithm:ciphertext-base64". Embedding the
// algorithm means opening a stored value never requires the caller to
// remember which algorithm sealed it.
type SealedValue struct {
	Algorithm  Algorithm
	Ciphertext []byte
}

// ParseSealedValue creates a SealedValue from its textual envelope form.
//
// The input must be in the format: "envseal:v1:algorithm:ciphertext-base64"
// where:
//   - algorithm: one of the supported algorithm names
//   - ciphertext-base64: standard base64 encoding of the ciphertext (can be empty)
//
// Returns ErrMalformedEnvelope (with wrapped detail) when the scheme, version,
// part count, algorithm tag, or base64 encoding is invalid.
func ParseSealedValue(content string) (SealedValue, error) {
	parts := strings.SplitN(content, ":", 4)
	if len(parts) != 4 {
		return SealedValue{}, fmt.Errorf(
			"%w: expected format 'envseal:v1:algorithm:ciphertext', got %d parts",
			ErrMalformedEnvelope,
			len(parts),
		)
	}

	if parts[0] != envelopeScheme {
		return SealedValue{}, fmt.Errorf("%w: unknown scheme %q", ErrMalformedEnvelope, parts[0])
	}

	if parts[1] != envelopeVersion {
		return SealedValue{}, fmt.Errorf("%w: unknown version %q", ErrMalformedEnvelope, parts[1])
	}

	alg := Algorithm(parts[2])
	if !alg.Valid() {
		return SealedValue{}, fmt.Errorf("%w: unknown algorithm %q", ErrMalformedEnvelope, parts[2])
	}

	ciphertext, err := base64.StdEncoding.DecodeString(parts[3])
	if err != nil {
		return SealedValue{}, fmt.Errorf("%w: invalid base64 ciphertext: %v", ErrMalformedEnvelope, err)
	}

	return SealedValue{
		Algorithm:  alg,
		Ciphertext: ciphertext,
	}, nil
}

// String serializes the SealedValue to its textual envelope form.
//
// This method provides round-trip serialization with ParseSealedValue:
//
//	original := SealedValue{Algorithm: ChaCha20, Ciphertext: []byte("data")}
//	parsed, _ := ParseSealedValue(original.String())
//	// parsed equals original
func (sv SealedValue) String() string {
	encodedCiphertext := base64.StdEncoding.EncodeToString(sv.Ciphertext)
	return fmt.Sprintf("%s:%s:%s:%s", envelopeScheme, envelopeVersion, sv.Algorithm, encodedCiphertext)
}

// IsSealed reports whether a stored string looks like a sealed envelope.
//
// The check is a cheap prefix test, not a full parse: batch callers use it to
// partition sealed entries from plaintext ones before attempting to open.
// A string passing IsSealed can still fail ParseSealedValue.
func IsSealed(content string) bool {
	return strings.HasPrefix(content, envelopePrefix)
}
