package domain

// Algorithm represents the cryptographic algorithm used for sealing values.
//
// All supported algorithms provide Authenticated Encryption with Associated Data (AEAD),
// ensuring both confidentiality and authenticity of sealed values. AEAD prevents both
// unauthorized reading and tampering with encrypted data.
//
// Algorithm selection guidelines:
//   - Use AESGCM on modern CPUs with AES-NI hardware acceleration
//   - Use ChaCha20 on mobile devices or systems without AES-NI
//   - Both provide equivalent 256-bit security when used correctly
//
// The algorithm name is embedded in every sealed value's textual form, so a
// stored value always identifies the algorithm that produced it.
type Algorithm string

const (
	// AESGCM represents the AES-256-GCM authenticated encryption algorithm.
	//
	// AES-GCM (Advanced Encryption Standard in Galois/Counter Mode) combines
	// AES encryption with GMAC authentication. It uses a 256-bit key and
	// provides excellent performance on hardware with AES-NI acceleration.
	//
	// Key features:
	//   - 256-bit key size for maximum security
	//   - 12-byte nonce (96 bits)
	//   - 16-byte authentication tag
	//   - Hardware acceleration on modern CPUs
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 represents the ChaCha20-Poly1305 authenticated encryption algorithm.
	//
	// ChaCha20-Poly1305 combines the ChaCha20 stream cipher with the Poly1305 MAC
	// for authentication. It's designed for high performance on platforms without
	// AES hardware acceleration and is resistant to timing attacks.
	//
	// Key features:
	//   - 256-bit key size
	//   - 12-byte nonce (96 bits)
	//   - 16-byte authentication tag
	//   - Constant-time implementation
	//   - Excellent software performance
	ChaCha20 Algorithm = "chacha20-poly1305"
)

// KeySize returns the required key length in bytes for the algorithm.
// Both supported algorithms use 256-bit keys.
func (a Algorithm) KeySize() int {
	return 32
}

// NonceSize returns the required nonce length in bytes for the algorithm.
// Both supported algorithms use the standard 96-bit nonce construction.
func (a Algorithm) NonceSize() int {
	return 12
}

// Valid reports whether the algorithm is one of the supported variants.
func (a Algorithm) Valid() bool {
	switch a {
	case AESGCM, ChaCha20:
		return true
	default:
		return false
	}
}

// ParseAlgorithm converts an algorithm name to its Algorithm value.
// Returns ErrUnsupportedAlgorithm if the name is not a supported algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	alg := Algorithm(name)
	if !alg.Valid() {
		return "", ErrUnsupportedAlgorithm
	}
	return alg, nil
}
