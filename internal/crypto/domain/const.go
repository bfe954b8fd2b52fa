package domain

// Algorithm represents the authenticated encryption algorithm used for envelopes.
//
// Both algorithms take a 256-bit key, a 12-byte nonce and produce a 16-byte tag, so
// envelopes share one wire format regardless of the configured algorithm.
type Algorithm string

const (
	// AESGCM represents the AES-256-GCM authenticated encryption algorithm.
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 represents the ChaCha20-Poly1305 authenticated encryption algorithm.
	// Useful on hosts without AES hardware acceleration.
	ChaCha20 Algorithm = "chacha20-poly1305"
)

const (
	// KeySize is the required raw key length for envelope encryption (256 bits).
	KeySize = 32

	// NonceSize is the IV length for both supported AEAD algorithms.
	NonceSize = 12

	// TagSize is the authentication tag length for both supported AEAD algorithms.
	TagSize = 16

	// envelopeSeparator delimits the three envelope segments.
	envelopeSeparator = ":"

	// envelopeParts is the exact number of segments in a valid envelope.
	envelopeParts = 3
)

// ParseAlgorithm converts a configuration string into an Algorithm.
// Returns ErrUnsupportedAlgorithm for unknown values.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case AESGCM, ChaCha20:
		return Algorithm(s), nil
	default:
		return "", ErrUnsupportedAlgorithm
	}
}
