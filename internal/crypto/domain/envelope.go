package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// strictBase64 rejects non-canonical encodings so that every altered character in a
// segment changes the decoded bytes or fails decoding.
var strictBase64 = base64.StdEncoding.Strict()

// Envelope is the result of one authenticated encryption call.
//
// It serializes to "iv:authTag:ciphertext" where each segment is standard base64.
// All three segments are required and must be non-empty.
type Envelope struct {
	IV         []byte
	Tag        []byte
	Ciphertext []byte
}

// ParseEnvelope parses the string form of an envelope.
//
// Returns ErrInvalidEnvelope when:
//   - the input does not have exactly three colon-delimited segments
//   - any segment is empty or not valid base64
//   - the IV or tag has the wrong size
func ParseEnvelope(content string) (Envelope, error) {
	parts := strings.Split(content, envelopeSeparator)
	if len(parts) != envelopeParts {
		return Envelope{}, fmt.Errorf(
			"%w: expected format 'iv:authTag:ciphertext', got %d parts",
			ErrInvalidEnvelope,
			len(parts),
		)
	}

	segments := make([][]byte, envelopeParts)
	for i, part := range parts {
		if part == "" {
			return Envelope{}, fmt.Errorf("%w: segment %d is empty", ErrInvalidEnvelope, i)
		}
		decoded, err := strictBase64.DecodeString(part)
		if err != nil {
			return Envelope{}, fmt.Errorf("%w: segment %d: %v", ErrInvalidEnvelope, i, err)
		}
		segments[i] = decoded
	}

	env := Envelope{IV: segments[0], Tag: segments[1], Ciphertext: segments[2]}

	if len(env.IV) != NonceSize {
		return Envelope{}, fmt.Errorf("%w: iv must be %d bytes, got %d", ErrInvalidEnvelope, NonceSize, len(env.IV))
	}
	if len(env.Tag) != TagSize {
		return Envelope{}, fmt.Errorf("%w: tag must be %d bytes, got %d", ErrInvalidEnvelope, TagSize, len(env.Tag))
	}

	return env, nil
}

// NewEnvelope splits sealed AEAD output (ciphertext with the tag appended) into an Envelope.
func NewEnvelope(iv, sealed []byte) (Envelope, error) {
	if len(iv) != NonceSize || len(sealed) <= TagSize {
		return Envelope{}, ErrInvalidEnvelope
	}

	split := len(sealed) - TagSize
	return Envelope{
		IV:         iv,
		Tag:        sealed[split:],
		Ciphertext: sealed[:split],
	}, nil
}

// Sealed rejoins ciphertext and tag in the layout AEAD Open expects.
func (e Envelope) Sealed() []byte {
	sealed := make([]byte, 0, len(e.Ciphertext)+len(e.Tag))
	sealed = append(sealed, e.Ciphertext...)
	return append(sealed, e.Tag...)
}

// String serializes the envelope to "iv:authTag:ciphertext".
func (e Envelope) String() string {
	return strings.Join([]string{
		base64.StdEncoding.EncodeToString(e.IV),
		base64.StdEncoding.EncodeToString(e.Tag),
		base64.StdEncoding.EncodeToString(e.Ciphertext),
	}, envelopeSeparator)
}
