package htlc

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// CommitmentSize is the byte length of a commitment (a SHA-256 digest).
const CommitmentSize = sha256.Size

// Commitment is the hash of a secret, published when value is locked.
type Commitment [CommitmentSize]byte

// HashSecret returns SHA-256(secret).
func HashSecret(secret []byte) Commitment {
	return sha256.Sum256(secret)
}

// ParseCommitment decodes a 64 character hex commitment. An optional 0x
// prefix and upper-case digits are tolerated; the canonical form is lower-case.
func ParseCommitment(s string) (Commitment, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if len(s) != hex.EncodedLen(CommitmentSize) {
		return Commitment{}, fmt.Errorf("%w: expected %d hex characters, got %d",
			ErrInvalidCommitment, hex.EncodedLen(CommitmentSize), len(s))
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return Commitment{}, fmt.Errorf("%w: %v", ErrInvalidCommitment, err)
	}
	var c Commitment
	copy(c[:], raw)
	return c, nil
}

// CommitmentFromBytes accepts exactly CommitmentSize raw bytes.
func CommitmentFromBytes(b []byte) (Commitment, error) {
	if len(b) != CommitmentSize {
		return Commitment{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidCommitment, CommitmentSize, len(b))
	}
	var c Commitment
	copy(c[:], b)
	return c, nil
}

// Matches reports whether SHA-256(secret) equals c byte for byte.
func (c Commitment) Matches(secret []byte) bool {
	h := HashSecret(secret)
	return subtle.ConstantTimeCompare(h[:], c[:]) == 1
}

func (c Commitment) IsZero() bool { return c == Commitment{} }

// String returns the lower-case hex form.
func (c Commitment) String() string { return hex.EncodeToString(c[:]) }

func (c Commitment) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Commitment) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: expected hex string", ErrInvalidCommitment)
	}
	parsed, err := ParseCommitment(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// VerifySecret is the stateless check relayers run before submitting a claim.
func VerifySecret(secret []byte, commitment Commitment) bool {
	return commitment.Matches(secret)
}
