// Package gameid generates tournament identifiers: UUIDv7 values written as
// 26 characters of lower-case Crockford base32, so they sort by creation
// time and are safe to use as file names.
package gameid

import (
	"encoding/base32"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length of an encoded identifier.
const Length = 26

var encoding = base32.NewEncoding(alphabet).WithPadding(base32.NoPadding)

// Generate returns a new identifier. It panics only if the system's random
// source fails.
func Generate() string {
	return encode(uuid.Must(uuid.NewV7()))
}

// GenerateFromReader draws the random bits of the identifier from r, which
// makes identifiers reproducible in tests.
func GenerateFromReader(r io.Reader) (string, error) {
	id, err := uuid.NewV7FromReader(r)
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return encode(id), nil
}

// Parse decodes an identifier back into its UUID.
func Parse(id string) (uuid.UUID, error) {
	if len(id) != Length {
		return uuid.Nil, fmt.Errorf("invalid id length %d, want %d", len(id), Length)
	}
	raw, err := encoding.DecodeString(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id %q: %w", id, err)
	}
	u, err := uuid.FromBytes(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id %q: %w", id, err)
	}
	if u.Version() != 7 {
		return uuid.Nil, fmt.Errorf("invalid id %q: version %d, want 7", id, u.Version())
	}
	return u, nil
}

// Validate reports whether id is a well-formed identifier.
func Validate(id string) error {
	_, err := Parse(id)
	return err
}

func encode(u uuid.UUID) string {
	return encoding.EncodeToString(u[:])
}
