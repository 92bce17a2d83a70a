// Package domain contains pure business logic and types.
// No external infrastructure dependencies allowed - this is the innermost
// ring of the architecture.
package domain

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// EID is a value object representing an entity identifier: a 16-byte UUID
// derived deterministically from the entity's phone number hash. It never
// changes after entity creation and is safe to expose publicly.
type EID struct {
	value uuid.UUID
}

// NewEID parses an EID from its 32-character hex form (UUID without dashes).
// The canonical dashed UUID form is also accepted.
func NewEID(raw string) (EID, error) {
	if raw == "" {
		return EID{}, fmt.Errorf("eid cannot be empty: %w", ErrInvalidInput)
	}
	u, err := uuid.Parse(raw)
	if err != nil {
		return EID{}, fmt.Errorf("invalid eid %q: %w", raw, ErrInvalidInput)
	}
	return EID{value: u}, nil
}

// MustEID creates an EID, panicking on invalid input. Use only in tests.
func MustEID(raw string) EID {
	id, err := NewEID(raw)
	if err != nil {
		panic(err)
	}
	return id
}

// DeriveEID derives the entity identifier from a phone number hash using a
// UUIDv5-style (SHA-1 name-based) derivation. The same phone hash always
// yields the same EID, which makes entity creation replay-idempotent.
func DeriveEID(phoneNumberHash string) EID {
	return EID{value: uuid.NewSHA1(uuid.NameSpaceOID, []byte(phoneNumberHash))}
}

// String returns the 32-character lowercase hex form used on the wire and
// in keystore file names.
func (id EID) String() string {
	raw := id.value
	return hex.EncodeToString(raw[:])
}

// Bytes returns the raw 16-byte UUID.
func (id EID) Bytes() []byte {
	raw := id.value
	return raw[:]
}

// IsZero reports whether the EID is the zero UUID.
func (id EID) IsZero() bool { return id.value == uuid.Nil }
