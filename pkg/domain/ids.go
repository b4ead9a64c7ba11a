package domain

import (
	"strconv"

	"github.com/google/uuid"

	dErrors "docregistry/pkg/domain-errors"
)

// Identity is the authenticated principal on whose behalf an operation
// executes. Identities are minted by an external identity provider; the
// registry only compares and stores them.
//
// Invariants:
//   - An Identity used by the registry is never the nil UUID
//   - Identities are immutable value types
type Identity uuid.UUID

// ParseIdentity validates and returns an Identity from its string form.
// Rejects empty strings, malformed UUIDs, and the nil UUID.
func ParseIdentity(s string) (Identity, error) {
	if s == "" {
		return Identity{}, dErrors.New(dErrors.CodeInvalidInput, "identity cannot be empty")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return Identity{}, dErrors.Wrap(err, dErrors.CodeInvalidInput, "identity must be a valid UUID")
	}
	if u == uuid.Nil {
		return Identity{}, dErrors.New(dErrors.CodeInvalidInput, "identity cannot be the nil UUID")
	}
	return Identity(u), nil
}

// NewIdentity mints a fresh random Identity. Intended for tests and for
// environments that provision principals locally.
func NewIdentity() Identity {
	return Identity(uuid.New())
}

func (i Identity) String() string {
	return uuid.UUID(i).String()
}

// IsNil reports whether the identity is the zero value.
func (i Identity) IsNil() bool {
	return uuid.UUID(i) == uuid.Nil
}

// DocumentID identifies a document record. IDs are allocated by the
// registry's counter: strictly increasing from 1, never reused.
type DocumentID uint64

// ParseDocumentID validates and returns a DocumentID from its decimal
// string form. Zero is rejected: the counter starts at 1.
func ParseDocumentID(s string) (DocumentID, error) {
	if s == "" {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "document id cannot be empty")
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInvalidInput, "document id must be a positive integer")
	}
	if n == 0 {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "document id cannot be zero")
	}
	return DocumentID(n), nil
}

func (d DocumentID) String() string {
	return strconv.FormatUint(uint64(d), 10)
}

// IsNil reports whether the id is unallocated.
func (d DocumentID) IsNil() bool {
	return d == 0
}
