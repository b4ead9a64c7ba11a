package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "docregistry/pkg/domain-errors"
)

// TestParseIdentity_Invariants validates the parsing invariant:
// "identities must be valid, non-empty, non-nil UUIDs".
func TestParseIdentity_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseIdentity("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		_, err := ParseIdentity("not-a-uuid")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects nil UUID", func(t *testing.T) {
		_, err := ParseIdentity(uuid.Nil.String())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("accepts valid UUID", func(t *testing.T) {
		validUUID := uuid.New()
		identity, err := ParseIdentity(validUUID.String())
		require.NoError(t, err)
		assert.Equal(t, Identity(validUUID), identity)
	})

	t.Run("round-trips through String", func(t *testing.T) {
		identity := NewIdentity()
		parsed, err := ParseIdentity(identity.String())
		require.NoError(t, err)
		assert.Equal(t, identity, parsed)
	})
}

func TestParseDocumentID_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseDocumentID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects non-numeric input", func(t *testing.T) {
		_, err := ParseDocumentID("forty-two")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects zero", func(t *testing.T) {
		_, err := ParseDocumentID("0")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects negative numbers", func(t *testing.T) {
		_, err := ParseDocumentID("-1")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("accepts positive integers", func(t *testing.T) {
		docID, err := ParseDocumentID("42")
		require.NoError(t, err)
		assert.Equal(t, DocumentID(42), docID)
		assert.Equal(t, "42", docID.String())
	})
}

func TestIsNil(t *testing.T) {
	assert.True(t, Identity{}.IsNil())
	assert.False(t, NewIdentity().IsNil())
	assert.True(t, DocumentID(0).IsNil())
	assert.False(t, DocumentID(1).IsNil())
}
