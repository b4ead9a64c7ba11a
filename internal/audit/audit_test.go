package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docregistry/internal/audit"
	auditstore "docregistry/internal/registry/store/audit"
	id "docregistry/pkg/domain"
)

func TestPublisher(t *testing.T) {
	ctx := context.Background()
	store := auditstore.NewInMemory()
	publisher := audit.NewPublisher(store)
	caller := id.NewIdentity()

	t.Run("stamps a wall-clock timestamp when missing", func(t *testing.T) {
		err := publisher.Emit(ctx, audit.Event{
			Height:     3,
			Caller:     caller,
			Action:     audit.ActionDocumentCreated,
			DocumentID: 1,
		})
		require.NoError(t, err)

		events, err := publisher.List(ctx, id.DocumentID(1))
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.False(t, events[0].Timestamp.IsZero())
		assert.Equal(t, uint64(3), events[0].Height)
	})

	t.Run("preserves an explicit timestamp", func(t *testing.T) {
		stamp := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		err := publisher.Emit(ctx, audit.Event{
			Timestamp:  stamp,
			Caller:     caller,
			Action:     audit.ActionAccessRevoked,
			DocumentID: 2,
		})
		require.NoError(t, err)

		events, err := publisher.List(ctx, id.DocumentID(2))
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, stamp, events[0].Timestamp)
	})

	t.Run("counts all accepted events", func(t *testing.T) {
		n, err := publisher.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})
}

func TestWorker(t *testing.T) {
	store := auditstore.NewInMemory()
	inbox := make(chan audit.Event, 2)
	worker := audit.NewWorker(store, inbox)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	inbox <- audit.Event{Action: audit.ActionDocumentCreated, DocumentID: 1}
	inbox <- audit.Event{Action: audit.ActionDocumentDeleted, DocumentID: 1}

	require.Eventually(t, func() bool {
		n, err := store.Count(context.Background())
		return err == nil && n == 2
	}, time.Second, 10*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
