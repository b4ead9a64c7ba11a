package audit

import (
	"context"
	"time"

	id "docregistry/pkg/domain"
)

// Action names a security-relevant registry mutation.
type Action string

const (
	ActionDocumentCreated Action = "document_created"
	ActionDocumentUpdated Action = "document_updated"
	ActionCustodyTransfer Action = "custody_transferred"
	ActionDocumentDeleted Action = "document_deleted"
	ActionAccessRevoked   Action = "access_revoked"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp  time.Time
	Height     uint64
	Caller     id.Identity
	Action     Action
	DocumentID id.DocumentID
	Subject    string
}

// Store is an append-only sink for audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByDocument(ctx context.Context, documentID id.DocumentID) ([]Event, error)
	Count(ctx context.Context) (int, error)
}
