// Package ports defines shared interfaces for the registry module.
// Interfaces are placed here when consumed by multiple packages to avoid
// duplication.
package ports

import (
	"context"
	"log/slog"

	"docregistry/internal/audit"
	"docregistry/internal/registry/models"
	id "docregistry/pkg/domain"
	"docregistry/pkg/requestcontext"
)

// DocumentStore holds document records and owns identifier allocation.
//
// Mutating methods that target an existing record perform the existence and
// custody checks and the write inside a single critical section, so two
// operations on the same document id cannot interleave even when the caller
// environment does not serialize operations itself.
type DocumentStore interface {
	// Create allocates the next document id under the store lock and inserts
	// the record returned by build. The counter advances only when both build
	// and the insert succeed, so rejected inputs never consume an id.
	Create(ctx context.Context, build func(newID id.DocumentID) (*models.Document, error)) (*models.Document, error)

	// FindByID returns a copy of the record, or sentinel.ErrNotFound.
	FindByID(ctx context.Context, documentID id.DocumentID) (*models.Document, error)

	// UpdateFields replaces the four mutable metadata fields if the record
	// exists, caller holds custody, and every field passes validation.
	// Preconditions are checked in that order; all-or-nothing.
	UpdateFields(ctx context.Context, documentID id.DocumentID, caller id.Identity, displayName string, byteSize uint64, description string, labels []string) (*models.Document, error)

	// TransferCustody hands the record to newCustodian if caller holds
	// custody. No other field changes.
	TransferCustody(ctx context.Context, documentID id.DocumentID, caller, newCustodian id.Identity) (*models.Document, error)

	// Delete removes the record permanently if caller holds custody.
	// Returns the removed record.
	Delete(ctx context.Context, documentID id.DocumentID, caller id.Identity) (*models.Document, error)

	// ListByCustodian returns copies of all records custodied by the identity.
	ListByCustodian(ctx context.Context, custodian id.Identity) ([]*models.Document, error)

	// TotalCreated returns the counter value: documents ever created,
	// unaffected by deletes.
	TotalCreated(ctx context.Context) (uint64, error)
}

// GrantStore is the access control matrix: (document, viewer) -> may-view.
type GrantStore interface {
	// Set writes the grant flag for the pair, creating the row if absent.
	Set(ctx context.Context, documentID id.DocumentID, viewer id.Identity, mayView bool) error

	// Check returns the stored flag, defaulting to false for a missing row.
	// Does not verify document existence.
	Check(ctx context.Context, documentID id.DocumentID, viewer id.Identity) (bool, error)

	// RemoveByDocument deletes every row for the document and returns the
	// number removed. Used on document deletion so grant rows do not orphan.
	RemoveByDocument(ctx context.Context, documentID id.DocumentID) (int, error)

	// ListByDocument returns all rows for the document.
	ListByDocument(ctx context.Context, documentID id.DocumentID) ([]models.AccessGrant, error)
}

// AuditPublisher emits audit events for security-relevant operations.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// LogAudit records a mutation to the structured logger and the audit
// publisher. Either collaborator may be nil; a publisher failure is logged,
// never propagated, so audit hiccups cannot fail a committed operation.
func LogAudit(ctx context.Context, logger *slog.Logger, publisher AuditPublisher, action audit.Action, documentID id.DocumentID, attrs ...any) {
	caller := requestcontext.Caller(ctx)
	height := requestcontext.Height(ctx)

	args := append(attrs,
		"action", string(action),
		"document_id", documentID.String(),
		"caller", caller.String(),
		"height", height,
		"log_type", "audit",
	)

	if logger != nil {
		logger.InfoContext(ctx, string(action), args...)
	}

	if publisher == nil {
		return
	}
	event := audit.Event{
		Height:     height,
		Caller:     caller,
		Action:     action,
		DocumentID: documentID,
	}
	if err := publisher.Emit(ctx, event); err != nil && logger != nil {
		logger.WarnContext(ctx, "failed to emit audit event", "action", string(action), "error", err)
	}
}
