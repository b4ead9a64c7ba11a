// Package service implements the public operation surface of the document
// custody registry: caller-attributed mutations over the document store and
// access control matrix, plus the read-only query interface.
//
// Every operation resolves the caller identity and logical height from the
// context (pkg/requestcontext), validates inputs in full, checks
// authorization, then performs an atomic state transition. Failures are
// returned as coded domain errors with zero observable state change.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"docregistry/internal/audit"
	registrymetrics "docregistry/internal/registry/metrics"
	"docregistry/internal/registry/models"
	"docregistry/internal/registry/ports"
	id "docregistry/pkg/domain"
	dErrors "docregistry/pkg/domain-errors"
	"docregistry/pkg/platform/sentinel"
	"docregistry/pkg/requestcontext"
)

// Type aliases for shared interfaces.
type (
	DocumentStore  = ports.DocumentStore
	GrantStore     = ports.GrantStore
	AuditPublisher = ports.AuditPublisher
)

// AuditCounter is optionally implemented by audit publishers that can report
// how many events their sink holds. Used by GetStatistics.
type AuditCounter interface {
	Count(ctx context.Context) (int, error)
}

// Service orchestrates the registry state machine.
type Service struct {
	docs           DocumentStore
	grants         GrantStore
	administrator  id.Identity
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *registrymetrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMetrics(m *registrymetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs a Service. The administrator identity is fixed for the
// registry's lifetime; it is injected here rather than hardcoded so tests can
// substitute arbitrary administrators.
func New(docs DocumentStore, grants GrantStore, administrator id.Identity, opts ...Option) (*Service, error) {
	if docs == nil {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "document store is required")
	}
	if grants == nil {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "grant store is required")
	}
	if administrator.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "administrator identity is required")
	}

	s := &Service{
		docs:          docs,
		grants:        grants,
		administrator: administrator,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Create registers a new document record custodied by the caller. Allocates
// the next id, stamps the current logical height as CreatedAt, and writes the
// creator's implicit grant. Returns the new id.
func (s *Service) Create(ctx context.Context, displayName string, byteSize uint64, description string, labels []string) (id.DocumentID, error) {
	start := time.Now()
	caller, err := requireCaller(ctx)
	if err != nil {
		return 0, err
	}
	height := requestcontext.Height(ctx)

	doc, err := s.docs.Create(ctx, func(newID id.DocumentID) (*models.Document, error) {
		return models.NewDocument(newID, displayName, caller, byteSize, height, description, labels)
	})
	if err != nil {
		return 0, s.translateStoreErr(err, "document already exists")
	}

	if err := s.grants.Set(ctx, doc.ID, caller, true); err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to write creator grant")
	}

	ports.LogAudit(ctx, s.logger, s.auditPublisher, audit.ActionDocumentCreated, doc.ID,
		"display_name", doc.DisplayName)
	if s.metrics != nil {
		s.metrics.IncrementDocumentsCreated()
		s.metrics.ObserveCreate(start)
	}
	return doc.ID, nil
}

// Update replaces the document's mutable metadata fields. Custodian-only;
// custodian, created-at height and id are untouched.
func (s *Service) Update(ctx context.Context, documentID id.DocumentID, displayName string, byteSize uint64, description string, labels []string) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return err
	}

	if _, err := s.docs.UpdateFields(ctx, documentID, caller, displayName, byteSize, description, labels); err != nil {
		return s.translateStoreErr(err, "document not found")
	}

	ports.LogAudit(ctx, s.logger, s.auditPublisher, audit.ActionDocumentUpdated, documentID)
	return nil
}

// TransferCustody hands the document to a new custodian. Grant rows are
// unaffected; the new custodian reads through the custodian bypass.
func (s *Service) TransferCustody(ctx context.Context, documentID id.DocumentID, newCustodian id.Identity) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return err
	}
	if newCustodian.IsNil() {
		return dErrors.New(dErrors.CodeInvalidInput, "new custodian identity is required")
	}

	if _, err := s.docs.TransferCustody(ctx, documentID, caller, newCustodian); err != nil {
		return s.translateStoreErr(err, "document not found")
	}

	ports.LogAudit(ctx, s.logger, s.auditPublisher, audit.ActionCustodyTransfer, documentID,
		"new_custodian", newCustodian.String())
	if s.metrics != nil {
		s.metrics.IncrementCustodyTransfers()
	}
	return nil
}

// Delete removes the document permanently. Custodian-only and irreversible:
// no tombstone is kept and the id is never reallocated. Grant rows for the
// document are removed so the matrix does not accumulate orphans.
func (s *Service) Delete(ctx context.Context, documentID id.DocumentID) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return err
	}

	if _, err := s.docs.Delete(ctx, documentID, caller); err != nil {
		return s.translateStoreErr(err, "document not found")
	}

	removed, err := s.grants.RemoveByDocument(ctx, documentID)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to remove grant rows")
	}

	ports.LogAudit(ctx, s.logger, s.auditPublisher, audit.ActionDocumentDeleted, documentID,
		"grants_removed", removed)
	if s.metrics != nil {
		s.metrics.IncrementDocumentsDeleted()
	}
	return nil
}

// RevokeAccess clears the grant flag for the (document, viewer) pair.
// Custodian-only. Revocation does not touch the custodian's own access, which
// flows through the custodian bypass rather than a grant row.
func (s *Service) RevokeAccess(ctx context.Context, documentID id.DocumentID, viewer id.Identity) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return err
	}
	if viewer.IsNil() {
		return dErrors.New(dErrors.CodeInvalidInput, "viewer identity is required")
	}

	doc, err := s.docs.FindByID(ctx, documentID)
	if err != nil {
		return s.translateStoreErr(err, "document not found")
	}
	if err := doc.CanMutate(caller); err != nil {
		return err
	}

	if err := s.grants.Set(ctx, documentID, viewer, false); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to revoke grant")
	}

	ports.LogAudit(ctx, s.logger, s.auditPublisher, audit.ActionAccessRevoked, documentID,
		"viewer", viewer.String())
	return nil
}

// requireCaller resolves the authenticated caller from the context. The
// environment is expected to always supply one; a missing identity is
// rejected rather than treated as an anonymous principal.
func requireCaller(ctx context.Context) (id.Identity, error) {
	caller := requestcontext.Caller(ctx)
	if caller.IsNil() {
		return id.Identity{}, dErrors.New(dErrors.CodeUnauthorized, "caller identity is required")
	}
	return caller, nil
}

// translateStoreErr maps store-layer failures onto the domain taxonomy.
// Ownership failures pass through untouched; sentinel facts become the
// corresponding coded errors; anything else is an internal failure.
func (s *Service) translateStoreErr(err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, notFoundMsg)
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.New(dErrors.CodeAlreadyExists, "document id already allocated")
	case dErrors.HasCode(err, dErrors.CodeOwnershipVerification):
		return err
	case dErrors.HasCode(err, dErrors.CodeInvariantViolation):
		// Field validation failures surface as invalid input to callers.
		return dErrors.New(dErrors.CodeInvalidInput, err.Error())
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "store operation failed")
	}
}
