package service

import (
	"context"
	"errors"
	"time"

	"docregistry/internal/registry/models"
	id "docregistry/pkg/domain"
	dErrors "docregistry/pkg/domain-errors"
	"docregistry/pkg/platform/sentinel"
	"docregistry/pkg/requestcontext"
)

// GetDocument returns the full record if the caller passes the read
// authorization rule: explicit grant, custodian, or administrator.
func (s *Service) GetDocument(ctx context.Context, documentID id.DocumentID) (*models.Document, error) {
	start := time.Now()
	caller, err := requireCaller(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := s.docs.FindByID(ctx, documentID)
	if err != nil {
		return nil, s.translateStoreErr(err, "document not found")
	}

	granted, err := s.grants.Check(ctx, documentID, caller)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check grant")
	}

	if !CanView(doc, granted, caller, s.administrator) {
		if s.metrics != nil {
			s.metrics.IncrementAccessDeniedReads()
		}
		return nil, dErrors.New(dErrors.CodeAccessDenied, "caller may not view this document")
	}

	if s.metrics != nil {
		s.metrics.ObserveGetDocument(start)
	}
	return doc, nil
}

// GetStatistics returns the registry summary. Always succeeds and requires
// no authorization. TotalDocuments counts documents ever created; deletes do
// not decrement it.
func (s *Service) GetStatistics(ctx context.Context) (*models.Statistics, error) {
	total, err := s.docs.TotalCreated(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read counter")
	}

	stats := &models.Statistics{
		TotalDocuments: total,
		Administrator:  s.administrator,
		CurrentHeight:  requestcontext.Height(ctx),
	}
	if counter, ok := s.auditPublisher.(AuditCounter); ok {
		if n, err := counter.Count(ctx); err == nil {
			stats.AuditEvents = n
		}
	}
	return stats, nil
}

// VerifyCustodian reports whether the record exists and the candidate is its
// current custodian. Absence is not an error here, deliberately softer than
// GetDocument.
func (s *Service) VerifyCustodian(ctx context.Context, documentID id.DocumentID, candidate id.Identity) (bool, error) {
	doc, err := s.docs.FindByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return false, nil
		}
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load document")
	}
	return doc.IsCustodiedBy(candidate), nil
}

// CheckViewingPermission returns the stored grant flag for the pair. Always
// succeeds; defaults to false for missing rows or missing documents. Does not
// itself verify document existence.
func (s *Service) CheckViewingPermission(ctx context.Context, documentID id.DocumentID, viewer id.Identity) (bool, error) {
	granted, err := s.grants.Check(ctx, documentID, viewer)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check grant")
	}
	return granted, nil
}

// ListByCustodian returns the records custodied by the given identity. The
// caller must be that custodian or the administrator.
func (s *Service) ListByCustodian(ctx context.Context, custodian id.Identity) ([]*models.Document, error) {
	caller, err := requireCaller(ctx)
	if err != nil {
		return nil, err
	}
	if caller != custodian && caller != s.administrator {
		return nil, dErrors.New(dErrors.CodeAccessDenied, "caller may not list another custodian's documents")
	}

	docs, err := s.docs.ListByCustodian(ctx, custodian)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list documents")
	}
	return docs, nil
}
