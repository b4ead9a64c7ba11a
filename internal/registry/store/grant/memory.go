// Package grant provides the in-memory access control matrix.
package grant

import (
	"context"
	"sort"
	"sync"

	"docregistry/internal/registry/models"
	id "docregistry/pkg/domain"
)

type pairKey struct {
	documentID id.DocumentID
	viewer     id.Identity
}

// InMemory implements ports.GrantStore with a mutex-guarded map keyed by the
// (document, viewer) pair. A missing row reads as false; rows are independent
// of document existence, which the service re-checks on authorized reads.
type InMemory struct {
	mu     sync.RWMutex
	grants map[pairKey]bool
}

func NewInMemory() *InMemory {
	return &InMemory{
		grants: make(map[pairKey]bool),
	}
}

// Set writes the grant flag for the pair. Setting false keeps an explicit
// revoked row rather than deleting it, so a revocation is observable.
func (s *InMemory) Set(ctx context.Context, documentID id.DocumentID, viewer id.Identity, mayView bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grants[pairKey{documentID: documentID, viewer: viewer}] = mayView
	return nil
}

// Check returns the stored flag, false when no row exists. Never an error in
// the memory implementation; the signature leaves room for backed stores.
func (s *InMemory) Check(ctx context.Context, documentID id.DocumentID, viewer id.Identity) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grants[pairKey{documentID: documentID, viewer: viewer}], nil
}

// RemoveByDocument deletes every row for the document.
func (s *InMemory) RemoveByDocument(ctx context.Context, documentID id.DocumentID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key := range s.grants {
		if key.documentID == documentID {
			delete(s.grants, key)
			removed++
		}
	}
	return removed, nil
}

func (s *InMemory) ListByDocument(ctx context.Context, documentID id.DocumentID) ([]models.AccessGrant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.AccessGrant
	for key, mayView := range s.grants {
		if key.documentID == documentID {
			out = append(out, models.AccessGrant{
				DocumentID: key.documentID,
				Viewer:     key.viewer,
				MayView:    mayView,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Viewer.String() < out[j].Viewer.String() })
	return out, nil
}
