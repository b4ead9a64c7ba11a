// Package document provides the in-memory document store. It owns the
// identifier counter: ids are allocated strictly increasing from 1 and never
// reused, even after deletes.
package document

import (
	"context"
	"sort"
	"sync"

	"docregistry/internal/registry/models"
	id "docregistry/pkg/domain"
	"docregistry/pkg/platform/sentinel"
)

// InMemory implements ports.DocumentStore with a mutex-guarded map.
// All compound operations (existence check, custody check, write) run under
// a single lock acquisition so operations on the same id cannot interleave.
type InMemory struct {
	mu      sync.RWMutex
	docs    map[id.DocumentID]*models.Document
	counter uint64
}

func NewInMemory() *InMemory {
	return &InMemory{
		docs: make(map[id.DocumentID]*models.Document),
	}
}

// Create allocates counter+1 as the new id, invokes build with it, and
// inserts the result. The counter only advances on success, so a failed build
// leaves no gap.
func (s *InMemory) Create(ctx context.Context, build func(newID id.DocumentID) (*models.Document, error)) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	newID := id.DocumentID(s.counter + 1)
	doc, err := build(newID)
	if err != nil {
		return nil, err
	}
	if doc.ID != newID {
		return nil, sentinel.ErrInvalidState
	}
	if _, exists := s.docs[newID]; exists {
		// Unreachable under counter allocation; defensive.
		return nil, sentinel.ErrConflict
	}
	s.docs[newID] = doc.Clone()
	s.counter = uint64(newID)
	return doc.Clone(), nil
}

func (s *InMemory) FindByID(ctx context.Context, documentID id.DocumentID) (*models.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[documentID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return doc.Clone(), nil
}

// UpdateFields replaces the mutable metadata fields in place. Custodian,
// CreatedAt and ID are untouched. Fails without mutation when the record is
// absent or caller does not hold custody.
func (s *InMemory) UpdateFields(ctx context.Context, documentID id.DocumentID, caller id.Identity, displayName string, byteSize uint64, description string, labels []string) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[documentID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if err := doc.CanMutate(caller); err != nil {
		return nil, err
	}
	if err := models.ValidateFields(displayName, byteSize, description, labels); err != nil {
		return nil, err
	}
	doc.ApplyUpdate(displayName, byteSize, description, labels)
	return doc.Clone(), nil
}

func (s *InMemory) TransferCustody(ctx context.Context, documentID id.DocumentID, caller, newCustodian id.Identity) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[documentID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if err := doc.CanMutate(caller); err != nil {
		return nil, err
	}
	doc.ApplyTransfer(newCustodian)
	return doc.Clone(), nil
}

// Delete removes the record permanently. No tombstone is kept and the id is
// never reallocated because the counter does not decrease.
func (s *InMemory) Delete(ctx context.Context, documentID id.DocumentID, caller id.Identity) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[documentID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if err := doc.CanMutate(caller); err != nil {
		return nil, err
	}
	delete(s.docs, documentID)
	return doc, nil
}

func (s *InMemory) ListByCustodian(ctx context.Context, custodian id.Identity) ([]*models.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Document
	for _, doc := range s.docs {
		if doc.IsCustodiedBy(custodian) {
			out = append(out, doc.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *InMemory) TotalCreated(ctx context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counter, nil
}
