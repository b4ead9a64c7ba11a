// Package auditstore provides the in-memory append-only audit sink.
package auditstore

import (
	"context"
	"sync"

	"docregistry/internal/audit"
	id "docregistry/pkg/domain"
)

// InMemory implements audit.Store. Events are append-only; nothing removes
// them for the life of the process.
type InMemory struct {
	mu     sync.RWMutex
	events []audit.Event
}

func NewInMemory() *InMemory {
	return &InMemory{}
}

func (s *InMemory) Append(ctx context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *InMemory) ListByDocument(ctx context.Context, documentID id.DocumentID) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []audit.Event
	for _, event := range s.events {
		if event.DocumentID == documentID {
			out = append(out, event)
		}
	}
	return out, nil
}

func (s *InMemory) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events), nil
}
