package audit

import (
	"context"
	"sync"
)

// InMemoryStore keeps emitted records in process memory, in append order.
type InMemoryStore struct {
	mu      sync.RWMutex
	records []Record
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Append(_ context.Context, record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
	return nil
}

// ListAll returns every record in append order.
func (s *InMemoryStore) ListAll(_ context.Context) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Record{}, s.records...), nil
}

// ListByKind returns the records whose entry has the given kind.
func (s *InMemoryStore) ListByKind(_ context.Context, kind Kind) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Record
	for _, r := range s.records {
		if r.Entry.Kind == kind {
			out = append(out, r)
		}
	}
	return out, nil
}

// ListRecent returns the last limit records, oldest first. A limit of zero or
// less returns no records.
func (s *InMemoryStore) ListRecent(_ context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		return nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	start := max(0, len(s.records)-limit)
	return append([]Record{}, s.records[start:]...), nil
}
