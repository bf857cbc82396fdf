package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Record is an entry forwarded to a sink, stamped with an ID and the time it
// was emitted.
type Record struct {
	ID        uuid.UUID
	EmittedAt time.Time
	Entry     Entry
}

// Emitter receives audit entries as they are appended to a trail.
type Emitter interface {
	Emit(ctx context.Context, entry Entry) error
}

// Store persists emitted records.
type Store interface {
	Append(ctx context.Context, record Record) error
}

// Publisher captures structured audit entries. It is append-only and writes
// through to a Store so tests can swap sinks easily.
type Publisher struct {
	store Store
	now   func() time.Time
}

type PublisherOption func(*Publisher)

// WithPublisherClock overrides the clock used for EmittedAt.
func WithPublisherClock(now func() time.Time) PublisherOption {
	return func(p *Publisher) {
		if now != nil {
			p.now = now
		}
	}
}

// NewPublisher returns a publisher writing to store.
func NewPublisher(store Store, opts ...PublisherOption) (*Publisher, error) {
	if store == nil {
		return nil, fmt.Errorf("audit store is required")
	}
	p := &Publisher{store: store, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func (p *Publisher) Emit(ctx context.Context, entry Entry) error {
	record := Record{
		ID:        uuid.New(),
		EmittedAt: p.now(),
		Entry:     entry,
	}
	if err := p.store.Append(ctx, record); err != nil {
		return fmt.Errorf("append audit record: %w", err)
	}
	return nil
}
