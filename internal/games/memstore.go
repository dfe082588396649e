// internal/games/memstore.go
//
// In-memory Store for tests and local tooling.
//
// MemStore keeps records in insertion order behind a mutex, which pins the
// "natural retrieval order" of All the same way a single mongod does.  The
// linear scans are fine at test scale.
package games

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemStore satisfies Store entirely in process memory.
type MemStore struct {
	mu    sync.Mutex
	recs  []Game // insertion order
	newID func() string
	now   func() time.Time
}

// NewMemStore returns an empty store using UUID ids and the shared
// millisecond UTC clock.
func NewMemStore() *MemStore {
	return NewMemStoreWith(uuid.NewString, Now)
}

// NewMemStoreWith lets tests pin the id and clock capabilities.
func NewMemStoreWith(newID func() string, now func() time.Time) *MemStore {
	return &MemStore{newID: newID, now: now}
}

// Insert assigns id and timestamps and appends the record.
func (m *MemStore) Insert(ctx context.Context, p CreatePayload) (*Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ts := m.now()
	g := Game{
		ID:            m.newID(),
		Name:          p.Name,
		URL:           p.URL,
		Author:        p.Author,
		DatePublished: p.DatePublished,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}
	m.recs = append(m.recs, g)
	return &g, nil
}

// All returns a copy of every record in insertion order.
func (m *MemStore) All(ctx context.Context) ([]Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Game, len(m.recs))
	copy(out, m.recs)
	return out, nil
}

// Get returns the record with the given id.
func (m *MemStore) Get(ctx context.Context, id string) (*Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.recs {
		if m.recs[i].ID == id {
			g := m.recs[i]
			return &g, nil
		}
	}
	return nil, &NotFoundError{ID: id}
}

// Update merges the provided fields in place and refreshes updatedAt.
func (m *MemStore) Update(ctx context.Context, id string, p UpdatePayload) (*Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.recs {
		if m.recs[i].ID != id {
			continue
		}
		g := &m.recs[i]
		if p.Name != nil {
			g.Name = *p.Name
		}
		if p.URL != nil {
			g.URL = *p.URL
		}
		if p.Author != nil {
			g.Author = *p.Author
		}
		if p.DatePublished != nil {
			g.DatePublished = *p.DatePublished
		}
		g.UpdatedAt = m.now()

		out := *g
		return &out, nil
	}
	return nil, &NotFoundError{ID: id}
}

// Delete removes the record and returns its last state.
func (m *MemStore) Delete(ctx context.Context, id string) (*Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.recs {
		if m.recs[i].ID == id {
			g := m.recs[i]
			m.recs = append(m.recs[:i], m.recs[i+1:]...)
			return &g, nil
		}
	}
	return nil, &NotFoundError{ID: id}
}

// Count reports the number of stored records.
func (m *MemStore) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.recs)), nil
}

// Ping always succeeds; memory is reachable.
func (m *MemStore) Ping(ctx context.Context) error { return nil }
