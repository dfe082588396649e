// internal/games/service.go
//
// Orchestration over the Store: validation, counters, and success logging
// live here so both store implementations stay pure persistence.
package games

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/yanizio/gamedex/internal/metrics"
)

// Service executes the resource contract against an injected Store.
type Service struct {
	store Store
}

// NewService returns a Service bound to store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create validates the payload, then inserts.  The returned record carries
// the store-assigned id and equal createdAt/updatedAt.
func (s *Service) Create(ctx context.Context, p CreatePayload) (*Game, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	g, err := s.store.Insert(ctx, p)
	if err != nil {
		return nil, err
	}
	metrics.GamesCreatedTotal.Inc()
	zap.S().Infow("game created", "id", g.ID, "name", g.Name)
	return g, nil
}

// List returns all records.
func (s *Service) List(ctx context.Context) ([]Game, error) {
	return s.store.All(ctx)
}

// Get returns one record, counting lookup hits and misses.
func (s *Service) Get(ctx context.Context, id string) (*Game, error) {
	g, err := s.store.Get(ctx, id)
	if err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			metrics.GameLookupsTotal.WithLabelValues("miss").Inc()
		}
		return nil, err
	}
	metrics.GameLookupsTotal.WithLabelValues("hit").Inc()
	return g, nil
}

// Update merges the payload over the stored record.
func (s *Service) Update(ctx context.Context, id string, p UpdatePayload) (*Game, error) {
	g, err := s.store.Update(ctx, id, p)
	if err != nil {
		return nil, err
	}
	metrics.GamesUpdatedTotal.Inc()
	zap.S().Infow("game updated", "id", g.ID)
	return g, nil
}

// Delete removes the record, returning its last state.
func (s *Service) Delete(ctx context.Context, id string) (*Game, error) {
	g, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	metrics.GamesDeletedTotal.Inc()
	zap.S().Infow("game deleted", "id", g.ID)
	return g, nil
}

// Count reports how many records exist; main logs it once at boot.
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.store.Count(ctx)
}

// Ping checks backend reachability for health probes.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
