// internal/games/store.go
//
// Persistence contract for the game catalog.
//
// Context
// -------
// The service holds a Store handle that is constructed once in main and
// injected — never a process-wide singleton — so tests swap in MemStore and
// production wires the Mongo-backed Repository.  Both implementations own
// id generation and timestamp assignment through a capability pair
// {newID, now} that tests pin for determinism.
//
// Notes
// -----
//   • All yields a non-nil empty slice for an empty store; JSON then encodes
//     `[]`, never `null`.
//   • Get, Update, and Delete return *NotFoundError when id does not resolve.
//   • Oxford commas, two spaces after periods.
package games

import (
	"context"
	"time"
)

// Store is the persistence port used by Service.
type Store interface {
	// Insert assigns id and timestamps, persists the record, and returns it.
	Insert(ctx context.Context, p CreatePayload) (*Game, error)

	// All returns every record in the backend's natural retrieval order.
	All(ctx context.Context) ([]Game, error)

	// Get returns the record with the given id.
	Get(ctx context.Context, id string) (*Game, error)

	// Update merges the provided fields over the stored record in a single
	// round trip, refreshes updatedAt, and returns the updated record.
	Update(ctx context.Context, id string, p UpdatePayload) (*Game, error)

	// Delete removes the record and returns it as it existed immediately
	// before deletion.
	Delete(ctx context.Context, id string) (*Game, error)

	// Count reports how many records the store holds.
	Count(ctx context.Context) (int64, error)

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error
}

// Now is the default timestamp capability shared by both stores: UTC,
// truncated to milliseconds, so a value survives a BSON round trip unchanged
// and re-read records compare equal to what Insert returned.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
