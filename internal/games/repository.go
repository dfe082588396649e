// internal/games/repository.go
//
// Mongo-backed Store.
//
/*
Context
--------
Repository speaks to one collection (`games`) through an injected
*mongo.Collection — constructed in main, never a package global.  The wire
shape is the private `document` struct with bson tags; the public Game DTO
never carries driver tags, so swapping the store stays a one-file change.

Operation mapping (one round trip each):

	Insert → InsertOne            All    → Find (natural order)
	Get    → FindOne              Update → FindOneAndUpdate($set, After)
	Delete → FindOneAndDelete     Count  → EstimatedDocumentCount

Notes
-----
  • Ids on the wire are hex ObjectIDs.  A string that cannot parse as one
    can never match a stored record, so lookups short-circuit to
    NotFoundError without a round trip.
  • Timestamps are written through the shared millisecond UTC clock — BSON
    datetimes do not keep nanoseconds, and truncating up front keeps
    inserted and re-read values comparable.
  • Oxford commas, two spaces after periods.
*/
package games

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// CollectionName is the Mongo collection the repository owns.
const CollectionName = "games"

/*──────────────────────────── wire shape ───────────────────────────────────*/

// document is the BSON shape of one stored record.
type document struct {
	ID            primitive.ObjectID `bson:"_id"`
	Name          string             `bson:"name"`
	URL           string             `bson:"url"`
	Author        string             `bson:"author"`
	DatePublished string             `bson:"datePublished"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"`
}

// toGame converts the wire shape to the domain DTO.
func (d document) toGame() *Game {
	return &Game{
		ID:            d.ID.Hex(),
		Name:          d.Name,
		URL:           d.URL,
		Author:        d.Author,
		DatePublished: d.DatePublished,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

/*──────────────────────────── repository ───────────────────────────────────*/

// Repository satisfies Store on top of a Mongo collection.
type Repository struct {
	col   *mongo.Collection
	newID func() primitive.ObjectID
	now   func() time.Time
}

// NewRepository wires the default id and clock capabilities.
func NewRepository(col *mongo.Collection) *Repository {
	return NewRepositoryWith(col, primitive.NewObjectID, Now)
}

// NewRepositoryWith lets tests pin id generation and the clock.
func NewRepositoryWith(col *mongo.Collection, newID func() primitive.ObjectID, now func() time.Time) *Repository {
	return &Repository{col: col, newID: newID, now: now}
}

// Insert persists a new record with store-assigned id and timestamps.
func (r *Repository) Insert(ctx context.Context, p CreatePayload) (*Game, error) {
	ts := r.now()
	doc := document{
		ID:            r.newID(),
		Name:          p.Name,
		URL:           p.URL,
		Author:        p.Author,
		DatePublished: p.DatePublished,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert game: %w", err)
	}
	return doc.toGame(), nil
}

// All returns every record in natural order.  An empty collection yields an
// empty, non-nil slice so the JSON encoding stays `[]`.
func (r *Repository) All(ctx context.Context) ([]Game, error) {
	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]Game, 0, 16)
	for cur.Next(ctx) {
		var d document
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode game: %w", err)
		}
		out = append(out, *d.toGame())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return out, nil
}

// Get returns one record by hex id.
func (r *Repository) Get(ctx context.Context, id string) (*Game, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &NotFoundError{ID: id}
	}

	var d document
	err = r.col.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &NotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("get game %s: %w", id, err)
	}
	return d.toGame(), nil
}

// Update merges the provided fields and refreshes updatedAt in one
// find-and-modify round trip, returning the post-update record.
func (r *Repository) Update(ctx context.Context, id string, p UpdatePayload) (*Game, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &NotFoundError{ID: id}
	}

	set := bson.D{{Key: "updatedAt", Value: r.now()}}
	if p.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *p.Name})
	}
	if p.URL != nil {
		set = append(set, bson.E{Key: "url", Value: *p.URL})
	}
	if p.Author != nil {
		set = append(set, bson.E{Key: "author", Value: *p.Author})
	}
	if p.DatePublished != nil {
		set = append(set, bson.E{Key: "datePublished", Value: *p.DatePublished})
	}

	var d document
	err = r.col.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: set}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &NotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("update game %s: %w", id, err)
	}
	return d.toGame(), nil
}

// Delete removes one record and returns its pre-delete state.
func (r *Repository) Delete(ctx context.Context, id string) (*Game, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &NotFoundError{ID: id}
	}

	var d document
	err = r.col.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &NotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("delete game %s: %w", id, err)
	}
	return d.toGame(), nil
}

// Count reports the collection size from metadata; exact enough for the
// boot sanity log.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	n, err := r.col.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("count games: %w", err)
	}
	return n, nil
}

// Ping verifies the deployment answers within the caller's deadline.
func (r *Repository) Ping(ctx context.Context) error {
	return r.col.Database().Client().Ping(ctx, readpref.Primary())
}
