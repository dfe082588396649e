// internal/games/model.go
//
// Domain model for the game catalog.
//
// Context
// -------
// Game is the DTO handlers serialize and clients see.  It carries JSON tags
// only; the Mongo document shape (bson tags, ObjectID) lives privately in
// repository.go, so driver concerns never leak into the API surface.
package games

import "time"

// Game is one catalog record.  ID is assigned by the store at creation and
// immutable thereafter; CreatedAt and UpdatedAt are store-maintained, never
// client-settable.  DatePublished is free-form text (values like "1972" or
// "June 1984"), so it is stored verbatim and never parsed as a date.
type Game struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	URL           string    `json:"url"`
	Author        string    `json:"author"`
	DatePublished string    `json:"datePublished"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
