// internal/api/games.go
//
// Game resource handlers.
//
// Context
// -------
// Each handler is a closure over the injected *games.Service, returned as a
// plain http.HandlerFunc so the router composes them without framework
// types.  Bodies decode into the typed payloads from internal/games; an
// undecodable body is a 400, validation and backend failures are 500, and
// an unresolved id is a 404 — always with the `{"message": …}` body.
//
// The swag annotations below are the source for the generated docs/ package
// (`swag init -g cmd/api/main.go`).
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yanizio/gamedex/internal/games"
)

// CreateGameHandler returns the POST /game handler.
//
//	@Summary      Create a game
//	@Description  Stores a new game record.  All four fields are required and must be non-empty.
//	@Tags         games
//	@Accept       json
//	@Produce      json
//	@Param        game  body      games.CreatePayload  true  "game fields"
//	@Success      200   {object}  games.Game
//	@Failure      400   {object}  ErrorResponse  "undecodable body"
//	@Failure      500   {object}  ErrorResponse  "validation or backend failure"
//	@Router       /game [post]
func CreateGameHandler(svc *games.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p games.CreatePayload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
			return
		}

		g, err := svc.Create(r.Context(), p)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, g)
	}
}

// ListGamesHandler returns the GET /games handler.
//
//	@Summary      List all games
//	@Description  Returns every record in the backend's natural retrieval order.  An empty catalog yields [].
//	@Tags         games
//	@Produce      json
//	@Success      200  {array}   games.Game
//	@Failure      500  {object}  ErrorResponse
//	@Router       /games [get]
func ListGamesHandler(svc *games.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// GetGameHandler returns the GET /games/{id} handler.
//
//	@Summary      Get one game
//	@Tags         games
//	@Produce      json
//	@Param        id   path      string  true  "record id"
//	@Success      200  {object}  games.Game
//	@Failure      404  {object}  ErrorResponse
//	@Failure      500  {object}  ErrorResponse
//	@Router       /games/{id} [get]
func GetGameHandler(svc *games.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, g)
	}
}

// UpdateGameHandler returns the PUT /games/{id} handler.
//
//	@Summary      Update a game
//	@Description  Merges the provided fields over the stored record.  Omitted fields are left unchanged; provided fields are set verbatim, empty strings included.
//	@Tags         games
//	@Accept       json
//	@Produce      json
//	@Param        id    path      string              true  "record id"
//	@Param        game  body      games.UpdatePayload  true  "fields to merge"
//	@Success      200   {object}  games.Game
//	@Failure      400   {object}  ErrorResponse  "undecodable body"
//	@Failure      404   {object}  ErrorResponse
//	@Failure      500   {object}  ErrorResponse
//	@Router       /games/{id} [put]
func UpdateGameHandler(svc *games.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p games.UpdatePayload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
			return
		}

		g, err := svc.Update(r.Context(), chi.URLParam(r, "id"), p)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, g)
	}
}

// DeleteGameHandler returns the DELETE /games/{id} handler.
//
//	@Summary      Delete a game
//	@Description  Permanently removes the record and returns it as it existed immediately before deletion.
//	@Tags         games
//	@Produce      json
//	@Param        id   path      string  true  "record id"
//	@Success      200  {object}  games.Game
//	@Failure      404  {object}  ErrorResponse
//	@Failure      500  {object}  ErrorResponse
//	@Router       /games/{id} [delete]
func DeleteGameHandler(svc *games.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, err := svc.Delete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, g)
	}
}
