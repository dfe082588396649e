// internal/api/router.go
//
// HTTP composition root: middleware order, resource routes, and the
// operational endpoints.
//
/*
Context
--------
New builds the complete handler tree:

	Enrich → AccessLog → Recover → ForceHTTPS → CORS → Security
	  ├── POST   /game
	  ├── GET    /games
	  ├── GET    /games/{id}
	  ├── PUT    /games/{id}
	  ├── DELETE /games/{id}
	  ├── GET    /healthz
	  ├── GET    /metrics      (Prometheus)
	  └── GET    /swagger/*    (generated API docs)

Notes
-----
  • Enrich runs first so every log line carries a request id; Recover sits
    inside AccessLog so a panic still produces a logged 500.
  • The Swagger UI needs inline scripts, so its subtree sets a looser CSP
    before Security would seed the strict default.
  • Oxford commas, two spaces after periods.
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/yanizio/gamedex/internal/games"
	"github.com/yanizio/gamedex/internal/middleware"
	"github.com/yanizio/gamedex/internal/requestinfo"
)

// New assembles the router around the injected service.
func New(svc *games.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(requestinfo.Enrich)
	r.Use(middleware.AccessLog)
	r.Use(middleware.Recover)
	r.Use(middleware.ForceHTTPS)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))
	r.Use(middleware.Security)

	r.Post("/game", CreateGameHandler(svc))
	r.Get("/games", ListGamesHandler(svc))
	r.Get("/games/{id}", GetGameHandler(svc))
	r.Put("/games/{id}", UpdateGameHandler(svc))
	r.Delete("/games/{id}", DeleteGameHandler(svc))

	r.Get("/healthz", HealthzHandler(svc))
	r.Handle("/metrics", promhttp.Handler())
	r.With(swaggerCSP).Get("/swagger/*", httpSwagger.Handler())

	return r
}

// swaggerCSP replaces the strict default policy for the UI's inline scripts
// and styles.  Security never touches a header that is already set.
func swaggerCSP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Security-Policy",
			"default-src 'self'; script-src 'self' 'unsafe-inline'; "+
				"style-src 'self' 'unsafe-inline'; img-src 'self' data:")
		next.ServeHTTP(w, r)
	})
}
