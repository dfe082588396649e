// cmd/api/main.go
//
// Gamedex – HTTP entry point.
//
// Boot life-cycle
// ---------------
//
//  1. Load env vars (jail-wide file → .env fallback).
//
//  2. Start daily rotating logger (tees to console when running in a TTY).
//
//  3. Load layered config (.env → conf/global.yaml → GAMEDEX_ overrides,
//     Vault references resolved).
//
//  4. Connect to the document store and ping it — the listener never starts
//     while the backend is unreachable — then log a record count as an
//     early sanity check.
//
//  5. Wire store → service → router and serve on a hardened http.Server.
//
//  6. Block until SIGINT/SIGTERM, then drain in-flight requests and
//     disconnect the store.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/yanizio/gamedex/internal/api"
	"github.com/yanizio/gamedex/internal/config"
	"github.com/yanizio/gamedex/internal/database"
	"github.com/yanizio/gamedex/internal/games"
	"github.com/yanizio/gamedex/internal/logger"
	"github.com/yanizio/gamedex/internal/server"

	_ "github.com/yanizio/gamedex/docs" // generated swagger spec
)

const serverEnvPath = "/usr/local/etc/gamedex/global.env"

// loadEnv prefers the jail-wide env file; on dev it falls back to .env.
func loadEnv() {
	if _, err := os.Stat(serverEnvPath); err == nil {
		_ = godotenv.Load(serverEnvPath)
		return
	}
	_ = godotenv.Load()
}

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func init() { loadEnv() }

// main boots the service.
//
//	@title        Gamedex API
//	@version      1.0
//	@description  REST service for a catalog of game records: create, list, fetch, update, and delete, documented under /swagger.
//	@BasePath     /
func main() {
	rootDir, _ := os.Getwd()
	logOut, err := logger.New(rootDir, runningInTTY())
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logOut.Fatalw("load config", "err", err)
	}

	//
	// ── 1.  Document store connect ──────────────────────────────────────
	//
	logOut.Infow("connecting to document store …", "database", cfg.Database.Name)
	client, err := database.Open(ctx, cfg.Database.URI)
	if err != nil {
		logOut.Fatalw("connect document store", "err", err)
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(dctx)
	}()
	logOut.Infow("document store online")

	//
	// ── 2.  Store → service wiring ──────────────────────────────────────
	//
	col := client.Database(cfg.Database.Name).Collection(games.CollectionName)
	svc := games.NewService(games.NewRepository(col))

	// Log record count as an early sanity check.
	if n, err := svc.Count(ctx); err == nil {
		logOut.Infof("%d game record(s) found", n)
	}

	//
	// ── 3.  HTTP server ─────────────────────────────────────────────────
	//
	srv := server.New(cfg.HTTP.ListenAddr, api.New(svc))

	go func() {
		logOut.Infof("listening on %s", cfg.HTTP.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logOut.Fatalw("http server", "err", err)
		}
	}()

	//
	// ── 4.  Graceful shutdown ───────────────────────────────────────────
	//
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logOut.Infow("shutting down …")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logOut.Errorw("shutdown", "err", err)
	}
	logOut.Infow("server exited")
}
