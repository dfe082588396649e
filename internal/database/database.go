// Package database centralises MongoDB connection helpers.  The default
// deployment is a single mongod, but the URI accepts replica-set and
// mongos forms unchanged, so production topology is an operator concern.
//
// Public entry points:
//
//	Open(ctx, uri)                            – quick helper with conservative pool sizes.
//	OpenWithOptions(ctx, uri, maxPool, minPool) – fine-grained control.
//
// Both helpers Ping the deployment before returning so callers can fail fast
// during bootstrap.  Callers should Disconnect the returned *mongo.Client
// when no longer needed.
package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Open returns a *mongo.Client with sane defaults: 15 max pool, 5 min pool,
// and a 30-minute idle lifetime.  Suitable for process-wide pools or for
// test setups.
func Open(ctx context.Context, uri string) (*mongo.Client, error) {
	return OpenWithOptions(ctx, uri, 15, 5)
}

// OpenWithOptions lets callers tune pool bounds per client.  The ping uses a
// 10-second cap so a wrong URI fails the boot quickly instead of hanging on
// server selection.
func OpenWithOptions(ctx context.Context, uri string, maxPool, minPool uint64) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(maxPool).
		SetMinPoolSize(minPool).
		SetMaxConnIdleTime(30 * time.Minute)

	cli, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := cli.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, err
	}
	return cli, nil
}
