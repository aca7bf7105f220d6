// Package db manages the MongoDB client lifecycle.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectionConfig holds MongoDB client pool configuration.
type ConnectionConfig struct {
	MaxPoolSize    uint64
	MinPoolSize    uint64
	ConnectTimeout time.Duration
}

// DefaultConnectionConfig returns the default client pool configuration.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxPoolSize:    25,
		MinPoolSize:    2,
		ConnectTimeout: 10 * time.Second,
	}
}

// Open connects to MongoDB at the given URI and verifies the connection with a
// ping. The returned client owns the connection pool and is safe for
// concurrent use; callers must Close it on shutdown.
func Open(ctx context.Context, uri string, cfg ConnectionConfig) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetConnectTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping: %w", err)
	}

	slog.Info("database connection established",
		slog.Uint64("max_pool_size", cfg.MaxPoolSize),
		slog.Uint64("min_pool_size", cfg.MinPoolSize))
	return client, nil
}

// Close disconnects the client with a bounded timeout.
func Close(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return client.Disconnect(ctx)
}
