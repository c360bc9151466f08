// Package storage selects and opens the persistence backend named in config.
package storage

import (
	"context"
	"fmt"
	"io"
	"log"

	"fitlife-blog/internal/config"
	"fitlife-blog/internal/db"
	"fitlife-blog/internal/migrate"
	articlerepo "fitlife-blog/internal/repository/article"
	newsletterrepo "fitlife-blog/internal/repository/newsletter"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Backend bundles the collection gateways of one store plus its lifecycle hooks.
type Backend struct {
	Driver      string
	Articles    articlerepo.Repository
	Subscribers newsletterrepo.Repository

	ping    func(ctx context.Context) error
	prepare func(ctx context.Context) error
	close   func()
}

// Ping reports whether the store is reachable.
func (b *Backend) Ping(ctx context.Context) error {
	if b.ping == nil {
		return nil
	}
	return b.ping(ctx)
}

// Prepare creates the schema (Postgres) or the indexes (MongoDB).
func (b *Backend) Prepare(ctx context.Context) error {
	if b.prepare == nil {
		return nil
	}
	return b.prepare(ctx)
}

// Close releases the connection pool.
func (b *Backend) Close() {
	if b.close != nil {
		b.close()
	}
}

// Open connects to the store selected by cfg.StoreDriver.
func Open(ctx context.Context, cfg config.Config, logger *log.Logger) (*Backend, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		pool, err := db.ConnectPostgres(ctx, cfg.DBConnString)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		return NewPostgres(pool, logger), nil
	case config.DriverMongo:
		client, err := db.ConnectMongo(ctx, cfg.MongoURL)
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		return NewMongo(client, cfg.DBName, logger), nil
	case config.DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// NewPostgres wraps an open pool. Close closes the pool.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) *Backend {
	return &Backend{
		Driver:      config.DriverPostgres,
		Articles:    articlerepo.NewPostgres(pool, logger),
		Subscribers: newsletterrepo.NewPostgres(pool, logger),
		ping:        pool.Ping,
		prepare: func(ctx context.Context) error {
			return migrate.Apply(ctx, pool)
		},
		close: pool.Close,
	}
}

// NewMongo wraps a connected client using database dbName. Close disconnects the client.
func NewMongo(client *mongo.Client, dbName string, logger *log.Logger) *Backend {
	database := client.Database(dbName)
	articles := articlerepo.NewMongo(database, logger)
	subscribers := newsletterrepo.NewMongo(database, logger)
	return &Backend{
		Driver:      config.DriverMongo,
		Articles:    articles,
		Subscribers: subscribers,
		ping: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
		prepare: func(ctx context.Context) error {
			if err := articles.EnsureIndexes(ctx); err != nil {
				return fmt.Errorf("article indexes: %w", err)
			}
			if err := subscribers.EnsureIndexes(ctx); err != nil {
				return fmt.Errorf("subscriber indexes: %w", err)
			}
			return nil
		},
		close: func() {
			if err := client.Disconnect(context.Background()); err != nil {
				logger.Printf("mongo disconnect: %v", err)
			}
		},
	}
}

// NewMemory returns a process-local backend with empty collections.
func NewMemory() *Backend {
	return &Backend{
		Driver:      config.DriverMemory,
		Articles:    articlerepo.NewMemory(),
		Subscribers: newsletterrepo.NewMemory(),
	}
}
