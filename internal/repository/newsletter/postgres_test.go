package newsletter

import (
	"context"
	"os"
	"testing"

	"fitlife-blog/internal/migrate"
	"github.com/jackc/pgx/v5/pgxpool"
)

func TestPostgres(t *testing.T) {
	ctx := context.Background()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		t.Skipf("postgres unreachable: %v", err)
	}

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE newsletter_subscribers`); err != nil {
		t.Fatalf("truncate subscribers: %v", err)
	}

	exerciseRepository(ctx, t, NewPostgres(pool, nil))
}
