package newsletter

import (
	"context"
	"os"
	"testing"

	"fitlife-blog/internal/db"
)

func TestMongo(t *testing.T) {
	uri := os.Getenv("TEST_MONGO_URL")
	if uri == "" {
		t.Skip("TEST_MONGO_URL not set")
	}
	ctx := context.Background()
	client, err := db.ConnectMongo(ctx, uri)
	if err != nil {
		t.Skipf("mongo unreachable: %v", err)
	}
	defer client.Disconnect(ctx)

	database := client.Database("fitlife_test")
	if err := database.Collection(CollectionName).Drop(ctx); err != nil {
		t.Fatalf("drop collection: %v", err)
	}
	repo := NewMongo(database, nil)
	if err := repo.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes: %v", err)
	}

	exerciseRepository(ctx, t, repo)
}
