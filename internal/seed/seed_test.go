package seed

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitlife-blog/internal/domain"
	articlerepo "fitlife-blog/internal/repository/article"
)

func TestApply_ReplacesArticles(t *testing.T) {
	ctx := context.Background()
	repo := articlerepo.NewMemory()
	if err := repo.Insert(ctx, domain.Article{ID: "stale", Category: "Old"}); err != nil {
		t.Fatalf("insert stale: %v", err)
	}

	n, err := Apply(ctx, repo)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if n != 8 {
		t.Fatalf("expected 8 inserted, got %d", n)
	}
	if _, err := repo.GetByID(ctx, "stale"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected stale article removed, got %v", err)
	}
	total, err := repo.Count(ctx)
	if err != nil || total != 8 {
		t.Fatalf("expected 8 stored, got %d (%v)", total, err)
	}
}

func TestArticles_Shape(t *testing.T) {
	items := Articles(day(1, 1))
	featured := 0
	perCategory := map[string]int{}
	for _, a := range items {
		if a.Featured {
			featured++
		}
		perCategory[a.Category]++
		if a.CreatedAt.IsZero() || !a.CreatedAt.Equal(a.UpdatedAt) {
			t.Fatalf("expected matching timestamps on %s", a.ID)
		}
	}
	if featured != 2 {
		t.Fatalf("expected 2 featured, got %d", featured)
	}
	if len(perCategory) != 5 || perCategory["Training Tips"] != 3 || perCategory["Strength Training"] != 2 {
		t.Fatalf("unexpected categories %v", perCategory)
	}
}

type failingStore struct{}

func (failingStore) DeleteAll(context.Context) (int64, error) { return 0, errors.New("boom") }
func (failingStore) Insert(context.Context, domain.Article) error { return nil }

func TestApply_ClearError(t *testing.T) {
	if _, err := Apply(context.Background(), failingStore{}); err == nil {
		t.Fatalf("expected error")
	}
}

// schemaStore fails like a Postgres database whose articles table does not exist yet.
type schemaStore struct {
	prepared bool
	inserted int
}

func (s *schemaStore) Prepare(context.Context) error {
	s.prepared = true
	return nil
}

func (s *schemaStore) DeleteAll(context.Context) (int64, error) {
	if !s.prepared {
		return 0, errors.New(`relation "articles" does not exist`)
	}
	return 0, nil
}

func (s *schemaStore) Insert(context.Context, domain.Article) error {
	if !s.prepared {
		return errors.New(`relation "articles" does not exist`)
	}
	s.inserted++
	return nil
}

func TestReset_PreparesBeforeSeeding(t *testing.T) {
	store := &schemaStore{}
	n, err := Reset(context.Background(), store, store)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if n != 8 || store.inserted != 8 {
		t.Fatalf("expected 8 inserted, got %d (%d stored)", n, store.inserted)
	}
}

type failingPreparer struct{}

func (failingPreparer) Prepare(context.Context) error { return errors.New("no schema") }

func TestReset_PrepareError(t *testing.T) {
	store := &schemaStore{}
	if _, err := Reset(context.Background(), failingPreparer{}, store); err == nil {
		t.Fatalf("expected prepare error")
	}
	if store.inserted != 0 {
		t.Fatalf("expected nothing seeded after a failed prepare")
	}
}

func TestArticles_TimestampsNormalized(t *testing.T) {
	now := time.Date(2025, 9, 1, 10, 0, 0, 123456789, time.FixedZone("X", 3600))
	for _, a := range Articles(now) {
		if a.CreatedAt.Location() != time.UTC || a.CreatedAt.Nanosecond() != 123000000 {
			t.Fatalf("expected UTC millisecond timestamps on %s, got %v", a.ID, a.CreatedAt)
		}
	}
}
