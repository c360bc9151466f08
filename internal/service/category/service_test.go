package category

import (
	"context"
	"errors"
	"testing"

	"fitlife-blog/internal/domain"
	articlerepo "fitlife-blog/internal/repository/article"
	"fitlife-blog/internal/seed"
)

type stubCounter struct {
	total    int64
	counts   []domain.CategoryCount
	countErr error
	groupErr error
}

func (s *stubCounter) Count(context.Context) (int64, error) {
	return s.total, s.countErr
}

func (s *stubCounter) CountByCategory(context.Context) ([]domain.CategoryCount, error) {
	return s.counts, s.groupErr
}

func TestServiceList_SeededArticles(t *testing.T) {
	ctx := context.Background()
	repo := articlerepo.NewMemory()
	if _, err := seed.Apply(ctx, repo); err != nil {
		t.Fatalf("seed: %v", err)
	}

	cats, err := New(repo).List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(cats) != 6 {
		t.Fatalf("expected 6 categories, got %d: %+v", len(cats), cats)
	}
	if cats[0].ID != "all" || cats[0].Name != "All Articles" || cats[0].Count != 8 {
		t.Fatalf("unexpected aggregate entry %+v", cats[0])
	}

	wantOrder := []string{"Cardio", "Nutrition", "Recovery", "Strength Training", "Training Tips"}
	var sum int64
	for i, c := range cats[1:] {
		if c.Name != wantOrder[i] {
			t.Fatalf("expected %q at %d, got %q", wantOrder[i], i+1, c.Name)
		}
		if c.ID != domain.CategorySlug(c.Name) {
			t.Fatalf("unexpected slug %q for %q", c.ID, c.Name)
		}
		sum += c.Count
	}
	if sum != cats[0].Count {
		t.Fatalf("expected category counts to sum to %d, got %d", cats[0].Count, sum)
	}
	if cats[5].ID != "training-tips" || cats[5].Count != 3 {
		t.Fatalf("unexpected training tips entry %+v", cats[5])
	}
}

func TestServiceList_Empty(t *testing.T) {
	cats, err := New(&stubCounter{}).List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(cats) != 1 || cats[0].ID != "all" || cats[0].Count != 0 {
		t.Fatalf("expected only the aggregate entry, got %+v", cats)
	}
}

func TestServiceList_Errors(t *testing.T) {
	if _, err := New(&stubCounter{countErr: errors.New("down")}).List(context.Background()); err == nil {
		t.Fatalf("expected count error")
	}
	if _, err := New(&stubCounter{groupErr: errors.New("down")}).List(context.Background()); err == nil {
		t.Fatalf("expected aggregate error")
	}
}
