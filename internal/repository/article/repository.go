package article

import (
	"context"

	"fitlife-blog/internal/domain"
)

// ListFilter narrows a List call. Zero values mean "no constraint".
type ListFilter struct {
	Category     string
	FeaturedOnly bool
	Limit        int
}

// Repository is the articles collection gateway. Results of List are ordered
// by publish date, newest first. Update and Delete report how many records
// they touched so callers can tell a missing id from a no-op.
type Repository interface {
	List(ctx context.Context, f ListFilter) ([]domain.Article, error)
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	Insert(ctx context.Context, a domain.Article) error
	Update(ctx context.Context, id string, patch domain.ArticlePatch) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountByCategory(ctx context.Context) ([]domain.CategoryCount, error)
	DeleteAll(ctx context.Context) (int64, error)
}
