package article

import (
	"context"
	"time"

	"fitlife-blog/internal/domain"
	articlerepo "fitlife-blog/internal/repository/article"
)

const (
	// MaxList caps the plain and category-filtered listings.
	MaxList = 1000
	// MaxFeatured caps the featured listing.
	MaxFeatured = 100
)

// Service implements article reads and writes.
type Service struct {
	repo articlerepo.Repository
	now  func() time.Time
}

func New(repo articlerepo.Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// List returns articles newest first. category is a slug; "" and "all" disable filtering.
func (s *Service) List(ctx context.Context, category string) ([]domain.Article, error) {
	f := articlerepo.ListFilter{Limit: MaxList}
	if category != "" && category != domain.AllCategoryID {
		f.Category = domain.CategoryNameFromSlug(category)
	}
	return s.repo.List(ctx, f)
}

func (s *Service) ListFeatured(ctx context.Context) ([]domain.Article, error) {
	return s.repo.List(ctx, articlerepo.ListFilter{FeaturedOnly: true, Limit: MaxFeatured})
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Article, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in domain.ArticleCreate) (*domain.Article, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	a := domain.NewArticle(in, s.now())
	if err := s.repo.Insert(ctx, a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Update applies the present fields of in and always refreshes updatedAt.
// A missing id is detected from the store's matched count, not a pre-read.
func (s *Service) Update(ctx context.Context, id string, in domain.ArticleUpdate) (*domain.Article, error) {
	patch := domain.ArticlePatch{ArticleUpdate: in, UpdatedAt: domain.Timestamp(s.now())}
	n, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, domain.ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
