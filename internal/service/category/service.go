package category

import (
	"context"

	"fitlife-blog/internal/domain"
)

type articleCounter interface {
	Count(ctx context.Context) (int64, error)
	CountByCategory(ctx context.Context) ([]domain.CategoryCount, error)
}

// Service derives the category listing from stored articles.
type Service struct {
	articles articleCounter
}

func New(articles articleCounter) *Service {
	return &Service{articles: articles}
}

// List returns the synthetic "all" entry followed by one entry per distinct
// article category, in the order the store groups them (name ascending).
func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	total, err := s.articles.Count(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.articles.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Category, 0, len(counts)+1)
	out = append(out, domain.Category{ID: domain.AllCategoryID, Name: domain.AllCategoryName, Count: total})
	for _, c := range counts {
		if c.Count == 0 {
			continue
		}
		out = append(out, domain.Category{ID: domain.CategorySlug(c.Name), Name: c.Name, Count: c.Count})
	}
	return out, nil
}
