package article

import (
	"context"
	"sort"
	"sync"

	"fitlife-blog/internal/domain"
)

type memoryRepo struct {
	mu    sync.RWMutex
	items map[string]domain.Article
}

// NewMemory returns a process-local Repository. Data is lost on restart.
func NewMemory() Repository {
	return &memoryRepo{items: make(map[string]domain.Article)}
}

func (r *memoryRepo) List(_ context.Context, f ListFilter) ([]domain.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []domain.Article{}
	for _, a := range r.items {
		if f.Category != "" && a.Category != f.Category {
			continue
		}
		if f.FeaturedOnly && !a.Featured {
			continue
		}
		result = append(result, a)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].PublishDate.Equal(result[j].PublishDate) {
			return result[i].ID < result[j].ID
		}
		return result[i].PublishDate.After(result[j].PublishDate)
	})
	if f.Limit > 0 && len(result) > f.Limit {
		result = result[:f.Limit]
	}
	return result, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*domain.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &a, nil
}

func (r *memoryRepo) Insert(_ context.Context, a domain.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[a.ID]; exists {
		return domain.ErrAlreadyExists
	}
	r.items[a.ID] = a
	return nil
}

func (r *memoryRepo) Update(_ context.Context, id string, patch domain.ArticlePatch) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.items[id]
	if !ok {
		return 0, nil
	}
	patch.Apply(&a)
	r.items[id] = a
	return 1, nil
}

func (r *memoryRepo) Delete(_ context.Context, id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return 0, nil
	}
	delete(r.items, id)
	return 1, nil
}

func (r *memoryRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}

func (r *memoryRepo) CountByCategory(_ context.Context) ([]domain.CategoryCount, error) {
	r.mu.RLock()
	counts := make(map[string]int64)
	for _, a := range r.items {
		counts[a.Category]++
	}
	r.mu.RUnlock()

	result := make([]domain.CategoryCount, 0, len(counts))
	for name, n := range counts {
		result = append(result, domain.CategoryCount{Name: name, Count: n})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *memoryRepo) DeleteAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := int64(len(r.items))
	r.items = make(map[string]domain.Article)
	return n, nil
}
