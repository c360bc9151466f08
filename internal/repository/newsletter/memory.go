package newsletter

import (
	"context"
	"sort"
	"sync"

	"fitlife-blog/internal/domain"
)

type memoryRepo struct {
	mu      sync.RWMutex
	byEmail map[string]domain.NewsletterSubscriber
}

// NewMemory returns a process-local Repository.
func NewMemory() Repository {
	return &memoryRepo{byEmail: make(map[string]domain.NewsletterSubscriber)}
}

func (r *memoryRepo) GetByEmail(_ context.Context, email string) (*domain.NewsletterSubscriber, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (r *memoryRepo) Insert(_ context.Context, s domain.NewsletterSubscriber) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[s.Email]; exists {
		return domain.ErrAlreadyExists
	}
	r.byEmail[s.Email] = s
	return nil
}

func (r *memoryRepo) List(_ context.Context, limit int) ([]domain.NewsletterSubscriber, error) {
	r.mu.RLock()
	result := make([]domain.NewsletterSubscriber, 0, len(r.byEmail))
	for _, s := range r.byEmail {
		result = append(result, s)
	}
	r.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool { return result[i].SubscribedAt.After(result[j].SubscribedAt) })
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
