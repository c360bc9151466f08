package newsletter

import (
	"context"
	"errors"
	"time"

	"fitlife-blog/internal/domain"
	newsletterrepo "fitlife-blog/internal/repository/newsletter"
)

// MaxSubscribers caps the subscriber listing.
const MaxSubscribers = 10000

// Service manages newsletter subscriptions.
type Service struct {
	repo newsletterrepo.Repository
	now  func() time.Time
}

func New(repo newsletterrepo.Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Subscribe stores email once. Repeat calls return the existing record unchanged.
func (s *Service) Subscribe(ctx context.Context, email string) (*domain.NewsletterSubscriber, error) {
	email, err := domain.NormalizeEmail(email)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return existing, nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	sub := domain.NewSubscriber(email, s.now())
	if err := s.repo.Insert(ctx, sub); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			// A concurrent subscribe won the unique index.
			return s.repo.GetByEmail(ctx, email)
		}
		return nil, err
	}
	return &sub, nil
}

// List returns subscribers, most recent first.
func (s *Service) List(ctx context.Context) ([]domain.NewsletterSubscriber, error) {
	return s.repo.List(ctx, MaxSubscribers)
}
