package newsletter

import (
	"context"

	"fitlife-blog/internal/domain"
)

// Repository is the newsletter subscribers collection gateway. Insert returns
// domain.ErrAlreadyExists when the email is already stored.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*domain.NewsletterSubscriber, error)
	Insert(ctx context.Context, s domain.NewsletterSubscriber) error
	List(ctx context.Context, limit int) ([]domain.NewsletterSubscriber, error)
}
