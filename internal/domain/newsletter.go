package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewsletterSubscriber is a stored newsletter signup.
type NewsletterSubscriber struct {
	ID           string    `json:"id" bson:"id"`
	Email        string    `json:"email" bson:"email"`
	SubscribedAt time.Time `json:"subscribedAt" bson:"subscribedAt"`
}

// NewsletterSubscribe is the subscribe request body.
type NewsletterSubscribe struct {
	Email string `json:"email"`
}

// NormalizeEmail trims surrounding whitespace and checks the address is well formed.
func NormalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if err := validateVar("email", email, "required,email"); err != nil {
		return "", err
	}
	return email, nil
}

// NewSubscriber builds a subscriber with a fresh id.
func NewSubscriber(email string, now time.Time) NewsletterSubscriber {
	return NewsletterSubscriber{
		ID:           uuid.NewString(),
		Email:        email,
		SubscribedAt: Timestamp(now),
	}
}
