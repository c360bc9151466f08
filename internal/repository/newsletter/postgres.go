package newsletter

import (
	"context"
	"errors"
	"io"
	"log"

	"fitlife-blog/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by the newsletter_subscribers table.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.NewsletterSubscriber, error) {
	const q = `
SELECT id, email, subscribed_at
FROM newsletter_subscribers
WHERE email = $1
`
	var s domain.NewsletterSubscriber
	err := r.pool.QueryRow(ctx, q, email).Scan(&s.ID, &s.Email, &s.SubscribedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("newsletter repo: get email=%s error=%v", email, err)
		return nil, err
	}
	s.SubscribedAt = s.SubscribedAt.UTC()
	return &s, nil
}

func (r *postgresRepo) Insert(ctx context.Context, s domain.NewsletterSubscriber) error {
	const q = `
INSERT INTO newsletter_subscribers (id, email, subscribed_at)
VALUES ($1, $2, $3)
`
	if _, err := r.pool.Exec(ctx, q, s.ID, s.Email, s.SubscribedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyExists
		}
		r.logger.Printf("newsletter repo: insert email=%s error=%v", s.Email, err)
		return err
	}
	r.logger.Printf("newsletter repo: inserted id=%s", s.ID)
	return nil
}

func (r *postgresRepo) List(ctx context.Context, limit int) ([]domain.NewsletterSubscriber, error) {
	const q = `
SELECT id, email, subscribed_at
FROM newsletter_subscribers
ORDER BY subscribed_at DESC
LIMIT NULLIF($1::int, 0)
`
	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		r.logger.Printf("newsletter repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	result := []domain.NewsletterSubscriber{}
	for rows.Next() {
		var s domain.NewsletterSubscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.SubscribedAt); err != nil {
			return nil, err
		}
		s.SubscribedAt = s.SubscribedAt.UTC()
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	r.logger.Printf("newsletter repo: list count=%d", len(result))
	return result, nil
}
