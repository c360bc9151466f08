package article

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"fitlife-blog/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const articleColumns = `id, title, excerpt, content, category, author, publish_date, read_time, image, featured, created_at, updated_at`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by the articles table.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) List(ctx context.Context, f ListFilter) ([]domain.Article, error) {
	var (
		where []string
		args  []any
	)
	if f.Category != "" {
		args = append(args, f.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.FeaturedOnly {
		where = append(where, "featured")
	}
	q := `SELECT ` + articleColumns + ` FROM articles`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	q += ` ORDER BY publish_date DESC`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("article repo: list category=%q featured=%t error=%v", f.Category, f.FeaturedOnly, err)
		return nil, err
	}
	defer rows.Close()

	result := []domain.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *a)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("article repo: list rows error=%v", err)
		return nil, err
	}
	r.logger.Printf("article repo: list category=%q featured=%t count=%d", f.Category, f.FeaturedOnly, len(result))
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	q := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`
	a, err := scanArticle(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("article repo: get id=%s not found", id)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("article repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return a, nil
}

func (r *postgresRepo) Insert(ctx context.Context, a domain.Article) error {
	const q = `
INSERT INTO articles (` + articleColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
`
	_, err := r.pool.Exec(ctx, q, a.ID, a.Title, a.Excerpt, a.Content, a.Category, a.Author,
		a.PublishDate, a.ReadTime, a.Image, a.Featured, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyExists
		}
		r.logger.Printf("article repo: insert id=%s error=%v", a.ID, err)
		return err
	}
	r.logger.Printf("article repo: inserted id=%s category=%q", a.ID, a.Category)
	return nil
}

func (r *postgresRepo) Update(ctx context.Context, id string, patch domain.ArticlePatch) (int64, error) {
	sets := []string{"updated_at = $1"}
	args := []any{patch.UpdatedAt}
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.Title != nil {
		set("title", *patch.Title)
	}
	if patch.Excerpt != nil {
		set("excerpt", *patch.Excerpt)
	}
	if patch.Content != nil {
		set("content", *patch.Content)
	}
	if patch.Category != nil {
		set("category", *patch.Category)
	}
	if patch.Author != nil {
		set("author", *patch.Author)
	}
	if patch.PublishDate != nil {
		set("publish_date", domain.Timestamp(patch.PublishDate.Time))
	}
	if patch.ReadTime != nil {
		set("read_time", *patch.ReadTime)
	}
	if patch.Image != nil {
		set("image", *patch.Image)
	}
	if patch.Featured != nil {
		set("featured", *patch.Featured)
	}
	args = append(args, id)
	q := fmt.Sprintf(`UPDATE articles SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))

	tag, err := r.pool.Exec(ctx, q, args...)
	if err != nil {
		r.logger.Printf("article repo: update id=%s error=%v", id, err)
		return 0, err
	}
	r.logger.Printf("article repo: update id=%s fields=%d affected=%d", id, len(sets), tag.RowsAffected())
	return tag.RowsAffected(), nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("article repo: delete id=%s error=%v", id, err)
		return 0, err
	}
	r.logger.Printf("article repo: delete id=%s affected=%d", id, tag.RowsAffected())
	return tag.RowsAffected(), nil
}

func (r *postgresRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM articles`).Scan(&n); err != nil {
		r.logger.Printf("article repo: count error=%v", err)
		return 0, err
	}
	return n, nil
}

func (r *postgresRepo) CountByCategory(ctx context.Context) ([]domain.CategoryCount, error) {
	// COLLATE "C" gives the same byte ordering the document store uses.
	const q = `
SELECT category, count(*)
FROM articles
GROUP BY category
ORDER BY category COLLATE "C" ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("article repo: count by category error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.CategoryCount
	for rows.Next() {
		var c domain.CategoryCount
		if err := rows.Scan(&c.Name, &c.Count); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM articles`)
	if err != nil {
		return 0, err
	}
	r.logger.Printf("article repo: cleared %d articles", tag.RowsAffected())
	return tag.RowsAffected(), nil
}

func scanArticle(row pgx.Row) (*domain.Article, error) {
	var a domain.Article
	err := row.Scan(&a.ID, &a.Title, &a.Excerpt, &a.Content, &a.Category, &a.Author,
		&a.PublishDate, &a.ReadTime, &a.Image, &a.Featured, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	a.PublishDate = a.PublishDate.UTC()
	a.CreatedAt = a.CreatedAt.UTC()
	a.UpdatedAt = a.UpdatedAt.UTC()
	return &a, nil
}
