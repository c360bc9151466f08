package domain

import (
	"time"

	"github.com/google/uuid"
)

// Article is a stored blog post.
type Article struct {
	ID          string    `json:"id" bson:"id"`
	Title       string    `json:"title" bson:"title"`
	Excerpt     string    `json:"excerpt" bson:"excerpt"`
	Content     string    `json:"content" bson:"content"`
	Category    string    `json:"category" bson:"category"`
	Author      string    `json:"author" bson:"author"`
	PublishDate time.Time `json:"publishDate" bson:"publishDate"`
	ReadTime    string    `json:"readTime" bson:"readTime"`
	Image       string    `json:"image" bson:"image"`
	Featured    bool      `json:"featured" bson:"featured"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ArticleCreate is the payload accepted when creating an article. Every field
// except Featured must be present; present strings may be empty.
type ArticleCreate struct {
	Title       *string   `json:"title" validate:"required"`
	Excerpt     *string   `json:"excerpt" validate:"required"`
	Content     *string   `json:"content" validate:"required"`
	Category    *string   `json:"category" validate:"required"`
	Author      *string   `json:"author" validate:"required"`
	PublishDate *DateTime `json:"publishDate" validate:"required"`
	ReadTime    *string   `json:"readTime" validate:"required"`
	Image       *string   `json:"image" validate:"required"`
	Featured    bool      `json:"featured"`
}

// Validate checks that every required field is present.
func (in ArticleCreate) Validate() error {
	return validateStruct(in)
}

// ArticleUpdate is a sparse patch: nil fields are left untouched.
type ArticleUpdate struct {
	Title       *string   `json:"title,omitempty"`
	Excerpt     *string   `json:"excerpt,omitempty"`
	Content     *string   `json:"content,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Author      *string   `json:"author,omitempty"`
	PublishDate *DateTime `json:"publishDate,omitempty"`
	ReadTime    *string   `json:"readTime,omitempty"`
	Image       *string   `json:"image,omitempty"`
	Featured    *bool     `json:"featured,omitempty"`
}

// Timestamp normalizes t to UTC at millisecond precision, the finest both stores keep.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// ArticlePatch is what reaches the store: the caller's fields plus the refreshed update time.
type ArticlePatch struct {
	ArticleUpdate
	UpdatedAt time.Time
}

// NewArticle builds a stored article from a validated create payload with a fresh id and timestamps.
func NewArticle(in ArticleCreate, now time.Time) Article {
	now = Timestamp(now)
	a := Article{
		ID:        uuid.NewString(),
		Title:     deref(in.Title),
		Excerpt:   deref(in.Excerpt),
		Content:   deref(in.Content),
		Category:  deref(in.Category),
		Author:    deref(in.Author),
		ReadTime:  deref(in.ReadTime),
		Image:     deref(in.Image),
		Featured:  in.Featured,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.PublishDate != nil {
		a.PublishDate = Timestamp(in.PublishDate.Time)
	}
	return a
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Apply copies the present patch fields onto a.
func (p ArticlePatch) Apply(a *Article) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Excerpt != nil {
		a.Excerpt = *p.Excerpt
	}
	if p.Content != nil {
		a.Content = *p.Content
	}
	if p.Category != nil {
		a.Category = *p.Category
	}
	if p.Author != nil {
		a.Author = *p.Author
	}
	if p.PublishDate != nil {
		a.PublishDate = Timestamp(p.PublishDate.Time)
	}
	if p.ReadTime != nil {
		a.ReadTime = *p.ReadTime
	}
	if p.Image != nil {
		a.Image = *p.Image
	}
	if p.Featured != nil {
		a.Featured = *p.Featured
	}
	a.UpdatedAt = p.UpdatedAt
}
