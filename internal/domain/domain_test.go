package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorySlugRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		slug string
	}{
		{"Strength Training", "strength-training"},
		{"Cardio", "cardio"},
		{"Training Tips", "training-tips"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.slug, CategorySlug(tc.name))
		assert.Equal(t, tc.name, CategoryNameFromSlug(tc.slug))
	}
}

func TestCategoryNameFromSlug_DoesNotPreserveOddCapitalization(t *testing.T) {
	assert.Equal(t, "hiit", CategorySlug("HIIT"))
	assert.Equal(t, "Hiit", CategoryNameFromSlug("hiit"))
}

func ptr[T any](v T) *T { return &v }

func validCreate() ArticleCreate {
	return ArticleCreate{
		Title:       ptr("T"),
		Excerpt:     ptr("E"),
		Content:     ptr("C"),
		Category:    ptr("Cardio"),
		Author:      ptr("A"),
		PublishDate: &DateTime{Time: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)},
		ReadTime:    ptr("5 min read"),
		Image:       ptr("https://example.com/i.jpg"),
	}
}

func TestArticleCreateValidate(t *testing.T) {
	require.NoError(t, validCreate().Validate())

	in := validCreate()
	in.Title = nil
	in.PublishDate = nil
	err := in.Validate()
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	fields := map[string]string{}
	for _, f := range ve.Fields {
		fields[f.Field] = f.Message
	}
	assert.Len(t, fields, 2)
	assert.Equal(t, "field required", fields["title"])
	assert.Equal(t, "field required", fields["publishDate"])
}

func TestArticleCreateValidate_EmptyStringsArePresent(t *testing.T) {
	in := validCreate()
	in.Title = ptr("")
	in.Excerpt = ptr("")
	in.Image = ptr("")
	require.NoError(t, in.Validate())

	a := NewArticle(in, time.Now())
	assert.Equal(t, "", a.Title)
	assert.Equal(t, "Cardio", a.Category)
}

func TestParseDateTime(t *testing.T) {
	cases := map[string]time.Time{
		"2025-08-15T09:30:00Z":      time.Date(2025, 8, 15, 9, 30, 0, 0, time.UTC),
		"2025-08-15T09:30:00+02:00": time.Date(2025, 8, 15, 7, 30, 0, 0, time.UTC),
		"2025-08-15T09:30:00":       time.Date(2025, 8, 15, 9, 30, 0, 0, time.UTC),
		"2025-08-15T09:30:00.250":   time.Date(2025, 8, 15, 9, 30, 0, 250000000, time.UTC),
		"2025-08-15T09:30":          time.Date(2025, 8, 15, 9, 30, 0, 0, time.UTC),
		"2025-08-15 09:30:00":       time.Date(2025, 8, 15, 9, 30, 0, 0, time.UTC),
		"2025-08-15":                time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC),
	}
	for raw, want := range cases {
		got, err := ParseDateTime(raw)
		require.NoError(t, err, raw)
		assert.True(t, want.Equal(got), "%s: got %v", raw, got)
		assert.Equal(t, time.UTC, got.Location(), raw)
	}

	_, err := ParseDateTime("someday")
	var perr *time.ParseError
	assert.True(t, errors.As(err, &perr))
}

func TestDateTimeUnmarshalJSON(t *testing.T) {
	var in ArticleUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"publishDate":"2025-08-15"}`), &in))
	require.NotNil(t, in.PublishDate)
	assert.True(t, in.PublishDate.Equal(time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)))

	in = ArticleUpdate{}
	require.NoError(t, json.Unmarshal([]byte(`{"publishDate":null}`), &in))
	assert.Nil(t, in.PublishDate)

	var typeErr *json.UnmarshalTypeError
	err := json.Unmarshal([]byte(`{"publishDate":42}`), &in)
	require.True(t, errors.As(err, &typeErr))
	assert.Equal(t, "publishDate", typeErr.Field)
}

func TestNewArticle(t *testing.T) {
	now := time.Date(2025, 9, 1, 10, 0, 0, 123456789, time.FixedZone("X", 3600))
	a := NewArticle(validCreate(), now)

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, time.UTC, a.CreatedAt.Location())
	assert.Equal(t, 123000000, a.CreatedAt.Nanosecond())
	assert.Equal(t, a.CreatedAt, a.UpdatedAt)
	assert.False(t, a.Featured)

	b := NewArticle(validCreate(), now)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestArticlePatchApply(t *testing.T) {
	a := NewArticle(validCreate(), time.Now())
	before := a
	later := a.UpdatedAt.Add(time.Minute)

	ArticlePatch{UpdatedAt: later}.Apply(&a)
	assert.Equal(t, later, a.UpdatedAt)
	a.UpdatedAt = before.UpdatedAt
	assert.Equal(t, before, a)

	title := "New"
	featured := true
	ArticlePatch{ArticleUpdate: ArticleUpdate{Title: &title, Featured: &featured}, UpdatedAt: later}.Apply(&a)
	assert.Equal(t, "New", a.Title)
	assert.True(t, a.Featured)
	assert.Equal(t, before.Content, a.Content)
}

func TestNormalizeEmail(t *testing.T) {
	email, err := NormalizeEmail("  reader@example.com ")
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", email)

	for _, bad := range []string{"", "not-an-email", "a@", "@example.com"} {
		_, err := NormalizeEmail(bad)
		require.Error(t, err, bad)
		var ve *ValidationError
		require.True(t, errors.As(err, &ve), bad)
		assert.Equal(t, "email", ve.Fields[0].Field)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError("email", "value is not a valid email address")
	assert.Equal(t, "validation failed: email: value is not a valid email address", err.Error())
	assert.True(t, IsValidation(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsValidation(ErrNotFound))
}
