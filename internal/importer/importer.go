package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fitlife-blog/internal/domain"
)

// ArticleCreator is satisfied by the article service, so imported rows go
// through the same validation as API requests.
type ArticleCreator interface {
	Create(ctx context.Context, in domain.ArticleCreate) (*domain.Article, error)
}

// CSVImporter reads article rows with a header line and creates one article per row.
// Recognised columns: title, excerpt, content, category, author, publishDate,
// readTime, image, featured. publishDate takes the same forms as the API.
// A column missing from the header or a short row leaves the field absent.
type CSVImporter struct {
	reader   *csv.Reader
	articles ArticleCreator
}

func NewCSVImporter(r io.Reader, articles ArticleCreator) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	csvr.TrimLeadingSpace = true
	return &CSVImporter{reader: csvr, articles: articles}
}

// Run creates an article per non-empty row and returns how many were created.
// It stops at the first row that fails to parse or validate.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	if _, ok := index["title"]; !ok {
		return 0, errors.New("read headers: missing title column")
	}

	imported := 0
	line := 1
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return imported, fmt.Errorf("read row %d: %w", line, err)
		}
		if blank(record) {
			continue
		}

		in, err := parseRow(record, index)
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", line, err)
		}
		if _, err := i.articles.Create(ctx, in); err != nil {
			return imported, fmt.Errorf("row %d: create article: %w", line, err)
		}
		imported++
	}
	return imported, nil
}

func parseRow(record []string, index map[string]int) (domain.ArticleCreate, error) {
	in := domain.ArticleCreate{
		Title:    pick(record, index, "title"),
		Excerpt:  pick(record, index, "excerpt"),
		Content:  pick(record, index, "content"),
		Category: pick(record, index, "category"),
		Author:   pick(record, index, "author"),
		ReadTime: pick(record, index, "readTime"),
		Image:    pick(record, index, "image"),
	}

	if raw := pick(record, index, "publishDate"); raw != nil && *raw != "" {
		t, err := domain.ParseDateTime(*raw)
		if err != nil {
			return in, fmt.Errorf("invalid publishDate %q", *raw)
		}
		in.PublishDate = &domain.DateTime{Time: t}
	}

	if raw := pick(record, index, "featured"); raw != nil && *raw != "" {
		featured, err := strconv.ParseBool(*raw)
		if err != nil {
			return in, fmt.Errorf("invalid featured value %q", *raw)
		}
		in.Featured = featured
	}
	return in, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

// pick returns nil when the column is absent from the header or the row is short.
func pick(record []string, index map[string]int, key string) *string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return nil
	}
	v := strings.TrimSpace(record[pos])
	return &v
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
