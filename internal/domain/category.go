package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// AllCategoryID is the synthetic category covering every article.
	AllCategoryID = "all"
	// AllCategoryName is the display name of the synthetic category.
	AllCategoryName = "All Articles"
)

// Category is derived from the articles collection; it is never stored.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// CategoryCount is one row of the group-by-category aggregation.
type CategoryCount struct {
	Name  string `bson:"_id"`
	Count int64  `bson:"count"`
}

// CategorySlug lowercases name and replaces spaces with hyphens.
func CategorySlug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// CategoryNameFromSlug turns hyphens back into spaces and title-cases each word.
// "strength-training" becomes "Strength Training". Names with other capitalization
// do not round-trip.
func CategoryNameFromSlug(slug string) string {
	// Casers keep state, so one is built per call.
	return cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
}
