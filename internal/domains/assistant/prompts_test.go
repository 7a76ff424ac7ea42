package assistant

import (
	"testing"

	"library-backend/internal/domains/book"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestBuildBooksContextDescriptionRules(t *testing.T) {
	books := []book.Book{
		{Title: "Modern Media", Author: "Lina Aziz", Description: strPtr("Mass communication"), PublicationYear: intPtr(2020)},
	}

	// No advanced filters: descriptions come along automatically.
	ctx := BuildBooksContext(books, book.SearchCriteria{})
	assert.Contains(t, ctx, "- Modern Media by Lina Aziz (Mass communication) (Published: 2020)")

	// An active filter suppresses descriptions unless explicitly requested.
	filtered := book.SearchCriteria{AuthorFilter: "aziz"}
	ctx = BuildBooksContext(books, filtered)
	assert.NotContains(t, ctx, "Mass communication")
	assert.Contains(t, ctx, "- Modern Media by Lina Aziz (Published: 2020)")

	filtered.IncludeDescriptions = true
	ctx = BuildBooksContext(books, filtered)
	assert.Contains(t, ctx, "(Mass communication)")
}

func TestBuildBooksContextEmpty(t *testing.T) {
	ctx := BuildBooksContext(nil, book.SearchCriteria{})
	assert.Equal(t, "No books found matching your specific criteria.\n", ctx)
}

func TestSearchRequestCriteria(t *testing.T) {
	req := SearchRequest{
		Query:    "history",
		Author:   "Khalil",
		YearFrom: "2000",
		YearTo:   "2010",
	}

	criteria := req.Criteria()
	assert.Equal(t, "Khalil", criteria.AuthorFilter)
	assert.Equal(t, 2000, *criteria.YearFrom)
	assert.Equal(t, 2010, *criteria.YearTo)
	assert.True(t, criteria.HasAdvancedFilters())
}

func TestSearchRequestValidate(t *testing.T) {
	assert.Error(t, SearchRequest{}.Validate())
	assert.Error(t, SearchRequest{Query: "x", YearFrom: "199x"}.Validate())
	assert.NoError(t, SearchRequest{Query: "x", YearFrom: "1990", YearTo: "2020"}.Validate())
}
