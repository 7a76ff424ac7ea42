package assistant

import (
	"strconv"

	"library-backend/internal/domains/book"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// SearchRequest is the assisted-search payload. Year bounds arrive as
// strings and non-numeric values are a validation error, never coerced.
type SearchRequest struct {
	Query               string `json:"query"`
	Author              string `json:"author"`
	Category            string `json:"category"`
	YearFrom            string `json:"year_from"`
	YearTo              string `json:"year_to"`
	IncludeDescriptions bool   `json:"include_descriptions"`
}

func (r SearchRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Query,
			validation.Required.Error("please enter a search query"),
			validation.Length(1, 2000),
		),
		validation.Field(&r.Author, validation.Length(0, 255)),
		validation.Field(&r.Category, validation.Length(0, 255)),
		validation.Field(&r.YearFrom,
			is.Digit.Error("year_from must be numeric"),
			validation.Length(0, 4),
		),
		validation.Field(&r.YearTo,
			is.Digit.Error("year_to must be numeric"),
			validation.Length(0, 4),
		),
	)
}

// Criteria converts the validated request into query-engine criteria.
func (r SearchRequest) Criteria() book.SearchCriteria {
	criteria := book.SearchCriteria{
		Query:               r.Query,
		AuthorFilter:        r.Author,
		CategoryFilter:      r.Category,
		IncludeDescriptions: r.IncludeDescriptions,
	}
	if r.YearFrom != "" {
		if y, err := strconv.Atoi(r.YearFrom); err == nil {
			criteria.YearFrom = &y
		}
	}
	if r.YearTo != "" {
		if y, err := strconv.Atoi(r.YearTo); err == nil {
			criteria.YearTo = &y
		}
	}
	return criteria
}

// SearchResult is the assisted-search reply: the upstream's single text
// response plus how many catalog books grounded it.
type SearchResult struct {
	Query    string `json:"query"`
	Matches  int    `json:"matches"`
	Response string `json:"response"`
}

// GeneratedText is an abstract or annotation produced for one book.
type GeneratedText struct {
	BookID     int64  `json:"book_id"`
	BookTitle  string `json:"book_title"`
	BookAuthor string `json:"book_author"`
	Text       string `json:"text"`
}
