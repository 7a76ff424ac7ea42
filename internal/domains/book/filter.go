package book

import "strings"

// SearchCriteria is the request-scoped filter set for the query engine.
// Nil year bounds mean unset; bounds are inclusive.
type SearchCriteria struct {
	Query               string
	AuthorFilter        string
	CategoryFilter      string
	YearFrom            *int
	YearTo              *int
	IncludeDescriptions bool
}

// HasAdvancedFilters reports whether any advanced filter is active.
func (c SearchCriteria) HasAdvancedFilters() bool {
	return c.AuthorFilter != "" || c.CategoryFilter != "" || c.YearFrom != nil || c.YearTo != nil
}

// MatchesQuery is the free-text search predicate: case-insensitive
// substring of title or author.
func MatchesQuery(b Book, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(b.Title), q) ||
		strings.Contains(strings.ToLower(b.Author), q)
}

// Filter applies the advanced filters; a book survives only if every
// supplied filter passes. Order is preserved. A book without a publication
// year fails any active year bound — absence of data never satisfies a
// bound.
func Filter(books []Book, criteria SearchCriteria) []Book {
	out := make([]Book, 0, len(books))
	for _, b := range books {
		if matchesCriteria(b, criteria) {
			out = append(out, b)
		}
	}
	return out
}

func matchesCriteria(b Book, c SearchCriteria) bool {
	if c.AuthorFilter != "" &&
		!strings.Contains(strings.ToLower(b.Author), strings.ToLower(c.AuthorFilter)) {
		return false
	}

	if c.CategoryFilter != "" {
		needle := strings.ToLower(c.CategoryFilter)
		inTitle := strings.Contains(strings.ToLower(b.Title), needle)
		inDescription := b.Description != nil &&
			strings.Contains(strings.ToLower(*b.Description), needle)
		if !inTitle && !inDescription {
			return false
		}
	}

	if c.YearFrom != nil && (b.PublicationYear == nil || *b.PublicationYear < *c.YearFrom) {
		return false
	}
	if c.YearTo != nil && (b.PublicationYear == nil || *b.PublicationYear > *c.YearTo) {
		return false
	}

	return true
}

// PartitionByDiscipline buckets books by the four fixed keys. Books with an
// empty or unrecognized discipline land in no bucket.
func PartitionByDiscipline(books []Book) map[Discipline][]Book {
	buckets := make(map[Discipline][]Book, len(Disciplines()))
	for _, key := range Disciplines() {
		buckets[key] = []Book{}
	}
	for _, b := range books {
		if _, ok := buckets[b.Discipline]; ok {
			buckets[b.Discipline] = append(buckets[b.Discipline], b)
		}
	}
	return buckets
}
