package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func sampleBooks() []Book {
	return []Book{
		{ID: 1, Title: "Cataloging Principles", Author: "Sara Haddad", Description: strPtr("An introduction to library cataloging"), PublicationYear: intPtr(2019), Discipline: DisciplineLibraryScience},
		{ID: 2, Title: "Desert Excavations", Author: "Omar Khalil", PublicationYear: intPtr(2005), Discipline: DisciplineArchaeology},
		{ID: 3, Title: "Modern Media", Author: "Lina Aziz", Description: strPtr("Mass communication in the digital era"), Discipline: DisciplineMediaAndCommunication},
		{ID: 4, Title: "Ottoman History", Author: "Sara Haddad", PublicationYear: intPtr(1998), Discipline: DisciplineHistory},
		{ID: 5, Title: "Untagged Volume", Author: "Anonymous"},
	}
}

func TestMatchesQuery(t *testing.T) {
	b := Book{Title: "Cataloging Principles", Author: "Sara Haddad"}

	assert.True(t, MatchesQuery(b, "cataloging"))
	assert.True(t, MatchesQuery(b, "SARA"))
	assert.True(t, MatchesQuery(b, "ing Princ"))
	assert.False(t, MatchesQuery(b, "archaeology"))
}

func TestFilterAuthor(t *testing.T) {
	out := Filter(sampleBooks(), SearchCriteria{AuthorFilter: "haddad"})

	assert.Len(t, out, 2)
	assert.Equal(t, int64(1), out[0].ID)
	assert.Equal(t, int64(4), out[1].ID)
}

func TestFilterCategoryMatchesTitleOrDescription(t *testing.T) {
	books := sampleBooks()

	byTitle := Filter(books, SearchCriteria{CategoryFilter: "media"})
	assert.Len(t, byTitle, 1)
	assert.Equal(t, int64(3), byTitle[0].ID)

	byDescription := Filter(books, SearchCriteria{CategoryFilter: "cataloging"})
	assert.Len(t, byDescription, 1)
	assert.Equal(t, int64(1), byDescription[0].ID)
}

func TestFilterYearBoundsInclusive(t *testing.T) {
	books := sampleBooks()

	out := Filter(books, SearchCriteria{YearFrom: intPtr(1998), YearTo: intPtr(2005)})

	assert.Len(t, out, 2)
	assert.Equal(t, int64(2), out[0].ID)
	assert.Equal(t, int64(4), out[1].ID)
}

func TestFilterMissingYearFailsActiveBound(t *testing.T) {
	books := sampleBooks()

	out := Filter(books, SearchCriteria{YearFrom: intPtr(1900)})

	for _, b := range out {
		assert.NotNil(t, b.PublicationYear)
	}
	assert.Len(t, out, 3)
}

func TestFilterAndSemantics(t *testing.T) {
	out := Filter(sampleBooks(), SearchCriteria{
		AuthorFilter: "haddad",
		YearFrom:     intPtr(2010),
	})

	assert.Len(t, out, 1)
	assert.Equal(t, int64(1), out[0].ID)
}

func TestFilterNoCriteriaKeepsOrder(t *testing.T) {
	books := sampleBooks()

	out := Filter(books, SearchCriteria{})

	assert.Equal(t, books, out)
}

func TestHasAdvancedFilters(t *testing.T) {
	assert.False(t, SearchCriteria{Query: "anything"}.HasAdvancedFilters())
	assert.False(t, SearchCriteria{IncludeDescriptions: true}.HasAdvancedFilters())
	assert.True(t, SearchCriteria{AuthorFilter: "x"}.HasAdvancedFilters())
	assert.True(t, SearchCriteria{CategoryFilter: "x"}.HasAdvancedFilters())
	assert.True(t, SearchCriteria{YearFrom: intPtr(2000)}.HasAdvancedFilters())
	assert.True(t, SearchCriteria{YearTo: intPtr(2000)}.HasAdvancedFilters())
}

func TestPartitionByDiscipline(t *testing.T) {
	buckets := PartitionByDiscipline(sampleBooks())

	assert.Len(t, buckets, 4)
	assert.Len(t, buckets[DisciplineLibraryScience], 1)
	assert.Len(t, buckets[DisciplineArchaeology], 1)
	assert.Len(t, buckets[DisciplineMediaAndCommunication], 1)
	assert.Len(t, buckets[DisciplineHistory], 1)

	// The uncategorized book appears in no bucket.
	total := 0
	for _, bucket := range buckets {
		total += len(bucket)
	}
	assert.Equal(t, 4, total)
}

func TestParseDiscipline(t *testing.T) {
	d, err := ParseDiscipline("history")
	assert.NoError(t, err)
	assert.Equal(t, DisciplineHistory, d)

	d, err = ParseDiscipline("")
	assert.NoError(t, err)
	assert.Equal(t, Discipline(""), d)

	_, err = ParseDiscipline("astrology")
	assert.ErrorIs(t, err, ErrInvalidDiscipline)
}

func TestDeleteResultPartial(t *testing.T) {
	assert.False(t, DeleteResult{RecordDeleted: true, PDFRemoved: true, CoverRemoved: true}.Partial())
	assert.True(t, DeleteResult{RecordDeleted: true, PDFRemoved: false, CoverRemoved: true}.Partial())
	assert.True(t, DeleteResult{RecordDeleted: true, PDFRemoved: true, CoverRemoved: false}.Partial())
	assert.False(t, DeleteResult{RecordDeleted: false}.Partial())
}
