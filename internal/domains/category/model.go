package category

import (
	"time"

	"library-backend/internal/domains/book"
)

// Entry is one curated external reference in a discipline's reading list.
// Unlike books, entries always carry a cover and are never updated or
// deleted once created.
type Entry struct {
	ID          int64           `json:"id"`
	CategoryKey book.Discipline `json:"category_key"`
	Title       string          `json:"title"`
	Author      string          `json:"author"`
	Source      string          `json:"source"`
	CoverObject string          `json:"cover_object"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Section is one discipline's view: the catalog books filed under it plus
// its curated entries.
type Section struct {
	Key     book.Discipline `json:"key"`
	Books   []book.Book     `json:"books"`
	Entries []Entry         `json:"entries"`
}
