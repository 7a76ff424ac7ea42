package category

import (
	"context"

	"library-backend/internal/domains/book"
)

// Repository stores curated entries. Listings come back newest-first.
type Repository interface {
	Create(ctx context.Context, entry *Entry) (*Entry, error)
	List(ctx context.Context, key book.Discipline) ([]Entry, error)
	ListAll(ctx context.Context) ([]Entry, error)
}
