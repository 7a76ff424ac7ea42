package book

import "context"

// Repository is the catalog store for books. All listings come back
// newest-first by creation time.
type Repository interface {
	Create(ctx context.Context, b *Book) (*Book, error)
	GetByID(ctx context.Context, id int64) (*Book, error)
	List(ctx context.Context) ([]Book, error)
	Search(ctx context.Context, query string) ([]Book, error)
	Delete(ctx context.Context, id int64) error
}
