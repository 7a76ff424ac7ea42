package book

import (
	"context"

	"library-backend/internal/shared/access"
	"library-backend/internal/shared/upload"
)

// Service is the book use-case surface. Mutating operations re-evaluate the
// access policy on every call with the request-scoped identity.
type Service interface {
	Create(ctx context.Context, identity access.Identity, req CreateBookRequest, pdf, cover *upload.File) (*Book, error)
	GetByID(ctx context.Context, id int64) (*Book, error)
	List(ctx context.Context, limit int) ([]Book, error)
	Search(ctx context.Context, query string) ([]Book, error)
	Delete(ctx context.Context, identity access.Identity, id int64) (*DeleteResult, error)
	Download(ctx context.Context, id int64) (filename string, data []byte, err error)
}
