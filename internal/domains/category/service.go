package category

import (
	"context"

	"library-backend/internal/shared/access"
	"library-backend/internal/shared/upload"
)

// Service is the curated-list surface. Sections partition the whole catalog
// by discipline; activeKey narrows the view to one section.
type Service interface {
	Sections(ctx context.Context, activeKey string) ([]Section, error)
	CreateEntry(ctx context.Context, identity access.Identity, key string, req CreateEntryRequest, cover *upload.File) (*Entry, error)
}
