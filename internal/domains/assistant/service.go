package assistant

import "context"

// Service composes catalog-grounded prompts and routes the upstream's
// single text reply back to callers. Every operation is one blocking
// upstream round-trip with no retry.
type Service interface {
	Search(ctx context.Context, req SearchRequest) (*SearchResult, error)
	GenerateAbstract(ctx context.Context, lang string, bookID int64) (*GeneratedText, error)
	GenerateAnnotation(ctx context.Context, lang string, bookID int64) (*GeneratedText, error)
}
