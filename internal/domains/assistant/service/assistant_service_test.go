package service

import (
	"context"
	"testing"

	"library-backend/internal/domains/assistant"
	"library-backend/internal/domains/book"
	"library-backend/internal/infrastructure/ai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	requests []ai.CompletionRequest
	reply    string
	err      error
}

func (f *fakeCompleter) Complete(_ context.Context, req ai.CompletionRequest) (string, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type stubRepo struct {
	books []book.Book
}

func (r *stubRepo) Create(_ context.Context, b *book.Book) (*book.Book, error) { return b, nil }

func (r *stubRepo) GetByID(_ context.Context, id int64) (*book.Book, error) {
	for _, b := range r.books {
		if b.ID == id {
			copied := b
			return &copied, nil
		}
	}
	return nil, book.ErrBookNotFound
}

func (r *stubRepo) List(_ context.Context) ([]book.Book, error) { return r.books, nil }

func (r *stubRepo) Search(_ context.Context, _ string) ([]book.Book, error) { return r.books, nil }

func (r *stubRepo) Delete(_ context.Context, _ int64) error { return nil }

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func catalog() []book.Book {
	return []book.Book{
		{ID: 1, Title: "Cataloging Principles", Author: "Sara Haddad", Description: strPtr("Library cataloging basics"), PublicationYear: intPtr(2019)},
		{ID: 2, Title: "Desert Excavations", Author: "Omar Khalil", PublicationYear: intPtr(2005)},
	}
}

func TestSearchGroundsPromptInCatalog(t *testing.T) {
	completer := &fakeCompleter{reply: "Here are some books."}
	svc := NewAssistantService(&stubRepo{books: catalog()}, completer)

	result, err := svc.Search(context.Background(), assistant.SearchRequest{Query: "what should I read?"})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Matches)
	assert.Equal(t, "Here are some books.", result.Response)

	require.Len(t, completer.requests, 1)
	sent := completer.requests[0]
	assert.Equal(t, assistant.SearchMaxTokens, sent.MaxTokens)
	assert.Equal(t, assistant.Temperature, sent.Temperature)
	assert.Contains(t, sent.System, "Cataloging Principles by Sara Haddad")
	assert.Contains(t, sent.System, "(Library cataloging basics)")
	assert.Equal(t, "what should I read?", sent.User)
}

func TestSearchEmptyResultStillCallsUpstream(t *testing.T) {
	completer := &fakeCompleter{reply: "Nothing matched, but here are ideas."}
	svc := NewAssistantService(&stubRepo{books: catalog()}, completer)

	result, err := svc.Search(context.Background(), assistant.SearchRequest{
		Query:  "anything recent?",
		Author: "nobody",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Matches)
	require.Len(t, completer.requests, 1)
	assert.Contains(t, completer.requests[0].System, "No books found matching your specific criteria.")
}

func TestSearchCriteriaBlockInUserPrompt(t *testing.T) {
	completer := &fakeCompleter{reply: "ok"}
	svc := NewAssistantService(&stubRepo{books: catalog()}, completer)

	_, err := svc.Search(context.Background(), assistant.SearchRequest{
		Query:    "history books",
		Author:   "Khalil",
		YearFrom: "2000",
		YearTo:   "2010",
	})
	require.NoError(t, err)

	sent := completer.requests[0]
	assert.Contains(t, sent.User, "Additional search criteria:")
	assert.Contains(t, sent.User, "- Author: Khalil")
	assert.Contains(t, sent.User, "- Publication year: from 2000 to 2010")
}

func TestSearchValidationSkipsUpstream(t *testing.T) {
	completer := &fakeCompleter{reply: "ok"}
	svc := NewAssistantService(&stubRepo{books: catalog()}, completer)

	_, err := svc.Search(context.Background(), assistant.SearchRequest{Query: ""})
	assert.Error(t, err)
	assert.Empty(t, completer.requests)

	_, err = svc.Search(context.Background(), assistant.SearchRequest{Query: "x", YearFrom: "abcd"})
	assert.Error(t, err)
	assert.Empty(t, completer.requests)
}

func TestGenerateAbstract(t *testing.T) {
	completer := &fakeCompleter{reply: "An abstract."}
	svc := NewAssistantService(&stubRepo{books: catalog()}, completer)

	result, err := svc.GenerateAbstract(context.Background(), "en", 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.BookID)
	assert.Equal(t, "Cataloging Principles", result.BookTitle)
	assert.Equal(t, "An abstract.", result.Text)

	require.Len(t, completer.requests, 1)
	sent := completer.requests[0]
	assert.Equal(t, assistant.AbstractMaxTokens, sent.MaxTokens)
	assert.Contains(t, sent.System, "in English")
	assert.Contains(t, sent.User, "Title: Cataloging Principles")
	assert.Contains(t, sent.User, "Description: Library cataloging basics")
}

func TestGenerateAnnotationDefaultsArabic(t *testing.T) {
	completer := &fakeCompleter{reply: "Notes."}
	svc := NewAssistantService(&stubRepo{books: catalog()}, completer)

	_, err := svc.GenerateAnnotation(context.Background(), "ar", 2)
	require.NoError(t, err)

	require.Len(t, completer.requests, 1)
	sent := completer.requests[0]
	assert.Equal(t, assistant.AnnotationMaxTokens, sent.MaxTokens)
	assert.Contains(t, sent.System, "in Arabic")
	assert.Contains(t, sent.User, "Description: No description available")
}

func TestGenerateMissingBookSkipsUpstream(t *testing.T) {
	completer := &fakeCompleter{reply: "ok"}
	svc := NewAssistantService(&stubRepo{books: catalog()}, completer)

	_, err := svc.GenerateAbstract(context.Background(), "en", 99)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
	assert.Empty(t, completer.requests)

	_, err = svc.GenerateAnnotation(context.Background(), "en", 99)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
	assert.Empty(t, completer.requests)
}

func TestUpstreamErrorSurfacesVerbatim(t *testing.T) {
	completer := &fakeCompleter{err: &ai.UpstreamError{StatusCode: 429, Detail: "rate limit exceeded"}}
	svc := NewAssistantService(&stubRepo{books: catalog()}, completer)

	_, err := svc.Search(context.Background(), assistant.SearchRequest{Query: "hello"})
	require.Error(t, err)

	var upstream *ai.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "rate limit exceeded", upstream.Detail)
}
