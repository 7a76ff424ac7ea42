package service

import (
	"context"

	"library-backend/internal/domains/assistant"
	"library-backend/internal/domains/book"
	"library-backend/internal/infrastructure/ai"

	"github.com/rs/zerolog/log"
)

type assistantService struct {
	books     book.Repository
	completer ai.Completer
}

func NewAssistantService(books book.Repository, completer ai.Completer) assistant.Service {
	return &assistantService{books: books, completer: completer}
}

// Search grounds the user's query in the filtered catalog and forwards it
// upstream. An empty filtered set is stated in the context and still sent,
// it is not a local error.
func (s *assistantService) Search(ctx context.Context, req assistant.SearchRequest) (*assistant.SearchResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	allBooks, err := s.books.List(ctx)
	if err != nil {
		return nil, err
	}

	criteria := req.Criteria()
	filtered := book.Filter(allBooks, criteria)

	text, err := s.complete(ctx, ai.CompletionRequest{
		System:      assistant.SearchSystemPrompt(assistant.BuildBooksContext(filtered, criteria)),
		User:        assistant.SearchUserPrompt(req, criteria),
		MaxTokens:   assistant.SearchMaxTokens,
		Temperature: assistant.Temperature,
	})
	if err != nil {
		return nil, err
	}

	return &assistant.SearchResult{
		Query:    req.Query,
		Matches:  len(filtered),
		Response: text,
	}, nil
}

func (s *assistantService) GenerateAbstract(ctx context.Context, lang string, bookID int64) (*assistant.GeneratedText, error) {
	bk, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	text, err := s.complete(ctx, ai.CompletionRequest{
		System:      assistant.AbstractSystemPrompt(lang),
		User:        assistant.AbstractUserPrompt(bk),
		MaxTokens:   assistant.AbstractMaxTokens,
		Temperature: assistant.Temperature,
	})
	if err != nil {
		return nil, err
	}

	return &assistant.GeneratedText{
		BookID:     bk.ID,
		BookTitle:  bk.Title,
		BookAuthor: bk.Author,
		Text:       text,
	}, nil
}

func (s *assistantService) GenerateAnnotation(ctx context.Context, lang string, bookID int64) (*assistant.GeneratedText, error) {
	bk, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	text, err := s.complete(ctx, ai.CompletionRequest{
		System:      assistant.AnnotationSystemPrompt(lang),
		User:        assistant.AnnotationUserPrompt(bk),
		MaxTokens:   assistant.AnnotationMaxTokens,
		Temperature: assistant.Temperature,
	})
	if err != nil {
		return nil, err
	}

	return &assistant.GeneratedText{
		BookID:     bk.ID,
		BookTitle:  bk.Title,
		BookAuthor: bk.Author,
		Text:       text,
	}, nil
}

func (s *assistantService) complete(ctx context.Context, req ai.CompletionRequest) (string, error) {
	text, err := s.completer.Complete(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("ai completion failed")
		return "", err
	}
	return text, nil
}
