package service

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/category"
	"library-backend/internal/infrastructure/storage"
	"library-backend/internal/shared/access"
	"library-backend/internal/shared/upload"

	"github.com/rs/zerolog/log"
)

type categoryService struct {
	repo   category.Repository
	books  book.Repository
	policy access.Policy
	covers storage.Store
}

func NewCategoryService(repo category.Repository, books book.Repository, policy access.Policy, covers storage.Store) category.Service {
	return &categoryService{
		repo:   repo,
		books:  books,
		policy: policy,
		covers: covers,
	}
}

// Sections partitions the catalog into one bucket per fixed discipline and
// attaches each bucket's curated entries. Books with no discipline appear
// in no section.
func (s *categoryService) Sections(ctx context.Context, activeKey string) ([]category.Section, error) {
	keys := book.Disciplines()
	if activeKey != "" {
		key := book.Discipline(activeKey)
		if !key.IsValid() {
			return nil, category.ErrInvalidCategoryKey
		}
		keys = []book.Discipline{key}
	}

	allBooks, err := s.books.List(ctx)
	if err != nil {
		return nil, err
	}
	buckets := book.PartitionByDiscipline(allBooks)

	sections := make([]category.Section, 0, len(keys))
	for _, key := range keys {
		entries, err := s.repo.List(ctx, key)
		if err != nil {
			return nil, err
		}
		sections = append(sections, category.Section{
			Key:     key,
			Books:   buckets[key],
			Entries: entries,
		})
	}
	return sections, nil
}

func (s *categoryService) CreateEntry(ctx context.Context, identity access.Identity, key string, req category.CreateEntryRequest, cover *upload.File) (*category.Entry, error) {
	if !s.policy.CanWrite(identity) {
		return nil, category.ErrUnauthorized
	}

	categoryKey := book.Discipline(key)
	if !categoryKey.IsValid() {
		return nil, category.ErrInvalidCategoryKey
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Entries always carry a cover, unlike books.
	coverName, err := upload.ValidateCover(cover, true)
	if err != nil {
		return nil, err
	}

	if err := s.covers.Save(ctx, coverName, cover.Data, coverContentType(coverName)); err != nil {
		return nil, fmt.Errorf("failed to store cover: %w", err)
	}

	entry, err := s.repo.Create(ctx, &category.Entry{
		CategoryKey: categoryKey,
		Title:       req.Title,
		Author:      req.Author,
		Source:      req.Source,
		CoverObject: coverName,
	})
	if err != nil {
		if delErr := s.covers.Delete(ctx, coverName); delErr != nil {
			log.Error().Err(delErr).Str("object", coverName).Msg("upload cleanup failed")
		}
		return nil, err
	}

	log.Info().
		Int64("entry_id", entry.ID).
		Str("category", key).
		Str("writer", identity.Email).
		Msg("category entry created")

	return entry, nil
}

func coverContentType(name string) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
