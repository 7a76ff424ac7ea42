package service

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"time"

	"library-backend/internal/domains/book"
	"library-backend/internal/infrastructure/storage"
	"library-backend/internal/shared/access"
	"library-backend/internal/shared/upload"

	"github.com/rs/zerolog/log"
)

type bookService struct {
	repo      book.Repository
	policy    access.Policy
	documents storage.Store
	covers    storage.Store
}

func NewBookService(repo book.Repository, policy access.Policy, documents, covers storage.Store) book.Service {
	return &bookService{
		repo:      repo,
		policy:    policy,
		documents: documents,
		covers:    covers,
	}
}

func (s *bookService) Create(ctx context.Context, identity access.Identity, req book.CreateBookRequest, pdf, cover *upload.File) (*book.Book, error) {
	if !s.policy.CanWrite(identity) {
		return nil, book.ErrUnauthorized
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := upload.ValidatePDF(pdf); err != nil {
		return nil, err
	}

	coverName, err := upload.ValidateCover(cover, false)
	if err != nil {
		return nil, err
	}

	pdfName := upload.StorageName(pdf.Name, time.Now())
	if err := s.documents.Save(ctx, pdfName, pdf.Data, "application/pdf"); err != nil {
		return nil, fmt.Errorf("failed to store pdf: %w", err)
	}

	var coverObject *string
	if coverName != "" {
		if err := s.covers.Save(ctx, coverName, cover.Data, coverContentType(coverName)); err != nil {
			s.cleanupObject(ctx, s.documents, pdfName)
			return nil, fmt.Errorf("failed to store cover: %w", err)
		}
		coverObject = &coverName
	}

	description, year, discipline := req.Fields()
	entity := &book.Book{
		Title:           req.Title,
		Author:          req.Author,
		Description:     description,
		PDFObject:       pdfName,
		CoverObject:     coverObject,
		PublicationYear: year,
		Discipline:      discipline,
	}

	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		s.cleanupObject(ctx, s.documents, pdfName)
		if coverObject != nil {
			s.cleanupObject(ctx, s.covers, *coverObject)
		}
		return nil, err
	}

	log.Info().
		Int64("book_id", created.ID).
		Str("title", created.Title).
		Str("writer", identity.Email).
		Msg("book created")

	return created, nil
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*book.Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) List(ctx context.Context, limit int) ([]book.Book, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && limit < len(books) {
		books = books[:limit]
	}
	return books, nil
}

func (s *bookService) Search(ctx context.Context, query string) ([]book.Book, error) {
	return s.repo.Search(ctx, query)
}

// Delete removes the catalog record, then best-effort removes the stored
// files. File failures never roll back the record deletion; they surface in
// the result so the caller can report partial success.
func (s *bookService) Delete(ctx context.Context, identity access.Identity, id int64) (*book.DeleteResult, error) {
	if !s.policy.CanWrite(identity) {
		return nil, book.ErrUnauthorized
	}

	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	result := &book.DeleteResult{
		RecordDeleted: true,
		PDFRemoved:    s.removeObject(ctx, s.documents, entity.PDFObject),
		CoverRemoved:  true, // vacuously true when there is no cover
	}
	if entity.CoverObject != nil {
		result.CoverRemoved = s.removeObject(ctx, s.covers, *entity.CoverObject)
	}

	if result.Partial() {
		log.Warn().
			Int64("book_id", id).
			Bool("pdf_removed", result.PDFRemoved).
			Bool("cover_removed", result.CoverRemoved).
			Msg("book deleted with incomplete file cleanup")
	}

	return result, nil
}

func (s *bookService) Download(ctx context.Context, id int64) (string, []byte, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", nil, err
	}

	data, err := s.documents.Read(ctx, entity.PDFObject)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read pdf: %w", err)
	}

	return entity.Title + ".pdf", data, nil
}

// removeObject deletes one stored file, reporting success only when the
// object existed and the delete went through.
func (s *bookService) removeObject(ctx context.Context, store storage.Store, name string) bool {
	exists, err := store.Exists(ctx, name)
	if err != nil || !exists {
		return false
	}
	if err := store.Delete(ctx, name); err != nil {
		log.Error().Err(err).Str("object", name).Msg("file removal failed")
		return false
	}
	return true
}

func (s *bookService) cleanupObject(ctx context.Context, store storage.Store, name string) {
	if err := store.Delete(ctx, name); err != nil {
		log.Error().Err(err).Str("object", name).Msg("upload cleanup failed")
	}
}

func coverContentType(name string) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
