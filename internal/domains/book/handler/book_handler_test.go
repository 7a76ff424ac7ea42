package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"library-backend/internal/domains/book"
	"library-backend/internal/shared/access"
	"library-backend/internal/shared/upload"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubBookService struct {
	deleteResult *book.DeleteResult
	err          error
}

func (s *stubBookService) Create(_ context.Context, _ access.Identity, _ book.CreateBookRequest, _, _ *upload.File) (*book.Book, error) {
	return nil, s.err
}

func (s *stubBookService) GetByID(_ context.Context, _ int64) (*book.Book, error) {
	return nil, s.err
}

func (s *stubBookService) List(_ context.Context, _ int) ([]book.Book, error) {
	return []book.Book{}, s.err
}

func (s *stubBookService) Search(_ context.Context, _ string) ([]book.Book, error) {
	return []book.Book{}, s.err
}

func (s *stubBookService) Delete(_ context.Context, _ access.Identity, _ int64) (*book.DeleteResult, error) {
	return s.deleteResult, s.err
}

func (s *stubBookService) Download(_ context.Context, _ int64) (string, []byte, error) {
	return "book.pdf", []byte("%PDF-1.4"), s.err
}

func newTestRouter(svc book.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookHandler(svc)

	router := gin.New()
	router.GET("/books", h.List)
	router.GET("/books/search", h.Search)
	router.GET("/books/:id/download", h.Download)
	router.DELETE("/books/:id", h.Delete)
	return router
}

func TestDeletePartialReturnsWarning(t *testing.T) {
	svc := &stubBookService{deleteResult: &book.DeleteResult{
		RecordDeleted: true,
		PDFRemoved:    false,
		CoverRemoved:  true,
	}}
	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/books/1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"warning"`)
	assert.Contains(t, w.Body.String(), `"pdf_removed":false`)
}

func TestDeleteCleanReturnsNoWarning(t *testing.T) {
	svc := &stubBookService{deleteResult: &book.DeleteResult{
		RecordDeleted: true,
		PDFRemoved:    true,
		CoverRemoved:  true,
	}}
	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/books/1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `"warning"`)
}

func TestDeleteForbidden(t *testing.T) {
	router := newTestRouter(&stubBookService{err: book.ErrUnauthorized})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/books/1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteNotFound(t *testing.T) {
	router := newTestRouter(&stubBookService{err: book.ErrBookNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/books/1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchRequiresQuery(t *testing.T) {
	router := newTestRouter(&stubBookService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/books/search", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListRejectsNegativeLimit(t *testing.T) {
	router := newTestRouter(&stubBookService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/books?limit=-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDownloadSetsAttachment(t *testing.T) {
	router := newTestRouter(&stubBookService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/books/1/download", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), `attachment; filename="book.pdf"`)
}
