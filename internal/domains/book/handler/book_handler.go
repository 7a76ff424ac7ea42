package handler

import (
	"errors"
	"net/http"
	"strconv"

	"library-backend/internal/domains/book"
	"library-backend/internal/shared/middleware"
	"library-backend/internal/shared/response"
	"library-backend/internal/shared/upload"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(service book.Service) *BookHandler {
	return &BookHandler{service: service}
}

// List returns the catalog newest-first. ?limit= narrows to the most
// recently added books.
func (h *BookHandler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			response.BadRequest(c, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	books, err := h.service.List(c.Request.Context(), limit)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, books)
}

func (h *BookHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "please enter a search query")
		return
	}

	books, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"query": query,
		"books": books,
	})
}

func (h *BookHandler) GetByID(c *gin.Context) {
	id, ok := h.bookID(c)
	if !ok {
		return
	}

	entity, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, entity)
}

func (h *BookHandler) Download(c *gin.Context) {
	id, ok := h.bookID(c)
	if !ok {
		return
	}

	filename, data, err := h.service.Download(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *BookHandler) Create(c *gin.Context) {
	var req book.CreateBookRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "invalid form data")
		return
	}

	pdfHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required (multipart/form-data)")
		return
	}
	pdf, err := upload.Open(pdfHeader)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var cover *upload.File
	if coverHeader, err := c.FormFile("cover"); err == nil {
		if cover, err = upload.Open(coverHeader); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}

	identity := middleware.IdentityFrom(c)
	created, err := h.service.Create(c.Request.Context(), identity, req, pdf, cover)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, created)
}

func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := h.bookID(c)
	if !ok {
		return
	}

	identity := middleware.IdentityFrom(c)
	result, err := h.service.Delete(c.Request.Context(), identity, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if result.Partial() {
		response.SuccessWithWarning(c, http.StatusOK, result,
			"book deleted from database, but file cleanup was incomplete")
		return
	}
	response.Success(c, http.StatusOK, result)
}

func (h *BookHandler) bookID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "book not found")
		return 0, false
	}
	return id, true
}

func (h *BookHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	switch {
	case errors.Is(err, book.ErrBookNotFound):
		response.NotFound(c, "the specified book does not exist")
	case errors.Is(err, book.ErrUnauthorized):
		response.Forbidden(c, "you are not allowed to modify the catalog")
	case errors.As(err, &validationErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"invalid book fields", validationErrs)
	case errors.Is(err, upload.ErrNoFile),
		errors.Is(err, upload.ErrInvalidPDFType),
		errors.Is(err, upload.ErrPDFTooLarge),
		errors.Is(err, upload.ErrInvalidCoverType),
		errors.Is(err, upload.ErrCoverTooLarge),
		errors.Is(err, upload.ErrCoverRequired),
		errors.Is(err, book.ErrInvalidDiscipline):
		response.BadRequest(c, err.Error())
	default:
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("book handler error")
		response.InternalServerError(c, "internal server error")
	}
}
