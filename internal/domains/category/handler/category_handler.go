package handler

import (
	"errors"
	"net/http"

	"library-backend/internal/domains/category"
	"library-backend/internal/shared/middleware"
	"library-backend/internal/shared/response"
	"library-backend/internal/shared/upload"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"
)

type CategoryHandler struct {
	service category.Service
}

func NewCategoryHandler(service category.Service) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// List returns all discipline sections, or one when ?active= is set.
func (h *CategoryHandler) List(c *gin.Context) {
	sections, err := h.service.Sections(c.Request.Context(), c.Query("active"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sections)
}

func (h *CategoryHandler) CreateEntry(c *gin.Context) {
	var req category.CreateEntryRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "invalid form data")
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
	entry, err := h.service.CreateEntry(c.Request.Context(), identity, c.Param("key"), req, cover)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, entry)
}

func (h *CategoryHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	switch {
	case errors.Is(err, category.ErrInvalidCategoryKey):
		response.BadRequest(c, err.Error())
	case errors.Is(err, category.ErrUnauthorized):
		response.Forbidden(c, "you are not allowed to modify the catalog")
	case errors.As(err, &validationErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"invalid entry fields", validationErrs)
	case errors.Is(err, upload.ErrCoverRequired),
		errors.Is(err, upload.ErrInvalidCoverType),
		errors.Is(err, upload.ErrCoverTooLarge):
		response.BadRequest(c, err.Error())
	default:
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("category handler error")
		response.InternalServerError(c, "internal server error")
	}
}
