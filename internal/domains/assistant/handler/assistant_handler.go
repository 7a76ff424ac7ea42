package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"library-backend/internal/domains/assistant"
	"library-backend/internal/domains/book"
	"library-backend/internal/infrastructure/ai"
	"library-backend/internal/shared/middleware"
	"library-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"
)

type AssistantHandler struct {
	service assistant.Service
}

func NewAssistantHandler(service assistant.Service) *AssistantHandler {
	return &AssistantHandler{service: service}
}

func (h *AssistantHandler) Search(c *gin.Context) {
	var req assistant.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	result, err := h.service.Search(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

func (h *AssistantHandler) GenerateAbstract(c *gin.Context) {
	h.generate(c, h.service.GenerateAbstract)
}

func (h *AssistantHandler) GenerateAnnotation(c *gin.Context) {
	h.generate(c, h.service.GenerateAnnotation)
}

func (h *AssistantHandler) generate(c *gin.Context, fn func(ctx context.Context, lang string, bookID int64) (*assistant.GeneratedText, error)) {
	bookID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	lang := middleware.LanguageFrom(c)
	result, err := fn(c.Request.Context(), lang, bookID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

func (h *AssistantHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	var upstreamErr *ai.UpstreamError
	switch {
	case errors.Is(err, book.ErrBookNotFound):
		response.NotFound(c, "book not found")
	case errors.As(err, &validationErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"invalid search request", validationErrs)
	case errors.As(err, &upstreamErr):
		response.BadGateway(c, upstreamErr.Detail)
	default:
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("assistant handler error")
		response.InternalServerError(c, "internal server error")
	}
}
