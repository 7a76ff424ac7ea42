package handler

import (
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"library-backend/internal/infrastructure/storage"
	"library-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// CoverHandler serves stored cover images by object name. Both book and
// category covers live in the same bucket.
type CoverHandler struct {
	covers storage.Store
}

func NewCoverHandler(covers storage.Store) *CoverHandler {
	return &CoverHandler{covers: covers}
}

func (h *CoverHandler) Get(c *gin.Context) {
	name := c.Param("name")
	if name == "" || strings.Contains(name, "/") || strings.Contains(name, "..") {
		response.BadRequest(c, "invalid cover name")
		return
	}

	exists, err := h.covers.Exists(c.Request.Context(), name)
	if err != nil {
		response.InternalServerError(c, "failed to look up cover")
		return
	}
	if !exists {
		response.NotFound(c, "cover not found")
		return
	}

	data, err := h.covers.Read(c.Request.Context(), name)
	if err != nil {
		response.InternalServerError(c, "failed to read cover")
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Data(http.StatusOK, contentType, data)
}
