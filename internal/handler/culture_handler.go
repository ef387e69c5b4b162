package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/culturelens/culturelens-backend/internal/catalog"
	"github.com/culturelens/culturelens-backend/internal/model"
	"github.com/culturelens/culturelens-backend/internal/response"
)

// CultureHandler serves the static per-type metadata the results page
// renders next to the percentage breakdown.
type CultureHandler struct{}

func NewCultureHandler() *CultureHandler {
	return &CultureHandler{}
}

// ListCultures godoc
// GET /api/cultures
func (h *CultureHandler) ListCultures(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Cultures())
}

// GetCulture godoc
// GET /api/cultures/:type
func (h *CultureHandler) GetCulture(c *gin.Context) {
	tag, ok := model.ParseCultureType(c.Param("type"))
	if !ok {
		response.Fail(c, http.StatusNotFound, response.MsgCultureNotFound)
		return
	}

	info, ok := catalog.CultureInfo(tag)
	if !ok {
		response.Fail(c, http.StatusNotFound, response.MsgCultureNotFound)
		return
	}

	c.JSON(http.StatusOK, info)
}
