// theme.go - Serves home page and dress themes

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HomeTheme - GET /homeTheme: every home page document, as stored
func (h *Handler) HomeTheme(c *gin.Context) {
	pages, err := h.catalog.HomeThemes(c.Request.Context())
	if err != nil {
		h.respondTextError(c, err)
		return
	}
	c.JSON(http.StatusOK, pages)
}

// DressTheme - GET /dressTheme: an array holding one random dress theme (empty if none exist)
func (h *Handler) DressTheme(c *gin.Context) {
	themes, err := h.catalog.DressTheme(c.Request.Context())
	if err != nil {
		h.respondTextError(c, err)
		return
	}
	c.JSON(http.StatusOK, themes)
}
