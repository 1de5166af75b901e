package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ricebowl-app/backend/internal/catalog"
)

// GroceryHandler serves the static staples catalog shown alongside the
// generated shortfall list.
type GroceryHandler struct{}

func NewGroceryHandler() *GroceryHandler {
	return &GroceryHandler{}
}

func (h *GroceryHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/grocery/catalog", h.Catalog)
}

func (h *GroceryHandler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": catalog.GroceryCategories})
}
