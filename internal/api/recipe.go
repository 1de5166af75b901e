package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ricebowl-app/backend/internal/planner"
	"github.com/ricebowl-app/backend/internal/service"
)

type RecipeHandler struct {
	recipes *service.RecipeService
}

func NewRecipeHandler(recipes *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.List)
		recipes.GET("/:id", h.Get)
		recipes.POST("/:id/wet-suggestions", h.WetSuggestions)
	}
}

// List returns the catalog. Premium recipes are excluded; the apps show them
// as locked tiles from their own bundled metadata.
func (h *RecipeHandler) List(c *gin.Context) {
	opts := service.ListOptions{}

	if tier := c.Query("tier"); tier != "" {
		parsed, err := strconv.Atoi(tier)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tier"})
			return
		}
		opts.TimeTier = parsed
	}
	opts.RiceFriendly = c.Query("rice_friendly") == "true"

	recipes, err := h.recipes.List(opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) Get(c *gin.Context) {
	recipe, err := h.recipes.Get(c.Param("id"), false)
	if errors.Is(err, service.ErrRecipeNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, service.ErrPremiumRecipe) {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipe"})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// WetSuggestions scores wet accompaniments for a dry dish against the
// submitted pantry ingredient names.
func (h *RecipeHandler) WetSuggestions(c *gin.Context) {
	recipe, err := h.recipes.Get(c.Param("id"), false)
	if errors.Is(err, service.ErrRecipeNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, service.ErrPremiumRecipe) {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipe"})
		return
	}

	var req WetSuggestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	available, err := h.recipes.List(service.ListOptions{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
		return
	}

	suggestions := planner.SuggestWetDishes(*recipe, available, req.PantryItems)
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
