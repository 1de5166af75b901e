package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ricebowl-app/backend/internal/middleware"
	"github.com/ricebowl-app/backend/internal/models"
	"github.com/ricebowl-app/backend/internal/service"
)

type PantryHandler struct {
	pantry *service.PantryService
	auth   middleware.TokenValidator
}

func NewPantryHandler(pantry *service.PantryService, auth middleware.TokenValidator) *PantryHandler {
	return &PantryHandler{pantry: pantry, auth: auth}
}

func (h *PantryHandler) RegisterRoutes(router *gin.RouterGroup) {
	pantry := router.Group("/pantry", middleware.AuthMiddleware(h.auth))
	{
		pantry.GET("", h.List)
		pantry.POST("", h.Add)
		pantry.GET("/:id", h.Get)
		pantry.PUT("/:id", h.Update)
		pantry.DELETE("/:id", h.Delete)
		pantry.POST("/:id/leftover", h.MarkLeftover)
	}
}

// currentUserID reads the authenticated user id the auth middleware stored.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return uuid.Nil, false
	}
	return id, true
}

func pantryItemFromRequest(req PantryItemRequest) models.PantryItem {
	return models.PantryItem{
		IngredientName:       req.IngredientName,
		Category:             req.Category,
		Quantity:             req.Quantity,
		Unit:                 req.Unit,
		ExpiryDate:           req.ExpiryDate,
		IsLeftover:           req.IsLeftover,
		LeftoverFromRecipeID: req.LeftoverFromRecipeID,
		RequiresSoaking:      req.RequiresSoaking,
		SoakHours:            req.SoakHours,
	}
}

func (h *PantryHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	items, err := h.pantry.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pantry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *PantryHandler) Add(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req PantryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.pantry.Add(userID, pantryItemFromRequest(req))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add pantry item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *PantryHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	item, err := h.pantry.Get(userID, itemID)
	if errors.Is(err, service.ErrPantryItemNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pantry item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *PantryHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	var req PantryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.pantry.Update(userID, itemID, pantryItemFromRequest(req))
	if errors.Is(err, service.ErrPantryItemNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update pantry item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *PantryHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	err = h.pantry.Delete(userID, itemID)
	if errors.Is(err, service.ErrPantryItemNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete pantry item"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PantryHandler) MarkLeftover(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	var req MarkLeftoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.pantry.MarkLeftover(userID, itemID, req.FromRecipeID)
	if errors.Is(err, service.ErrPantryItemNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark leftover"})
		return
	}
	c.JSON(http.StatusOK, item)
}
