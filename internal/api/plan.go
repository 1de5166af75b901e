package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ricebowl-app/backend/internal/middleware"
	"github.com/ricebowl-app/backend/internal/models"
	"github.com/ricebowl-app/backend/internal/planner"
	"github.com/ricebowl-app/backend/internal/service"
)

type PlanHandler struct {
	plans   *service.PlanService
	users   *service.AuthService
	recipes *service.RecipeService
}

func NewPlanHandler(plans *service.PlanService, users *service.AuthService, recipes *service.RecipeService) *PlanHandler {
	return &PlanHandler{plans: plans, users: users, recipes: recipes}
}

func (h *PlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	plans := router.Group("/plans", middleware.AuthMiddleware(h.users))
	{
		plans.POST("/generate", h.Generate)
		plans.GET("/:date", h.GetByDate)
		plans.POST("/validate", h.Validate)
	}
}

// Generate runs the planner. The engine itself is clock-free; this handler is
// the boundary that supplies the current date and time when the client does
// not override them.
func (h *PlanHandler) Generate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	req := GeneratePlanRequest{}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	now := time.Now()
	if req.Date == "" {
		req.Date = now.Format("2006-01-02")
	}
	if req.Time == "" {
		req.Time = now.Format("15:04")
	}

	out, err := h.plans.Generate(c.Request.Context(), userID, req.Date, req.Time)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *PlanHandler) GetByDate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	out, err := h.plans.GetByDate(c.Request.Context(), userID, c.Param("date"))
	if errors.Is(err, service.ErrPlanNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch plan"})
		return
	}
	c.JSON(http.StatusOK, out)
}

// Validate runs the rice rule over submitted meal slots without persisting
// anything.
func (h *PlanHandler) Validate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req ValidatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.GetUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		return
	}

	available, err := h.recipes.AvailableForUser(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
		return
	}

	plan := models.DailyPlan{
		LunchRecipeID:  req.LunchRecipeID,
		DinnerRecipeID: req.DinnerRecipeID,
	}
	result := planner.ValidateRiceRule(&plan, available, user)
	c.JSON(http.StatusOK, result)
}
