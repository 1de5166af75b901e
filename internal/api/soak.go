package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ricebowl-app/backend/internal/planner"
)

// SoakHandler exposes the pure soak scheduler for UI-driven checks. The
// endpoints take the caller's clock as a query parameter so results stay
// reproducible.
type SoakHandler struct{}

func NewSoakHandler() *SoakHandler {
	return &SoakHandler{}
}

func (h *SoakHandler) RegisterRoutes(router *gin.RouterGroup) {
	soak := router.Group("/soak")
	{
		soak.GET("/reminder", h.Reminder)
		soak.GET("/too-late", h.TooLate)
		soak.GET("/overnight", h.Overnight)
	}
}

func soakQueryParams(c *gin.Context) (hours int, meal planner.MealType, currentTime string, ok bool) {
	hours, err := strconv.Atoi(c.Query("hours"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hours"})
		return 0, "", "", false
	}

	meal = planner.MealType(c.DefaultQuery("meal", string(planner.MealDinner)))
	currentTime = c.Query("time")
	if currentTime == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "time query parameter is required"})
		return 0, "", "", false
	}
	return hours, meal, currentTime, true
}

func (h *SoakHandler) Reminder(c *gin.Context) {
	hours, meal, currentTime, ok := soakQueryParams(c)
	if !ok {
		return
	}

	reminder, err := planner.CalculateSoakReminder(hours, meal, currentTime, c.Query("meal_time"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reminder)
}

func (h *SoakHandler) TooLate(c *gin.Context) {
	hours, meal, currentTime, ok := soakQueryParams(c)
	if !ok {
		return
	}

	result, err := planner.IsTooLateToSoak(hours, meal, currentTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *SoakHandler) Overnight(c *gin.Context) {
	hours, err := strconv.Atoi(c.Query("hours"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hours"})
		return
	}

	result, err := planner.CalculateOvernightSoak(hours, c.Query("breakfast_time"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
