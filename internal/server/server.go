// Package server wires services, handlers and the HTTP listener together.
package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ricebowl-app/backend/config"
	"github.com/ricebowl-app/backend/internal/api"
	"github.com/ricebowl-app/backend/internal/router"
	"github.com/ricebowl-app/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	http   *http.Server
}

// New builds a fully wired server. The Redis client is optional; nil
// disables the plan cache.
func New(cfg *config.Config, db *gorm.DB, cache *redis.Client) *Server {
	authService := service.NewAuthService(db, cfg.JWTSecret)
	pantryService := service.NewPantryService(db)
	recipeService := service.NewRecipeService(db)
	planService := service.NewPlanService(db, recipeService, cache)

	engine := router.SetupRouter(
		db,
		api.NewAuthHandler(authService),
		api.NewPantryHandler(pantryService, authService),
		api.NewRecipeHandler(recipeService),
		api.NewPlanHandler(planService, authService, recipeService),
	)

	return &Server{cfg: cfg, router: engine}
}

// Start begins serving and blocks until the listener stops.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:    s.cfg.ServerHost + ":" + s.cfg.ServerPort,
		Handler: s.router,
	}
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
