package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ricebowl-app/backend/internal/database"
	"github.com/ricebowl-app/backend/internal/service"
)

type testAPI struct {
	router *gin.Engine
	db     *gorm.DB
	auth   *service.AuthService
}

func setupAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.SeedRecipes(db))

	authService := service.NewAuthService(db, "test-secret")
	pantryService := service.NewPantryService(db)
	recipeService := service.NewRecipeService(db)
	planService := service.NewPlanService(db, recipeService, nil)

	router := gin.New()
	v1 := router.Group("/api/v1")
	NewAuthHandler(authService).RegisterRoutes(v1)
	NewPantryHandler(pantryService, authService).RegisterRoutes(v1)
	NewRecipeHandler(recipeService).RegisterRoutes(v1)
	NewPlanHandler(planService, authService, recipeService).RegisterRoutes(v1)
	NewSoakHandler().RegisterRoutes(v1)
	NewGroceryHandler().RegisterRoutes(v1)

	return &testAPI{router: router, db: db, auth: authService}
}

// registerUser signs up a user through the API and returns the bearer token.
func (a *testAPI) registerUser(t *testing.T, email string) string {
	t.Helper()

	resp := a.request(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"name":     "Test User",
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var body TokenResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	return body.Token
}

func (a *testAPI) request(t *testing.T, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	return rr
}
