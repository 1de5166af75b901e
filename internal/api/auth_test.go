package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterEndpoint(t *testing.T) {
	a := setupAPI(t)

	resp := a.request(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.Contains(t, resp.Body.String(), "token")
}

func TestRegisterValidation(t *testing.T) {
	a := setupAPI(t)

	// Missing password.
	resp := a.request(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"name":  "Asha",
		"email": "asha@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	// Short password.
	resp = a.request(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	a := setupAPI(t)
	a.registerUser(t, "asha@example.com")

	resp := a.request(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestLoginEndpoint(t *testing.T) {
	a := setupAPI(t)
	a.registerUser(t, "asha@example.com")

	resp := a.request(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "asha@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = a.request(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "asha@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
