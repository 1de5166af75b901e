package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricebowl-app/backend/internal/models"
)

func TestPantryEndpointsRequireAuth(t *testing.T) {
	a := setupAPI(t)

	resp := a.request(t, http.MethodGet, "/api/v1/pantry", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestPantryLifecycle(t *testing.T) {
	a := setupAPI(t)
	token := a.registerUser(t, "asha@example.com")

	resp := a.request(t, http.MethodPost, "/api/v1/pantry", token, map[string]interface{}{
		"ingredient_name": "rice",
		"category":        "pantry-staples",
		"quantity":        "2",
		"unit":            "cups",
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var created models.PantryItem
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))

	resp = a.request(t, http.MethodGet, "/api/v1/pantry", token, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "rice")

	resp = a.request(t, http.MethodPut, "/api/v1/pantry/"+created.ID.String(), token, map[string]interface{}{
		"ingredient_name": "rice",
		"quantity":        "5",
		"unit":            "cups",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"quantity":"5"`)

	resp = a.request(t, http.MethodPost, "/api/v1/pantry/"+created.ID.String()+"/leftover", token, map[string]interface{}{
		"from_recipe_id": "jeera_rice_dal",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"is_leftover":true`)

	resp = a.request(t, http.MethodDelete, "/api/v1/pantry/"+created.ID.String(), token, nil)
	assert.Equal(t, http.StatusNoContent, resp.Code)

	resp = a.request(t, http.MethodGet, "/api/v1/pantry/"+created.ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestPantryRejectsForeignItems(t *testing.T) {
	a := setupAPI(t)
	ownerToken := a.registerUser(t, "owner@example.com")
	otherToken := a.registerUser(t, "other@example.com")

	resp := a.request(t, http.MethodPost, "/api/v1/pantry", ownerToken, map[string]interface{}{
		"ingredient_name": "paneer",
		"quantity":        "200",
		"unit":            "g",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var created models.PantryItem
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))

	resp = a.request(t, http.MethodGet, "/api/v1/pantry/"+created.ID.String(), otherToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestPantryRejectsBadItemID(t *testing.T) {
	a := setupAPI(t)
	token := a.registerUser(t, "asha@example.com")

	resp := a.request(t, http.MethodGet, "/api/v1/pantry/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
