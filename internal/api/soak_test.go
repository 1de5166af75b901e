package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricebowl-app/backend/internal/planner"
)

func TestSoakReminderEndpoint(t *testing.T) {
	a := setupAPI(t)

	resp := a.request(t, http.MethodGet, "/api/v1/soak/reminder?hours=6&meal=dinner&time=14:00", "", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var reminder planner.SoakReminder
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &reminder))
	assert.Equal(t, "14:00", reminder.ReminderTime)
	assert.True(t, reminder.IsUrgent)
}

func TestSoakReminderEndpointValidation(t *testing.T) {
	a := setupAPI(t)

	resp := a.request(t, http.MethodGet, "/api/v1/soak/reminder?hours=abc&time=14:00", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = a.request(t, http.MethodGet, "/api/v1/soak/reminder?hours=6", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = a.request(t, http.MethodGet, "/api/v1/soak/reminder?hours=6&time=25:00", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestSoakTooLateEndpoint(t *testing.T) {
	a := setupAPI(t)

	resp := a.request(t, http.MethodGet, "/api/v1/soak/too-late?hours=8&meal=dinner&time=15:00", "", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var result planner.TooLateResult
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	assert.True(t, result.TooLate)
}

func TestSoakOvernightEndpoint(t *testing.T) {
	a := setupAPI(t)

	resp := a.request(t, http.MethodGet, "/api/v1/soak/overnight?hours=8", "", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var result planner.OvernightSoak
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	assert.Equal(t, "00:00", result.SoakAt)
	assert.Equal(t, "07:30", result.WakeUpCheck)
}

func TestGroceryCatalogEndpoint(t *testing.T) {
	a := setupAPI(t)

	resp := a.request(t, http.MethodGet, "/api/v1/grocery/catalog", "", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Pantry Staples")
	assert.Contains(t, resp.Body.String(), "essential")
}
