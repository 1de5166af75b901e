package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricebowl-app/backend/internal/models"
)

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	auth := NewAuthService(db, "test-secret")

	token, err := auth.Register(RegisterParams{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	token, err = auth.Login("asha@example.com", "password123")
	require.NoError(t, err)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "Asha", claims.Name)
}

func TestRegisterDefaultsRicePreference(t *testing.T) {
	db := setupTestDB(t)
	auth := NewAuthService(db, "test-secret")

	_, err := auth.Register(RegisterParams{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	var user models.User
	require.NoError(t, db.Where("email = ?", "asha@example.com").First(&user).Error)
	assert.True(t, user.RicePreference)
}

func TestRegisterHonorsExplicitRicePreference(t *testing.T) {
	db := setupTestDB(t)
	auth := NewAuthService(db, "test-secret")

	noRice := false
	_, err := auth.Register(RegisterParams{
		Name:              "Ben",
		Email:             "ben@example.com",
		Password:          "password123",
		RicePreference:    &noRice,
		CuisinePreference: "continental",
	})
	require.NoError(t, err)

	var user models.User
	require.NoError(t, db.Where("email = ?", "ben@example.com").First(&user).Error)
	assert.False(t, user.RicePreference)
	assert.Equal(t, "continental", user.CuisinePreference)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	auth := NewAuthService(db, "test-secret")

	params := RegisterParams{Name: "Asha", Email: "asha@example.com", Password: "password123"}
	_, err := auth.Register(params)
	require.NoError(t, err)

	_, err = auth.Register(params)
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	auth := NewAuthService(db, "test-secret")

	_, err := auth.Register(RegisterParams{Name: "Asha", Email: "asha@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = auth.Login("asha@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	db := setupTestDB(t)
	auth := NewAuthService(db, "test-secret")
	other := NewAuthService(db, "other-secret")

	token, err := auth.Register(RegisterParams{Name: "Asha", Email: "asha@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}
