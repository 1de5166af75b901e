package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ricebowl-app/backend/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.PantryItem{},
		&models.Recipe{},
		&models.DailyPlan{},
		&models.Notification{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, auth *AuthService, email string) *models.User {
	t.Helper()

	_, err := auth.Register(RegisterParams{
		Name:     "Test User",
		Email:    email,
		Password: "password123",
	})
	require.NoError(t, err)

	var user models.User
	require.NoError(t, db.Where("email = ?", email).First(&user).Error)
	return &user
}
