package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ricebowl-app/backend/internal/catalog"
	"github.com/ricebowl-app/backend/internal/models"
)

// Migrate runs the schema migration for all persisted models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.PantryItem{},
		&models.Recipe{},
		&models.DailyPlan{},
		&models.Notification{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// SeedRecipes upserts the static recipe catalog. Rows are keyed by recipe id
// so reseeding after a catalog update refreshes existing entries in place.
func SeedRecipes(db *gorm.DB) error {
	for _, recipe := range catalog.Recipes {
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&recipe).Error; err != nil {
			return fmt.Errorf("seed recipe %s: %w", recipe.ID, err)
		}
	}
	log.Info().Int("count", len(catalog.Recipes)).Msg("recipe catalog seeded")
	return nil
}
