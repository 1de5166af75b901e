package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// RecipeIngredient is one ingredient line of a recipe.
type RecipeIngredient struct {
	Name        string   `json:"name"`
	Quantity    float64  `json:"quantity"`
	Unit        string   `json:"unit"`
	IsOptional  bool     `json:"is_optional"`
	Substitutes []string `json:"substitutes,omitempty"`
}

// IngredientList stores recipe ingredients as a JSON text column.
type IngredientList []RecipeIngredient

// Value implements the driver.Valuer interface
func (l IngredientList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *IngredientList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// Recipe is an immutable catalog entry. IDs are catalog slugs (for example
// "dal_tadka") so leftover upgrade suggestions can be resolved by key.
type Recipe struct {
	ID          string `gorm:"size:64;primarykey" json:"id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	// Time classification: 1, 10 or 30 minute bucket.
	TimeTier        int `gorm:"not null" json:"time_tier"`
	PrepTimeMinutes int `json:"prep_time_minutes"`
	CookTimeMinutes int `json:"cook_time_minutes"`

	// Rice Rule flags
	IsRiceFriendly bool `json:"is_rice_friendly"`
	IsWet          bool `json:"is_wet"`
	IsDry          bool `json:"is_dry"`

	IsComfortFood bool `json:"is_comfort_food"`
	IsPremium     bool `json:"is_premium"`
	IsVegetarian  bool `json:"is_vegetarian"`
	IsVegan       bool `json:"is_vegan"`

	Ingredients IngredientList `gorm:"type:text" json:"ingredients"`
	Steps       StringList     `gorm:"type:text" json:"steps"`

	RequiresSoaking bool   `json:"requires_soaking"`
	SoakIngredient  string `gorm:"size:100" json:"soak_ingredient"`
	SoakHours       int    `json:"soak_hours"`

	Cuisine         string `gorm:"size:50" json:"cuisine"`
	CaloriesApprox  int    `json:"calories_approx"`
	ProteinApprox   int    `json:"protein_approx"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RequiredIngredients returns the non-optional ingredient lines.
func (r *Recipe) RequiredIngredients() []RecipeIngredient {
	var required []RecipeIngredient
	for _, ing := range r.Ingredients {
		if !ing.IsOptional {
			required = append(required, ing)
		}
	}
	return required
}
