package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PantryItem is one ingredient in a user's pantry.
//
// Quantity is kept as the raw user-entered string ("2", "500", "a pinch").
// The planner coerces it to a number and treats anything unparsable as zero,
// which biases grocery generation toward "needs to be bought".
type PantryItem struct {
	ID        uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	UserID    uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`

	IngredientName string `gorm:"size:100;not null" json:"ingredient_name"`
	Category       string `gorm:"size:20;default:'other'" json:"category"`
	Quantity       string `gorm:"size:30" json:"quantity"`
	Unit           string `gorm:"size:20" json:"unit"`

	ExpiryDate           *time.Time `json:"expiry_date"`
	IsLeftover           bool       `gorm:"default:false" json:"is_leftover"`
	LeftoverFromRecipeID string     `gorm:"size:64" json:"leftover_from_recipe_id"`

	RequiresSoaking bool `gorm:"default:false" json:"requires_soaking"`
	SoakHours       int  `gorm:"default:0" json:"soak_hours"`
}

func (p *PantryItem) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
