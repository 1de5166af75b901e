package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GroceryTask is one ingredient shortfall derived from a plan.
type GroceryTask struct {
	ID          string  `json:"id"`
	Ingredient  string  `json:"ingredient"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	IsCompleted bool    `json:"is_completed"`
	BuyTonight  bool    `json:"buy_tonight"`
}

// PrepTask is one scheduled preparation action, usually a soak.
type PrepTask struct {
	ID            string `json:"id"`
	Description   string `json:"description"`
	RecipeID      string `json:"recipe_id"`
	ScheduledTime string `json:"scheduled_time"` // "HH:mm"
	IsSoaking     bool   `json:"is_soaking"`
	IsCompleted   bool   `json:"is_completed"`
}

// GroceryTaskList stores grocery tasks as a JSON text column.
type GroceryTaskList []GroceryTask

// Value implements the driver.Valuer interface
func (l GroceryTaskList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *GroceryTaskList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// PrepTaskList stores prep tasks as a JSON text column.
type PrepTaskList []PrepTask

// Value implements the driver.Valuer interface
func (l PrepTaskList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *PrepTaskList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// DailyPlan is the plan for one user and date. Meal slots hold catalog
// recipe IDs; empty string means the slot is unassigned.
type DailyPlan struct {
	ID        uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	UserID    uuid.UUID      `gorm:"type:varchar(36);not null;uniqueIndex:idx_plans_user_date" json:"user_id"`
	Date      string         `gorm:"size:10;not null;uniqueIndex:idx_plans_user_date" json:"date"` // "YYYY-MM-DD"

	BreakfastRecipeID string     `gorm:"size:64" json:"breakfast_recipe_id"`
	LunchRecipeID     string     `gorm:"size:64" json:"lunch_recipe_id"`
	DinnerRecipeID    string     `gorm:"size:64" json:"dinner_recipe_id"`
	Snacks            StringList `gorm:"type:text" json:"snacks"`

	// RiceRuleCompliant is never true while unresolved violations exist.
	RiceRuleCompliant bool   `gorm:"default:false" json:"rice_rule_compliant"`
	RiceRuleAutoAdded string `gorm:"size:64" json:"rice_rule_auto_added"`

	BreakfastCompleted bool `gorm:"default:false" json:"breakfast_completed"`
	LunchCompleted     bool `gorm:"default:false" json:"lunch_completed"`
	DinnerCompleted    bool `gorm:"default:false" json:"dinner_completed"`

	LunchEatingOut  bool `gorm:"default:false" json:"lunch_eating_out"`
	DinnerEatingOut bool `gorm:"default:false" json:"dinner_eating_out"`

	CookExtraForTomorrow bool   `gorm:"default:false" json:"cook_extra_for_tomorrow"`
	LeftoverRecipeID     string `gorm:"size:64" json:"leftover_recipe_id"`

	GroceryTasks GroceryTaskList `gorm:"type:text" json:"grocery_tasks"`
	PrepTasks    PrepTaskList    `gorm:"type:text" json:"prep_tasks"`
}

func (p *DailyPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// PlannedRecipeIDs returns the recipe IDs assigned anywhere in the plan,
// including the auto-added Rice Rule accompaniment.
func (p *DailyPlan) PlannedRecipeIDs() []string {
	var ids []string
	for _, id := range []string{p.BreakfastRecipeID, p.LunchRecipeID, p.DinnerRecipeID, p.RiceRuleAutoAdded} {
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
