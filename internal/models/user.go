package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents an account with the preferences the planner consumes.
type User struct {
	ID           uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Name         string         `gorm:"not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	IsPremium    bool           `gorm:"default:false" json:"is_premium"`

	// Cultural preferences. RicePreference gates Rice Rule validation.
	RicePreference      bool       `gorm:"default:true" json:"rice_preference"`
	CuisinePreference   string     `gorm:"size:50;default:'eastern_indian'" json:"cuisine_preference"`
	DietaryRestrictions StringList `gorm:"type:text" json:"dietary_restrictions"`

	// Streaks
	StreakCount      int        `gorm:"default:0" json:"streak_count"`
	LongestStreak    int        `gorm:"default:0" json:"longest_streak"`
	TotalMealsLogged int        `gorm:"default:0" json:"total_meals_logged"`
	LastMealAt       *time.Time `json:"last_meal_at"`

	// Notification settings
	NotificationEnabled bool   `gorm:"default:true" json:"notification_enabled"`
	QuietHoursStart     string `gorm:"size:5;default:'22:00'" json:"quiet_hours_start"`
	QuietHoursEnd       string `gorm:"size:5;default:'07:00'" json:"quiet_hours_end"`
	Timezone            string `gorm:"size:50;default:'Asia/Kolkata'" json:"timezone"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
