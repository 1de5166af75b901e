package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationData holds the template values a notification was built from.
type NotificationData map[string]interface{}

// Value implements the driver.Valuer interface
func (d NotificationData) Value() (driver.Value, error) {
	if len(d) == 0 {
		return "{}", nil
	}
	return json.Marshal(d)
}

// Scan implements the sql.Scanner interface
func (d *NotificationData) Scan(value interface{}) error {
	return scanJSON(value, d)
}

// Notification is a scheduled notification intent. Delivery is an external
// concern; this core only decides what should be scheduled and when.
type Notification struct {
	ID        uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	UserID    uuid.UUID      `gorm:"type:varchar(36);index" json:"user_id"`

	Type  string           `gorm:"size:30;not null" json:"type"`
	Title string           `gorm:"size:100" json:"title"`
	Body  string           `gorm:"type:text" json:"body"`
	Data  NotificationData `gorm:"type:text" json:"data"`

	ScheduledAt time.Time  `json:"scheduled_at"`
	SentAt      *time.Time `json:"sent_at"`
	ReadAt      *time.Time `json:"read_at"`
	DismissedAt *time.Time `json:"dismissed_at"`
	ActedUpon   bool       `gorm:"default:false" json:"acted_upon"`

	SuppressUntil   *time.Time `json:"suppress_until"`
	MaxPerDay       int        `gorm:"default:1" json:"max_per_day"`
	TimesShownToday int        `gorm:"default:0" json:"times_shown_today"`

	IsCritical   bool `gorm:"default:false" json:"is_critical"`
	IsPersistent bool `gorm:"default:false" json:"is_persistent"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
