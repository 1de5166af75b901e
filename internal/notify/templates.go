// Package notify builds notification intents from a fixed template table.
// Delivery is an external concern; this package only decides title, body and
// suppression metadata.
package notify

import (
	"fmt"
	"strings"
)

// Type identifies a notification template.
type Type string

const (
	TypeGroceryScan   Type = "grocery_scan"
	TypeSoakAlert     Type = "soak_alert"
	TypeTeaTime       Type = "tea_time"
	TypePremiumUpsell Type = "premium_upsell"
	TypeStreakShare   Type = "streak_share"
	TypeSystemCheck   Type = "system_check"
)

// Priority levels, highest first.
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityNormal   = "normal"
	PriorityLow      = "low"
)

// Template holds the copy and suppression policy for one notification type.
type Template struct {
	Type         Type
	Title        string
	BodyTemplate string
	Priority     string
	Suppressible bool
	MaxPerDay    int
	SoundEnabled bool
}

// Templates is the full template table, keyed by type.
var Templates = map[Type]Template{
	TypeGroceryScan: {
		Type:         TypeGroceryScan,
		Title:        "Quick Supply Check",
		BodyTemplate: "Tomorrow's menu needs: {{items}}. Got 15 min before the stores close?",
		Priority:     PriorityNormal,
		Suppressible: true,
		MaxPerDay:    1,
	},
	TypeSoakAlert: {
		Type:         TypeSoakAlert,
		Title:        "Prep Window Open",
		BodyTemplate: "{{ingredient}} needs {{hours}}h soak. Start now for {{meal}} at {{time}}.",
		Priority:     PriorityCritical,
		Suppressible: false,
		MaxPerDay:    3,
		SoundEnabled: true,
	},
	TypeTeaTime: {
		Type:         TypeTeaTime,
		Title:        "System Calibration",
		BodyTemplate: "Afternoon energy dip detected. Quick refuel: tea + light snack?",
		Priority:     PriorityLow,
		Suppressible: true,
		MaxPerDay:    1,
	},
	TypePremiumUpsell: {
		Type:         TypePremiumUpsell,
		Title:        "Unlock Full Kitchen",
		BodyTemplate: "This week alone, Pro would have saved you {{savedTime}} min on meal planning.",
		Priority:     PriorityLow,
		Suppressible: true,
		MaxPerDay:    1,
	},
	TypeStreakShare: {
		Type:         TypeStreakShare,
		Title:        "Streak Milestone!",
		BodyTemplate: "{{streakCount}} days of consistent refueling! Share your achievement?",
		Priority:     PriorityNormal,
		Suppressible: true,
		MaxPerDay:    1,
		SoundEnabled: true,
	},
	TypeSystemCheck: {
		Type:         TypeSystemCheck,
		Title:        "Cognitive Load Alert",
		BodyTemplate: "Your cognitive load is peaking. Refuel now to prevent a crash. Bowl status: {{bowlState}}.",
		Priority:     PriorityHigh,
		Suppressible: false,
		MaxPerDay:    3,
		SoundEnabled: true,
	},
}

// FillTemplate substitutes {{key}} placeholders with the given values.
// Unknown placeholders are left in place.
func FillTemplate(template string, data map[string]interface{}) string {
	filled := template
	for key, value := range data {
		filled = strings.ReplaceAll(filled, "{{"+key+"}}", fmt.Sprintf("%v", value))
	}
	return filled
}
