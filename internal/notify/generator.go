package notify

import (
	"fmt"
	"time"

	"github.com/ricebowl-app/backend/internal/models"
)

// Generate builds a notification intent of the given type. The user, ID and
// schedule are left for the caller to stamp, which keeps generation
// deterministic. Unknown types are an error.
func Generate(typ Type, data models.NotificationData) (models.Notification, error) {
	template, ok := Templates[typ]
	if !ok {
		return models.Notification{}, fmt.Errorf("unknown notification type %q", typ)
	}

	return models.Notification{
		Type:         string(typ),
		Title:        template.Title,
		Body:         FillTemplate(template.BodyTemplate, data),
		Data:         data,
		MaxPerDay:    template.MaxPerDay,
		IsCritical:   template.Priority == PriorityCritical,
		IsPersistent: !template.Suppressible,
	}, nil
}

// SuppressionResult explains why a notification should or should not be shown.
type SuppressionResult struct {
	Suppress bool
	Reason   string
}

// ShouldSuppress applies the daily cap and snooze window for a notification.
// Critical notifications are never suppressed.
func ShouldSuppress(n models.Notification, recent []models.Notification, now time.Time) SuppressionResult {
	if n.IsCritical {
		return SuppressionResult{}
	}

	todayCount := 0
	for _, r := range recent {
		if r.Type == n.Type && sameDay(r.ScheduledAt, n.ScheduledAt) {
			todayCount++
		}
	}
	if n.MaxPerDay > 0 && todayCount >= n.MaxPerDay {
		return SuppressionResult{
			Suppress: true,
			Reason:   fmt.Sprintf("Daily limit reached (%d/day)", n.MaxPerDay),
		}
	}

	if n.SuppressUntil != nil && now.Before(*n.SuppressUntil) {
		return SuppressionResult{Suppress: true, Reason: "User snoozed this notification"}
	}

	return SuppressionResult{}
}

// Due returns the notifications that are scheduled, unsent and not dismissed
// as of now.
func Due(notifications []models.Notification, now time.Time) []models.Notification {
	var due []models.Notification
	for _, n := range notifications {
		if n.SentAt != nil || n.DismissedAt != nil {
			continue
		}
		if !n.ScheduledAt.After(now) {
			due = append(due, n)
		}
	}
	return due
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
