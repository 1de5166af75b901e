package planner

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// MealType identifies one of the four daily meal slots.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// DefaultMealTimes are the serving times assumed when the caller does not
// provide an override.
var DefaultMealTimes = map[MealType]string{
	MealBreakfast: "08:00",
	MealLunch:     "13:00",
	MealDinner:    "20:00",
	MealSnack:     "16:00",
}

// mealSequence is the canonical daily order used for too-late fallback routing.
var mealSequence = []MealType{MealBreakfast, MealLunch, MealSnack, MealDinner}

// clockAnchor pins clock-only arithmetic to a fixed reference day so the
// scheduler never reads the wall clock. Only differences between instants and
// their "HH:mm" renderings are meaningful to callers.
var clockAnchor = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// SoakReminder describes when soaking must begin for a meal to be ready.
type SoakReminder struct {
	ReminderTime   string    `json:"reminder_time"` // "HH:mm"
	StartSoakingAt time.Time `json:"start_soaking_at"`
	MealReadyAt    time.Time `json:"meal_ready_at"`
	HoursRequired  int       `json:"hours_required"`
	IsUrgent       bool      `json:"is_urgent"`
	Message        string    `json:"message"`
}

// TooLateResult reports whether a soak window has already closed and, if so,
// which meal slot to defer to.
type TooLateResult struct {
	TooLate         bool     `json:"too_late"`
	AlternativeMeal MealType `json:"alternative_meal,omitempty"`
	Message         string   `json:"message"`
}

// OvernightSoak is a soak schedule worked backward from breakfast.
type OvernightSoak struct {
	SoakAt      string `json:"soak_at"`       // "HH:mm"
	WakeUpCheck string `json:"wake_up_check"` // "HH:mm"
	Message     string `json:"message"`
}

// SoakCandidate is one planned recipe that needs soaking.
type SoakCandidate struct {
	RecipeID       string   `json:"recipe_id"`
	RecipeName     string   `json:"recipe_name"`
	SoakHours      int      `json:"soak_hours"`
	SoakIngredient string   `json:"soak_ingredient"`
	MealType       MealType `json:"meal_type"`
}

func parseClock(value string) (hour, minute int, err error) {
	h, m, ok := strings.Cut(value, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid time %q: expected HH:mm", value)
	}
	hour, err = strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", value)
	}
	minute, err = strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", value)
	}
	return hour, minute, nil
}

func clockInstant(hour, minute int) time.Time {
	return clockAnchor.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

// CalculateSoakReminder works backward from a meal's serving time to the
// instant soaking must begin. customMealTime overrides the default serving
// time for the meal type when non-empty. If the meal's clock time has already
// passed relative to currentTime, tomorrow's occurrence is targeted.
func CalculateSoakReminder(soakHours int, meal MealType, currentTime, customMealTime string) (SoakReminder, error) {
	mealTime := customMealTime
	if mealTime == "" {
		var ok bool
		mealTime, ok = DefaultMealTimes[meal]
		if !ok {
			return SoakReminder{}, fmt.Errorf("unknown meal type %q", meal)
		}
	}

	mealHour, mealMinute, err := parseClock(mealTime)
	if err != nil {
		return SoakReminder{}, fmt.Errorf("meal time: %w", err)
	}
	curHour, curMinute, err := parseClock(currentTime)
	if err != nil {
		return SoakReminder{}, fmt.Errorf("current time: %w", err)
	}

	now := clockInstant(curHour, curMinute)
	mealReady := clockInstant(mealHour, mealMinute)

	// Meal time already passed today (or is exactly now): target tomorrow.
	if mealHour < curHour || (mealHour == curHour && mealMinute <= curMinute) {
		mealReady = mealReady.AddDate(0, 0, 1)
	}

	if soakHours < 0 {
		soakHours = 0
	}
	soakStart := mealReady.Add(-time.Duration(soakHours) * time.Hour)

	hoursUntilSoak := soakStart.Sub(now).Hours()
	isUrgent := hoursUntilSoak < 1

	reminderTime := soakStart.Format("15:04")

	var message string
	switch {
	case isUrgent:
		message = fmt.Sprintf("URGENT: Start soaking now! You need %d hours for %s.", soakHours, meal)
	case hoursUntilSoak < 3:
		message = fmt.Sprintf("Reminder: Start soaking in %d minutes for %s.", int(math.Round(hoursUntilSoak*60)), meal)
	default:
		message = fmt.Sprintf("Prep ahead: Soak at %s for %d hours (%s ready by %s).", reminderTime, soakHours, meal, mealTime)
	}

	return SoakReminder{
		ReminderTime:   reminderTime,
		StartSoakingAt: soakStart,
		MealReadyAt:    mealReady,
		HoursRequired:  soakHours,
		IsUrgent:       isUrgent,
		Message:        message,
	}, nil
}

// IsTooLateToSoak reports whether the soak window for a meal has already
// closed and names the next slot in the daily sequence to defer to.
func IsTooLateToSoak(soakHours int, meal MealType, currentTime string) (TooLateResult, error) {
	reminder, err := CalculateSoakReminder(soakHours, meal, currentTime, "")
	if err != nil {
		return TooLateResult{}, err
	}

	curHour, curMinute, err := parseClock(currentTime)
	if err != nil {
		return TooLateResult{}, err
	}
	now := clockInstant(curHour, curMinute)

	if reminder.StartSoakingAt.Before(now) {
		next := nextMealType(meal)
		alternative := "tomorrow"
		if next != "" {
			alternative = string(next)
		}
		return TooLateResult{
			TooLate:         true,
			AlternativeMeal: next,
			Message:         fmt.Sprintf("Too late to soak for %s. Consider this for %s instead.", meal, alternative),
		}, nil
	}

	return TooLateResult{Message: reminder.Message}, nil
}

// GetAllSoakReminders maps every candidate with a positive soak duration to a
// reminder, sorted ascending by soak-start instant so the earliest action
// comes first.
func GetAllSoakReminders(candidates []SoakCandidate, currentTime string) ([]SoakReminder, error) {
	var reminders []SoakReminder
	for _, c := range candidates {
		if c.SoakHours <= 0 {
			continue
		}
		reminder, err := CalculateSoakReminder(c.SoakHours, c.MealType, currentTime, "")
		if err != nil {
			return nil, fmt.Errorf("reminder for %s: %w", c.RecipeID, err)
		}
		reminder.Message = fmt.Sprintf("Soak %s: %s", c.SoakIngredient, reminder.Message)
		reminders = append(reminders, reminder)
	}

	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].StartSoakingAt.Before(reminders[j].StartSoakingAt)
	})
	return reminders, nil
}

// CalculateOvernightSoak works a soak schedule backward from breakfast,
// wrapping into the previous evening when needed. breakfastTime defaults to
// 08:00 when empty.
func CalculateOvernightSoak(soakHours int, breakfastTime string) (OvernightSoak, error) {
	if breakfastTime == "" {
		breakfastTime = DefaultMealTimes[MealBreakfast]
	}
	hour, minute, err := parseClock(breakfastTime)
	if err != nil {
		return OvernightSoak{}, fmt.Errorf("breakfast time: %w", err)
	}
	if soakHours < 0 {
		soakHours = 0
	}

	soakHour := ((hour-soakHours)%24 + 24) % 24
	soakAt := fmt.Sprintf("%02d:%02d", soakHour, minute)

	checkHour := 23
	if hour > 0 {
		checkHour = hour - 1
	}
	wakeUpCheck := fmt.Sprintf("%02d:30", checkHour)

	return OvernightSoak{
		SoakAt:      soakAt,
		WakeUpCheck: wakeUpCheck,
		Message:     fmt.Sprintf("Soak at %s for %d-hour prep. Morning check: %s", soakAt, soakHours, wakeUpCheck),
	}, nil
}

func nextMealType(current MealType) MealType {
	for i, m := range mealSequence {
		if m == current {
			if i == len(mealSequence)-1 {
				return ""
			}
			return mealSequence[i+1]
		}
	}
	return ""
}
