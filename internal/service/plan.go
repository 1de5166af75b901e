package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/ricebowl-app/backend/internal/models"
	"github.com/ricebowl-app/backend/internal/planner"
)

var ErrPlanNotFound = errors.New("plan not found")

const planCacheTTL = 24 * time.Hour

// PlanService orchestrates plan generation: it assembles the engine input
// from storage, runs the pure planner and persists the result. The Redis
// client is optional; a nil client disables the plan cache.
type PlanService struct {
	db      *gorm.DB
	recipes *RecipeService
	cache   *redis.Client
}

func NewPlanService(db *gorm.DB, recipes *RecipeService, cache *redis.Client) *PlanService {
	return &PlanService{db: db, recipes: recipes, cache: cache}
}

// Generate runs the planner for a user at the given date and time, upserts
// the daily plan and stores the notification intents.
func (s *PlanService) Generate(ctx context.Context, userID uuid.UUID, date, currentTime string) (*planner.Output, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	var pantry []models.PantryItem
	if err := s.db.Where("user_id = ?", userID).Find(&pantry).Error; err != nil {
		return nil, fmt.Errorf("load pantry: %w", err)
	}

	recipes, err := s.recipes.AvailableForUser(&user)
	if err != nil {
		return nil, fmt.Errorf("load recipes: %w", err)
	}

	out, err := planner.GenerateSurvivalPlan(planner.Input{
		User:             user,
		PantryItems:      pantry,
		AvailableRecipes: recipes,
		CurrentDate:      date,
		CurrentTime:      currentTime,
	})
	if err != nil {
		return nil, err
	}

	if err := s.upsertPlan(&out.DailyPlan); err != nil {
		return nil, fmt.Errorf("save plan: %w", err)
	}

	if err := s.replaceNotifications(userID, date, out.Notifications); err != nil {
		return nil, fmt.Errorf("save notifications: %w", err)
	}

	s.cacheSet(ctx, userID, date, out)
	return out, nil
}

// GetByDate returns a previously generated plan, trying the cache first.
func (s *PlanService) GetByDate(ctx context.Context, userID uuid.UUID, date string) (*planner.Output, error) {
	if cached := s.cacheGet(ctx, userID, date); cached != nil {
		return cached, nil
	}

	var plan models.DailyPlan
	err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}

	return &planner.Output{
		DailyPlan:   plan,
		GroceryList: plan.GroceryTasks,
		PrepTasks:   plan.PrepTasks,
	}, nil
}

// upsertPlan saves the plan, reusing the row id when one already exists for
// the (user, date) key so regeneration replaces rather than duplicates.
func (s *PlanService) upsertPlan(plan *models.DailyPlan) error {
	var existing models.DailyPlan
	err := s.db.Where("user_id = ? AND date = ?", plan.UserID, plan.Date).First(&existing).Error
	if err == nil {
		plan.ID = existing.ID
		plan.CreatedAt = existing.CreatedAt
		return s.db.Save(plan).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.db.Create(plan).Error
}

// replaceNotifications swaps the stored intents for the day so regenerating
// a plan does not accumulate duplicate alerts. Each intent's ScheduledAt is
// resolved from its reminder time against the plan date.
func (s *PlanService) replaceNotifications(userID uuid.UUID, date string, intents []models.Notification) error {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return err
	}

	err = s.db.Where("user_id = ? AND scheduled_at >= ? AND scheduled_at < ?",
		userID, day, day.AddDate(0, 0, 1)).Delete(&models.Notification{}).Error
	if err != nil {
		return err
	}

	for i := range intents {
		intents[i].UserID = userID
		intents[i].ScheduledAt = scheduleFor(day, intents[i])
		if err := s.db.Create(&intents[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// scheduleFor places an intent at its reminder time within the plan day.
// Intents without a parsable time fall back to the start of the day.
func scheduleFor(day time.Time, n models.Notification) time.Time {
	at, ok := n.Data["time"].(string)
	if !ok {
		return day
	}
	clock, err := time.Parse("15:04", at)
	if err != nil {
		return day
	}
	return day.Add(time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute)
}

func planCacheKey(userID uuid.UUID, date string) string {
	return fmt.Sprintf("plan:%s:%s", userID, date)
}

func (s *PlanService) cacheSet(ctx context.Context, userID uuid.UUID, date string, out *planner.Output) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(out)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, planCacheKey(userID, date), payload, planCacheTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("plan cache write failed")
	}
}

func (s *PlanService) cacheGet(ctx context.Context, userID uuid.UUID, date string) *planner.Output {
	if s.cache == nil {
		return nil
	}
	payload, err := s.cache.Get(ctx, planCacheKey(userID, date)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Msg("plan cache read failed")
		}
		return nil
	}
	var out planner.Output
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil
	}
	return &out
}
