package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ricebowl-app/backend/internal/catalog"
	"github.com/ricebowl-app/backend/internal/models"
)

var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrPremiumRecipe  = errors.New("recipe requires a premium subscription")
)

type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// ListOptions filters the catalog listing. A zero TimeTier means any tier.
type ListOptions struct {
	TimeTier       int
	IncludePremium bool
	RiceFriendly   bool
}

// List returns catalog recipes from the database. Premium recipes are hidden
// unless the caller's subscription includes them.
func (s *RecipeService) List(opts ListOptions) ([]models.Recipe, error) {
	query := s.db.Model(&models.Recipe{})
	if opts.TimeTier > 0 {
		query = query.Where("time_tier = ?", opts.TimeTier)
	}
	if !opts.IncludePremium {
		query = query.Where("is_premium = ?", false)
	}
	if opts.RiceFriendly {
		query = query.Where("is_rice_friendly = ?", true)
	}

	var recipes []models.Recipe
	if err := query.Order("id").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// Get fetches a single recipe. Premium entries are gated for free users;
// the static free list is authoritative for ids the database predates.
func (s *RecipeService) Get(id string, userIsPremium bool) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.First(&recipe, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecipeNotFound
	}
	if err != nil {
		return nil, err
	}

	if recipe.IsPremium && !userIsPremium && !catalog.IsFreeRecipe(recipe.ID) {
		return nil, ErrPremiumRecipe
	}
	return &recipe, nil
}

// AvailableForUser returns the recipes the planner may schedule for a user:
// the full catalog for premium subscribers, free recipes otherwise.
func (s *RecipeService) AvailableForUser(user *models.User) ([]models.Recipe, error) {
	return s.List(ListOptions{IncludePremium: user.IsPremium})
}
