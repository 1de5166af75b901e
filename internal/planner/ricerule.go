package planner

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ricebowl-app/backend/internal/models"
)

// Violation issue codes.
const (
	IssueDryWithoutDal = "dry_without_dal"
	IssueNoRiceOption  = "no_rice_option"
)

// Violation describes one non-compliant meal slot. It exists only within a
// single validation pass.
type Violation struct {
	Meal            MealType `json:"meal"`
	RecipeID        string   `json:"recipe_id"`
	Issue           string   `json:"issue"`
	AutoFixRecipeID string   `json:"auto_fix_recipe_id,omitempty"`
	Message         string   `json:"message"`
}

// ValidationResult is the outcome of a Rice Rule check.
type ValidationResult struct {
	IsValid    bool        `json:"is_valid"`
	Violations []Violation `json:"violations"`
}

// AutoFixResult is the outcome of an auto-fix attempt. Violations carries a
// new slice with the fix stamped; the input list is never mutated.
type AutoFixResult struct {
	FixApplied    bool        `json:"fix_applied"`
	AddedRecipeID string      `json:"added_recipe_id,omitempty"`
	Message       string      `json:"message"`
	Violations    []Violation `json:"violations"`
}

// ValidateRiceRule checks a day's plan against the Rice Rule: a rice-friendly
// dry dish must not stand alone without a wet (dal/curry) accompaniment. The
// rule is a cultural preference and is skipped entirely when the user has no
// rice preference. Only lunch and dinner are examined.
func ValidateRiceRule(plan *models.DailyPlan, recipes []models.Recipe, user *models.User) ValidationResult {
	if user == nil || !user.RicePreference {
		return ValidationResult{IsValid: true}
	}

	recipeMap := make(map[string]models.Recipe, len(recipes))
	for _, r := range recipes {
		recipeMap[r.ID] = r
	}

	var violations []Violation
	meals := []struct {
		Type     MealType
		RecipeID string
	}{
		{MealLunch, plan.LunchRecipeID},
		{MealDinner, plan.DinnerRecipeID},
	}

	for _, meal := range meals {
		if meal.RecipeID == "" {
			continue
		}
		recipe, ok := recipeMap[meal.RecipeID]
		if !ok {
			continue
		}

		if recipe.IsRiceFriendly && recipe.IsDry && !recipe.IsWet && !hasWetAccompaniment(plan, recipeMap) {
			violations = append(violations, Violation{
				Meal:     meal.Type,
				RecipeID: meal.RecipeID,
				Issue:    IssueDryWithoutDal,
				Message:  fmt.Sprintf("%s is a dry dish. Add dal or curry for a complete meal with rice.", recipe.Name),
			})
		}
	}

	return ValidationResult{
		IsValid:    len(violations) == 0,
		Violations: violations,
	}
}

// hasWetAccompaniment checks whether the plan already carries a wet dish.
// Only the auto-added slot is recognized; side dishes are not modeled yet,
// so the check stays intentionally narrow.
func hasWetAccompaniment(plan *models.DailyPlan, recipeMap map[string]models.Recipe) bool {
	if plan.RiceRuleAutoAdded == "" {
		return false
	}
	recipe, ok := recipeMap[plan.RiceRuleAutoAdded]
	return ok && recipe.IsWet
}

// AutoFixRiceRule resolves violations by selecting a quick wet dish. Only
// dishes named like a dal, curry or sambar qualify; an arbitrary wet dish is
// never substituted. The same fix is stamped on every violation.
func AutoFixRiceRule(violations []Violation, available []models.Recipe) AutoFixResult {
	if len(violations) == 0 {
		return AutoFixResult{Message: "No violations to fix"}
	}

	var wetDishes []models.Recipe
	for _, r := range available {
		if r.IsWet && !r.IsPremium && r.TimeTier <= 30 {
			wetDishes = append(wetDishes, r)
		}
	}

	var quickDals []models.Recipe
	for _, r := range wetDishes {
		name := strings.ToLower(r.Name)
		if strings.Contains(name, "dal") || strings.Contains(name, "curry") || strings.Contains(name, "sambar") {
			quickDals = append(quickDals, r)
		}
	}
	sort.SliceStable(quickDals, func(i, j int) bool {
		return quickDals[i].TimeTier < quickDals[j].TimeTier
	})

	if len(quickDals) == 0 {
		fixed := make([]Violation, len(violations))
		copy(fixed, violations)
		return AutoFixResult{
			Message:    "No suitable dal/curry found. Please add one manually.",
			Violations: fixed,
		}
	}

	selected := quickDals[0]
	fixed := make([]Violation, len(violations))
	for i, v := range violations {
		v.AutoFixRecipeID = selected.ID
		fixed[i] = v
	}

	return AutoFixResult{
		FixApplied:    true,
		AddedRecipeID: selected.ID,
		Message:       fmt.Sprintf("Added %s to complete the meal", selected.Name),
		Violations:    fixed,
	}
}

// SuggestWetDishes ranks non-premium wet dishes to pair with a dry dish by
// how much of their required ingredients the pantry covers, returning the
// top three. Ties keep catalog order.
func SuggestWetDishes(dryRecipe models.Recipe, available []models.Recipe, pantryItems []string) []models.Recipe {
	pantry := make(map[string]bool, len(pantryItems))
	for _, name := range pantryItems {
		pantry[strings.ToLower(name)] = true
	}

	type scoredRecipe struct {
		recipe models.Recipe
		score  float64
	}
	var scored []scoredRecipe
	for _, r := range available {
		if !r.IsWet || r.IsPremium {
			continue
		}
		scored = append(scored, scoredRecipe{recipe: r, score: ingredientCoverage(r, pantry)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	limit := 3
	if len(scored) < limit {
		limit = len(scored)
	}
	suggestions := make([]models.Recipe, 0, limit)
	for _, s := range scored[:limit] {
		suggestions = append(suggestions, s.recipe)
	}
	return suggestions
}

// IsValidCombination reports whether a main/side pairing is acceptable when
// rice is or is not part of the meal.
func IsValidCombination(main models.Recipe, side *models.Recipe, includesRice bool) bool {
	if !includesRice {
		return true
	}
	if main.IsWet {
		return true
	}
	if main.IsDry {
		if side == nil {
			return false
		}
		return side.IsWet
	}
	// No dryness/wetness signal implies no constraint.
	return true
}

// ingredientCoverage scores a recipe by matched pantry ingredients over the
// count of required ingredients. A recipe with no required ingredients scores
// zero so sorting stays total.
func ingredientCoverage(r models.Recipe, pantry map[string]bool) float64 {
	matching := 0
	for _, ing := range r.Ingredients {
		if pantry[strings.ToLower(ing.Name)] {
			matching++
		}
	}

	required := 0
	for _, ing := range r.Ingredients {
		if !ing.IsOptional {
			required++
		}
	}
	if required == 0 {
		return 0
	}
	return float64(matching) / float64(required)
}
