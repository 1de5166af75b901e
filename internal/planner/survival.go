// Package planner implements the survival planning engine: a deterministic,
// side-effect-free pipeline that turns a pantry snapshot, a recipe catalog and
// user preferences into a daily plan with derived logistics.
//
// Priority hierarchy:
//  1. Leftover check (9 PM trigger)
//  2. Lunch planning (quick tier, expiry priority)
//  3. Dinner selection (rice-first, comfort tier, pantry coverage)
//  4. Rice Rule validation with auto-fix
//  5. Logistics (grocery shortfalls, soak prep tasks, notification intents)
package planner

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ricebowl-app/backend/internal/models"
	"github.com/ricebowl-app/backend/internal/notify"
)

// Input is the full snapshot one plan generation runs over. CurrentDate and
// CurrentTime are injected by the caller; the engine never reads the system
// clock.
type Input struct {
	User             models.User         `json:"user"`
	PantryItems      []models.PantryItem `json:"pantry_items"`
	AvailableRecipes []models.Recipe     `json:"available_recipes"`
	CurrentDate      string              `json:"current_date"` // "YYYY-MM-DD"
	CurrentTime      string              `json:"current_time"` // "HH:mm"
}

// Output is the complete result of one generation. Empty slots and lists mean
// "nothing to do"; generation never partially commits.
type Output struct {
	DailyPlan          models.DailyPlan      `json:"daily_plan"`
	GroceryList        []models.GroceryTask  `json:"grocery_list"`
	PrepTasks          []models.PrepTask     `json:"prep_tasks"`
	Notifications      []models.Notification `json:"notifications"`
	RiceRuleViolations []Violation           `json:"rice_rule_violations"`
}

// GenerateSurvivalPlan runs the full pipeline. It returns an error only for
// malformed date/time input; missing recipes or an empty pantry degrade to
// unassigned slots and empty lists.
func GenerateSurvivalPlan(in Input) (*Output, error) {
	date, err := time.Parse("2006-01-02", in.CurrentDate)
	if err != nil {
		return nil, fmt.Errorf("current date: %w", err)
	}
	hour, minute, err := parseClock(in.CurrentTime)
	if err != nil {
		return nil, fmt.Errorf("current time: %w", err)
	}
	now := date.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)

	plan := models.DailyPlan{
		UserID: in.User.ID,
		Date:   in.CurrentDate,
	}

	// Step 1: leftovers seed lunch and bypass lunch planning entirely.
	leftovers := checkLeftovers(in.PantryItems, in.AvailableRecipes, hour)
	if leftovers.HasLeftovers {
		plan.LunchRecipeID = leftovers.UpgradeRecipeID
		plan.LeftoverRecipeID = leftovers.OriginalRecipeID
	} else {
		// Step 2: plan lunch.
		lunch := planLunch(in.PantryItems, in.AvailableRecipes, now)
		plan.LunchRecipeID = lunch.RecipeID
		plan.LunchEatingOut = lunch.EatingOut
		plan.CookExtraForTomorrow = lunch.CookExtra
	}

	// Step 3: select dinner, rice-first.
	plan.DinnerRecipeID = selectDinner(in.User, in.PantryItems, in.AvailableRecipes)

	// Step 4: Rice Rule validation and auto-fix.
	var violations []Violation
	validation := ValidateRiceRule(&plan, in.AvailableRecipes, &in.User)
	if !validation.IsValid {
		fix := AutoFixRiceRule(validation.Violations, in.AvailableRecipes)
		violations = fix.Violations
		if fix.FixApplied {
			plan.RiceRuleAutoAdded = fix.AddedRecipeID
			plan.RiceRuleCompliant = true
		}
	} else {
		plan.RiceRuleCompliant = true
	}

	// Step 5: derive logistics from the assembled plan.
	logistics, err := generateLogistics(&plan, in.AvailableRecipes, in.PantryItems, in.CurrentTime)
	if err != nil {
		return nil, err
	}
	plan.GroceryTasks = logistics.GroceryTasks
	plan.PrepTasks = logistics.PrepTasks

	return &Output{
		DailyPlan:          plan,
		GroceryList:        logistics.GroceryTasks,
		PrepTasks:          logistics.PrepTasks,
		Notifications:      logistics.Notifications,
		RiceRuleViolations: violations,
	}, nil
}

// LeftoverCheck is the result of the 9 PM leftover scan.
type LeftoverCheck struct {
	HasLeftovers       bool   `json:"has_leftovers"`
	OriginalRecipeID   string `json:"original_recipe_id,omitempty"`
	UpgradeRecipeID    string `json:"upgrade_recipe_id,omitempty"`
	UpgradeDescription string `json:"upgrade_description,omitempty"`
}

type leftoverUpgrade struct {
	Ingredient  string
	RecipeID    string
	Description string
}

// leftoverUpgrades maps leftover ingredient names to upgrade recipes, matched
// by exact case-insensitive name. Unlisted leftovers fall through to a
// generic use-up suggestion.
var leftoverUpgrades = []leftoverUpgrade{
	{Ingredient: "rice", RecipeID: "fried_rice", Description: "Transform leftover rice into quick fried rice"},
	{Ingredient: "dal", RecipeID: "dal_tadka", Description: "Reheat with fresh tadka for enhanced flavor"},
	{Ingredient: "roti", RecipeID: "roti_wrap", Description: "Make wraps with available fillings"},
	{Ingredient: "vegetables", RecipeID: "stir_fry", Description: "Quick stir-fry with fresh aromatics"},
}

// checkLeftovers scans for leftover pantry items. The check only triggers at
// the 9 PM hour exactly; any other hour returns an empty result.
func checkLeftovers(pantry []models.PantryItem, recipes []models.Recipe, hour int) LeftoverCheck {
	var leftoverItems []models.PantryItem
	for _, item := range pantry {
		if item.IsLeftover {
			leftoverItems = append(leftoverItems, item)
		}
	}

	if len(leftoverItems) == 0 || hour != 21 {
		return LeftoverCheck{}
	}

	for _, item := range leftoverItems {
		for _, upgrade := range leftoverUpgrades {
			if strings.EqualFold(item.IngredientName, upgrade.Ingredient) {
				return LeftoverCheck{
					HasLeftovers:       true,
					OriginalRecipeID:   item.LeftoverFromRecipeID,
					UpgradeRecipeID:    resolveRecipe(upgrade.RecipeID, recipes),
					UpgradeDescription: upgrade.Description,
				}
			}
		}
	}

	return LeftoverCheck{
		HasLeftovers:       true,
		OriginalRecipeID:   leftoverItems[0].LeftoverFromRecipeID,
		UpgradeDescription: "Use up leftovers to prevent waste",
	}
}

// resolveRecipe returns the id when the catalog carries it, else empty.
func resolveRecipe(id string, recipes []models.Recipe) string {
	for _, r := range recipes {
		if r.ID == id {
			return id
		}
	}
	return ""
}

type lunchPlan struct {
	RecipeID  string
	EatingOut bool
	CookExtra bool
}

// planLunch picks a quick non-premium recipe, preferring one that uses an
// ingredient expiring within two days (inclusive).
func planLunch(pantry []models.PantryItem, recipes []models.Recipe, now time.Time) lunchPlan {
	var quickRecipes []models.Recipe
	for _, r := range recipes {
		if r.TimeTier == 10 && !r.IsPremium {
			quickRecipes = append(quickRecipes, r)
		}
	}

	var expiring []models.PantryItem
	for _, item := range pantry {
		if item.ExpiryDate == nil {
			continue
		}
		days := int(math.Ceil(item.ExpiryDate.Sub(now).Hours() / 24))
		if days <= 2 {
			expiring = append(expiring, item)
		}
	}

	if len(expiring) > 0 {
		for _, recipe := range quickRecipes {
			if usesAnyIngredient(recipe, expiring) {
				return lunchPlan{
					RecipeID: recipe.ID,
					// Cook extra for longer recipes. Unreachable after the
					// 10-minute filter above; kept pending product
					// clarification of the intended threshold.
					CookExtra: recipe.TimeTier >= 30,
				}
			}
		}
	}

	if len(quickRecipes) > 0 {
		return lunchPlan{RecipeID: quickRecipes[0].ID}
	}
	return lunchPlan{}
}

func usesAnyIngredient(recipe models.Recipe, items []models.PantryItem) bool {
	for _, ing := range recipe.Ingredients {
		for _, item := range items {
			if strings.EqualFold(ing.Name, item.IngredientName) {
				return true
			}
		}
	}
	return false
}

// selectDinner applies the rice-first priority: rice-preference users only see
// rice-friendly candidates. Within those, 30-minute comfort food is scored by
// pantry coverage of required ingredients, ties keeping catalog order.
func selectDinner(user models.User, pantry []models.PantryItem, recipes []models.Recipe) string {
	candidates := recipes
	if user.RicePreference {
		candidates = nil
		for _, r := range recipes {
			if r.IsRiceFriendly {
				candidates = append(candidates, r)
			}
		}
	}

	var comfort []models.Recipe
	for _, r := range candidates {
		if r.TimeTier == 30 && r.IsComfortFood {
			comfort = append(comfort, r)
		}
	}

	pantrySet := make(map[string]bool, len(pantry))
	for _, item := range pantry {
		pantrySet[strings.ToLower(item.IngredientName)] = true
	}

	type scoredRecipe struct {
		recipe models.Recipe
		score  float64
	}
	scored := make([]scoredRecipe, 0, len(comfort))
	for _, r := range comfort {
		scored = append(scored, scoredRecipe{recipe: r, score: ingredientCoverage(r, pantrySet)})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > 0 {
		return scored[0].recipe.ID
	}
	if len(candidates) > 0 {
		return candidates[0].ID
	}
	return ""
}

type logisticsResult struct {
	GroceryTasks  []models.GroceryTask
	PrepTasks     []models.PrepTask
	Notifications []models.Notification
}

// generateLogistics diffs the plan's required ingredients against the pantry
// and derives soak prep tasks with their notification intents.
func generateLogistics(plan *models.DailyPlan, recipes []models.Recipe, pantry []models.PantryItem, currentTime string) (logisticsResult, error) {
	var result logisticsResult

	plannedIDs := plan.PlannedRecipeIDs()
	idSet := make(map[string]bool, len(plannedIDs))
	for _, id := range plannedIDs {
		idSet[id] = true
	}
	var planned []models.Recipe
	for _, r := range recipes {
		if idSet[r.ID] {
			planned = append(planned, r)
		}
	}

	// Sum required quantities across planned recipes, keyed by lowercased
	// ingredient name. Optional ingredients are excluded.
	type requirement struct {
		Quantity float64
		Unit     string
	}
	required := make(map[string]*requirement)
	var order []string
	for _, recipe := range planned {
		for _, ing := range recipe.Ingredients {
			if ing.IsOptional {
				continue
			}
			key := strings.ToLower(ing.Name)
			if existing, ok := required[key]; ok {
				existing.Quantity += ing.Quantity
			} else {
				required[key] = &requirement{Quantity: ing.Quantity, Unit: ing.Unit}
				order = append(order, key)
			}
		}
	}

	pantryMap := make(map[string]models.PantryItem, len(pantry))
	for _, item := range pantry {
		pantryMap[strings.ToLower(item.IngredientName)] = item
	}

	for _, key := range order {
		req := required[key]
		item, inPantry := pantryMap[key]

		// Unparsable or missing quantity counts as zero on hand, biasing
		// toward "needs to be bought".
		pantryQuantity := 0.0
		if inPantry {
			if parsed, err := strconv.ParseFloat(strings.TrimSpace(item.Quantity), 64); err == nil {
				pantryQuantity = parsed
			}
		}

		if !inPantry || pantryQuantity < req.Quantity {
			result.GroceryTasks = append(result.GroceryTasks, models.GroceryTask{
				ID:         "grocery_" + key,
				Ingredient: key,
				Quantity:   req.Quantity - pantryQuantity,
				Unit:       req.Unit,
				BuyTonight: true, // no buy-tomorrow rule exists yet
			})
		}
	}

	for _, recipe := range planned {
		if !recipe.RequiresSoaking || recipe.SoakIngredient == "" {
			continue
		}

		// Soak timing is always computed against dinner; plans do not yet
		// track which meal a soaked ingredient belongs to.
		reminder, err := CalculateSoakReminder(recipe.SoakHours, MealDinner, currentTime, "")
		if err != nil {
			return logisticsResult{}, fmt.Errorf("soak reminder for %s: %w", recipe.ID, err)
		}

		result.PrepTasks = append(result.PrepTasks, models.PrepTask{
			ID:            "prep_soak_" + recipe.ID,
			Description:   fmt.Sprintf("Soak %s for %d hours", recipe.SoakIngredient, recipe.SoakHours),
			RecipeID:      recipe.ID,
			ScheduledTime: reminder.ReminderTime,
			IsSoaking:     true,
		})

		notification, err := notify.Generate(notify.TypeSoakAlert, models.NotificationData{
			"ingredient": recipe.SoakIngredient,
			"hours":      recipe.SoakHours,
			"meal":       string(MealDinner),
			"time":       reminder.ReminderTime,
		})
		if err != nil {
			return logisticsResult{}, err
		}
		result.Notifications = append(result.Notifications, notification)
	}

	return result, nil
}
