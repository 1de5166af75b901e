package planner

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricebowl-app/backend/internal/models"
)

func testUser(ricePref bool) models.User {
	return models.User{ID: uuid.New(), Name: "Tester", RicePreference: ricePref}
}

func quickRecipe(id, name string) models.Recipe {
	return models.Recipe{ID: id, Name: name, TimeTier: 10}
}

func TestGenerateSurvivalPlanLeftoverUpgradeAtNinePM(t *testing.T) {
	recipes := []models.Recipe{
		quickRecipe("upma", "Upma"),
		{ID: "fried_rice", Name: "Egg Fried Rice", TimeTier: 10, IsRiceFriendly: true},
	}
	pantry := []models.PantryItem{
		{IngredientName: "rice", IsLeftover: true, LeftoverFromRecipeID: "r10"},
	}

	out, err := GenerateSurvivalPlan(Input{
		User:             testUser(false),
		PantryItems:      pantry,
		AvailableRecipes: recipes,
		CurrentDate:      "2025-03-10",
		CurrentTime:      "21:00",
	})
	require.NoError(t, err)

	// Leftovers seed lunch with the resolved upgrade and record the source;
	// regular lunch planning (which would pick "upma", the first quick
	// recipe) is bypassed.
	assert.Equal(t, "fried_rice", out.DailyPlan.LunchRecipeID)
	assert.Equal(t, "r10", out.DailyPlan.LeftoverRecipeID)
}

func TestCheckLeftoversUpgradeDescription(t *testing.T) {
	pantry := []models.PantryItem{
		{IngredientName: "Rice", IsLeftover: true, LeftoverFromRecipeID: "r10"},
	}
	recipes := []models.Recipe{{ID: "fried_rice", Name: "Egg Fried Rice"}}

	result := checkLeftovers(pantry, recipes, 21)
	assert.True(t, result.HasLeftovers)
	assert.Equal(t, "r10", result.OriginalRecipeID)
	assert.Equal(t, "fried_rice", result.UpgradeRecipeID)
	assert.Contains(t, result.UpgradeDescription, "fried rice")
}

func TestCheckLeftoversGenericFallback(t *testing.T) {
	pantry := []models.PantryItem{
		{IngredientName: "paneer", IsLeftover: true, LeftoverFromRecipeID: "r7"},
	}

	result := checkLeftovers(pantry, nil, 21)
	assert.True(t, result.HasLeftovers)
	assert.Equal(t, "r7", result.OriginalRecipeID)
	assert.Empty(t, result.UpgradeRecipeID)
	assert.Equal(t, "Use up leftovers to prevent waste", result.UpgradeDescription)
}

func TestCheckLeftoversOnlyTriggersAtNinePM(t *testing.T) {
	pantry := []models.PantryItem{
		{IngredientName: "rice", IsLeftover: true},
	}

	for _, hour := range []int{20, 22, 9} {
		result := checkLeftovers(pantry, nil, hour)
		assert.False(t, result.HasLeftovers, "hour %d must not trigger", hour)
	}
}

func TestCheckLeftoversRequiresLeftoverItems(t *testing.T) {
	pantry := []models.PantryItem{{IngredientName: "rice"}}
	assert.False(t, checkLeftovers(pantry, nil, 21).HasLeftovers)
}

func TestPlanLunchPrefersExpiringIngredients(t *testing.T) {
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	expiry := now.Add(48 * time.Hour) // exactly two days out: inclusive

	recipes := []models.Recipe{
		quickRecipe("upma", "Upma"),
		{ID: "palak_stir", Name: "Palak Stir", TimeTier: 10, Ingredients: models.IngredientList{
			{Name: "Spinach", Quantity: 1, Unit: "bunch"},
		}},
	}
	pantry := []models.PantryItem{
		{IngredientName: "spinach", ExpiryDate: &expiry},
	}

	lunch := planLunch(pantry, recipes, now)
	assert.Equal(t, "palak_stir", lunch.RecipeID)
	assert.False(t, lunch.EatingOut)
	// The cook-extra branch compares against tier 30 and can never fire for
	// a 10-minute recipe.
	assert.False(t, lunch.CookExtra)
}

func TestPlanLunchIgnoresDistantExpiry(t *testing.T) {
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	expiry := now.Add(72 * time.Hour)

	recipes := []models.Recipe{
		quickRecipe("upma", "Upma"),
		{ID: "palak_stir", Name: "Palak Stir", TimeTier: 10, Ingredients: models.IngredientList{
			{Name: "spinach", Quantity: 1, Unit: "bunch"},
		}},
	}
	pantry := []models.PantryItem{
		{IngredientName: "spinach", ExpiryDate: &expiry},
	}

	lunch := planLunch(pantry, recipes, now)
	assert.Equal(t, "upma", lunch.RecipeID)
}

func TestPlanLunchExcludesPremiumAndSlowRecipes(t *testing.T) {
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	recipes := []models.Recipe{
		{ID: "premium_quick", Name: "Premium Quick", TimeTier: 10, IsPremium: true},
		{ID: "slow", Name: "Slow Feast", TimeTier: 30},
		quickRecipe("upma", "Upma"),
	}

	lunch := planLunch(nil, recipes, now)
	assert.Equal(t, "upma", lunch.RecipeID)
}

func TestPlanLunchEmptyCatalog(t *testing.T) {
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	lunch := planLunch(nil, nil, now)
	assert.Empty(t, lunch.RecipeID)
}

func TestSelectDinnerScoresPantryCoverage(t *testing.T) {
	recipes := []models.Recipe{
		{ID: "low_coverage", Name: "Low", TimeTier: 30, IsComfortFood: true, IsRiceFriendly: true,
			Ingredients: models.IngredientList{
				{Name: "lamb", Quantity: 500, Unit: "g"},
				{Name: "saffron", Quantity: 1, Unit: "pinch"},
			}},
		{ID: "high_coverage", Name: "High", TimeTier: 30, IsComfortFood: true, IsRiceFriendly: true,
			Ingredients: models.IngredientList{
				{Name: "Rice", Quantity: 1, Unit: "cups"},
				{Name: "Onion", Quantity: 1, Unit: "pieces"},
			}},
	}
	pantry := []models.PantryItem{
		{IngredientName: "rice"},
		{IngredientName: "onion"},
	}

	assert.Equal(t, "high_coverage", selectDinner(testUser(true), pantry, recipes))
}

func TestSelectDinnerTieKeepsCatalogOrder(t *testing.T) {
	recipes := []models.Recipe{
		{ID: "first", Name: "First", TimeTier: 30, IsComfortFood: true, IsRiceFriendly: true,
			Ingredients: models.IngredientList{{Name: "rice", Quantity: 1, Unit: "cups"}}},
		{ID: "second", Name: "Second", TimeTier: 30, IsComfortFood: true, IsRiceFriendly: true,
			Ingredients: models.IngredientList{{Name: "rice", Quantity: 1, Unit: "cups"}}},
	}
	pantry := []models.PantryItem{{IngredientName: "rice"}}

	assert.Equal(t, "first", selectDinner(testUser(true), pantry, recipes))
}

func TestSelectDinnerRiceFirstFiltering(t *testing.T) {
	recipes := []models.Recipe{
		{ID: "pasta", Name: "Pasta", TimeTier: 30, IsComfortFood: true},
		{ID: "khichdi", Name: "Khichdi", TimeTier: 30, IsComfortFood: true, IsRiceFriendly: true},
	}

	assert.Equal(t, "khichdi", selectDinner(testUser(true), nil, recipes))
	assert.Equal(t, "pasta", selectDinner(testUser(false), nil, recipes))
}

func TestSelectDinnerFallsBackWithoutComfortTier(t *testing.T) {
	recipes := []models.Recipe{
		{ID: "quick_rice", Name: "Quick Rice", TimeTier: 10, IsRiceFriendly: true},
	}
	assert.Equal(t, "quick_rice", selectDinner(testUser(true), nil, recipes))
	assert.Empty(t, selectDinner(testUser(true), nil, nil))
}

func TestGenerateSurvivalPlanAutoFixesRiceRule(t *testing.T) {
	recipes := []models.Recipe{
		{ID: "aloo_bhaja", Name: "Aloo Bhaja", TimeTier: 30, IsComfortFood: true,
			IsRiceFriendly: true, IsDry: true},
		{ID: "dal_tadka", Name: "Dal Tadka", TimeTier: 10, IsWet: true,
			Ingredients: models.IngredientList{{Name: "toor dal", Quantity: 1, Unit: "cups"}}},
	}

	out, err := GenerateSurvivalPlan(Input{
		User:             testUser(true),
		AvailableRecipes: recipes,
		CurrentDate:      "2025-03-10",
		CurrentTime:      "10:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "aloo_bhaja", out.DailyPlan.DinnerRecipeID)
	assert.Equal(t, "dal_tadka", out.DailyPlan.RiceRuleAutoAdded)
	assert.True(t, out.DailyPlan.RiceRuleCompliant)
	require.Len(t, out.RiceRuleViolations, 1)
	assert.Equal(t, "dal_tadka", out.RiceRuleViolations[0].AutoFixRecipeID)
}

func TestGenerateSurvivalPlanUnresolvedViolationStaysNonCompliant(t *testing.T) {
	recipes := []models.Recipe{
		{ID: "aloo_bhaja", Name: "Aloo Bhaja", TimeTier: 30, IsComfortFood: true,
			IsRiceFriendly: true, IsDry: true},
	}

	out, err := GenerateSurvivalPlan(Input{
		User:             testUser(true),
		AvailableRecipes: recipes,
		CurrentDate:      "2025-03-10",
		CurrentTime:      "10:00",
	})
	require.NoError(t, err)

	assert.False(t, out.DailyPlan.RiceRuleCompliant)
	require.Len(t, out.RiceRuleViolations, 1)
	assert.Empty(t, out.RiceRuleViolations[0].AutoFixRecipeID)
}

func TestGenerateSurvivalPlanGroceryCoercesUnparsableQuantity(t *testing.T) {
	recipes := []models.Recipe{
		{ID: "rice_bowl", Name: "Rice Bowl", TimeTier: 10, Ingredients: models.IngredientList{
			{Name: "rice", Quantity: 3, Unit: "cups"},
			{Name: "pickle", Quantity: 1, Unit: "tbsp", IsOptional: true},
		}},
	}
	pantry := []models.PantryItem{
		{IngredientName: "rice", Quantity: "abc", Unit: "cups"},
	}

	out, err := GenerateSurvivalPlan(Input{
		User:             testUser(false),
		PantryItems:      pantry,
		AvailableRecipes: recipes,
		CurrentDate:      "2025-03-10",
		CurrentTime:      "10:00",
	})
	require.NoError(t, err)

	require.Len(t, out.GroceryList, 1)
	task := out.GroceryList[0]
	assert.Equal(t, "rice", task.Ingredient)
	assert.Equal(t, 3.0, task.Quantity)
	assert.True(t, task.BuyTonight)
	// Optional ingredients never reach the grocery list.
	for _, g := range out.GroceryList {
		assert.NotEqual(t, "pickle", g.Ingredient)
	}
}

func TestGenerateSurvivalPlanAggregatesIngredientsAcrossMeals(t *testing.T) {
	recipes := []models.Recipe{
		{ID: "lunch_dish", Name: "Lunch Dish", TimeTier: 10, Ingredients: models.IngredientList{
			{Name: "Onion", Quantity: 1, Unit: "pieces"},
		}},
		{ID: "dinner_dish", Name: "Dinner Dish", TimeTier: 30, IsComfortFood: true, Ingredients: models.IngredientList{
			{Name: "onion", Quantity: 2, Unit: "pieces"},
		}},
	}

	out, err := GenerateSurvivalPlan(Input{
		User:             testUser(false),
		AvailableRecipes: recipes,
		CurrentDate:      "2025-03-10",
		CurrentTime:      "10:00",
	})
	require.NoError(t, err)

	require.Len(t, out.GroceryList, 1)
	assert.Equal(t, "onion", out.GroceryList[0].Ingredient)
	assert.Equal(t, 3.0, out.GroceryList[0].Quantity)
}

func TestGenerateSurvivalPlanDerivesSoakPrep(t *testing.T) {
	recipes := []models.Recipe{
		{ID: "rajma", Name: "Rajma Masala", TimeTier: 30, IsComfortFood: true, IsWet: true,
			RequiresSoaking: true, SoakIngredient: "rajma", SoakHours: 8,
			Ingredients: models.IngredientList{{Name: "rajma", Quantity: 1, Unit: "cups"}}},
	}

	out, err := GenerateSurvivalPlan(Input{
		User:             testUser(false),
		AvailableRecipes: recipes,
		CurrentDate:      "2025-03-10",
		CurrentTime:      "10:00",
	})
	require.NoError(t, err)

	require.Len(t, out.PrepTasks, 1)
	prep := out.PrepTasks[0]
	assert.Equal(t, "prep_soak_rajma", prep.ID)
	assert.True(t, prep.IsSoaking)
	// Dinner at 20:00 minus 8h.
	assert.Equal(t, "12:00", prep.ScheduledTime)
	assert.Contains(t, prep.Description, "8 hours")

	require.Len(t, out.Notifications, 1)
	n := out.Notifications[0]
	assert.Equal(t, "soak_alert", n.Type)
	assert.True(t, n.IsCritical)
	assert.Contains(t, n.Body, "rajma")
	assert.Contains(t, n.Body, "12:00")
}

func TestGenerateSurvivalPlanEmptyInputsDegradeGracefully(t *testing.T) {
	out, err := GenerateSurvivalPlan(Input{
		User:        testUser(true),
		CurrentDate: "2025-03-10",
		CurrentTime: "10:00",
	})
	require.NoError(t, err)

	assert.Empty(t, out.DailyPlan.LunchRecipeID)
	assert.Empty(t, out.DailyPlan.DinnerRecipeID)
	assert.True(t, out.DailyPlan.RiceRuleCompliant)
	assert.Empty(t, out.GroceryList)
	assert.Empty(t, out.PrepTasks)
	assert.Empty(t, out.Notifications)
	assert.Empty(t, out.RiceRuleViolations)
}

func TestGenerateSurvivalPlanRejectsMalformedInput(t *testing.T) {
	_, err := GenerateSurvivalPlan(Input{
		User:        testUser(false),
		CurrentDate: "not-a-date",
		CurrentTime: "10:00",
	})
	assert.Error(t, err)

	_, err = GenerateSurvivalPlan(Input{
		User:        testUser(false),
		CurrentDate: "2025-03-10",
		CurrentTime: "10:99",
	})
	assert.Error(t, err)
}
