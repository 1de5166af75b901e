// Package catalog holds the static recipe and grocery datasets. The planner
// never reaches into this package directly; the data is injected as a
// read-only slice wherever it is needed.
package catalog

import "github.com/ricebowl-app/backend/internal/models"

// Recipes is the built-in recipe catalog. IDs are stable slugs; the leftover
// upgrade table in the planner refers to fried_rice, dal_tadka, roti_wrap and
// stir_fry by these ids.
var Recipes = []models.Recipe{
	{
		ID: "fried_rice", Name: "Egg Fried Rice", Description: "Day-old rice stir-fried with egg and whatever vegetables are around.",
		TimeTier: 10, PrepTimeMinutes: 5, CookTimeMinutes: 10,
		IsRiceFriendly: true, IsDry: true, IsComfortFood: true, IsVegetarian: false,
		Ingredients: models.IngredientList{
			{Name: "rice", Quantity: 2, Unit: "cups"},
			{Name: "egg", Quantity: 2, Unit: "pieces"},
			{Name: "onion", Quantity: 1, Unit: "pieces"},
			{Name: "soy sauce", Quantity: 1, Unit: "tbsp", IsOptional: true},
		},
		Steps:   []string{"Beat and scramble the eggs", "Stir-fry onion, add rice", "Fold in eggs, season"},
		Cuisine: "indo_chinese", CaloriesApprox: 420, ProteinApprox: 14,
	},
	{
		ID: "dal_tadka", Name: "Dal Tadka", Description: "Toor dal tempered with ghee, cumin and garlic.",
		TimeTier: 30, PrepTimeMinutes: 10, CookTimeMinutes: 25,
		IsRiceFriendly: true, IsWet: true, IsComfortFood: true, IsVegetarian: true,
		Ingredients: models.IngredientList{
			{Name: "toor dal", Quantity: 1, Unit: "cups"},
			{Name: "onion", Quantity: 1, Unit: "pieces"},
			{Name: "tomato", Quantity: 1, Unit: "pieces"},
			{Name: "ghee", Quantity: 1, Unit: "tbsp"},
			{Name: "garlic", Quantity: 4, Unit: "cloves", IsOptional: true},
		},
		Steps:   []string{"Pressure cook the dal", "Fry the tempering", "Pour over and simmer"},
		Cuisine: "north_indian", CaloriesApprox: 310, ProteinApprox: 16,
	},
	{
		ID: "roti_wrap", Name: "Roti Wrap", Description: "Leftover rotis rolled around a quick filling.",
		TimeTier: 10, PrepTimeMinutes: 5, CookTimeMinutes: 5,
		IsDry: true, IsVegetarian: true,
		Ingredients: models.IngredientList{
			{Name: "roti", Quantity: 2, Unit: "pieces"},
			{Name: "onion", Quantity: 1, Unit: "pieces"},
			{Name: "paneer", Quantity: 100, Unit: "g", IsOptional: true},
		},
		Steps:   []string{"Warm the rotis", "Fill and roll"},
		Cuisine: "north_indian", CaloriesApprox: 350, ProteinApprox: 10,
	},
	{
		ID: "stir_fry", Name: "Vegetable Stir Fry", Description: "Quick stir-fry with fresh aromatics for tired vegetables.",
		TimeTier: 10, PrepTimeMinutes: 5, CookTimeMinutes: 8,
		IsRiceFriendly: true, IsDry: true, IsVegetarian: true, IsVegan: true,
		Ingredients: models.IngredientList{
			{Name: "vegetables", Quantity: 2, Unit: "cups"},
			{Name: "garlic", Quantity: 3, Unit: "cloves"},
			{Name: "oil", Quantity: 1, Unit: "tbsp"},
		},
		Steps:   []string{"Heat oil, fry garlic", "Toss vegetables on high heat"},
		Cuisine: "indo_chinese", CaloriesApprox: 180, ProteinApprox: 5,
	},
	{
		ID: "khichdi", Name: "Khichdi", Description: "One-pot rice and moong dal comfort food.",
		TimeTier: 30, PrepTimeMinutes: 5, CookTimeMinutes: 25,
		IsRiceFriendly: true, IsWet: true, IsComfortFood: true, IsVegetarian: true,
		Ingredients: models.IngredientList{
			{Name: "rice", Quantity: 1, Unit: "cups"},
			{Name: "moong dal", Quantity: 0.5, Unit: "cups"},
			{Name: "ghee", Quantity: 1, Unit: "tbsp"},
			{Name: "cumin", Quantity: 1, Unit: "tsp", IsOptional: true},
		},
		Steps:   []string{"Rinse rice and dal", "Pressure cook with turmeric", "Finish with ghee"},
		Cuisine: "north_indian", CaloriesApprox: 380, ProteinApprox: 12,
	},
	{
		ID: "curd_rice", Name: "Curd Rice", Description: "Cooling curd rice with a mustard-seed tempering.",
		TimeTier: 10, PrepTimeMinutes: 5, CookTimeMinutes: 5,
		IsRiceFriendly: true, IsWet: true, IsComfortFood: true, IsVegetarian: true,
		Ingredients: models.IngredientList{
			{Name: "rice", Quantity: 1, Unit: "cups"},
			{Name: "curd", Quantity: 1, Unit: "cups"},
			{Name: "mustard seeds", Quantity: 1, Unit: "tsp", IsOptional: true},
		},
		Steps:   []string{"Mash rice with curd", "Pour the tempering over"},
		Cuisine: "south_indian", CaloriesApprox: 290, ProteinApprox: 8,
	},
	{
		ID: "aloo_bhaja", Name: "Aloo Bhaja", Description: "Crisp Bengali-style fried potatoes, a classic rice-plate side.",
		TimeTier: 10, PrepTimeMinutes: 5, CookTimeMinutes: 10,
		IsRiceFriendly: true, IsDry: true, IsVegetarian: true, IsVegan: true,
		Ingredients: models.IngredientList{
			{Name: "potato", Quantity: 2, Unit: "pieces"},
			{Name: "oil", Quantity: 2, Unit: "tbsp"},
			{Name: "turmeric", Quantity: 0.5, Unit: "tsp"},
		},
		Steps:   []string{"Slice potatoes thin", "Fry until crisp"},
		Cuisine: "eastern_indian", CaloriesApprox: 220, ProteinApprox: 3,
	},
	{
		ID: "jeera_rice_dal", Name: "Jeera Rice & Dal", Description: "Cumin rice with simple yellow dal.",
		TimeTier: 30, PrepTimeMinutes: 10, CookTimeMinutes: 25,
		IsRiceFriendly: true, IsWet: true, IsComfortFood: true, IsVegetarian: true,
		Ingredients: models.IngredientList{
			{Name: "rice", Quantity: 1, Unit: "cups"},
			{Name: "toor dal", Quantity: 0.5, Unit: "cups"},
			{Name: "cumin", Quantity: 1, Unit: "tsp"},
			{Name: "ghee", Quantity: 1, Unit: "tbsp", IsOptional: true},
		},
		Steps:   []string{"Cook the dal", "Temper cumin in ghee, add rice"},
		Cuisine: "north_indian", CaloriesApprox: 410, ProteinApprox: 13,
	},
	{
		ID: "egg_curry", Name: "Egg Curry", Description: "Boiled eggs simmered in onion-tomato gravy.",
		TimeTier: 30, PrepTimeMinutes: 10, CookTimeMinutes: 20,
		IsRiceFriendly: true, IsWet: true, IsComfortFood: true,
		Ingredients: models.IngredientList{
			{Name: "egg", Quantity: 4, Unit: "pieces"},
			{Name: "onion", Quantity: 2, Unit: "pieces"},
			{Name: "tomato", Quantity: 2, Unit: "pieces"},
			{Name: "garam masala", Quantity: 1, Unit: "tsp", IsOptional: true},
		},
		Steps:   []string{"Boil and halve the eggs", "Cook the gravy", "Simmer together"},
		Cuisine: "eastern_indian", CaloriesApprox: 390, ProteinApprox: 22,
	},
	{
		ID: "sambar", Name: "Quick Sambar", Description: "Weeknight sambar with toor dal and mixed vegetables.",
		TimeTier: 30, PrepTimeMinutes: 10, CookTimeMinutes: 25,
		IsRiceFriendly: true, IsWet: true, IsVegetarian: true, IsVegan: true,
		Ingredients: models.IngredientList{
			{Name: "toor dal", Quantity: 0.5, Unit: "cups"},
			{Name: "vegetables", Quantity: 1, Unit: "cups"},
			{Name: "sambar powder", Quantity: 2, Unit: "tsp"},
			{Name: "tamarind", Quantity: 1, Unit: "tbsp", IsOptional: true},
		},
		Steps:   []string{"Cook dal and vegetables", "Add sambar powder and tamarind", "Simmer"},
		Cuisine: "south_indian", CaloriesApprox: 260, ProteinApprox: 11,
	},
	{
		ID: "rajma", Name: "Rajma Masala", Description: "Kidney bean curry; the beans need an overnight soak.",
		TimeTier: 30, PrepTimeMinutes: 15, CookTimeMinutes: 40,
		IsRiceFriendly: true, IsWet: true, IsComfortFood: true, IsVegetarian: true,
		RequiresSoaking: true, SoakIngredient: "rajma", SoakHours: 8,
		Ingredients: models.IngredientList{
			{Name: "rajma", Quantity: 1, Unit: "cups"},
			{Name: "onion", Quantity: 2, Unit: "pieces"},
			{Name: "tomato", Quantity: 2, Unit: "pieces"},
			{Name: "cream", Quantity: 2, Unit: "tbsp", IsOptional: true},
		},
		Steps:   []string{"Soak rajma overnight", "Pressure cook", "Simmer in masala"},
		Cuisine: "north_indian", CaloriesApprox: 450, ProteinApprox: 18,
	},
	{
		ID: "chana_masala", Name: "Chana Masala", Description: "Chickpea curry; soak the chana ahead.",
		TimeTier: 30, PrepTimeMinutes: 15, CookTimeMinutes: 35,
		IsRiceFriendly: true, IsWet: true, IsVegetarian: true, IsVegan: true,
		RequiresSoaking: true, SoakIngredient: "chana", SoakHours: 6,
		Ingredients: models.IngredientList{
			{Name: "chana", Quantity: 1, Unit: "cups"},
			{Name: "onion", Quantity: 2, Unit: "pieces"},
			{Name: "tomato", Quantity: 2, Unit: "pieces"},
		},
		Steps:   []string{"Soak chana", "Pressure cook", "Cook down the masala"},
		Cuisine: "north_indian", CaloriesApprox: 420, ProteinApprox: 17,
	},
	{
		ID: "aloo_poha", Name: "Aloo Poha", Description: "Flattened rice with potatoes, peanuts and curry leaves.",
		TimeTier: 10, PrepTimeMinutes: 5, CookTimeMinutes: 10,
		IsDry: true, IsVegetarian: true, IsVegan: true,
		Ingredients: models.IngredientList{
			{Name: "poha", Quantity: 2, Unit: "cups"},
			{Name: "potato", Quantity: 1, Unit: "pieces"},
			{Name: "peanuts", Quantity: 2, Unit: "tbsp", IsOptional: true},
		},
		Steps:   []string{"Rinse the poha", "Fry potato, toss everything together"},
		Cuisine: "western", CaloriesApprox: 320, ProteinApprox: 7,
	},
	{
		ID: "upma", Name: "Upma", Description: "Savory semolina porridge, ready in minutes.",
		TimeTier: 10, PrepTimeMinutes: 5, CookTimeMinutes: 10,
		IsVegetarian: true,
		Ingredients: models.IngredientList{
			{Name: "rava", Quantity: 1, Unit: "cups"},
			{Name: "onion", Quantity: 1, Unit: "pieces"},
			{Name: "vegetables", Quantity: 0.5, Unit: "cups", IsOptional: true},
		},
		Steps:   []string{"Roast the rava", "Cook with water and vegetables"},
		Cuisine: "south_indian", CaloriesApprox: 300, ProteinApprox: 6,
	},
	{
		ID: "maggi_classic", Name: "Maggi Classic", Description: "Two minutes, allegedly.",
		TimeTier: 10, PrepTimeMinutes: 1, CookTimeMinutes: 5,
		IsComfortFood: true, IsVegetarian: true,
		Ingredients: models.IngredientList{
			{Name: "maggi noodles", Quantity: 1, Unit: "packets"},
		},
		Steps:   []string{"Boil water", "Add noodles and tastemaker"},
		Cuisine: "mixed", CaloriesApprox: 350, ProteinApprox: 7,
	},
	{
		ID: "bread_omelette", Name: "Bread Omelette", Description: "Street-style omelette folded over bread.",
		TimeTier: 10, PrepTimeMinutes: 3, CookTimeMinutes: 7,
		Ingredients: models.IngredientList{
			{Name: "bread", Quantity: 2, Unit: "slices"},
			{Name: "egg", Quantity: 2, Unit: "pieces"},
			{Name: "onion", Quantity: 0.5, Unit: "pieces", IsOptional: true},
		},
		Steps:   []string{"Beat the eggs", "Cook omelette, press bread into it"},
		Cuisine: "mixed", CaloriesApprox: 340, ProteinApprox: 15,
	},
	{
		ID: "plain_rice_ghee", Name: "Plain Rice & Ghee", Description: "The absolute floor of cooking effort.",
		TimeTier: 1, PrepTimeMinutes: 0, CookTimeMinutes: 2,
		IsRiceFriendly: true, IsDry: true, IsComfortFood: true, IsVegetarian: true,
		Ingredients: models.IngredientList{
			{Name: "rice", Quantity: 1, Unit: "cups"},
			{Name: "ghee", Quantity: 1, Unit: "tbsp"},
		},
		Steps:   []string{"Reheat rice", "Add ghee and salt"},
		Cuisine: "eastern_indian", CaloriesApprox: 310, ProteinApprox: 4,
	},
	{
		ID: "paneer_butter_masala", Name: "Paneer Butter Masala", Description: "Rich restaurant-style paneer curry.",
		TimeTier: 30, PrepTimeMinutes: 15, CookTimeMinutes: 25,
		IsRiceFriendly: true, IsWet: true, IsComfortFood: true, IsVegetarian: true, IsPremium: true,
		Ingredients: models.IngredientList{
			{Name: "paneer", Quantity: 200, Unit: "g"},
			{Name: "butter", Quantity: 2, Unit: "tbsp"},
			{Name: "tomato", Quantity: 3, Unit: "pieces"},
			{Name: "cream", Quantity: 3, Unit: "tbsp"},
		},
		Steps:   []string{"Blend the tomato gravy", "Simmer with butter and cream", "Add paneer"},
		Cuisine: "north_indian", CaloriesApprox: 520, ProteinApprox: 19,
	},
	{
		ID: "fish_curry", Name: "Bengali Fish Curry", Description: "Light mustard-forward fish jhol.",
		TimeTier: 30, PrepTimeMinutes: 15, CookTimeMinutes: 25,
		IsRiceFriendly: true, IsWet: true, IsComfortFood: true, IsPremium: true,
		Ingredients: models.IngredientList{
			{Name: "fish", Quantity: 400, Unit: "g"},
			{Name: "mustard oil", Quantity: 2, Unit: "tbsp"},
			{Name: "potato", Quantity: 1, Unit: "pieces"},
		},
		Steps:   []string{"Fry the fish lightly", "Build the jhol", "Simmer together"},
		Cuisine: "eastern_indian", CaloriesApprox: 430, ProteinApprox: 28,
	},
	{
		ID: "banana_smoothie", Name: "Banana Smoothie", Description: "Blender, banana, milk. Done.",
		TimeTier: 1, PrepTimeMinutes: 2, CookTimeMinutes: 0,
		IsVegetarian: true,
		Ingredients: models.IngredientList{
			{Name: "banana", Quantity: 2, Unit: "pieces"},
			{Name: "milk", Quantity: 1, Unit: "cups"},
			{Name: "honey", Quantity: 1, Unit: "tsp", IsOptional: true},
		},
		Steps:   []string{"Blend everything"},
		Cuisine: "mixed", CaloriesApprox: 260, ProteinApprox: 9,
	},
	{
		ID: "sabudana_khichdi", Name: "Sabudana Khichdi", Description: "Tapioca pearls with peanuts; the pearls need a soak.",
		TimeTier: 10, PrepTimeMinutes: 5, CookTimeMinutes: 10,
		IsDry: true, IsVegetarian: true,
		RequiresSoaking: true, SoakIngredient: "sabudana", SoakHours: 4,
		Ingredients: models.IngredientList{
			{Name: "sabudana", Quantity: 1, Unit: "cups"},
			{Name: "peanuts", Quantity: 0.25, Unit: "cups"},
			{Name: "potato", Quantity: 1, Unit: "pieces", IsOptional: true},
		},
		Steps:   []string{"Soak sabudana until soft", "Toss with roasted peanuts and potato"},
		Cuisine: "western", CaloriesApprox: 380, ProteinApprox: 8,
	},
}

// FreeRecipeIDs lists the recipes available without a premium subscription.
var FreeRecipeIDs = []string{
	"fried_rice", "dal_tadka", "roti_wrap", "stir_fry", "khichdi", "curd_rice",
	"aloo_bhaja", "jeera_rice_dal", "egg_curry", "sambar", "aloo_poha", "upma",
	"maggi_classic", "bread_omelette", "plain_rice_ghee", "banana_smoothie",
}

// IsFreeRecipe reports whether a recipe is in the free set.
func IsFreeRecipe(id string) bool {
	for _, free := range FreeRecipeIDs {
		if free == id {
			return true
		}
	}
	return false
}

// ByID returns the catalog recipe for an id, if present.
func ByID(id string) (models.Recipe, bool) {
	for _, r := range Recipes {
		if r.ID == id {
			return r, true
		}
	}
	return models.Recipe{}, false
}
