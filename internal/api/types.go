package api

import "time"

// RegisterRequest is the signup payload. RicePreference is a pointer so an
// omitted field keeps the default (true) instead of forcing false.
type RegisterRequest struct {
	Name              string `json:"name" binding:"required"`
	Email             string `json:"email" binding:"required,email"`
	Password          string `json:"password" binding:"required,min=8"`
	RicePreference    *bool  `json:"rice_preference"`
	CuisinePreference string `json:"cuisine_preference"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// PantryItemRequest is the create/update payload for a pantry item.
type PantryItemRequest struct {
	IngredientName       string     `json:"ingredient_name" binding:"required"`
	Category             string     `json:"category"`
	Quantity             string     `json:"quantity"`
	Unit                 string     `json:"unit"`
	ExpiryDate           *time.Time `json:"expiry_date"`
	IsLeftover           bool       `json:"is_leftover"`
	LeftoverFromRecipeID string     `json:"leftover_from_recipe_id"`
	RequiresSoaking      bool       `json:"requires_soaking"`
	SoakHours            int        `json:"soak_hours"`
}

type MarkLeftoverRequest struct {
	FromRecipeID string `json:"from_recipe_id" binding:"required"`
}

// GeneratePlanRequest optionally overrides the clock the engine runs with.
// Omitted fields default to the server's current date and time.
type GeneratePlanRequest struct {
	Date string `json:"date"` // "YYYY-MM-DD"
	Time string `json:"time"` // "HH:mm"
}

// ValidatePlanRequest is an ad-hoc rice rule check over meal slot ids.
type ValidatePlanRequest struct {
	LunchRecipeID  string `json:"lunch_recipe_id"`
	DinnerRecipeID string `json:"dinner_recipe_id"`
}

// WetSuggestionsRequest carries the pantry ingredient names to score against.
type WetSuggestionsRequest struct {
	PantryItems []string `json:"pantry_items"`
}
