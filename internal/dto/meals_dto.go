package dto

import (
	"encoding/json"

	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/models"
	"github.com/google/uuid"
)

type NewRecipe struct {
	Title                string              `json:"title" validate:"required,max=255"`
	SourceName           string              `json:"sourceName" validate:"max=255"`
	PreparationMinutes   int                 `json:"preparationMinutes" validate:"gte=0"`
	CookingMinutes       int                 `json:"cookingMinutes" validate:"gte=0"`
	Servings             int                 `json:"servings" validate:"gte=0"`
	ExtendedIngredients  []models.Ingredient `json:"extendedIngredients" validate:"dive"`
	AnalyzedInstructions json.RawMessage     `json:"analyzedInstructions"`
}

type CreateRecipeRequest struct {
	NewRecipe NewRecipe `json:"newRecipe"`
	UserID    uuid.UUID `json:"userId" validate:"required"`
}

type NewLinkRecipe struct {
	RecipeName string `json:"recipeName" validate:"required,max=255"`
	RecipeLink string `json:"recipeLink" validate:"required,url"`
}

type CreateLinkRecipeRequest struct {
	NewRecipe NewLinkRecipe `json:"newRecipe"`
	UserID    uuid.UUID     `json:"userId" validate:"required"`
}

type AddFavoriteRequest struct {
	Recipe json.RawMessage `json:"recipe" validate:"required"`
	Source string          `json:"source" validate:"required"`
	UserID uuid.UUID       `json:"userId" validate:"required"`
}

type NewMealPlan struct {
	StartDate string                `json:"startDate" validate:"required"`
	Length    int                   `json:"length" validate:"gt=0"`
	Plan      []models.MealPlanSlot `json:"plan" validate:"required"`
}

type CreateMealPlanRequest struct {
	MealPlan NewMealPlan `json:"mealPlan"`
	UserID   uuid.UUID   `json:"userId" validate:"required"`
}

type UpdateMealPlanRequest struct {
	Recipe     json.RawMessage `json:"recipe"`
	Index      *int            `json:"index" validate:"required"`
	MealPlanID uuid.UUID       `json:"mealPlanId" validate:"required"`
}

type CreateListRequest struct {
	List       []json.RawMessage `json:"list"`
	UserID     uuid.UUID         `json:"userId" validate:"required"`
	MealPlanID uuid.UUID         `json:"mealPlanId" validate:"required"`
}

type UpdateListRequest struct {
	AcquiredList []json.RawMessage `json:"acquiredList"`
	ListList     []json.RawMessage `json:"listList"`
	ListID       uuid.UUID         `json:"listId" validate:"required"`
}

type RecipeCreatedResponse struct {
	Recipe *models.Recipe `json:"recipe"`
	User   *UserProfile   `json:"user"`
}

type LinkRecipeCreatedResponse struct {
	LinkRecipe *models.LinkRecipe `json:"linkRecipe"`
	User       *UserProfile       `json:"user"`
}

type FavoriteAddedResponse struct {
	Favorite *models.FavoriteRecipe `json:"favorite"`
	User     *UserProfile           `json:"user"`
}

type MealPlanCreatedResponse struct {
	MealPlanID uuid.UUID    `json:"mealPlanId"`
	User       *UserProfile `json:"user"`
}

type ListCreatedResponse struct {
	ListID uuid.UUID    `json:"listId"`
	User   *UserProfile `json:"user"`
}
