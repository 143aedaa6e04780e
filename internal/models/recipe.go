package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Ingredient struct {
	Name   string  `json:"name" validate:"required"`
	Amount float64 `json:"amount,omitempty"`
	Unit   string  `json:"unit,omitempty"`
	ID     int64   `json:"id,omitempty"`
	Image  string  `json:"image,omitempty"`
}

// Recipe is a user's custom recipe.
type Recipe struct {
	ID                   uuid.UUID                      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID               uuid.UUID                      `gorm:"type:uuid;not null;index" json:"userId"`
	Title                string                         `gorm:"size:255;not null" json:"title"`
	SourceName           string                         `gorm:"size:255" json:"sourceName,omitempty"`
	PreparationMinutes   int                            `json:"preparationMinutes,omitempty"`
	CookingMinutes       int                            `json:"cookingMinutes,omitempty"`
	Servings             int                            `json:"servings,omitempty"`
	ExtendedIngredients  datatypes.JSONSlice[Ingredient] `json:"extendedIngredients"`
	AnalyzedInstructions datatypes.JSON                 `json:"analyzedInstructions,omitempty"`
	CreatedAt            time.Time                      `json:"createdAt"`
	UpdatedAt            time.Time                      `json:"updatedAt"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// LinkRecipe is a recipe known only by its name and where it lives.
type LinkRecipe struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	RecipeName string    `gorm:"size:255;not null" json:"recipeName"`
	RecipeLink string    `gorm:"type:text;not null" json:"recipeLink"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (l *LinkRecipe) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
