package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ShoppingList is the grocery list generated from a meal plan. Items are
// opaque to the server; the client decides their shape.
type ShoppingList struct {
	ID         uuid.UUID                            `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID                            `gorm:"type:uuid;not null;index" json:"userId"`
	MealPlanID uuid.UUID                            `gorm:"type:uuid;not null;index" json:"mealPlanId"`
	Items      datatypes.JSONSlice[json.RawMessage] `json:"list"`
	Acquired   datatypes.JSONSlice[json.RawMessage] `json:"acquired"`
	CreatedAt  time.Time                            `json:"createdAt"`
	UpdatedAt  time.Time                            `json:"updatedAt"`
}

func (ShoppingList) TableName() string {
	return "lists"
}

func (l *ShoppingList) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
