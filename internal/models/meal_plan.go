package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MealPlanSlot is one entry of a plan exactly as the client sent it. Only the
// "recipe" key is ever rewritten by the server.
type MealPlanSlot map[string]json.RawMessage

const slotRecipeKey = "recipe"

// Recipe returns the slot's recipe, or nil when the slot is empty.
func (s MealPlanSlot) Recipe() json.RawMessage {
	raw := s[slotRecipeKey]
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return raw
}

// SetRecipe stores recipe under the "recipe" key; nil or null empties the slot.
func (s MealPlanSlot) SetRecipe(recipe json.RawMessage) {
	if len(recipe) == 0 || string(recipe) == "null" {
		delete(s, slotRecipeKey)
		return
	}
	s[slotRecipeKey] = recipe
}

type MealPlan struct {
	ID        uuid.UUID                         `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID                         `gorm:"type:uuid;not null;index" json:"userId"`
	StartDate string                            `gorm:"size:32;not null" json:"startDate"`
	Length    int                               `gorm:"not null" json:"length"`
	Plan      datatypes.JSONSlice[MealPlanSlot] `json:"plan"`
	CreatedAt time.Time                         `json:"createdAt"`
	UpdatedAt time.Time                         `json:"updatedAt"`
}

func (m *MealPlan) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
