package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FavoriteSource tags the shape of FavoriteRecipe.Recipe.
type FavoriteSource string

const (
	FavoriteSourceCustom FavoriteSource = "custom"
	FavoriteSourceLink   FavoriteSource = "link"
	FavoriteSourceAPI    FavoriteSource = "api"
)

func (s FavoriteSource) Valid() bool {
	switch s {
	case FavoriteSourceCustom, FavoriteSourceLink, FavoriteSourceAPI:
		return true
	}
	return false
}

// FavoriteRecipe keeps a copy of the favorited recipe as it was when saved.
type FavoriteRecipe struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"userId"`
	Source    FavoriteSource `gorm:"size:20;not null" json:"source"`
	Recipe    datatypes.JSON `gorm:"not null" json:"recipe"`
	CreatedAt time.Time      `json:"createdAt"`
}

func (f *FavoriteRecipe) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
