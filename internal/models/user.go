package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User owns every recipe, favorite, meal plan and list through the child's UserID.
type User struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName   string           `gorm:"size:100;not null" json:"firstName"`
	LastName    string           `gorm:"size:100;not null" json:"lastName"`
	Email       string           `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password    string           `gorm:"not null" json:"-"`
	Marketing   bool             `gorm:"not null;default:false" json:"marketing"`
	Recipes     []Recipe         `gorm:"foreignKey:UserID" json:"-"`
	LinkRecipes []LinkRecipe     `gorm:"foreignKey:UserID" json:"-"`
	Favorites   []FavoriteRecipe `gorm:"foreignKey:UserID" json:"-"`
	MealPlans   []MealPlan       `gorm:"foreignKey:UserID" json:"-"`
	Lists       []ShoppingList   `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`
}

// BeforeCreate ensures UUID is set before creation
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
