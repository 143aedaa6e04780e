package services

import (
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func oldestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

// loadUser fetches a user with every owned record preloaded.
func loadUser(tx *gorm.DB, userID uuid.UUID) (*models.User, error) {
	var user models.User
	err := tx.
		Preload("Recipes", oldestFirst).
		Preload("LinkRecipes", oldestFirst).
		Preload("Favorites", oldestFirst).
		Preload("MealPlans", oldestFirst).
		Preload("Lists", oldestFirst).
		First(&user, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

func loadProfile(tx *gorm.DB, userID uuid.UUID) (*dto.UserProfile, error) {
	user, err := loadUser(tx, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewUserProfile(user), nil
}

// ensureUser fails with ErrUserNotFound unless userID names a live account.
func ensureUser(tx *gorm.DB, userID uuid.UUID) error {
	var count int64
	if err := tx.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if count == 0 {
		return ErrUserNotFound
	}
	return nil
}
