package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ListService struct {
	db *gorm.DB
}

func NewListService(db *gorm.DB) *ListService {
	return &ListService{db: db}
}

func items(raw []json.RawMessage) datatypes.JSONSlice[json.RawMessage] {
	if raw == nil {
		raw = []json.RawMessage{}
	}
	return datatypes.NewJSONSlice(raw)
}

// CreateList stores a shopping list for one of the user's meal plans.
func (s *ListService) CreateList(ctx context.Context, userID, mealPlanID uuid.UUID, list []json.RawMessage) (*dto.ListCreatedResponse, error) {
	shoppingList := models.ShoppingList{
		ID:         uuid.New(),
		UserID:     userID,
		MealPlanID: mealPlanID,
		Items:      items(list),
		Acquired:   items(nil),
	}

	var resp dto.ListCreatedResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureUser(tx, userID); err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.MealPlan{}).Where("id = ? AND user_id = ?", mealPlanID, userID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to look up meal plan: %w", err)
		}
		if count == 0 {
			return ErrMealPlanNotFound
		}

		if err := tx.Create(&shoppingList).Error; err != nil {
			return fmt.Errorf("failed to create list: %w", err)
		}

		profile, err := loadProfile(tx, userID)
		if err != nil {
			return err
		}
		resp = dto.ListCreatedResponse{ListID: shoppingList.ID, User: profile}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordsCreated.WithLabelValues(metrics.KindList).Inc()
	return &resp, nil
}

func (s *ListService) FindListByID(ctx context.Context, listID uuid.UUID) (*models.ShoppingList, error) {
	return findList(s.db.WithContext(ctx), listID)
}

func findList(tx *gorm.DB, listID uuid.UUID) (*models.ShoppingList, error) {
	var list models.ShoppingList
	if err := tx.First(&list, "id = ?", listID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListNotFound
		}
		return nil, fmt.Errorf("failed to load list: %w", err)
	}
	return &list, nil
}

// UpdateList replaces both arrays wholesale; nothing is merged.
func (s *ListService) UpdateList(ctx context.Context, listID uuid.UUID, list, acquired []json.RawMessage) (*models.ShoppingList, error) {
	var updated *models.ShoppingList
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		updated, err = findList(tx, listID)
		if err != nil {
			return err
		}

		updated.Items = items(list)
		updated.Acquired = items(acquired)
		if err := tx.Save(updated).Error; err != nil {
			return fmt.Errorf("failed to save list: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
