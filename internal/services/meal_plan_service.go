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

type MealPlanService struct {
	db *gorm.DB
}

func NewMealPlanService(db *gorm.DB) *MealPlanService {
	return &MealPlanService{db: db}
}

func (s *MealPlanService) CreateMealPlan(ctx context.Context, userID uuid.UUID, req dto.NewMealPlan) (*dto.MealPlanCreatedResponse, error) {
	slots := req.Plan
	if slots == nil {
		slots = []models.MealPlanSlot{}
	}

	plan := models.MealPlan{
		ID:        uuid.New(),
		UserID:    userID,
		StartDate: req.StartDate,
		Length:    req.Length,
		Plan:      datatypes.NewJSONSlice(slots),
	}

	var resp dto.MealPlanCreatedResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureUser(tx, userID); err != nil {
			return err
		}
		if err := tx.Create(&plan).Error; err != nil {
			return fmt.Errorf("failed to create meal plan: %w", err)
		}

		profile, err := loadProfile(tx, userID)
		if err != nil {
			return err
		}
		resp = dto.MealPlanCreatedResponse{MealPlanID: plan.ID, User: profile}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordsCreated.WithLabelValues(metrics.KindMealPlan).Inc()
	return &resp, nil
}

func (s *MealPlanService) FindMealPlanByID(ctx context.Context, mealPlanID uuid.UUID) (*models.MealPlan, error) {
	return findMealPlan(s.db.WithContext(ctx), mealPlanID)
}

func findMealPlan(tx *gorm.DB, mealPlanID uuid.UUID) (*models.MealPlan, error) {
	var plan models.MealPlan
	if err := tx.First(&plan, "id = ?", mealPlanID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealPlanNotFound
		}
		return nil, fmt.Errorf("failed to load meal plan: %w", err)
	}
	return &plan, nil
}

// UpdateMealPlanSlot replaces the recipe held by plan[index]. A null or absent
// recipe empties the slot. An index outside the plan fails without writing.
func (s *MealPlanService) UpdateMealPlanSlot(ctx context.Context, mealPlanID uuid.UUID, index int, recipe json.RawMessage) (*models.MealPlan, error) {
	var plan *models.MealPlan
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		plan, err = findMealPlan(tx, mealPlanID)
		if err != nil {
			return err
		}

		if index < 0 || index >= len(plan.Plan) {
			return fmt.Errorf("%w: index %d, plan has %d slots", ErrSlotOutOfRange, index, len(plan.Plan))
		}
		slot := plan.Plan[index]
		if slot == nil {
			slot = models.MealPlanSlot{}
			plan.Plan[index] = slot
		}
		slot.SetRecipe(recipe)

		if err := tx.Save(plan).Error; err != nil {
			return fmt.Errorf("failed to save meal plan: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// RemoveMealPlan deletes the plan together with every shopping list built from it.
func (s *MealPlanService) RemoveMealPlan(ctx context.Context, userID, mealPlanID uuid.UUID) (*dto.UserProfile, error) {
	var (
		profile      *dto.UserProfile
		listsRemoved int64
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureUser(tx, userID); err != nil {
			return err
		}

		result := tx.Where("id = ? AND user_id = ?", mealPlanID, userID).Delete(&models.MealPlan{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete meal plan: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrMealPlanNotFound
		}

		result = tx.Where("meal_plan_id = ? AND user_id = ?", mealPlanID, userID).Delete(&models.ShoppingList{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete lists of meal plan: %w", result.Error)
		}
		listsRemoved = result.RowsAffected

		var err error
		profile, err = loadProfile(tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordsDeleted.WithLabelValues(metrics.KindMealPlan).Inc()
	metrics.RecordsDeleted.WithLabelValues(metrics.KindList).Add(float64(listsRemoved))
	return profile, nil
}
