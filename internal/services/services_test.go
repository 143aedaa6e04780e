package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/dbtest"
	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fixture struct {
	db        *gorm.DB
	accounts  *services.AccountService
	recipes   *services.RecipeService
	mealPlans *services.MealPlanService
	lists     *services.ListService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.Open(t)
	cfg := &config.Config{BcryptCost: bcrypt.MinCost}
	return &fixture{
		db:        db,
		accounts:  services.NewAccountService(db, cfg),
		recipes:   services.NewRecipeService(db),
		mealPlans: services.NewMealPlanService(db),
		lists:     services.NewListService(db),
	}
}

func (f *fixture) signup(t *testing.T, email string) *dto.UserProfile {
	t.Helper()
	profile, err := f.accounts.CreateAccount(context.Background(), &dto.CreateUserRequest{
		FirstName: "Matt",
		LastName:  "Hastings",
		Email:     email,
		Password:  "correct horse battery",
		Marketing: true,
	})
	require.NoError(t, err)
	return profile
}

func (f *fixture) mealPlan(t *testing.T, userID uuid.UUID, slots int) uuid.UUID {
	t.Helper()
	plan := dto.NewMealPlan{StartDate: "2026-10-19", Length: slots}
	for i := 0; i < slots; i++ {
		plan.Plan = append(plan.Plan, models.MealPlanSlot{
			"date": raw(t, "2026-10-19"),
			"meal": raw(t, "dinner"),
		})
	}
	resp, err := f.mealPlans.CreateMealPlan(context.Background(), userID, plan)
	require.NoError(t, err)
	return resp.MealPlanID
}

func raw(t *testing.T, v interface{}) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}
