package services_test

import (
	"context"
	"testing"

	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService_CreateAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	profile := f.signup(t, "  Cook@Example.com ")
	assert.NotEqual(t, uuid.Nil, profile.UserID)
	assert.Equal(t, "cook@example.com", profile.Email)
	assert.True(t, profile.Marketing)
	assert.Empty(t, profile.Recipes)
	assert.Empty(t, profile.MealPlans)

	stored, err := f.accounts.FindByEmail(ctx, "cook@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", stored.Password, "password must be stored hashed")
}

func TestAccountService_CreateAccountDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	f.signup(t, "cook@example.com")

	_, err := f.accounts.CreateAccount(context.Background(), &dto.CreateUserRequest{
		FirstName: "Other",
		LastName:  "Cook",
		Email:     "COOK@example.com",
		Password:  "another password",
	})
	require.ErrorIs(t, err, services.ErrEmailTaken)

	var count int64
	require.NoError(t, f.db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAccountService_Authenticate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created := f.signup(t, "cook@example.com")

	t.Run("Success", func(t *testing.T) {
		profile, err := f.accounts.Authenticate(ctx, "cook@example.com", "correct horse battery")
		require.NoError(t, err)
		assert.Equal(t, created.UserID, profile.UserID)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := f.accounts.Authenticate(ctx, "cook@example.com", "wrong password")
		require.ErrorIs(t, err, services.ErrPasswordMismatch)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		_, err := f.accounts.Authenticate(ctx, "nobody@example.com", "correct horse battery")
		require.ErrorIs(t, err, services.ErrEmailNotFound)
	})
}

func TestAccountService_FindByID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created := f.signup(t, "cook@example.com")

	profile, err := f.accounts.FindByID(ctx, created.UserID)
	require.NoError(t, err)
	assert.Equal(t, "Matt", profile.FirstName)

	_, err = f.accounts.FindByID(ctx, uuid.New())
	require.ErrorIs(t, err, services.ErrUserNotFound)

	_, err = f.accounts.FindByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestAccountService_SetMarketing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created := f.signup(t, "cook@example.com")

	profile, err := f.accounts.SetMarketing(ctx, created.UserID, false)
	require.NoError(t, err)
	assert.False(t, profile.Marketing)

	profile, err = f.accounts.FindByID(ctx, created.UserID)
	require.NoError(t, err)
	assert.False(t, profile.Marketing)

	_, err = f.accounts.SetMarketing(ctx, uuid.New(), true)
	require.ErrorIs(t, err, services.ErrUserNotFound)
}
