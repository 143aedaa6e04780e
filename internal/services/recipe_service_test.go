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

func TestRecipeService_CreateRecipe(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.signup(t, "cook@example.com")

	resp, err := f.recipes.CreateRecipe(ctx, user.UserID, dto.NewRecipe{
		Title:    "Shakshuka",
		Servings: 4,
		ExtendedIngredients: []models.Ingredient{
			{Name: "eggs", Amount: 6},
			{Name: "tomatoes", Amount: 800, Unit: "g"},
		},
		AnalyzedInstructions: raw(t, []map[string]string{{"step": "simmer"}}),
	})
	require.NoError(t, err)
	require.Len(t, resp.User.Recipes, len(user.Recipes)+1)
	assert.Equal(t, resp.Recipe.ID, resp.User.Recipes[0].ID)
	assert.Len(t, resp.User.Recipes[0].ExtendedIngredients, 2)

	profile, err := f.accounts.FindByID(ctx, user.UserID)
	require.NoError(t, err)
	require.Len(t, profile.Recipes, 1)
	assert.Equal(t, "Shakshuka", profile.Recipes[0].Title)
	assert.Equal(t, "tomatoes", profile.Recipes[0].ExtendedIngredients[1].Name)
	assert.JSONEq(t, `[{"step":"simmer"}]`, string(profile.Recipes[0].AnalyzedInstructions))
}

func TestRecipeService_CreateRecipeUnknownUser(t *testing.T) {
	f := newFixture(t)

	_, err := f.recipes.CreateRecipe(context.Background(), uuid.New(), dto.NewRecipe{Title: "Orphan"})
	require.ErrorIs(t, err, services.ErrUserNotFound)

	var count int64
	require.NoError(t, f.db.Model(&models.Recipe{}).Count(&count).Error)
	assert.Zero(t, count, "no child row may outlive a failed owner check")
}

func TestRecipeService_LinkRecipes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.signup(t, "cook@example.com")

	resp, err := f.recipes.CreateLinkRecipe(ctx, user.UserID, dto.NewLinkRecipe{
		RecipeName: "Dal",
		RecipeLink: "https://example.com/dal",
	})
	require.NoError(t, err)
	require.Len(t, resp.User.LinkRecipes, 1)
	assert.Equal(t, resp.LinkRecipe.ID, resp.User.LinkRecipes[0].ID)

	profile, err := f.recipes.RemoveLinkRecipe(ctx, user.UserID, resp.LinkRecipe.ID)
	require.NoError(t, err)
	assert.Empty(t, profile.LinkRecipes)

	_, err = f.recipes.RemoveLinkRecipe(ctx, user.UserID, resp.LinkRecipe.ID)
	require.ErrorIs(t, err, services.ErrLinkRecipeNotFound)
}

func TestRecipeService_RemoveRecipeScopedToOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.signup(t, "owner@example.com")
	other := f.signup(t, "other@example.com")

	resp, err := f.recipes.CreateRecipe(ctx, owner.UserID, dto.NewRecipe{Title: "Soup"})
	require.NoError(t, err)

	_, err = f.recipes.RemoveRecipe(ctx, other.UserID, resp.Recipe.ID)
	require.ErrorIs(t, err, services.ErrRecipeNotFound)

	profile, err := f.recipes.RemoveRecipe(ctx, owner.UserID, resp.Recipe.ID)
	require.NoError(t, err)
	assert.Empty(t, profile.Recipes)
}

func TestRecipeService_AddFavorite(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.signup(t, "cook@example.com")

	t.Run("API", func(t *testing.T) {
		payload := raw(t, map[string]interface{}{"id": 716429, "title": "Pasta with Garlic", "readyInMinutes": 45})
		resp, err := f.recipes.AddFavorite(ctx, user.UserID, "api", payload)
		require.NoError(t, err)
		assert.Equal(t, models.FavoriteSourceAPI, resp.Favorite.Source)
		assert.JSONEq(t, string(payload), string(resp.Favorite.Recipe))
		assert.Len(t, resp.User.Favorites, 1)
	})

	t.Run("Link", func(t *testing.T) {
		_, err := f.recipes.AddFavorite(ctx, user.UserID, "link", raw(t, map[string]string{
			"recipeName": "Dal", "recipeLink": "https://example.com/dal",
		}))
		require.NoError(t, err)
	})

	t.Run("UnknownSource", func(t *testing.T) {
		_, err := f.recipes.AddFavorite(ctx, user.UserID, "spoon", raw(t, map[string]string{"title": "x"}))
		require.ErrorIs(t, err, services.ErrInvalidSource)
	})

	t.Run("PayloadDoesNotMatchSource", func(t *testing.T) {
		_, err := f.recipes.AddFavorite(ctx, user.UserID, "link", raw(t, map[string]string{"title": "Dal"}))
		require.ErrorIs(t, err, services.ErrInvalidFavorite)

		_, err = f.recipes.AddFavorite(ctx, user.UserID, "custom", []byte(`"just a string"`))
		require.ErrorIs(t, err, services.ErrInvalidFavorite)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		_, err := f.recipes.AddFavorite(ctx, uuid.New(), "api", raw(t, map[string]string{"title": "x"}))
		require.ErrorIs(t, err, services.ErrUserNotFound)
	})
}

func TestRecipeService_RemoveFavoriteKeepsOthers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.signup(t, "cook@example.com")

	var ids []uuid.UUID
	for _, title := range []string{"first", "second", "third"} {
		resp, err := f.recipes.AddFavorite(ctx, user.UserID, "api", raw(t, map[string]string{"title": title}))
		require.NoError(t, err)
		ids = append(ids, resp.Favorite.ID)
	}

	profile, err := f.recipes.RemoveFavorite(ctx, user.UserID, ids[0])
	require.NoError(t, err)

	var remaining []uuid.UUID
	for _, fav := range profile.Favorites {
		remaining = append(remaining, fav.ID)
	}
	assert.NotContains(t, remaining, ids[0])
	assert.ElementsMatch(t, ids[1:], remaining)

	_, err = f.recipes.RemoveFavorite(ctx, user.UserID, ids[0])
	require.ErrorIs(t, err, services.ErrFavoriteNotFound)
}
