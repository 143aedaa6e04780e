package handlers

import (
	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type RecipeHandler struct {
	recipes *services.RecipeService
}

func NewRecipeHandler(recipes *services.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

func (h *RecipeHandler) CreateRecipe(c *fiber.Ctx) error {
	var req dto.CreateRecipeRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	resp, err := h.recipes.CreateRecipe(c.UserContext(), req.UserID, req.NewRecipe)
	if err != nil {
		return respondError(c, "create_recipe", err)
	}
	return ok(c, "recipe successfully created", resp)
}

func (h *RecipeHandler) RemoveRecipe(c *fiber.Ctx) error {
	recipeID, userID, err := idPair(c, "ids")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid recipe or user ID")
	}

	profile, err := h.recipes.RemoveRecipe(c.UserContext(), userID, recipeID)
	if err != nil {
		return respondError(c, "remove_recipe", err)
	}
	return ok(c, "recipe successfully removed", profile)
}

func (h *RecipeHandler) CreateLinkRecipe(c *fiber.Ctx) error {
	var req dto.CreateLinkRecipeRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	resp, err := h.recipes.CreateLinkRecipe(c.UserContext(), req.UserID, req.NewRecipe)
	if err != nil {
		return respondError(c, "create_link_recipe", err)
	}
	return ok(c, "recipe successfully created", resp)
}

func (h *RecipeHandler) RemoveLinkRecipe(c *fiber.Ctx) error {
	linkRecipeID, userID, err := idPair(c, "ids")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid recipe or user ID")
	}

	profile, err := h.recipes.RemoveLinkRecipe(c.UserContext(), userID, linkRecipeID)
	if err != nil {
		return respondError(c, "remove_link_recipe", err)
	}
	return ok(c, "recipe successfully removed", profile)
}

func (h *RecipeHandler) AddFavorite(c *fiber.Ctx) error {
	var req dto.AddFavoriteRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	resp, err := h.recipes.AddFavorite(c.UserContext(), req.UserID, req.Source, req.Recipe)
	if err != nil {
		return respondError(c, "add_favorite", err)
	}
	return ok(c, "recipe successfully saved", resp)
}

func (h *RecipeHandler) RemoveFavorite(c *fiber.Ctx) error {
	favoriteID, userID, err := idPair(c, "ids")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid favorite or user ID")
	}

	profile, err := h.recipes.RemoveFavorite(c.UserContext(), userID, favoriteID)
	if err != nil {
		return respondError(c, "remove_favorite", err)
	}
	return ok(c, "favorite successfully removed", profile)
}
