package handlers

import (
	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type MealPlanHandler struct {
	mealPlans *services.MealPlanService
}

func NewMealPlanHandler(mealPlans *services.MealPlanService) *MealPlanHandler {
	return &MealPlanHandler{mealPlans: mealPlans}
}

func (h *MealPlanHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateMealPlanRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	resp, err := h.mealPlans.CreateMealPlan(c.UserContext(), req.UserID, req.MealPlan)
	if err != nil {
		return respondError(c, "create_meal_plan", err)
	}
	return ok(c, "meal plan successfully created", resp)
}

func (h *MealPlanHandler) UpdateSlot(c *fiber.Ctx) error {
	var req dto.UpdateMealPlanRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if req.Index == nil {
		return fail(c, fiber.StatusBadRequest, "Index is required")
	}

	plan, err := h.mealPlans.UpdateMealPlanSlot(c.UserContext(), req.MealPlanID, *req.Index, req.Recipe)
	if err != nil {
		return respondError(c, "update_meal_plan", err)
	}
	return ok(c, "meal plan successfully updated", plan)
}

func (h *MealPlanHandler) Get(c *fiber.Ctx) error {
	mealPlanID, err := pathID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid meal plan ID")
	}

	plan, err := h.mealPlans.FindMealPlanByID(c.UserContext(), mealPlanID)
	if err != nil {
		return respondError(c, "get_meal_plan", err)
	}
	return ok(c, "meal plan found", plan)
}

func (h *MealPlanHandler) Remove(c *fiber.Ctx) error {
	mealPlanID, userID, err := idPair(c, "ids")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid meal plan or user ID")
	}

	profile, err := h.mealPlans.RemoveMealPlan(c.UserContext(), userID, mealPlanID)
	if err != nil {
		return respondError(c, "remove_meal_plan", err)
	}
	return ok(c, "meal plan successfully deleted", profile)
}
