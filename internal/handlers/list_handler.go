package handlers

import (
	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ListHandler struct {
	lists *services.ListService
}

func NewListHandler(lists *services.ListService) *ListHandler {
	return &ListHandler{lists: lists}
}

func (h *ListHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateListRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	resp, err := h.lists.CreateList(c.UserContext(), req.UserID, req.MealPlanID, req.List)
	if err != nil {
		return respondError(c, "create_list", err)
	}
	return ok(c, "list successfully created", resp)
}

func (h *ListHandler) Get(c *fiber.Ctx) error {
	listID, err := pathID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid list ID")
	}

	list, err := h.lists.FindListByID(c.UserContext(), listID)
	if err != nil {
		return respondError(c, "get_list", err)
	}
	return ok(c, "list found", list)
}

func (h *ListHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateListRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	list, err := h.lists.UpdateList(c.UserContext(), req.ListID, req.ListList, req.AcquiredList)
	if err != nil {
		return respondError(c, "update_list", err)
	}
	return ok(c, "list successfully updated", list)
}
