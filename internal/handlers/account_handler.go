package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/session"
	"github.com/gofiber/fiber/v2"
)

type AccountHandler struct {
	accounts *services.AccountService
	sessions *session.Manager
}

func NewAccountHandler(accounts *services.AccountService, sessions *session.Manager) *AccountHandler {
	return &AccountHandler{accounts: accounts, sessions: sessions}
}

func (h *AccountHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	profile, err := h.accounts.CreateAccount(c.UserContext(), &req)
	if err != nil {
		return respondError(c, "create_user", err)
	}

	if err := h.sessions.Issue(c, profile.UserID); err != nil {
		return respondError(c, "create_user", err)
	}
	return ok(c, "user successfully created", profile)
}

// Login reports failures with status 200 and error=true; the frontend reads
// the flag, not the status.
func (h *AccountHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return fail(c, fiber.StatusOK, "Email & Password are required.")
	}

	profile, err := h.accounts.Authenticate(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailNotFound) || errors.Is(err, services.ErrPasswordMismatch) {
			return fail(c, fiber.StatusOK, err.Error())
		}
		return respondError(c, "login", err)
	}

	if err := h.sessions.Issue(c, profile.UserID); err != nil {
		return respondError(c, "login", err)
	}
	return ok(c, "user authenticated", profile)
}

func (h *AccountHandler) Logout(c *fiber.Ctx) error {
	h.sessions.Clear(c)
	return ok(c, "logged out", nil)
}

// Me returns the profile of the user holding the session cookie.
func (h *AccountHandler) Me(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	profile, err := h.accounts.FindByID(c.UserContext(), userID)
	if err != nil {
		return respondError(c, "me", err)
	}
	return ok(c, "user found", profile)
}

func (h *AccountHandler) GetUser(c *fiber.Ctx) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	profile, err := h.accounts.FindByID(c.UserContext(), userID)
	if err != nil {
		return respondError(c, "get_user", err)
	}
	return ok(c, "user found", profile)
}

func (h *AccountHandler) SetMarketing(c *fiber.Ctx) error {
	var req dto.MarketingRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	profile, err := h.accounts.SetMarketing(c.UserContext(), req.UserID, req.Marketing)
	if err != nil {
		return respondError(c, "set_marketing", err)
	}

	message := "user unsubscribed"
	if req.Marketing {
		message = "user subscribed"
	}
	return ok(c, message, profile)
}
