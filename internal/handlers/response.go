package handlers

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/validation"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var errBadIDPair = errors.New("expected two ids joined by '&'")

func ok(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(dto.Response{Error: false, Message: message, Data: data})
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: message})
}

// normalizer is implemented by request bodies that clean their fields before
// validation.
type normalizer interface {
	Normalize()
}

// bind parses the JSON body into v and checks its validate tags. A non-nil
// result is a *fiber.Error that ErrorHandler turns into a 400 envelope.
func bind(c *fiber.Ctx, v interface{}) error {
	if err := c.BodyParser(v); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if n, canNormalize := v.(normalizer); canNormalize {
		n.Normalize()
	}
	if err := validation.Struct(v); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}

// domainStatus maps the services' sentinel errors to an HTTP status.
func domainStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrInvalidSource),
		errors.Is(err, services.ErrInvalidFavorite),
		errors.Is(err, services.ErrSlotOutOfRange):
		return fiber.StatusBadRequest, true
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrRecipeNotFound),
		errors.Is(err, services.ErrLinkRecipeNotFound),
		errors.Is(err, services.ErrFavoriteNotFound),
		errors.Is(err, services.ErrMealPlanNotFound),
		errors.Is(err, services.ErrListNotFound):
		return fiber.StatusNotFound, true
	}
	return 0, false
}

// respondError answers with the domain message when err is a known sentinel,
// otherwise logs it and hides the details behind a 500.
func respondError(c *fiber.Ctx, action string, err error) error {
	if status, known := domainStatus(err); known {
		return fail(c, status, err.Error())
	}
	slog.Error("request failed",
		"action", action,
		"path", c.Path(),
		"request_id", requestID(c),
		"error", err,
	)
	return fail(c, fiber.StatusInternalServerError, "Internal server error")
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}

func pathID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}

// idPair reads the "<first>&<second>" path segment the client sends on deletes.
func idPair(c *fiber.Ctx, name string) (uuid.UUID, uuid.UUID, error) {
	first, second, found := strings.Cut(c.Params(name), "&")
	if !found {
		return uuid.Nil, uuid.Nil, errBadIDPair
	}
	a, err := uuid.Parse(first)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	b, err := uuid.Parse(second)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return a, b, nil
}

// ErrorHandler shapes errors that escape a handler (routing misses, body
// limits, panics) into the response envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= fiber.StatusInternalServerError {
		slog.Error("unhandled server error",
			"method", c.Method(),
			"path", c.Path(),
			"request_id", requestID(c),
			"error", err.Error(),
		)
		if hub := sentryfiber.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
		message = "Internal server error"
	}

	return fail(c, code, message)
}
