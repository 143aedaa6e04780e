// Package session keeps the signed-in user id in a client-side cookie. The
// cookie holds an HS256 JWT; nothing is stored on the server.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// LocalsKey is where the verified *jwt.Token lives in fiber locals.
const LocalsKey = "user"

var ErrNoSession = errors.New("no session")

type Manager struct {
	secret []byte
	name   string
	maxAge time.Duration
	secure bool
	now    func() time.Time
}

func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		secret: []byte(cfg.SessionSecret),
		name:   cfg.SessionName,
		maxAge: cfg.SessionMaxAge,
		secure: cfg.CookieSecure,
		now:    time.Now,
	}
}

func (m *Manager) CookieName() string { return m.name }

func (m *Manager) Sign(userID uuid.UUID) (string, error) {
	now := m.now()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(m.maxAge).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse verifies a cookie value and returns the user id it carries.
func (m *Manager) Parse(raw string) (uuid.UUID, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(m.now))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid session: %w", err)
	}
	return subject(token)
}

// Issue signs a session for userID and attaches it to the response.
func (m *Manager) Issue(c *fiber.Ctx, userID uuid.UUID) error {
	value, err := m.Sign(userID)
	if err != nil {
		return fmt.Errorf("failed to sign session: %w", err)
	}
	c.Cookie(&fiber.Cookie{
		Name:     m.name,
		Value:    value,
		Path:     "/",
		Expires:  m.now().Add(m.maxAge),
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}

func (m *Manager) Clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     m.name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// UserID extracts the user id from a token verified by the session middleware.
func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	token, ok := c.Locals(LocalsKey).(*jwt.Token)
	if !ok || token == nil {
		return uuid.Nil, ErrNoSession
	}
	return subject(token)
}

func subject(token *jwt.Token) (uuid.UUID, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}
	return uuid.Parse(sub)
}
