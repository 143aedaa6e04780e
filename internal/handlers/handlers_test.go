package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/dbtest"
	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/routes"
	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/session"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type envelope struct {
	Error   bool            `json:"error"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type profile struct {
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	Marketing bool   `json:"marketing"`
	Recipes   []struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	} `json:"recipes"`
	LinkRecipes []struct {
		ID string `json:"id"`
	} `json:"linkRecipes"`
	Favorites []struct {
		ID     string `json:"id"`
		Source string `json:"source"`
	} `json:"favorites"`
	Lists     []string `json:"lists"`
	MealPlans []string `json:"mealPlans"`
}

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	app, _ := newAppWithDB(t)
	return app
}

func newAppWithDB(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := dbtest.Open(t)
	cfg := &config.Config{
		SessionSecret: "test-secret",
		SessionName:   "meals-app-session",
		SessionMaxAge: time.Hour,
		BcryptCost:    bcrypt.MinCost,
	}

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	app.Use(requestid.New())
	routes.Setup(app, cfg, routes.Handlers{
		Account:  handlers.NewAccountHandler(services.NewAccountService(db, cfg), session.NewManager(cfg)),
		Recipe:   handlers.NewRecipeHandler(services.NewRecipeService(db)),
		MealPlan: handlers.NewMealPlanHandler(services.NewMealPlanService(db)),
		List:     handlers.NewListHandler(services.NewListService(db)),
		Health:   handlers.NewHealthHandler(db),
	})
	return app, db
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func call(t *testing.T, app *fiber.App, method, path string, body interface{}, cookies ...*http.Cookie) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	return resp, env
}

func decode(t *testing.T, data json.RawMessage, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(data, v), string(data))
}

func signup(t *testing.T, app *fiber.App, email string) (profile, *http.Cookie) {
	t.Helper()
	resp, env := call(t, app, "POST", "/api/newuser/post", dto.CreateUserRequest{
		FirstName: "Matt",
		LastName:  "Hastings",
		Email:     email,
		Password:  "correct horse battery",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, env.Message)
	require.False(t, env.Error)

	var p profile
	decode(t, env.Data, &p)
	return p, sessionCookie(t, resp)
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == "meals-app-session" {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}
