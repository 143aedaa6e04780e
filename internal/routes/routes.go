package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type Handlers struct {
	Account  *handlers.AccountHandler
	Recipe   *handlers.RecipeHandler
	MealPlan *handlers.MealPlanHandler
	List     *handlers.ListHandler
	Health   *handlers.HealthHandler
}

func perIPLimiter(max int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               max,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
}

func Setup(app *fiber.App, cfg *config.Config, h Handlers) {
	app.Get("/metrics", metrics.Handler())

	api := app.Group("/api")
	if cfg.RateLimit > 0 {
		api.Use(perIPLimiter(cfg.RateLimit))
	}

	api.Get("/health", h.Health.Check)

	// Credential endpoints get the stricter limit
	authLimit := func(c *fiber.Ctx) error { return c.Next() }
	if cfg.AuthRateLimit > 0 {
		authLimit = perIPLimiter(cfg.AuthRateLimit)
	}

	// Accounts
	api.Post("/newuser/post", authLimit, h.Account.CreateUser)
	api.Post("/login", authLimit, h.Account.Login)
	api.Post("/logout", h.Account.Logout)
	api.Get("/me", middleware.SessionRequired(cfg), h.Account.Me)
	api.Get("/get/:id", h.Account.GetUser)
	api.Put("/marketing/put", h.Account.SetMarketing)

	// Recipes. Deletes take "<recordId>&<userId>" as a single segment.
	api.Post("/newrecipe/post", h.Recipe.CreateRecipe)
	api.Delete("/recipe/delete/:ids", h.Recipe.RemoveRecipe)
	api.Post("/newlinkrecipe/post", h.Recipe.CreateLinkRecipe)
	api.Delete("/linkrecipe/delete/:ids", h.Recipe.RemoveLinkRecipe)
	api.Post("/favoriterecipe/post", h.Recipe.AddFavorite)
	api.Delete("/favoriterecipe/delete/:ids", h.Recipe.RemoveFavorite)

	// Meal plans
	api.Post("/newmealplan/post", h.MealPlan.Create)
	api.Put("/updatemealplan/put", h.MealPlan.UpdateSlot)
	api.Get("/getmealplan/get/:id", h.MealPlan.Get)
	api.Delete("/deletemealplan/delete/:ids", h.MealPlan.Remove)

	// Shopping lists
	api.Post("/newlist/post", h.List.Create)
	api.Get("/getlist/get/:id", h.List.Get)
	api.Put("/updatelist/put", h.List.Update)

	api.Patch("/update/:id", handlers.NotImplemented)
	api.Delete("/delete/:id", handlers.NotImplemented)
}
