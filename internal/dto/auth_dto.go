package dto

import (
	"strings"

	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/models"
	"github.com/google/uuid"
)

type CreateUserRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	Marketing bool   `json:"marketing"`
}

// Normalize trims the names and canonicalizes the email before validation.
func (r *CreateUserRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type MarketingRequest struct {
	UserID    uuid.UUID `json:"userId" validate:"required"`
	Marketing bool      `json:"marketing"`
}

// UserProfile is a user without the password hash, plus everything the user owns.
type UserProfile struct {
	UserID      uuid.UUID               `json:"userId"`
	FirstName   string                  `json:"firstName"`
	LastName    string                  `json:"lastName"`
	Email       string                  `json:"email"`
	Marketing   bool                    `json:"marketing"`
	Favorites   []models.FavoriteRecipe `json:"favorites"`
	Recipes     []models.Recipe         `json:"recipes"`
	LinkRecipes []models.LinkRecipe     `json:"linkRecipes"`
	Lists       []uuid.UUID             `json:"lists"`
	MealPlans   []uuid.UUID             `json:"mealPlans"`
}

// NewUserProfile expects the user's associations to be preloaded.
func NewUserProfile(u *models.User) *UserProfile {
	p := &UserProfile{
		UserID:      u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		Marketing:   u.Marketing,
		Favorites:   u.Favorites,
		Recipes:     u.Recipes,
		LinkRecipes: u.LinkRecipes,
		Lists:       make([]uuid.UUID, 0, len(u.Lists)),
		MealPlans:   make([]uuid.UUID, 0, len(u.MealPlans)),
	}
	if p.Favorites == nil {
		p.Favorites = []models.FavoriteRecipe{}
	}
	if p.Recipes == nil {
		p.Recipes = []models.Recipe{}
	}
	if p.LinkRecipes == nil {
		p.LinkRecipes = []models.LinkRecipe{}
	}
	for _, l := range u.Lists {
		p.Lists = append(p.Lists, l.ID)
	}
	for _, m := range u.MealPlans {
		p.MealPlans = append(p.MealPlans, m.ID)
	}
	return p
}

type Response struct {
	Error   bool        `json:"error"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// HealthResponse is the data of GET /api/health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
