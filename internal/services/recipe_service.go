package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/validation"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

func (s *RecipeService) CreateRecipe(ctx context.Context, userID uuid.UUID, req dto.NewRecipe) (*dto.RecipeCreatedResponse, error) {
	ingredients := req.ExtendedIngredients
	if ingredients == nil {
		ingredients = []models.Ingredient{}
	}

	recipe := models.Recipe{
		ID:                   uuid.New(),
		UserID:               userID,
		Title:                req.Title,
		SourceName:           req.SourceName,
		PreparationMinutes:   req.PreparationMinutes,
		CookingMinutes:       req.CookingMinutes,
		Servings:             req.Servings,
		ExtendedIngredients:  datatypes.NewJSONSlice(ingredients),
		AnalyzedInstructions: rawJSON(req.AnalyzedInstructions),
	}

	var resp dto.RecipeCreatedResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureUser(tx, userID); err != nil {
			return err
		}
		if err := tx.Create(&recipe).Error; err != nil {
			return fmt.Errorf("failed to create recipe: %w", err)
		}

		profile, err := loadProfile(tx, userID)
		if err != nil {
			return err
		}
		resp = dto.RecipeCreatedResponse{Recipe: &recipe, User: profile}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordsCreated.WithLabelValues(metrics.KindRecipe).Inc()
	return &resp, nil
}

func (s *RecipeService) CreateLinkRecipe(ctx context.Context, userID uuid.UUID, req dto.NewLinkRecipe) (*dto.LinkRecipeCreatedResponse, error) {
	link := models.LinkRecipe{
		ID:         uuid.New(),
		UserID:     userID,
		RecipeName: req.RecipeName,
		RecipeLink: req.RecipeLink,
	}

	var resp dto.LinkRecipeCreatedResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureUser(tx, userID); err != nil {
			return err
		}
		if err := tx.Create(&link).Error; err != nil {
			return fmt.Errorf("failed to create link recipe: %w", err)
		}

		profile, err := loadProfile(tx, userID)
		if err != nil {
			return err
		}
		resp = dto.LinkRecipeCreatedResponse{LinkRecipe: &link, User: profile}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordsCreated.WithLabelValues(metrics.KindLinkRecipe).Inc()
	return &resp, nil
}

// AddFavorite stores a snapshot of the recipe. The payload must match the shape
// its source promises; the stored bytes are kept exactly as sent.
func (s *RecipeService) AddFavorite(ctx context.Context, userID uuid.UUID, source string, payload json.RawMessage) (*dto.FavoriteAddedResponse, error) {
	src := models.FavoriteSource(source)
	if !src.Valid() {
		return nil, ErrInvalidSource
	}
	if err := checkFavoritePayload(src, payload); err != nil {
		return nil, err
	}

	favorite := models.FavoriteRecipe{
		ID:     uuid.New(),
		UserID: userID,
		Source: src,
		Recipe: datatypes.JSON(payload),
	}

	var resp dto.FavoriteAddedResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureUser(tx, userID); err != nil {
			return err
		}
		if err := tx.Create(&favorite).Error; err != nil {
			return fmt.Errorf("failed to save favorite: %w", err)
		}

		profile, err := loadProfile(tx, userID)
		if err != nil {
			return err
		}
		resp = dto.FavoriteAddedResponse{Favorite: &favorite, User: profile}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordsCreated.WithLabelValues(metrics.KindFavorite).Inc()
	return &resp, nil
}

// apiRecipe is the minimum an externally sourced recipe must carry.
type apiRecipe struct {
	Title string `json:"title" validate:"required"`
}

func checkFavoritePayload(src models.FavoriteSource, payload json.RawMessage) error {
	var target interface{}
	switch src {
	case models.FavoriteSourceCustom:
		target = &dto.NewRecipe{}
	case models.FavoriteSourceLink:
		target = &dto.NewLinkRecipe{}
	case models.FavoriteSourceAPI:
		target = &apiRecipe{}
	}

	if err := json.Unmarshal(payload, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFavorite, err)
	}
	if err := validation.Struct(target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFavorite, err)
	}
	return nil
}

// RemoveFavorite deletes exactly one favorite; the user's other favorites are untouched.
func (s *RecipeService) RemoveFavorite(ctx context.Context, userID, favoriteID uuid.UUID) (*dto.UserProfile, error) {
	return s.removeOwned(ctx, userID, favoriteID, &models.FavoriteRecipe{}, ErrFavoriteNotFound, metrics.KindFavorite)
}

func (s *RecipeService) RemoveRecipe(ctx context.Context, userID, recipeID uuid.UUID) (*dto.UserProfile, error) {
	return s.removeOwned(ctx, userID, recipeID, &models.Recipe{}, ErrRecipeNotFound, metrics.KindRecipe)
}

func (s *RecipeService) RemoveLinkRecipe(ctx context.Context, userID, linkRecipeID uuid.UUID) (*dto.UserProfile, error) {
	return s.removeOwned(ctx, userID, linkRecipeID, &models.LinkRecipe{}, ErrLinkRecipeNotFound, metrics.KindLinkRecipe)
}

func (s *RecipeService) removeOwned(ctx context.Context, userID, id uuid.UUID, model interface{}, notFound error, kind string) (*dto.UserProfile, error) {
	var profile *dto.UserProfile
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureUser(tx, userID); err != nil {
			return err
		}

		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(model)
		if result.Error != nil {
			return fmt.Errorf("failed to delete %s: %w", kind, result.Error)
		}
		if result.RowsAffected == 0 {
			return notFound
		}

		var err error
		profile, err = loadProfile(tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordsDeleted.WithLabelValues(kind).Inc()
	return profile, nil
}

// rawJSON maps an absent or null JSON value to SQL NULL.
func rawJSON(raw json.RawMessage) datatypes.JSON {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return datatypes.JSON(raw)
}
