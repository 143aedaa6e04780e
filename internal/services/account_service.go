package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/meals-backend/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AccountService struct {
	db         *gorm.DB
	bcryptCost int
}

func NewAccountService(db *gorm.DB, cfg *config.Config) *AccountService {
	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &AccountService{db: db, bcryptCost: cost}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AccountService) CreateAccount(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserProfile, error) {
	email := normalizeEmail(req.Email)

	if _, err := s.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:        uuid.New(),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     email,
		Password:  string(hash),
		Marketing: req.Marketing,
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		// Lost a race with a concurrent signup for the same email.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	metrics.AccountsCreated.Inc()
	return dto.NewUserProfile(&user), nil
}

func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*dto.UserProfile, error) {
	user, err := s.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			metrics.Logins.WithLabelValues("unknown_email").Inc()
			return nil, ErrEmailNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		metrics.Logins.WithLabelValues("password_mismatch").Inc()
		return nil, ErrPasswordMismatch
	}

	metrics.Logins.WithLabelValues("success").Inc()
	return loadProfile(s.db.WithContext(ctx), user.ID)
}

func (s *AccountService) FindByID(ctx context.Context, userID uuid.UUID) (*dto.UserProfile, error) {
	return loadProfile(s.db.WithContext(ctx), userID)
}

// FindByEmail returns the stored user, hash included. Callers must not serialize it.
func (s *AccountService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return &user, nil
}

func (s *AccountService) SetMarketing(ctx context.Context, userID uuid.UUID, marketing bool) (*dto.UserProfile, error) {
	var profile *dto.UserProfile
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.User{}).Where("id = ?", userID).Update("marketing", marketing)
		if result.Error != nil {
			return fmt.Errorf("failed to update marketing flag: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}

		var err error
		profile, err = loadProfile(tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}
