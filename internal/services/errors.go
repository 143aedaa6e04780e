package services

import "errors"

var (
	ErrEmailTaken       = errors.New("a user with this email already exists")
	ErrEmailNotFound    = errors.New("a user with this email does not exist")
	ErrPasswordMismatch = errors.New("password doesn't match")
	ErrUserNotFound     = errors.New("user not found")

	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrLinkRecipeNotFound = errors.New("link recipe not found")
	ErrFavoriteNotFound   = errors.New("favorite not found")
	ErrInvalidSource      = errors.New("favorite source must be one of custom, link, api")
	ErrInvalidFavorite    = errors.New("favorite recipe does not match its source")

	ErrMealPlanNotFound = errors.New("meal plan not found")
	ErrSlotOutOfRange   = errors.New("meal plan slot index out of range")

	ErrListNotFound = errors.New("list not found")
)
