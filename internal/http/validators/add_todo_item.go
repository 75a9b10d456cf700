package validators

import (
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	dto "todo-api.com/todo-api/internal/data_models"
)

const (
	titleMinLength       = 3
	titleMaxLength       = 128
	descriptionMaxLength = 512
)

func ValidateAddToDoItemRequest(r *dto.AddToDoItemRequest) error {
	if err := validateTitle(r.Title); err != nil {
		return err
	}
	if err := validateDescription(r.Description); err != nil {
		return err
	}
	// Expiry is checked against the clock at validation time, not at
	// creation time.
	if r.Expiry != nil && r.Expiry.Before(time.Now()) {
		return echo.NewHTTPError(http.StatusBadRequest, "expiry must be a future date")
	}
	return nil
}

// validateTitle checks length only, without trimming: a whitespace-only
// title of sufficient length passes.
func validateTitle(title string) error {
	if title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if length := utf8.RuneCountInString(title); length < titleMinLength || length > titleMaxLength {
		return echo.NewHTTPError(http.StatusBadRequest, "title must be between 3 and 128 characters")
	}
	return nil
}

func validateDescription(description *string) error {
	if description != nil && utf8.RuneCountInString(*description) > descriptionMaxLength {
		return echo.NewHTTPError(http.StatusBadRequest, "description must not exceed 512 characters")
	}
	return nil
}
