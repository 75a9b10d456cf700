package validators

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	dto "todo-api.com/todo-api/internal/data_models"
	repository "todo-api.com/todo-api/internal/repositories"
)

// ValidateUpdateToDoItemRequest checks the field constraints plus the one
// cross-record rule: a new expiry must lie in the future, unless it equals
// the currently stored expiry. Leaving an already-expired expiry untouched
// is allowed, so expired items can still be updated. The repository is
// used read-only for the stored-expiry lookup.
func ValidateUpdateToDoItemRequest(ctx context.Context, repo *repository.ToDoRepository, r *dto.UpdateToDoItemRequest) error {
	if err := validateTitle(r.Title); err != nil {
		return err
	}
	if err := validateDescription(r.Description); err != nil {
		return err
	}
	if err := validatePercentage(r.CompletionPercentage); err != nil {
		return err
	}

	if r.Expiry == nil || !r.Expiry.Before(time.Now()) {
		return nil
	}

	stored, err := repo.GetExpiryDate(ctx, r.ID)
	if err != nil {
		return err
	}
	if stored != nil && stored.Equal(*r.Expiry) {
		return nil
	}
	return echo.NewHTTPError(http.StatusBadRequest, "expiry must be a future date")
}
