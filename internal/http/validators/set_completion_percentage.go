package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "todo-api.com/todo-api/internal/data_models"
)

func ValidateSetCompletionPercentageRequest(r *dto.SetCompletionPercentageRequest) error {
	return validatePercentage(r.Percentage)
}

func validatePercentage(percentage int) error {
	if percentage < 0 || percentage > 100 {
		return echo.NewHTTPError(http.StatusBadRequest, "percentage must be between 0 and 100")
	}
	return nil
}
