package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "todo-api.com/todo-api/internal/data_models"
)

func ValidateListToDoItemsRequest(r *dto.ListToDoItemsRequest) error {
	if r.PageIndex < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "page index must be 0 or greater")
	}
	if r.PageSize < 1 || r.PageSize > 100 {
		return echo.NewHTTPError(http.StatusBadRequest, "page size must be between 1 and 100")
	}
	return nil
}
