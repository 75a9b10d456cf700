package validators

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	dto "todo-api.com/todo-api/internal/data_models"
)

const dateLayout = "2006-01-02"

// ValidateIncomingToDoItemsRequest parses and checks the queried date
// range. StartDate is mandatory; EndDate, when given, must not precede it.
// The parsed dates are returned so the handler does not parse twice.
func ValidateIncomingToDoItemsRequest(r *dto.IncomingToDoItemsRequest) (time.Time, *time.Time, error) {
	if r.StartDate == "" {
		return time.Time{}, nil, echo.NewHTTPError(http.StatusBadRequest, "start date is required")
	}

	startDate, err := time.ParseInLocation(dateLayout, r.StartDate, time.Local)
	if err != nil {
		return time.Time{}, nil, echo.NewHTTPError(http.StatusBadRequest, "start date must use the format yyyy-MM-dd")
	}

	if r.EndDate == "" {
		return startDate, nil, nil
	}

	endDate, err := time.ParseInLocation(dateLayout, r.EndDate, time.Local)
	if err != nil {
		return time.Time{}, nil, echo.NewHTTPError(http.StatusBadRequest, "end date must use the format yyyy-MM-dd")
	}
	if endDate.Before(startDate) {
		return time.Time{}, nil, echo.NewHTTPError(http.StatusBadRequest, "end date must be after the start date")
	}

	return startDate, &endDate, nil
}
