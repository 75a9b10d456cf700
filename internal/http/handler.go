package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	dto "todo-api.com/todo-api/internal/data_models"
	apperrors "todo-api.com/todo-api/internal/errors"
	"todo-api.com/todo-api/internal/http/validators"
	repository "todo-api.com/todo-api/internal/repositories"
	"todo-api.com/todo-api/internal/services"
)

// Handler routes the pure CRUD operations (list, incoming, get, add,
// delete) straight to the repository and the read-modify-write operations
// (update, percentage, done) through the service.
type Handler struct {
	repo    *repository.ToDoRepository
	service *services.ToDoService
}

func NewHandler(repo *repository.ToDoRepository, service *services.ToDoService) *Handler {
	return &Handler{
		repo:    repo,
		service: service,
	}
}

func (h *Handler) GetAllToDoItems(c echo.Context) error {
	req := dto.ListToDoItemsRequest{PageSize: 10, Expired: true}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := validators.ValidateListToDoItemsRequest(&req); err != nil {
		return err
	}

	list, err := h.repo.GetAll(c.Request().Context(), req.PageIndex, req.PageSize, req.Expired)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list todo items")
	}

	return c.JSON(http.StatusOK, dto.NewPaginatedToDoItemsResponse(list))
}

func (h *Handler) GetIncomingToDoItems(c echo.Context) error {
	var req dto.IncomingToDoItemsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	startDate, endDate, err := validators.ValidateIncomingToDoItemsRequest(&req)
	if err != nil {
		return err
	}

	items, err := h.repo.GetIncoming(c.Request().Context(), startDate, endDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list incoming todo items")
	}

	return c.JSON(http.StatusOK, dto.NewToDoItemResponses(items))
}

func (h *Handler) GetToDoItem(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return err
	}

	item, err := h.repo.GetByID(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get todo item")
	}
	if item == nil {
		return echo.NewHTTPError(http.StatusNotFound, apperrors.ErrToDoItemNotFound.Message)
	}

	return c.JSON(http.StatusOK, dto.NewToDoItemResponse(item))
}

func (h *Handler) AddToDoItem(c echo.Context) error {
	var req dto.AddToDoItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrInvalidJSON.Message)
	}
	if err := validators.ValidateAddToDoItemRequest(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	item := req.ToEntity()
	h.repo.Add(item)
	if _, err := h.repo.Commit(ctx); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to add todo item")
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/todoitems/%d", item.ID))
	return c.JSON(http.StatusCreated, dto.NewToDoItemResponse(item))
}

func (h *Handler) UpdateToDoItem(c echo.Context) error {
	var req dto.UpdateToDoItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrInvalidJSON.Message)
	}

	ctx := c.Request().Context()
	if err := validators.ValidateUpdateToDoItemRequest(ctx, h.repo, &req); err != nil {
		return err
	}

	item, err := h.service.Update(ctx, req.ToEntity())
	if err != nil {
		if errors.Is(err, apperrors.ErrToDoItemNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, apperrors.ErrToDoItemNotFound.Message)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update todo item")
	}

	return c.JSON(http.StatusOK, dto.NewToDoItemResponse(item))
}

func (h *Handler) SetToDoItemCompletionPercentage(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return err
	}

	var req dto.SetCompletionPercentageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrInvalidJSON.Message)
	}
	if err := validators.ValidateSetCompletionPercentageRequest(&req); err != nil {
		return err
	}

	if _, err := h.service.SetCompletionPercentage(c.Request().Context(), id, req.Percentage); err != nil {
		if errors.Is(err, apperrors.ErrToDoItemNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, apperrors.ErrToDoItemNotFound.Message)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to set completion percentage")
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) MarkToDoItemAsDone(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return err
	}

	if _, err := h.service.MarkAsDone(c.Request().Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrToDoItemNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, apperrors.ErrToDoItemNotFound.Message)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to mark todo item as done")
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteToDoItem(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return err
	}

	deleted, err := h.repo.DeleteByID(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete todo item")
	}
	if deleted == 0 {
		return echo.NewHTTPError(http.StatusNotFound, apperrors.ErrToDoItemNotFound.Message)
	}

	return c.NoContent(http.StatusNoContent)
}

func itemID(c echo.Context) (uint, error) {
	raw := c.Param("id")
	if raw == "" {
		return 0, echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrToDoItemIDRequired.Message)
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "todo item id must be a positive integer")
	}
	return uint(id), nil
}
