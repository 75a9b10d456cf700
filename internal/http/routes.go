package http

import (
	"github.com/labstack/echo/v4"

	middleware "todo-api.com/todo-api/internal/http/middlewares"
	"todo-api.com/todo-api/internal/ratelimit"
)

func Register(e *echo.Echo, h *Handler, limiter ratelimit.Limiter) {
	e.Use(middleware.RequestID())
	e.Use(middleware.RateLimiter(limiter))

	api := e.Group("/api/todoitems")
	api.GET("", h.GetAllToDoItems)
	api.GET("/incoming", h.GetIncomingToDoItems)
	api.GET("/:id", h.GetToDoItem)
	api.POST("", h.AddToDoItem)
	api.PUT("", h.UpdateToDoItem)
	api.PATCH("/:id/percentage", h.SetToDoItemCompletionPercentage)
	api.PATCH("/:id/done", h.MarkToDoItemAsDone)
	api.DELETE("/:id", h.DeleteToDoItem)
}
