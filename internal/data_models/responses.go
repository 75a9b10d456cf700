package dto

import (
	"time"

	model "todo-api.com/todo-api/internal/models"
)

type ToDoItemResponse struct {
	ID                   uint       `json:"id"`
	Title                string     `json:"title"`
	Description          *string    `json:"description,omitempty"`
	CompletionPercentage int        `json:"completion_percentage"`
	CreatedOn            time.Time  `json:"created_on"`
	Expiry               *time.Time `json:"expiry,omitempty"`
	IsExpired            bool       `json:"is_expired"`
	IsDone               bool       `json:"is_done"`
}

func NewToDoItemResponse(item *model.ToDoItem) ToDoItemResponse {
	return ToDoItemResponse{
		ID:                   item.ID,
		Title:                item.Title,
		Description:          item.Description,
		CompletionPercentage: item.CompletionPercentage,
		CreatedOn:            item.CreatedOn,
		Expiry:               item.Expiry,
		IsExpired:            item.IsExpired(),
		IsDone:               item.IsDone(),
	}
}

func NewToDoItemResponses(items []model.ToDoItem) []ToDoItemResponse {
	responses := make([]ToDoItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, NewToDoItemResponse(&items[i]))
	}
	return responses
}

type PaginatedToDoItemsResponse struct {
	PageIndex  int                `json:"page_index"`
	PageSize   int                `json:"page_size"`
	TotalCount int                `json:"total_count"`
	TotalPages int                `json:"total_pages"`
	Data       []ToDoItemResponse `json:"data"`
}

func NewPaginatedToDoItemsResponse(list *model.PaginatedList) PaginatedToDoItemsResponse {
	return PaginatedToDoItemsResponse{
		PageIndex:  list.PageIndex,
		PageSize:   list.PageSize,
		TotalCount: list.TotalCount,
		TotalPages: list.TotalPages(),
		Data:       NewToDoItemResponses(list.Data),
	}
}
