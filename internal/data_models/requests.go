package dto

import (
	"time"

	model "todo-api.com/todo-api/internal/models"
)

type AddToDoItemRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Expiry      *time.Time `json:"expiry"`
}

func (r *AddToDoItemRequest) ToEntity() *model.ToDoItem {
	return model.NewToDoItem(r.Title, r.Description, r.Expiry)
}

type UpdateToDoItemRequest struct {
	ID                   uint       `json:"id"`
	Title                string     `json:"title"`
	Description          *string    `json:"description"`
	CompletionPercentage int        `json:"completion_percentage"`
	Expiry               *time.Time `json:"expiry"`
}

func (r *UpdateToDoItemRequest) ToEntity() *model.ToDoItem {
	return &model.ToDoItem{
		ID:                   r.ID,
		Title:                r.Title,
		Description:          r.Description,
		CompletionPercentage: r.CompletionPercentage,
		Expiry:               model.NormalizeExpiry(r.Expiry),
	}
}

type SetCompletionPercentageRequest struct {
	Percentage int `json:"percentage"`
}

type ListToDoItemsRequest struct {
	PageIndex int  `query:"page_index"`
	PageSize  int  `query:"page_size"`
	Expired   bool `query:"expired"`
}

// Dates use the "2006-01-02" layout; StartDate is mandatory.
type IncomingToDoItemsRequest struct {
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
}
