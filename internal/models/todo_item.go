package model

import (
	"time"
)

type ToDoItem struct {
	ID                   uint       `gorm:"primaryKey" json:"id"`
	Title                string     `gorm:"size:128;not null" json:"title"`
	Description          *string    `gorm:"size:512" json:"description,omitempty"`
	CompletionPercentage int        `gorm:"not null;default:0" json:"completion_percentage"`
	CreatedOn            time.Time  `gorm:"not null" json:"created_on"`
	Expiry               *time.Time `json:"expiry,omitempty"`
}

// NewToDoItem builds a fresh item: completion starts at zero and CreatedOn
// is fixed at creation time. Timestamps are stored in UTC.
func NewToDoItem(title string, description *string, expiry *time.Time) *ToDoItem {
	return &ToDoItem{
		Title:                title,
		Description:          description,
		CompletionPercentage: 0,
		CreatedOn:            time.Now().UTC(),
		Expiry:               NormalizeExpiry(expiry),
	}
}

// NormalizeExpiry converts an optional expiry to UTC so all stored
// timestamps compare consistently.
func NormalizeExpiry(expiry *time.Time) *time.Time {
	if expiry == nil {
		return nil
	}
	utc := expiry.UTC()
	return &utc
}

// IsExpired reports whether the item has an expiry in the past. Items
// without an expiry never expire.
func (t *ToDoItem) IsExpired() bool {
	return t.Expiry != nil && t.Expiry.Before(time.Now())
}

func (t *ToDoItem) IsDone() bool {
	return t.CompletionPercentage == 100
}
