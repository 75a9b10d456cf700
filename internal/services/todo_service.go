package services

import (
	"context"
	"log"

	apperrors "todo-api.com/todo-api/internal/errors"
	model "todo-api.com/todo-api/internal/models"
	repository "todo-api.com/todo-api/internal/repositories"
)

// ToDoService applies the read-modify-write rules on top of the
// repository. Every operation loads the item, mutates it and persists it
// inside one transaction; a missing id yields ErrToDoItemNotFound.
type ToDoService struct {
	repo *repository.ToDoRepository
}

func NewToDoService(repo *repository.ToDoRepository) *ToDoService {
	return &ToDoService{repo: repo}
}

// Update overwrites title, description, completion percentage and expiry of
// the stored item with the given values. The item's id and creation
// timestamp are never touched.
func (s *ToDoService) Update(ctx context.Context, updated *model.ToDoItem) (*model.ToDoItem, error) {
	var item *model.ToDoItem
	err := s.repo.Transaction(ctx, func(r *repository.ToDoRepository) error {
		existing, err := r.GetByID(ctx, updated.ID)
		if err != nil {
			return err
		}
		if existing == nil {
			log.Printf("todo item with id %d was not found", updated.ID)
			return apperrors.ErrToDoItemNotFound
		}

		existing.Title = updated.Title
		existing.Description = updated.Description
		existing.CompletionPercentage = updated.CompletionPercentage
		existing.Expiry = model.NormalizeExpiry(updated.Expiry)

		if _, err := r.Commit(ctx, existing); err != nil {
			return err
		}
		item = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("successfully updated todo item with id %d", item.ID)
	return item, nil
}

// SetCompletionPercentage sets the completion percentage to the given
// value. Range validation happens upstream; this operation stores the value
// as given.
func (s *ToDoService) SetCompletionPercentage(ctx context.Context, id uint, percentage int) (*model.ToDoItem, error) {
	var item *model.ToDoItem
	err := s.repo.Transaction(ctx, func(r *repository.ToDoRepository) error {
		existing, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			log.Printf("todo item with id %d was not found", id)
			return apperrors.ErrToDoItemNotFound
		}

		log.Printf("setting todo item %d completion percentage from %d to %d",
			id, existing.CompletionPercentage, percentage)
		existing.CompletionPercentage = percentage

		if _, err := r.Commit(ctx, existing); err != nil {
			return err
		}
		item = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

// MarkAsDone sets the completion percentage to 100 regardless of its
// current value.
func (s *ToDoService) MarkAsDone(ctx context.Context, id uint) (*model.ToDoItem, error) {
	var item *model.ToDoItem
	err := s.repo.Transaction(ctx, func(r *repository.ToDoRepository) error {
		existing, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			log.Printf("todo item with id %d was not found", id)
			return apperrors.ErrToDoItemNotFound
		}

		existing.CompletionPercentage = 100

		if _, err := r.Commit(ctx, existing); err != nil {
			return err
		}
		item = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("successfully marked todo item with id %d as done", id)
	return item, nil
}
