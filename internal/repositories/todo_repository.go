package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	model "todo-api.com/todo-api/internal/models"
)

type ToDoRepository struct {
	db *gorm.DB

	mu     sync.Mutex
	staged []*model.ToDoItem
}

func NewToDoRepository(db *gorm.DB) *ToDoRepository {
	return &ToDoRepository{db: db}
}

// GetAll returns one page of items ordered by creation time. When
// showExpired is false, items whose expiry has passed are excluded before
// counting and paging. An empty filtered set short-circuits without a
// second query.
func (r *ToDoRepository) GetAll(ctx context.Context, pageIndex, pageSize int, showExpired bool) (*model.PaginatedList, error) {
	var totalCount int64
	if err := r.filtered(ctx, showExpired).Count(&totalCount).Error; err != nil {
		return nil, err
	}

	if totalCount == 0 {
		return &model.PaginatedList{
			PageIndex:  pageIndex,
			PageSize:   pageSize,
			TotalCount: 0,
			Data:       []model.ToDoItem{},
		}, nil
	}

	var items []model.ToDoItem
	err := r.filtered(ctx, showExpired).
		Order("created_on asc").
		Offset(pageIndex * pageSize).
		Limit(pageSize).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return &model.PaginatedList{
		PageIndex:  pageIndex,
		PageSize:   pageSize,
		TotalCount: int(totalCount),
		Data:       items,
	}, nil
}

func (r *ToDoRepository) filtered(ctx context.Context, showExpired bool) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&model.ToDoItem{})
	if !showExpired {
		query = query.Where("expiry IS NULL OR expiry > ?", time.Now().UTC())
	}
	return query
}

// GetByID returns nil without an error when no item has the given id;
// absence is a normal outcome here, not a failure.
func (r *ToDoRepository) GetByID(ctx context.Context, id uint) (*model.ToDoItem, error) {
	var item model.ToDoItem
	err := r.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetIncoming returns items whose expiry falls on startDate, or within
// [startDate, endDate] when endDate is set, ordered by expiry. The match is
// on the calendar date, so an item expiring at 23:59 on startDate counts.
// Items without an expiry are never incoming.
func (r *ToDoRepository) GetIncoming(ctx context.Context, startDate time.Time, endDate *time.Time) ([]model.ToDoItem, error) {
	var candidates []model.ToDoItem
	err := r.db.WithContext(ctx).
		Where("expiry IS NOT NULL").
		Order("expiry asc").
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}

	first := dateOf(startDate)
	last := first
	if endDate != nil {
		last = dateOf(*endDate)
	}

	items := make([]model.ToDoItem, 0, len(candidates))
	for _, item := range candidates {
		expiryDate := dateOf(*item.Expiry)
		if !expiryDate.Before(first) && !expiryDate.After(last) {
			items = append(items, item)
		}
	}
	return items, nil
}

func dateOf(t time.Time) time.Time {
	year, month, day := t.Local().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

// GetExpiryDate returns the stored expiry for an id. The result is nil both
// when the item does not exist and when its expiry is unset; callers must
// tolerate the ambiguity.
func (r *ToDoRepository) GetExpiryDate(ctx context.Context, id uint) (*time.Time, error) {
	var item model.ToDoItem
	err := r.db.WithContext(ctx).Select("expiry").First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item.Expiry, nil
}

// Add stages a new item for insertion. Nothing is written until the next
// Commit, which also assigns the item's id.
func (r *ToDoRepository) Add(item *model.ToDoItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.staged = append(r.staged, item)
}

// Commit persists staged inserts together with any explicitly passed
// modified items in a single transaction and returns the number of
// affected records. On failure the staged inserts are restored so a retry
// can commit them.
func (r *ToDoRepository) Commit(ctx context.Context, changed ...*model.ToDoItem) (int64, error) {
	r.mu.Lock()
	staged := r.staged
	r.staged = nil
	r.mu.Unlock()

	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range staged {
			res := tx.Create(item)
			if res.Error != nil {
				return res.Error
			}
			affected += res.RowsAffected
		}
		for _, item := range changed {
			res := tx.Save(item)
			if res.Error != nil {
				return res.Error
			}
			affected += res.RowsAffected
		}
		return nil
	})
	if err != nil {
		r.mu.Lock()
		r.staged = append(staged, r.staged...)
		r.mu.Unlock()
		return 0, err
	}

	return affected, nil
}

// DeleteByID removes the item with the given id and returns the number of
// removed records (0 or 1). A missing id is not an error; the caller
// interprets the count.
func (r *ToDoRepository) DeleteByID(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.ToDoItem{}, id)
	return res.RowsAffected, res.Error
}

// Transaction runs fn against a repository bound to a single database
// transaction, so a fetch and the following persist form one atomic unit
// of work. Returning an error rolls everything back.
func (r *ToDoRepository) Transaction(ctx context.Context, fn func(*ToDoRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ToDoRepository{db: tx})
	})
}
