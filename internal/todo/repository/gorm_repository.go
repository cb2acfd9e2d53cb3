package repository

import (
	"errors"
	"time"

	tododomain "todo-api/internal/todo/domain"

	"gorm.io/gorm"
)

// gormTodoRepository implements TodoRepository using GORM
type gormTodoRepository struct {
	db *gorm.DB
}

// NewGormTodoRepository creates a new GORM-based TodoRepository
func NewGormTodoRepository(db *gorm.DB) TodoRepository {
	return &gormTodoRepository{db: db}
}

func (r *gormTodoRepository) Create(todo *tododomain.Todo) error {
	todo.CreatedAt = time.Now()
	todo.UpdatedAt = time.Now()
	return r.db.Create(todo).Error
}

func (r *gormTodoRepository) FindByID(id, userID uint) (*tododomain.Todo, error) {
	var todo tododomain.Todo
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&todo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &todo, nil
}

func (r *gormTodoRepository) FindByUserID(userID uint, filter ListFilter) ([]*tododomain.Todo, int64, error) {
	var todos []*tododomain.Todo
	var total int64

	query := r.db.Model(&tododomain.Todo{}).Where("user_id = ?", userID)
	if filter.IsCompleted != nil {
		query = query.Where("is_completed = ?", *filter.IsCompleted)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := filter.SortBy
	switch sortBy {
	case "created_at", "updated_at", "title":
	default:
		sortBy = "created_at"
	}
	order := "DESC"
	if filter.SortOrder == "asc" {
		order = "ASC"
	}

	err := query.Order(sortBy + " " + order).
		Limit(filter.Limit).Offset(filter.Skip).Find(&todos).Error

	return todos, total, err
}

func (r *gormTodoRepository) Update(todo *tododomain.Todo) error {
	todo.UpdatedAt = time.Now()
	return r.db.Save(todo).Error
}

func (r *gormTodoRepository) Delete(id uint) error {
	return r.db.Delete(&tododomain.Todo{}, "id = ?", id).Error
}
