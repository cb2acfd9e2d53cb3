package repository

import tododomain "todo-api/internal/todo/domain"

// ListFilter narrows and orders a todo listing.
type ListFilter struct {
	IsCompleted *bool
	SortBy      string // created_at, updated_at, title
	SortOrder   string // asc, desc
	Skip        int
	Limit       int
}

// TodoRepository defines the interface for todo data access
type TodoRepository interface {
	// Create creates a new todo
	Create(todo *tododomain.Todo) error

	// FindByID finds a todo scoped to its owner; returns nil when the row is
	// missing or owned by someone else
	FindByID(id, userID uint) (*tododomain.Todo, error)

	// FindByUserID lists a user's todos with filtering and pagination
	FindByUserID(userID uint, filter ListFilter) ([]*tododomain.Todo, int64, error)

	// Update updates an existing todo
	Update(todo *tododomain.Todo) error

	// Delete deletes a todo by ID
	Delete(id uint) error
}
