package usecase

import (
	tododomain "todo-api/internal/todo/domain"
	tododto "todo-api/internal/todo/dto"
)

// ListOptions controls pagination and ordering of a todo listing
type ListOptions struct {
	Skip        int
	Limit       int
	IsCompleted *bool
	SortBy      string
	SortOrder   string
}

// TodoUsecase defines the interface for todo business logic
type TodoUsecase interface {
	// Create creates a new todo for the user
	Create(userID uint, title, description string) (*tododomain.Todo, error)

	// List returns the user's todos plus the total count matching the filter
	List(userID uint, opts ListOptions) ([]*tododomain.Todo, int64, error)

	// Get retrieves a todo with ownership check
	Get(userID, todoID uint) (*tododomain.Todo, error)

	// Update applies partial updates, maintaining the completion timestamp
	Update(userID, todoID uint, updates tododto.UpdateTodoRequest) (*tododomain.Todo, error)

	// Delete removes a todo permanently
	Delete(userID, todoID uint) error
}
