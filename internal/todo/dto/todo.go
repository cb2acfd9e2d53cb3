package dto

import tododomain "todo-api/internal/todo/domain"

type CreateTodoRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=2000"`
}

type UpdateTodoRequest struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=2000"`
	IsCompleted *bool   `json:"is_completed,omitempty"`
}

type TodoListResponse struct {
	Items   []*tododomain.Todo `json:"items"`
	Total   int64              `json:"total"`
	Skip    int                `json:"skip"`
	Limit   int                `json:"limit"`
	HasMore bool               `json:"has_more"`
}
