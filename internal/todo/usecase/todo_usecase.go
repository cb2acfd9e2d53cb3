package usecase

import (
	"time"

	"todo-api/internal/apperror"
	tododomain "todo-api/internal/todo/domain"
	tododto "todo-api/internal/todo/dto"
	"todo-api/internal/todo/repository"
)

// todoUsecase implements TodoUsecase interface
type todoUsecase struct {
	todoRepo repository.TodoRepository
}

// NewTodoUsecase creates a new instance of todoUsecase
func NewTodoUsecase(todoRepo repository.TodoRepository) TodoUsecase {
	return &todoUsecase{
		todoRepo: todoRepo,
	}
}

func (u *todoUsecase) Create(userID uint, title, description string) (*tododomain.Todo, error) {
	todo := &tododomain.Todo{
		UserID:      userID,
		Title:       title,
		Description: description,
		IsCompleted: false,
	}

	if err := u.todoRepo.Create(todo); err != nil {
		return nil, err
	}

	return todo, nil
}

func (u *todoUsecase) List(userID uint, opts ListOptions) ([]*tododomain.Todo, int64, error) {
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Skip < 0 {
		opts.Skip = 0
	}

	return u.todoRepo.FindByUserID(userID, repository.ListFilter{
		IsCompleted: opts.IsCompleted,
		SortBy:      opts.SortBy,
		SortOrder:   opts.SortOrder,
		Skip:        opts.Skip,
		Limit:       opts.Limit,
	})
}

// Get returns not-found for both a missing row and someone else's row, so
// existence of foreign todos is never leaked.
func (u *todoUsecase) Get(userID, todoID uint) (*tododomain.Todo, error) {
	todo, err := u.todoRepo.FindByID(todoID, userID)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, apperror.NotFound("NOT_FOUND_002", "Todo not found")
	}
	return todo, nil
}

func (u *todoUsecase) Update(userID, todoID uint, updates tododto.UpdateTodoRequest) (*tododomain.Todo, error) {
	todo, err := u.Get(userID, todoID)
	if err != nil {
		return nil, err
	}

	if updates.Title != nil {
		todo.Title = *updates.Title
	}
	if updates.Description != nil {
		todo.Description = *updates.Description
	}
	if updates.IsCompleted != nil {
		// completed_at is set if and only if the completion flag is true
		if *updates.IsCompleted && !todo.IsCompleted {
			now := time.Now()
			todo.CompletedAt = &now
		}
		if !*updates.IsCompleted {
			todo.CompletedAt = nil
		}
		todo.IsCompleted = *updates.IsCompleted
	}

	if err := u.todoRepo.Update(todo); err != nil {
		return nil, err
	}

	return todo, nil
}

func (u *todoUsecase) Delete(userID, todoID uint) error {
	todo, err := u.Get(userID, todoID)
	if err != nil {
		return err
	}
	return u.todoRepo.Delete(todo.ID)
}
