package delivery

import (
	"net/http"
	"strconv"

	"todo-api/internal/apperror"
	tododto "todo-api/internal/todo/dto"
	"todo-api/internal/todo/usecase"

	"github.com/gin-gonic/gin"
)

// TodoHandler handles todo-related HTTP requests
type TodoHandler struct {
	todoUsecase usecase.TodoUsecase
}

// NewTodoHandler creates a new TodoHandler
func NewTodoHandler(todoUsecase usecase.TodoUsecase) *TodoHandler {
	return &TodoHandler{
		todoUsecase: todoUsecase,
	}
}

// CreateTodo creates a new todo
// POST /api/v1/todos
func (h *TodoHandler) CreateTodo(c *gin.Context) {
	userID := c.GetUint("userID")

	var req tododto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	todo, err := h.todoUsecase.Create(userID, req.Title, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, todo)
}

// ListTodos returns the authenticated user's todos
// GET /api/v1/todos?skip=0&limit=20&is_completed=true&sort_by=created_at&sort_order=desc
func (h *TodoHandler) ListTodos(c *gin.Context) {
	userID := c.GetUint("userID")

	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	var isCompleted *bool
	if raw := c.Query("is_completed"); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			isCompleted = &parsed
		}
	}

	todos, total, err := h.todoUsecase.List(userID, usecase.ListOptions{
		Skip:        skip,
		Limit:       limit,
		IsCompleted: isCompleted,
		SortBy:      c.DefaultQuery("sort_by", "created_at"),
		SortOrder:   c.DefaultQuery("sort_order", "desc"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tododto.TodoListResponse{
		Items:   todos,
		Total:   total,
		Skip:    skip,
		Limit:   limit,
		HasMore: int64(skip+len(todos)) < total,
	})
}

// GetTodo returns a specific todo
// GET /api/v1/todos/:id
func (h *TodoHandler) GetTodo(c *gin.Context) {
	userID := c.GetUint("userID")
	todoID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid todo id"})
		return
	}

	todo, err := h.todoUsecase.Get(userID, todoID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, todo)
}

// UpdateTodo applies partial updates to a todo
// PUT /api/v1/todos/:id
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	userID := c.GetUint("userID")
	todoID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid todo id"})
		return
	}

	var req tododto.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	todo, err := h.todoUsecase.Update(userID, todoID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, todo)
}

// DeleteTodo removes a todo
// DELETE /api/v1/todos/:id
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	userID := c.GetUint("userID")
	todoID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid todo id"})
		return
	}

	if err := h.todoUsecase.Delete(userID, todoID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}

func respondError(c *gin.Context, err error) {
	status := apperror.HTTPStatus(err)
	body := gin.H{"error": err.Error()}
	if code := apperror.CodeOf(err); code != "" {
		body["code"] = code
	} else {
		body["error"] = "internal server error"
	}
	c.JSON(status, body)
}
