package api

import (
	authUsecasePkg "todo-api/internal/auth/usecase"
	todoUsecasePkg "todo-api/internal/todo/usecase"
	"todo-api/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	engine       *gin.Engine
	authUsecase  authUsecasePkg.AuthUsecase
	tokenUsecase authUsecasePkg.TokenUsecase
	todoUsecase  todoUsecasePkg.TodoUsecase
	config       *config.Config
}

func NewHandler(authUc authUsecasePkg.AuthUsecase, tokenUc authUsecasePkg.TokenUsecase, todoUc todoUsecasePkg.TodoUsecase, cfg *config.Config) *Handler {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()

	h := &Handler{
		engine:       engine,
		authUsecase:  authUc,
		tokenUsecase: tokenUc,
		todoUsecase:  todoUc,
		config:       cfg,
	}

	SetupRoutes(engine, authUc, tokenUc, todoUc)

	return h
}

func (h *Handler) Start(addr string) error {
	return h.engine.Run(addr)
}
