package main

import (
	"log"

	api "todo-api/cmd/api"
	authdomain "todo-api/internal/auth/domain"
	authRepo "todo-api/internal/auth/repository"
	"todo-api/internal/auth/token"
	authUsecase "todo-api/internal/auth/usecase"
	tododomain "todo-api/internal/todo/domain"
	todoRepo "todo-api/internal/todo/repository"
	todoUsecase "todo-api/internal/todo/usecase"
	"todo-api/pkg/config"
	"todo-api/pkg/database"
	"todo-api/pkg/security"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &authdomain.RefreshToken{}, &authdomain.TokenBlacklist{}, &tododomain.Todo{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	tokenRepository := authRepo.NewTokenRepository(db)
	todoRepository := todoRepo.NewGormTodoRepository(db)

	// Initialize security primitives
	hasher := security.NewHasher(cfg.BcryptCost)
	codec := token.NewCodec(cfg.JWTSecret, cfg.JWTAccessExpiry, cfg.JWTRefreshExpiry)

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, hasher)
	tokenUsecaseInstance := authUsecase.NewTokenUsecase(tokenRepository, codec)
	todoUsecaseInstance := todoUsecase.NewTodoUsecase(todoRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, tokenUsecaseInstance, todoUsecaseInstance, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
