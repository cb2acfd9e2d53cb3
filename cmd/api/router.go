package api

import (
	"net/http"

	authDelivery "todo-api/internal/auth/delivery"
	authUsecasePkg "todo-api/internal/auth/usecase"
	todoDelivery "todo-api/internal/todo/delivery"
	todoUsecasePkg "todo-api/internal/todo/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecasePkg.AuthUsecase, tokenUc authUsecasePkg.TokenUsecase, todoUc todoUsecasePkg.TodoUsecase) {
	authHandler := authDelivery.NewAuthHandler(authUc, tokenUc)
	todoHandler := todoDelivery.NewTodoHandler(todoUc)

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.POST("/change-password", authDelivery.AuthMiddleware(tokenUc, authUc), authHandler.ChangePassword)
			auth.GET("/me", authDelivery.AuthMiddleware(tokenUc, authUc), authHandler.Me)
			auth.DELETE("/me", authDelivery.AuthMiddleware(tokenUc, authUc), authHandler.DeactivateMe)
		}

		// Todo routes (protected)
		todos := api.Group("/todos")
		todos.Use(authDelivery.AuthMiddleware(tokenUc, authUc))
		{
			todos.POST("", todoHandler.CreateTodo)
			todos.GET("", todoHandler.ListTodos)
			todos.GET("/:id", todoHandler.GetTodo)
			todos.PUT("/:id", todoHandler.UpdateTodo)
			todos.DELETE("/:id", todoHandler.DeleteTodo)
		}
	}
}
