package api

import (
	"net/http"

	"chaintasks-backend/internal/auth/delivery"
	authUsecase "chaintasks-backend/internal/auth/usecase"
	suggestionDelivery "chaintasks-backend/internal/suggestion/delivery"
	taskDelivery "chaintasks-backend/internal/task/delivery"
	"chaintasks-backend/pkg/contract"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, authHandler *delivery.AuthHandler, taskHandler *taskDelivery.TaskHandler, suggestionHandler *suggestionDelivery.SuggestionHandler, contractClient *contract.Client, db *gorm.DB) {
	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			if err := db.Exec("SELECT 1").Error; err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": "database unreachable"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Contract binding info for wallet clients (public)
		api.GET("/contract/config", func(c *gin.Context) {
			c.JSON(http.StatusOK, contractClient.Config())
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", delivery.AuthMiddleware(authUc), authHandler.Me)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(delivery.AuthMiddleware(authUc))
		{
			tasks.GET("/timestamp", taskHandler.GetServerTimestamp)
			tasks.GET("", taskHandler.GetTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.POST("/verify-update", taskHandler.VerifyTaskUpdate)
			tasks.GET("/verify-ownership/:taskHash", taskHandler.VerifyOwnership)
			tasks.GET("/on-chain", taskHandler.GetOnChainTasks)
		}

		// AI suggestion routes (protected)
		suggestion := api.Group("/suggestion")
		suggestion.Use(delivery.AuthMiddleware(authUc))
		{
			suggestion.POST("/suggest-priorities", suggestionHandler.SuggestPriorities)
			suggestion.GET("/productivity-tip", suggestionHandler.ProductivityTip)
			suggestion.POST("/generate-reminders", suggestionHandler.GenerateReminders)
		}
	}
}
