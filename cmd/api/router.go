package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vidtube-backend/internal/user/delivery"
	userUsecase "vidtube-backend/internal/user/usecase"
	"vidtube-backend/pkg/config"
)

func SetupRoutes(r *gin.Engine, uc userUsecase.UserUsecase, cfg *config.Config) {
	userHandler := delivery.NewUserHandler(uc, cfg)

	api := r.Group("/api/v1")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		users := api.Group("/users")
		{
			users.POST("/register", userHandler.Register)
			users.POST("/login", userHandler.Login)
			users.POST("/refresh-token", userHandler.RefreshToken)

			protected := users.Group("")
			protected.Use(delivery.AuthMiddleware(uc))
			{
				protected.POST("/logout", userHandler.Logout)
				protected.POST("/change-password", userHandler.ChangePassword)
				protected.GET("/current-user", userHandler.CurrentUser)
				protected.PATCH("/update-account", userHandler.UpdateAccount)
				protected.PATCH("/avatar", userHandler.UpdateAvatar)
				protected.PATCH("/cover-image", userHandler.UpdateCoverImage)
				protected.GET("/c/:username", userHandler.ChannelProfile)
				protected.GET("/history", userHandler.WatchHistory)
			}
		}
	}
}
