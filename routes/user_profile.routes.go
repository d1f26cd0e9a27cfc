package routes

import (
	"github.com/404DEVR/gym-agent/internal/controllers"
	"github.com/404DEVR/gym-agent/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterUserProfileRoutes(router *gin.Engine, jwtSecret string, userProfileController *controllers.UserProfileController) {
	profileRoutes := router.Group("/profile")
	profileRoutes.Use(middleware.AuthMiddleware(jwtSecret))
	{
		profileRoutes.GET("/", userProfileController.GetUserProfile)
		profileRoutes.POST("/", userProfileController.CreateOrUpdateUserProfile)
		// PUT behaves exactly like POST: both create on first save.
		profileRoutes.PUT("/", userProfileController.CreateOrUpdateUserProfile)
		profileRoutes.PATCH("/", userProfileController.PatchUserProfile)
		profileRoutes.DELETE("/", userProfileController.DeleteUserProfile)
	}
}
