package routes

import (
	"github.com/404DEVR/gym-agent/internal/controllers"
	"github.com/404DEVR/gym-agent/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(router *gin.Engine, jwtSecret string, authController *controllers.AuthController) {
	authRoutes := router.Group("/auth")
	authRoutes.Use(middleware.AuthMiddleware(jwtSecret))
	{
		authRoutes.GET("/user", authController.GetCurrentUser)
	}
}
