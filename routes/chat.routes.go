package routes

import (
	"github.com/404DEVR/gym-agent/internal/controllers"
	"github.com/404DEVR/gym-agent/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterChatRoutes(router *gin.Engine, jwtSecret string, chatController *controllers.ChatController) {
	chatRoutes := router.Group("/chat")
	chatRoutes.Use(middleware.AuthMiddleware(jwtSecret))
	{
		chatRoutes.POST("", chatController.HandleMessage)
	}
}
