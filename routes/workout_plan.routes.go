package routes

import (
	"github.com/404DEVR/gym-agent/internal/controllers"
	"github.com/404DEVR/gym-agent/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterWorkoutPlanRoutes(router *gin.Engine, jwtSecret string, workoutPlanController *controllers.WorkoutPlanController) {
	workoutPlanRoutes := router.Group("/workout-plans")
	workoutPlanRoutes.Use(middleware.AuthMiddleware(jwtSecret))
	{
		workoutPlanRoutes.POST("/generate", workoutPlanController.GenerateWorkoutPlan)
		workoutPlanRoutes.POST("", workoutPlanController.SaveWorkoutPlan)
		workoutPlanRoutes.GET("", workoutPlanController.ListWorkoutPlans)
		workoutPlanRoutes.DELETE("/:id", workoutPlanController.DeleteWorkoutPlan)
	}
}
