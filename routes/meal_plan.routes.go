package routes

import (
	"github.com/404DEVR/gym-agent/internal/controllers"
	"github.com/404DEVR/gym-agent/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterMealPlanRoutes(router *gin.Engine, jwtSecret string, mealPlanController *controllers.MealPlanController) {
	mealPlanRoutes := router.Group("/meal-plans")
	mealPlanRoutes.Use(middleware.AuthMiddleware(jwtSecret))
	{
		mealPlanRoutes.POST("/generate", mealPlanController.GenerateMealPlan)
		mealPlanRoutes.POST("", mealPlanController.SaveMealPlan)
		mealPlanRoutes.GET("", mealPlanController.ListMealPlans)
		mealPlanRoutes.DELETE("/:id", mealPlanController.DeleteMealPlan)
	}
}
