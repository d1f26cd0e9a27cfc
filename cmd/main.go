package main

import (
	"log"
	"net/http"
	"time"

	"github.com/404DEVR/gym-agent/database"
	"github.com/404DEVR/gym-agent/docs"
	"github.com/404DEVR/gym-agent/internal/assistant"
	"github.com/404DEVR/gym-agent/internal/cache"
	"github.com/404DEVR/gym-agent/internal/config"
	"github.com/404DEVR/gym-agent/internal/controllers"
	"github.com/404DEVR/gym-agent/internal/genai"
	"github.com/404DEVR/gym-agent/internal/repository"
	"github.com/404DEVR/gym-agent/internal/services"
	"github.com/404DEVR/gym-agent/routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Swagger Documentation
	docs.SwaggerInfo.Title = "Gym Agent API"
	docs.SwaggerInfo.Description = "Fitness assistant API: chat-driven profile building, nutrition targets and AI-generated meal/workout plans."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	database.ConnectDatabase(cfg)
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Draft profiles live in redis so partial chat-collected attributes
	// survive between requests without touching postgres.
	draftStore, err := cache.NewRedisDraftStore(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer draftStore.Close()
	log.Println("Connected to Redis successfully")

	// Initialize repositories
	profileRepo := repository.NewUserProfileRepository(database.DB)
	mealPlanRepo := repository.NewMealPlanRepository(database.DB)
	workoutPlanRepo := repository.NewWorkoutPlanRepository(database.DB)

	// External collaborators
	agentClient := assistant.NewClient(cfg.AssistantURL)
	genaiClient, err := genai.NewClient(cfg.GeminiAPIKey)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}

	profileService := services.NewProfileService(profileRepo, draftStore)

	// Initialize controllers
	authController := controllers.NewAuthController()
	profileController := controllers.NewUserProfileController(profileRepo)
	chatController := controllers.NewChatController(profileService, profileRepo, agentClient)
	mealPlanController := controllers.NewMealPlanController(mealPlanRepo, profileRepo, agentClient, genaiClient)
	workoutPlanController := controllers.NewWorkoutPlanController(workoutPlanRepo, profileRepo, genaiClient)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Gym Agent API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	routes.RegisterAuthRoutes(router, cfg.JWTSecret, authController)
	routes.RegisterUserProfileRoutes(router, cfg.JWTSecret, profileController)
	routes.RegisterChatRoutes(router, cfg.JWTSecret, chatController)
	routes.RegisterMealPlanRoutes(router, cfg.JWTSecret, mealPlanController)
	routes.RegisterWorkoutPlanRoutes(router, cfg.JWTSecret, workoutPlanController)
	routes.RegisterSwaggerRoutes(router)

	// Debug endpoints
	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{
				"database_health": false,
				"error":           err.Error(),
			})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		isHealthy := err == nil && result == 1

		c.JSON(200, gin.H{
			"database_health": isHealthy,
		})
	})

	router.GET("/debug/redis", func(c *gin.Context) {
		status, err := draftStore.GetStatus()
		if err != nil {
			c.JSON(500, gin.H{
				"redis_health": false,
				"error":        err.Error(),
			})
			return
		}
		c.JSON(200, gin.H{
			"redis_health": true,
			"status":       status,
		})
	})

	log.Printf("Server starting on port %s", cfg.Port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", cfg.Port)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   90 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
