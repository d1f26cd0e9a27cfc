package database

import (
	"log"

	"github.com/404DEVR/gym-agent/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.UserProfile{},
		&models.MealPlan{},
		&models.WorkoutPlan{},
	)

	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
