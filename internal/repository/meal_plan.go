package repository

import (
	"github.com/404DEVR/gym-agent/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MealPlanRepository interface {
	Create(plan *models.MealPlan) error
	FindByID(id uuid.UUID) (*models.MealPlan, error)
	FindAllByUserID(userID uuid.UUID) ([]models.MealPlan, error)
	DeleteByIDAndUserID(id, userID uuid.UUID) error
}

type mealPlanRepository struct {
	db *gorm.DB
}

func NewMealPlanRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepository{db: db}
}

func (r *mealPlanRepository) Create(plan *models.MealPlan) error {
	return r.db.Create(plan).Error
}

func (r *mealPlanRepository) FindByID(id uuid.UUID) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := r.db.First(&plan, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *mealPlanRepository) FindAllByUserID(userID uuid.UUID) ([]models.MealPlan, error) {
	var plans []models.MealPlan
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&plans).Error
	return plans, err
}

func (r *mealPlanRepository) DeleteByIDAndUserID(id, userID uuid.UUID) error {
	result := r.db.Unscoped().Where("id = ? AND user_id = ?", id, userID).Delete(&models.MealPlan{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
