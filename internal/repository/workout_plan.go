package repository

import (
	"github.com/404DEVR/gym-agent/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkoutPlanRepository interface {
	Create(plan *models.WorkoutPlan) error
	FindByID(id uuid.UUID) (*models.WorkoutPlan, error)
	FindAllByUserID(userID uuid.UUID) ([]models.WorkoutPlan, error)
	FindLatestByUserID(userID uuid.UUID) (*models.WorkoutPlan, error)
	Update(plan *models.WorkoutPlan) error
	DeleteByIDAndUserID(id, userID uuid.UUID) error
}

type workoutPlanRepository struct {
	db *gorm.DB
}

func NewWorkoutPlanRepository(db *gorm.DB) WorkoutPlanRepository {
	return &workoutPlanRepository{db: db}
}

func (r *workoutPlanRepository) Create(plan *models.WorkoutPlan) error {
	return r.db.Create(plan).Error
}

func (r *workoutPlanRepository) FindByID(id uuid.UUID) (*models.WorkoutPlan, error) {
	var plan models.WorkoutPlan
	err := r.db.First(&plan, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *workoutPlanRepository) FindAllByUserID(userID uuid.UUID) ([]models.WorkoutPlan, error) {
	var plans []models.WorkoutPlan
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&plans).Error
	return plans, err
}

// FindLatestByUserID returns the most recently saved plan, used when the
// user asks to replace their current plan instead of adding another.
func (r *workoutPlanRepository) FindLatestByUserID(userID uuid.UUID) (*models.WorkoutPlan, error) {
	var plan models.WorkoutPlan
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *workoutPlanRepository) Update(plan *models.WorkoutPlan) error {
	return r.db.Save(plan).Error
}

func (r *workoutPlanRepository) DeleteByIDAndUserID(id, userID uuid.UUID) error {
	result := r.db.Unscoped().Where("id = ? AND user_id = ?", id, userID).Delete(&models.WorkoutPlan{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
