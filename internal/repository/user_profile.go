package repository

import (
	"github.com/404DEVR/gym-agent/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserProfileRepository interface {
	Create(profile *models.UserProfile) error
	FindByUserID(userID uuid.UUID) (*models.UserProfile, error)
	Update(profile *models.UserProfile) error
	Upsert(profile *models.UserProfile) error
	DeleteByUserID(userID uuid.UUID) error
	Patch(userID uuid.UUID, data map[string]interface{}) error
}

type userProfileRepository struct {
	db *gorm.DB
}

func NewUserProfileRepository(db *gorm.DB) UserProfileRepository {
	return &userProfileRepository{db: db}
}

func (r *userProfileRepository) Create(profile *models.UserProfile) error {
	return r.db.Create(profile).Error
}

func (r *userProfileRepository) FindByUserID(userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *userProfileRepository) Update(profile *models.UserProfile) error {
	return r.db.Save(profile).Error
}

// Upsert writes the profile for its user id, creating the row on first
// save. Last write wins; concurrent updates to the same profile are not
// coordinated here.
func (r *userProfileRepository) Upsert(profile *models.UserProfile) error {
	var existing models.UserProfile
	err := r.db.Where("user_id = ?", profile.UserID).First(&existing).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return r.db.Create(profile).Error
		}
		return err
	}
	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	return r.db.Save(profile).Error
}

func (r *userProfileRepository) DeleteByUserID(userID uuid.UUID) error {
	return r.db.Unscoped().Where("user_id = ?", userID).Delete(&models.UserProfile{}).Error
}

func (r *userProfileRepository) Patch(userID uuid.UUID, data map[string]interface{}) error {
	var profile models.UserProfile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return err
	}
	return r.db.Model(&profile).Updates(data).Error
}
