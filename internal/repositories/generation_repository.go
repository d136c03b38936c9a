package repositories

import (
	"errors"

	"contentcraft_backend/internal/models"

	"gorm.io/gorm"
)

var ErrGenerationNotFound = errors.New("generation not found")

type GenerationRepository interface {
	Create(db *gorm.DB, generation *models.Generation) error
	FindByID(db *gorm.DB, id string) (*models.Generation, error)
	FindByUser(db *gorm.DB, userID string, limit, offset int) ([]models.Generation, int64, error)
	Delete(db *gorm.DB, id string) error
}

type GenerationRepositoryImpl struct{}

func NewGenerationRepository() GenerationRepository {
	return &GenerationRepositoryImpl{}
}

func (r *GenerationRepositoryImpl) Create(db *gorm.DB, generation *models.Generation) error {
	return db.Create(generation).Error
}

func (r *GenerationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Generation, error) {
	var generation models.Generation
	err := db.First(&generation, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGenerationNotFound
		}
		return nil, err
	}
	return &generation, nil
}

func (r *GenerationRepositoryImpl) FindByUser(db *gorm.DB, userID string, limit, offset int) ([]models.Generation, int64, error) {
	var total int64
	if err := db.Model(&models.Generation{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var generations []models.Generation
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&generations).Error
	return generations, total, err
}

func (r *GenerationRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Generation{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGenerationNotFound
	}
	return nil
}
