package repositories

import (
	"errors"
	"time"

	"contentcraft_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProjectNotFound = errors.New("project not found")

type ProjectRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Project, error)
	FindByWorkspace(db *gorm.DB, workspaceID string) ([]models.Project, error)
	FindByCreator(db *gorm.DB, userID string) ([]models.Project, error)
	Create(db *gorm.DB, project *models.Project) error
	Update(db *gorm.DB, id string, fields map[string]interface{}) (*models.Project, error)
	Delete(db *gorm.DB, id string) error
}

type ProjectRepositoryImpl struct{}

func NewProjectRepository() ProjectRepository {
	return &ProjectRepositoryImpl{}
}

func (r *ProjectRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Project, error) {
	var project models.Project
	err := db.First(&project, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepositoryImpl) FindByWorkspace(db *gorm.DB, workspaceID string) ([]models.Project, error) {
	var projects []models.Project
	err := db.Where("workspace_id = ?", workspaceID).Order("updated_at DESC").Find(&projects).Error
	return projects, err
}

// FindByCreator возвращает проекты пользователя из всех его пространств
func (r *ProjectRepositoryImpl) FindByCreator(db *gorm.DB, userID string) ([]models.Project, error) {
	var projects []models.Project
	err := db.Where("created_by = ?", userID).Order("updated_at DESC").Find(&projects).Error
	return projects, err
}

func (r *ProjectRepositoryImpl) Create(db *gorm.DB, project *models.Project) error {
	return db.Create(project).Error
}

// Update применяет только переданные поля и возвращает свежую строку
func (r *ProjectRepositoryImpl) Update(db *gorm.DB, id string, fields map[string]interface{}) (*models.Project, error) {
	if len(fields) == 0 {
		return r.FindByID(db, id)
	}

	fields["updated_at"] = time.Now()

	result := db.Model(&models.Project{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrProjectNotFound
	}

	return r.FindByID(db, id)
}

func (r *ProjectRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Project{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}
