package repositories

import (
	"errors"
	"strings"
	"time"

	"contentcraft_backend/internal/models"

	"gorm.io/gorm"
)

var ErrWorkspaceNotFound = errors.New("workspace not found")

type WorkspaceRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Workspace, error)
	FindByOwner(db *gorm.DB, ownerID string) ([]models.Workspace, error)
	FindByOwnerAndName(db *gorm.DB, ownerID, name string) (*models.Workspace, error)
	CountByOwner(db *gorm.DB, ownerID string) (int64, error)
	CountProjects(db *gorm.DB, workspaceID string) (int64, error)
	Create(db *gorm.DB, workspace *models.Workspace) error
	Update(db *gorm.DB, workspace *models.Workspace) error
	Delete(db *gorm.DB, id string) error
}

type WorkspaceRepositoryImpl struct{}

func NewWorkspaceRepository() WorkspaceRepository {
	return &WorkspaceRepositoryImpl{}
}

func (r *WorkspaceRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Workspace, error) {
	var workspace models.Workspace
	err := db.First(&workspace, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, err
	}
	return &workspace, nil
}

func (r *WorkspaceRepositoryImpl) FindByOwner(db *gorm.DB, ownerID string) ([]models.Workspace, error) {
	var workspaces []models.Workspace
	err := db.Where("owner_id = ?", ownerID).Order("created_at ASC").Find(&workspaces).Error
	return workspaces, err
}

// FindByOwnerAndName ищет без учета регистра имени
func (r *WorkspaceRepositoryImpl) FindByOwnerAndName(db *gorm.DB, ownerID, name string) (*models.Workspace, error) {
	var workspace models.Workspace
	err := db.Where("owner_id = ? AND LOWER(name) = ?", ownerID, strings.ToLower(name)).First(&workspace).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, err
	}
	return &workspace, nil
}

func (r *WorkspaceRepositoryImpl) CountByOwner(db *gorm.DB, ownerID string) (int64, error) {
	var count int64
	err := db.Model(&models.Workspace{}).Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}

func (r *WorkspaceRepositoryImpl) CountProjects(db *gorm.DB, workspaceID string) (int64, error) {
	var count int64
	err := db.Model(&models.Project{}).Where("workspace_id = ?", workspaceID).Count(&count).Error
	return count, err
}

func (r *WorkspaceRepositoryImpl) Create(db *gorm.DB, workspace *models.Workspace) error {
	return db.Create(workspace).Error
}

func (r *WorkspaceRepositoryImpl) Update(db *gorm.DB, workspace *models.Workspace) error {
	result := db.Model(workspace).Updates(map[string]interface{}{
		"name":       workspace.Name,
		"plan_type":  workspace.PlanType,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWorkspaceNotFound
	}
	return nil
}

func (r *WorkspaceRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Workspace{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWorkspaceNotFound
	}
	return nil
}
