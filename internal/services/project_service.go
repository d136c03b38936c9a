package services

import (
	"encoding/json"

	"contentcraft_backend/internal/models"
	"contentcraft_backend/internal/repositories"
	"contentcraft_backend/internal/services/dto"
	"contentcraft_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProjectService interface {
	List(db *gorm.DB, userID string, query *dto.ListProjectsQuery) ([]models.Project, error)
	Get(db *gorm.DB, userID, projectID string) (*models.Project, error)
	Create(db *gorm.DB, userID string, req *dto.CreateProjectRequest) (*models.Project, error)
	Update(db *gorm.DB, userID, projectID string, patch *dto.ProjectPatch) (*models.Project, error)
	Delete(db *gorm.DB, userID, projectID string) error
	Duplicate(db *gorm.DB, userID, projectID string) (*models.Project, error)
}

type ProjectServiceImpl struct {
	projectRepo   repositories.ProjectRepository
	workspaceRepo repositories.WorkspaceRepository
}

func NewProjectService(
	projectRepo repositories.ProjectRepository,
	workspaceRepo repositories.WorkspaceRepository,
) ProjectService {
	return &ProjectServiceImpl{
		projectRepo:   projectRepo,
		workspaceRepo: workspaceRepo,
	}
}

// List возвращает проекты пользователя: все или в пределах пространства
func (s *ProjectServiceImpl) List(db *gorm.DB, userID string, query *dto.ListProjectsQuery) ([]models.Project, error) {
	if query != nil && query.WorkspaceID != "" {
		if _, err := s.findOwnedWorkspace(db, userID, query.WorkspaceID); err != nil {
			return nil, err
		}
		projects, err := s.projectRepo.FindByWorkspace(db, query.WorkspaceID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		return projects, nil
	}

	projects, err := s.projectRepo.FindByCreator(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return projects, nil
}

func (s *ProjectServiceImpl) Get(db *gorm.DB, userID, projectID string) (*models.Project, error) {
	return s.findOwned(db, userID, projectID)
}

func (s *ProjectServiceImpl) Create(db *gorm.DB, userID string, req *dto.CreateProjectRequest) (*models.Project, error) {
	if _, err := s.findOwnedWorkspace(db, userID, req.WorkspaceID); err != nil {
		return nil, err
	}

	status := models.ProjectStatus(req.Status)
	if status == "" {
		status = models.ProjectStatusDraft
	}

	project := &models.Project{
		WorkspaceID: req.WorkspaceID,
		Title:       req.Title,
		ContentType: models.ContentType(req.ContentType),
		Content:     req.Content,
		WordCount:   models.CountWords(req.Content),
		Status:      status,
		CreatedBy:   userID,
	}

	if len(req.Metadata) > 0 {
		raw, err := json.Marshal(req.Metadata)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		project.Metadata = datatypes.JSON(raw)
	}

	if err := s.projectRepo.Create(db, project); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return project, nil
}

// Update применяет явный patch. Изменяется только то, что в нем
// присутствует; word_count при изменении content пересчитывается
// на сервере независимо от прихоти клиента.
func (s *ProjectServiceImpl) Update(db *gorm.DB, userID, projectID string, patch *dto.ProjectPatch) (*models.Project, error) {
	if _, err := s.findOwned(db, userID, projectID); err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.ContentType != nil {
		fields["content_type"] = *patch.ContentType
	}
	if patch.Content != nil {
		fields["content"] = *patch.Content
		fields["word_count"] = models.CountWords(*patch.Content)
	}
	if patch.Status != nil {
		fields["status"] = *patch.Status
	}
	if len(patch.Metadata) > 0 {
		raw, err := json.Marshal(patch.Metadata)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		fields["metadata"] = datatypes.JSON(raw)
	}

	project, err := s.projectRepo.Update(db, projectID, fields)
	if err != nil {
		if err == repositories.ErrProjectNotFound {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return project, nil
}

func (s *ProjectServiceImpl) Delete(db *gorm.DB, userID, projectID string) error {
	if _, err := s.findOwned(db, userID, projectID); err != nil {
		return err
	}

	if err := s.projectRepo.Delete(db, projectID); err != nil {
		if err == repositories.ErrProjectNotFound {
			return apperrors.ErrProjectNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// Duplicate создает копию проекта в том же пространстве.
// Копия всегда начинает со статуса draft.
func (s *ProjectServiceImpl) Duplicate(db *gorm.DB, userID, projectID string) (*models.Project, error) {
	original, err := s.findOwned(db, userID, projectID)
	if err != nil {
		return nil, err
	}

	clone := &models.Project{
		WorkspaceID: original.WorkspaceID,
		Title:       original.Title + " (Copy)",
		ContentType: original.ContentType,
		Content:     original.Content,
		WordCount:   original.WordCount,
		Status:      models.ProjectStatusDraft,
		Metadata:    original.Metadata,
		CreatedBy:   userID,
	}

	if err := s.projectRepo.Create(db, clone); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return clone, nil
}

// findOwned проверяет принадлежность проекта через его пространство
func (s *ProjectServiceImpl) findOwned(db *gorm.DB, userID, projectID string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(db, projectID)
	if err != nil {
		if err == repositories.ErrProjectNotFound {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if _, err := s.findOwnedWorkspace(db, userID, project.WorkspaceID); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectServiceImpl) findOwnedWorkspace(db *gorm.DB, userID, workspaceID string) (*models.Workspace, error) {
	workspace, err := s.workspaceRepo.FindByID(db, workspaceID)
	if err != nil {
		if err == repositories.ErrWorkspaceNotFound {
			return nil, apperrors.ErrWorkspaceNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if workspace.OwnerID != userID {
		return nil, apperrors.ErrForbidden
	}
	return workspace, nil
}
