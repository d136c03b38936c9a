package services

import (
	"time"

	"contentcraft_backend/internal/models"
	"contentcraft_backend/internal/repositories"
	"contentcraft_backend/internal/services/dto"
	"contentcraft_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type WorkspaceService interface {
	List(db *gorm.DB, ownerID string) ([]dto.WorkspaceDTO, error)
	Get(db *gorm.DB, ownerID, workspaceID string) (*dto.WorkspaceDTO, error)
	Create(db *gorm.DB, ownerID string, req *dto.CreateWorkspaceRequest) (*dto.WorkspaceDTO, error)
	Update(db *gorm.DB, ownerID, workspaceID string, req *dto.UpdateWorkspaceRequest) (*dto.WorkspaceDTO, error)
	Delete(db *gorm.DB, ownerID, workspaceID string) error
	Stats(db *gorm.DB, ownerID, workspaceID string) (*dto.WorkspaceStats, error)
}

type WorkspaceServiceImpl struct {
	workspaceRepo repositories.WorkspaceRepository
	projectRepo   repositories.ProjectRepository
	userRepo      repositories.UserRepository
}

func NewWorkspaceService(
	workspaceRepo repositories.WorkspaceRepository,
	projectRepo repositories.ProjectRepository,
	userRepo repositories.UserRepository,
) WorkspaceService {
	return &WorkspaceServiceImpl{
		workspaceRepo: workspaceRepo,
		projectRepo:   projectRepo,
		userRepo:      userRepo,
	}
}

func (s *WorkspaceServiceImpl) List(db *gorm.DB, ownerID string) ([]dto.WorkspaceDTO, error) {
	workspaces, err := s.workspaceRepo.FindByOwner(db, ownerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.WorkspaceDTO, 0, len(workspaces))
	for i := range workspaces {
		count, err := s.workspaceRepo.CountProjects(db, workspaces[i].ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		result = append(result, dto.NewWorkspaceDTO(&workspaces[i], count))
	}
	return result, nil
}

func (s *WorkspaceServiceImpl) Get(db *gorm.DB, ownerID, workspaceID string) (*dto.WorkspaceDTO, error) {
	workspace, err := s.findOwned(db, ownerID, workspaceID)
	if err != nil {
		return nil, err
	}

	count, err := s.workspaceRepo.CountProjects(db, workspace.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := dto.NewWorkspaceDTO(workspace, count)
	return &result, nil
}

// Create создает пространство с проверкой лимита плана
// и уникальности имени в пределах владельца
func (s *WorkspaceServiceImpl) Create(db *gorm.DB, ownerID string, req *dto.CreateWorkspaceRequest) (*dto.WorkspaceDTO, error) {
	user, err := s.userRepo.FindByID(db, ownerID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	count, err := s.workspaceRepo.CountByOwner(db, ownerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if count >= int64(models.LimitsForPlan(user.SubscriptionPlan).Workspaces) {
		return nil, apperrors.ErrWorkspaceLimitExceeded
	}

	if _, err := s.workspaceRepo.FindByOwnerAndName(db, ownerID, req.Name); err == nil {
		return nil, apperrors.ErrWorkspaceNameTaken
	} else if err != repositories.ErrWorkspaceNotFound {
		return nil, apperrors.InternalError(err)
	}

	planType := models.WorkspacePlanType(req.PlanType)
	if planType == "" {
		planType = models.WorkspacePlanPersonal
	}

	workspace := &models.Workspace{
		Name:     req.Name,
		OwnerID:  ownerID,
		PlanType: planType,
	}
	if err := s.workspaceRepo.Create(db, workspace); err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := dto.NewWorkspaceDTO(workspace, 0)
	return &result, nil
}

func (s *WorkspaceServiceImpl) Update(db *gorm.DB, ownerID, workspaceID string, req *dto.UpdateWorkspaceRequest) (*dto.WorkspaceDTO, error) {
	workspace, err := s.findOwned(db, ownerID, workspaceID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != workspace.Name {
		existing, err := s.workspaceRepo.FindByOwnerAndName(db, ownerID, *req.Name)
		if err == nil && existing.ID != workspace.ID {
			return nil, apperrors.ErrWorkspaceNameTaken
		}
		if err != nil && err != repositories.ErrWorkspaceNotFound {
			return nil, apperrors.InternalError(err)
		}
		workspace.Name = *req.Name
	}
	if req.PlanType != nil {
		workspace.PlanType = models.WorkspacePlanType(*req.PlanType)
	}

	if err := s.workspaceRepo.Update(db, workspace); err != nil {
		return nil, apperrors.InternalError(err)
	}

	count, err := s.workspaceRepo.CountProjects(db, workspace.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := dto.NewWorkspaceDTO(workspace, count)
	return &result, nil
}

// Delete - жесткое удаление пространства с двумя защитами:
// последнее пространство пользователя и непустое пространство
// удалить нельзя
func (s *WorkspaceServiceImpl) Delete(db *gorm.DB, ownerID, workspaceID string) error {
	workspace, err := s.findOwned(db, ownerID, workspaceID)
	if err != nil {
		return err
	}

	total, err := s.workspaceRepo.CountByOwner(db, ownerID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if total <= 1 {
		return apperrors.ErrLastWorkspace
	}

	projects, err := s.workspaceRepo.CountProjects(db, workspace.ID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if projects > 0 {
		return apperrors.ErrWorkspaceNotEmpty
	}

	if err := s.workspaceRepo.Delete(db, workspace.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Stats - сводка по пространству: итоги, разбивки по статусу
// и типу контента, активность за последние 7 дней
func (s *WorkspaceServiceImpl) Stats(db *gorm.DB, ownerID, workspaceID string) (*dto.WorkspaceStats, error) {
	workspace, err := s.findOwned(db, ownerID, workspaceID)
	if err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.FindByWorkspace(db, workspace.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	stats := &dto.WorkspaceStats{
		WorkspaceID:   workspace.ID,
		TotalProjects: int64(len(projects)),
		ByStatus:      make(map[models.ProjectStatus]int),
		ByContentType: make(map[models.ContentType]int),
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	for i := range projects {
		p := &projects[i]
		stats.TotalWords += p.WordCount
		stats.ByStatus[p.Status]++
		stats.ByContentType[p.ContentType]++
		if p.UpdatedAt.After(weekAgo) {
			stats.RecentProjects++
		}
	}

	return stats, nil
}

// findOwned возвращает пространство, если оно существует и принадлежит
// пользователю. Чужое пространство дает FORBIDDEN, не NOT_FOUND.
func (s *WorkspaceServiceImpl) findOwned(db *gorm.DB, ownerID, workspaceID string) (*models.Workspace, error) {
	workspace, err := s.workspaceRepo.FindByID(db, workspaceID)
	if err != nil {
		if err == repositories.ErrWorkspaceNotFound {
			return nil, apperrors.ErrWorkspaceNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if workspace.OwnerID != ownerID {
		return nil, apperrors.ErrForbidden
	}
	return workspace, nil
}
