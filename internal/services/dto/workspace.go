package dto

import (
	"time"

	"contentcraft_backend/internal/models"
)

// CreateWorkspaceRequest - запрос создания рабочего пространства
type CreateWorkspaceRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	PlanType string `json:"plan_type" validate:"omitempty,oneof=personal team enterprise"`
}

// UpdateWorkspaceRequest - частичное обновление пространства
type UpdateWorkspaceRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	PlanType *string `json:"plan_type,omitempty" validate:"omitempty,oneof=personal team enterprise"`
}

// WorkspaceDTO - пространство вместе со счетчиком проектов
type WorkspaceDTO struct {
	ID           string                   `json:"id"`
	Name         string                   `json:"name"`
	OwnerID      string                   `json:"owner_id"`
	PlanType     models.WorkspacePlanType `json:"plan_type"`
	ProjectCount int64                    `json:"project_count"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
}

// WorkspaceStats - сводка по пространству
type WorkspaceStats struct {
	WorkspaceID    string                       `json:"workspace_id"`
	TotalProjects  int64                        `json:"total_projects"`
	TotalWords     int                          `json:"total_words"`
	ByStatus       map[models.ProjectStatus]int `json:"by_status"`
	ByContentType  map[models.ContentType]int   `json:"by_content_type"`
	RecentProjects int                          `json:"recent_projects"` // за последние 7 дней
}

func NewWorkspaceDTO(ws *models.Workspace, projectCount int64) WorkspaceDTO {
	return WorkspaceDTO{
		ID:           ws.ID,
		Name:         ws.Name,
		OwnerID:      ws.OwnerID,
		PlanType:     ws.PlanType,
		ProjectCount: projectCount,
		CreatedAt:    ws.CreatedAt,
		UpdatedAt:    ws.UpdatedAt,
	}
}
