package dto

// CreateProjectRequest - запрос создания проекта
type CreateProjectRequest struct {
	WorkspaceID string                 `json:"workspace_id" validate:"required,uuid"`
	Title       string                 `json:"title" validate:"required,min=1,max=200"`
	ContentType string                 `json:"content_type" validate:"required,is-content-type"`
	Content     string                 `json:"content"`
	Status      string                 `json:"status" validate:"omitempty,is-project-status"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// ProjectPatch - явный набор изменяемых полей проекта.
// Поля id, created_by, created_at, workspace_id изменить нельзя:
// их здесь просто нет. word_count клиент тоже не задает -
// он всегда пересчитывается на сервере из content.
type ProjectPatch struct {
	Title       *string                `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	ContentType *string                `json:"content_type,omitempty" validate:"omitempty,is-content-type"`
	Content     *string                `json:"content,omitempty"`
	Status      *string                `json:"status,omitempty" validate:"omitempty,is-project-status"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// ListProjectsQuery - фильтры списка проектов
type ListProjectsQuery struct {
	WorkspaceID string `form:"workspace_id" validate:"omitempty,uuid"`
}
