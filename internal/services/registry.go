package services

import (
	"contentcraft_backend/internal/auth"
	"contentcraft_backend/internal/generation"
	"contentcraft_backend/internal/repositories"
)

// ServiceContainer содержит все сервисы приложения
type ServiceContainer struct {
	AuthService      AuthService
	WorkspaceService WorkspaceService
	ProjectService   ProjectService
	UsageService     UsageService
	ContentService   ContentService
}

// NewServiceContainer собирает сервисный слой: репозитории без состояния,
// подключение к БД приходит в каждый метод через gin.Context
func NewServiceContainer(tokens *auth.TokenManager, provider generation.Provider, textModel, imageModel string) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	sessionRepo := repositories.NewSessionRepository()
	workspaceRepo := repositories.NewWorkspaceRepository()
	projectRepo := repositories.NewProjectRepository()
	usageRepo := repositories.NewUsageRepository()
	generationRepo := repositories.NewGenerationRepository()

	usageService := NewUsageService(usageRepo, userRepo, projectRepo)
	projectService := NewProjectService(projectRepo, workspaceRepo)

	return &ServiceContainer{
		AuthService:      NewAuthService(userRepo, sessionRepo, workspaceRepo, tokens),
		WorkspaceService: NewWorkspaceService(workspaceRepo, projectRepo, userRepo),
		ProjectService:   projectService,
		UsageService:     usageService,
		ContentService:   NewContentService(provider, usageService, projectService, generationRepo, textModel, imageModel),
	}
}
