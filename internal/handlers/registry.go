package handlers

// AppHandlers содержит все хэндлеры приложения
type AppHandlers struct {
	AuthHandler      *AuthHandler
	WorkspaceHandler *WorkspaceHandler
	ProjectHandler   *ProjectHandler
	UsageHandler     *UsageHandler
	ContentHandler   *ContentHandler
}
