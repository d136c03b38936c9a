package apperrors

import (
	"net/http"
)

/*
Предопределенные ошибки бизнес-логики, сгруппированные по доменам.
Фабрики ниже используются там, где в сообщение нужно подставить контекст.
*/

// --- Аутентификация ---

var (
	ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "auth", "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "auth", "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "auth", "Invalid or expired token", http.StatusUnauthorized)
	ErrSessionExpired     = New(CodeTokenExpired, "auth", "Session expired, please log in again", http.StatusUnauthorized)
	ErrWeakPassword       = New(CodeValidationFailed, "auth", "Password must be at least 6 characters", http.StatusBadRequest)
)

// --- Пользователи ---

var (
	ErrUserNotFound       = New(CodeNotFound, "user", "User not found", http.StatusNotFound)
	ErrEmailAlreadyExists = New(CodeAlreadyExists, "user", "User already exists with this email", http.StatusConflict)
)

// --- Рабочие пространства ---

var (
	ErrWorkspaceNotFound      = New(CodeNotFound, "workspace", "Workspace not found", http.StatusNotFound)
	ErrWorkspaceNameTaken     = New(CodeConflict, "workspace", "Workspace with this name already exists", http.StatusConflict)
	ErrLastWorkspace          = New(CodeInvalidState, "workspace", "Cannot delete your only workspace", http.StatusBadRequest)
	ErrWorkspaceNotEmpty      = New(CodeInvalidState, "workspace", "Cannot delete workspace that still contains projects", http.StatusBadRequest)
	ErrWorkspaceLimitExceeded = New(CodeQuotaExceeded, "workspace", "Workspace limit for your plan reached", http.StatusBadRequest)
)

// --- Проекты ---

var (
	ErrProjectNotFound = New(CodeNotFound, "project", "Project not found", http.StatusNotFound)
)

// --- Метеринг и генерация ---

var (
	ErrInvalidResourceType = New(CodeValidationFailed, "usage", "Invalid resource type", http.StatusBadRequest)
	ErrGenerationNotFound  = New(CodeNotFound, "content", "Generation not found", http.StatusNotFound)
)

// QuotaExceeded создает ошибку превышения квоты с деталями по ресурсу
func QuotaExceeded(details interface{}) *AppError {
	return New(CodeQuotaExceeded, "usage", "Usage quota exceeded for your plan", http.StatusTooManyRequests).WithDetails(details)
}

// ErrNotFound - фабрика для оборачивания ошибок репозитория (404)
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для оборачивания конфликтов уникальности (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrInvalidState - фабрика для нарушений инвариантов состояния (400)
func ErrInvalidState(domain, message string) *AppError {
	return New(CodeInvalidState, domain, message, http.StatusBadRequest)
}
