package services

import (
	"context"
	"testing"
	"time"

	"contentcraft_backend/internal/auth"
	"contentcraft_backend/internal/database"
	"contentcraft_backend/internal/generation"
	"contentcraft_backend/internal/services/dto"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB поднимает sqlite в памяти с полной схемой.
// Один коннект в пуле: иначе каждый коннект sqlite :memory:
// получает собственную пустую базу.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func newTestTokenManager() *auth.TokenManager {
	return auth.NewTokenManager("test-secret-key", time.Hour)
}

func newTestServices() *ServiceContainer {
	provider := &generation.MockProvider{Delay: 0}
	return NewServiceContainer(newTestTokenManager(), provider, "mock-text", "mock-image")
}

// registerTestUser регистрирует пользователя и возвращает ответ
// со стартовым пространством "Personal" уже созданным
func registerTestUser(t *testing.T, db *gorm.DB, sc *ServiceContainer, email string) *dto.AuthResponse {
	t.Helper()

	resp, err := sc.AuthService.Register(db, &dto.RegisterRequest{
		Email:     email,
		Password:  "password123",
		FirstName: "Test",
		LastName:  "User",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	return resp
}

// personalWorkspaceID возвращает стартовое пространство пользователя
func personalWorkspaceID(t *testing.T, db *gorm.DB, sc *ServiceContainer, userID string) string {
	t.Helper()

	workspaces, err := sc.WorkspaceService.List(db, userID)
	require.NoError(t, err)
	require.NotEmpty(t, workspaces)

	return workspaces[0].ID
}

// countingProvider считает обращения к внешнему API
type countingProvider struct {
	mock      generation.MockProvider
	textCalls int
}

func (p *countingProvider) GenerateText(ctx context.Context, req generation.TextRequest) (*generation.TextResult, error) {
	p.textCalls++
	return p.mock.GenerateText(ctx, req)
}

func (p *countingProvider) GenerateImage(ctx context.Context, req generation.ImageRequest) (*generation.ImageResult, error) {
	return p.mock.GenerateImage(ctx, req)
}
