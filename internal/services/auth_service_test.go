package services

import (
	"testing"

	"contentcraft_backend/internal/models"
	"contentcraft_backend/internal/services/dto"
	"contentcraft_backend/pkg/apperrors"

	"github.com/stretchr/testify/require"
)

func TestAuthService_RegisterCreatesDefaultWorkspace(t *testing.T) {
	db := newTestDB(t)
	sc := newTestServices()

	resp := registerTestUser(t, db, sc, "alice@example.com")
	require.Equal(t, "alice@example.com", resp.User.Email)
	require.Equal(t, models.PlanFree, resp.User.SubscriptionPlan)

	workspaces, err := sc.WorkspaceService.List(db, resp.User.ID)
	require.NoError(t, err)
	require.Len(t, workspaces, 1)
	require.Equal(t, "Personal", workspaces[0].Name)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	sc := newTestServices()

	registerTestUser(t, db, sc, "dup@example.com")

	_, err := sc.AuthService.Register(db, &dto.RegisterRequest{
		Email:     "dup@example.com",
		Password:  "password123",
		FirstName: "Another",
		LastName:  "User",
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)
	require.Equal(t, 409, appErr.HTTPCode)
}

func TestAuthService_LoginAndAuthenticateRoundTrip(t *testing.T) {
	db := newTestDB(t)
	sc := newTestServices()

	registered := registerTestUser(t, db, sc, "bob@example.com")

	resp, err := sc.AuthService.Login(db, &dto.LoginRequest{
		Email:    "bob@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	user, err := sc.AuthService.Authenticate(db, resp.Token)
	require.NoError(t, err)
	require.Equal(t, registered.User.ID, user.ID)
}

func TestAuthService_RapidLoginsIssueDistinctSessions(t *testing.T) {
	db := newTestDB(t)
	sc := newTestServices()

	registered := registerTestUser(t, db, sc, "rapid@example.com")

	// Несколько входов в одну секунду: каждый должен получить свой
	// токен и свою строку сессии, без конфликта по token_hash
	tokens := []string{registered.Token}
	for i := 0; i < 3; i++ {
		resp, err := sc.AuthService.Login(db, &dto.LoginRequest{
			Email:    "rapid@example.com",
			Password: "password123",
		})
		require.NoError(t, err)
		tokens = append(tokens, resp.Token)
	}

	seen := make(map[string]bool)
	for _, token := range tokens {
		require.False(t, seen[token])
		seen[token] = true

		user, err := sc.AuthService.Authenticate(db, token)
		require.NoError(t, err)
		require.Equal(t, registered.User.ID, user.ID)
	}
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	sc := newTestServices()

	registerTestUser(t, db, sc, "carol@example.com")

	// Неверный пароль и несуществующий email дают одну и ту же ошибку
	_, errWrongPass := sc.AuthService.Login(db, &dto.LoginRequest{
		Email:    "carol@example.com",
		Password: "not-the-password",
	})
	_, errNoUser := sc.AuthService.Login(db, &dto.LoginRequest{
		Email:    "ghost@example.com",
		Password: "password123",
	})

	require.ErrorIs(t, errWrongPass, apperrors.ErrInvalidCredentials)
	require.ErrorIs(t, errNoUser, apperrors.ErrInvalidCredentials)
}

func TestAuthService_AuthenticateTamperedToken(t *testing.T) {
	db := newTestDB(t)
	sc := newTestServices()

	resp := registerTestUser(t, db, sc, "dave@example.com")

	tampered := resp.Token + "x"
	_, err := sc.AuthService.Authenticate(db, tampered)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	require.Equal(t, 401, appErr.HTTPCode)
}

func TestAuthService_AuthenticateSessionUserMismatch(t *testing.T) {
	db := newTestDB(t)
	sc := newTestServices()

	alice := registerTestUser(t, db, sc, "alice-mm@example.com")
	bob := registerTestUser(t, db, sc, "bob-mm@example.com")

	// Сессия, переписанная на другого пользователя, не проходит
	// сверку с claims токена
	err := db.Model(&models.Session{}).
		Where("user_id = ?", alice.User.ID).
		Update("user_id", bob.User.ID).Error
	require.NoError(t, err)

	_, authErr := sc.AuthService.Authenticate(db, alice.Token)
	require.ErrorIs(t, authErr, apperrors.ErrInvalidToken)
}

func TestAuthService_LogoutInvalidatesSession(t *testing.T) {
	db := newTestDB(t)
	sc := newTestServices()

	resp := registerTestUser(t, db, sc, "erin@example.com")

	require.NoError(t, sc.AuthService.Logout(db, resp.Token))

	_, err := sc.AuthService.Authenticate(db, resp.Token)
	require.Error(t, err)

	// Повторный выход с тем же токеном не ошибка
	require.NoError(t, sc.AuthService.Logout(db, resp.Token))
}

func TestAuthService_RefreshInvalidatesAllSessions(t *testing.T) {
	db := newTestDB(t)
	sc := newTestServices()

	first := registerTestUser(t, db, sc, "frank@example.com")

	second, err := sc.AuthService.Login(db, &dto.LoginRequest{
		Email:    "frank@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	refreshed, err := sc.AuthService.Refresh(db, first.User.ID)
	require.NoError(t, err)

	// Оба старых токена мертвы, новый работает
	_, err = sc.AuthService.Authenticate(db, first.Token)
	require.Error(t, err)
	_, err = sc.AuthService.Authenticate(db, second.Token)
	require.Error(t, err)

	user, err := sc.AuthService.Authenticate(db, refreshed.Token)
	require.NoError(t, err)
	require.Equal(t, first.User.ID, user.ID)
}

func TestAuthService_WeakPasswordRejected(t *testing.T) {
	db := newTestDB(t)
	sc := newTestServices()

	_, err := sc.AuthService.Register(db, &dto.RegisterRequest{
		Email:     "short@example.com",
		Password:  "123",
		FirstName: "Short",
		LastName:  "Pass",
	})
	require.ErrorIs(t, err, apperrors.ErrWeakPassword)
}
