package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenManager_GenerateParseRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret-key", time.Hour)

	token, expiresAt, err := m.Generate("user-1")
	require.NoError(t, err)
	require.True(t, expiresAt.After(time.Now()))

	claims, err := m.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
}

func TestTokenManager_TokensAreUniquePerIssue(t *testing.T) {
	m := NewTokenManager("test-secret-key", time.Hour)

	// Повторная выдача в ту же секунду не должна дать тот же токен:
	// хеш токена хранится в сессиях под уникальным индексом
	first, _, err := m.Generate("user-1")
	require.NoError(t, err)
	second, _, err := m.Generate("user-1")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.NotEqual(t, HashToken(first), HashToken(second))
}

func TestTokenManager_RejectsForeignSecret(t *testing.T) {
	m := NewTokenManager("test-secret-key", time.Hour)
	other := NewTokenManager("another-secret", time.Hour)

	token, _, err := other.Generate("user-1")
	require.NoError(t, err)

	_, err = m.Parse(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	m := NewTokenManager("test-secret-key", -time.Minute)

	token, _, err := m.Generate("user-1")
	require.NoError(t, err)

	_, err = m.Parse(token)
	require.ErrorIs(t, err, ErrExpiredToken)
}
