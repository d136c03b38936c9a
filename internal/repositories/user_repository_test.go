package repositories

import (
	"testing"

	"contentcraft_backend/internal/database"
	"contentcraft_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// В sqlite каждое соединение пула получает свою приватную
	// базу в памяти, поэтому ограничиваемся одним
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository()

	first := &models.User{
		Email:        "dup@example.com",
		PasswordHash: "hash",
		FirstName:    "First",
		LastName:     "User",
	}
	require.NoError(t, repo.Create(db, first))

	second := &models.User{
		Email:        "dup@example.com",
		PasswordHash: "hash",
		FirstName:    "Second",
		LastName:     "User",
	}
	require.ErrorIs(t, repo.Create(db, second), ErrUserAlreadyExists)
}

func TestUserRepository_CreateUniqueViolationOnInsert(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository()

	first := &models.User{
		Email:        "alice@example.com",
		PasswordHash: "hash",
		FirstName:    "Alice",
		LastName:     "User",
	}
	require.NoError(t, repo.Create(db, first))

	// Нарушение уникального индекса на самой вставке (мимо
	// предварительной проверки по email) тоже отображается
	// в ErrUserAlreadyExists, а не в голую ошибку БД
	clash := &models.User{
		BaseModel:    models.BaseModel{ID: first.ID},
		Email:        "bob@example.com",
		PasswordHash: "hash",
		FirstName:    "Bob",
		LastName:     "User",
	}
	require.ErrorIs(t, repo.Create(db, clash), ErrUserAlreadyExists)
}
