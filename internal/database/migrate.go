package database

import (
	"contentcraft_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate выполняет миграцию всех моделей
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Workspace{},
		&models.Project{},
		&models.UsageLog{},
		&models.Generation{},
	)
}
