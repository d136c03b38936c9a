package repositories

import (
	"errors"
	"time"

	"contentcraft_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionRepository interface {
	Create(db *gorm.DB, session *models.Session) error
	FindByTokenHash(db *gorm.DB, tokenHash string) (*models.Session, error)
	DeleteByTokenHash(db *gorm.DB, tokenHash string) error
	DeleteByUserID(db *gorm.DB, userID string) error
	CleanExpired(db *gorm.DB) error
}

type SessionRepositoryImpl struct{}

func NewSessionRepository() SessionRepository {
	return &SessionRepositoryImpl{}
}

func (r *SessionRepositoryImpl) Create(db *gorm.DB, session *models.Session) error {
	return db.Create(session).Error
}

// FindByTokenHash возвращает только неистекшую сессию
func (r *SessionRepositoryImpl) FindByTokenHash(db *gorm.DB, tokenHash string) (*models.Session, error) {
	var session models.Session
	err := db.Where("token_hash = ? AND expires_at > ?", tokenHash, time.Now()).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepositoryImpl) DeleteByTokenHash(db *gorm.DB, tokenHash string) error {
	return db.Where("token_hash = ?", tokenHash).Delete(&models.Session{}).Error
}

func (r *SessionRepositoryImpl) DeleteByUserID(db *gorm.DB, userID string) error {
	return db.Where("user_id = ?", userID).Delete(&models.Session{}).Error
}

func (r *SessionRepositoryImpl) CleanExpired(db *gorm.DB) error {
	return db.Where("expires_at < ?", time.Now()).Delete(&models.Session{}).Error
}
