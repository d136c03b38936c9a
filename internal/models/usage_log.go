package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UsageLog - неизменяемая запись о потреблении метрируемого ресурса.
// Только append: записи никогда не обновляются и не удаляются,
// итоги всегда пересчитываются агрегацией по журналу.
type UsageLog struct {
	ID           string       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       string       `gorm:"not null;index:idx_usage_user_period" json:"user_id"`
	ResourceType ResourceType `gorm:"type:varchar(20);not null;index" json:"resource_type"`
	Amount       int          `gorm:"not null" json:"amount"`
	ProjectID    *string      `gorm:"type:uuid" json:"project_id"`
	CreatedAt    time.Time    `gorm:"index:idx_usage_user_period" json:"created_at"`
}

func (l *UsageLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// TableName указывает GORM имя таблицы
func (UsageLog) TableName() string {
	return "usage_logs"
}
