package models

import (
	"strings"

	"gorm.io/datatypes"
)

type Project struct {
	BaseModel
	WorkspaceID string         `gorm:"not null;index" json:"workspace_id"`
	Title       string         `gorm:"not null" json:"title"`
	ContentType ContentType    `gorm:"type:varchar(20);not null" json:"content_type"`
	Content     string         `gorm:"type:text" json:"content"`
	WordCount   int            `gorm:"default:0" json:"word_count"`
	Status      ProjectStatus  `gorm:"type:varchar(20);default:'draft'" json:"status"`
	Metadata    datatypes.JSON `json:"metadata"`
	CreatedBy   string         `gorm:"not null;index" json:"created_by"`
}

// CountWords считает слова разбиением по пробельным символам.
// Единственный источник word_count: клиентское значение никогда не используется.
func CountWords(content string) int {
	return len(strings.Fields(content))
}
