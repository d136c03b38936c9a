package models

// Generation - запись истории генераций (текст или изображение)
type Generation struct {
	BaseModel
	UserID      string         `gorm:"not null;index" json:"user_id"`
	ProjectID   *string        `gorm:"type:uuid" json:"project_id"`
	Kind        GenerationKind `gorm:"type:varchar(10);not null" json:"kind"`
	ContentType ContentType    `gorm:"type:varchar(20)" json:"content_type,omitempty"`
	Style       ImageStyle     `gorm:"type:varchar(20)" json:"style,omitempty"`
	Prompt      string         `gorm:"type:text;not null" json:"prompt"`
	Content     string         `gorm:"type:text" json:"content,omitempty"`
	ImageURL    string         `json:"image_url,omitempty"`
	WordCount   int            `gorm:"default:0" json:"word_count"`
	TokensUsed  int            `gorm:"default:0" json:"tokens_used"`
	Model       string         `json:"model"`
}
