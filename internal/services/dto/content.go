package dto

import (
	"time"

	"contentcraft_backend/internal/models"
)

// GenerateTextRequest - запрос генерации текста
type GenerateTextRequest struct {
	Prompt      string  `json:"prompt" validate:"required,min=1,max=4000"`
	ContentType string  `json:"content_type" validate:"required,is-content-type"`
	ProjectID   *string `json:"project_id,omitempty" validate:"omitempty,uuid"`
	MaxTokens   int     `json:"max_tokens" validate:"omitempty,min=1,max=4000"`
	Temperature float32 `json:"temperature" validate:"omitempty,min=0,max=2"`
}

// GenerateImageRequest - запрос генерации изображения
type GenerateImageRequest struct {
	Prompt    string  `json:"prompt" validate:"required,min=1,max=1000"`
	Style     string  `json:"style" validate:"omitempty,is-image-style"`
	Size      string  `json:"size" validate:"omitempty,oneof=1024x1024 1792x1024 1024x1792"`
	ProjectID *string `json:"project_id,omitempty" validate:"omitempty,uuid"`
}

// GenerateTextResponse - результат генерации текста
type GenerateTextResponse struct {
	GenerationID string             `json:"generation_id"`
	Content      string             `json:"content"`
	ContentType  models.ContentType `json:"content_type"`
	WordCount    int                `json:"word_count"`
	TokensUsed   int                `json:"tokens_used"`
	Model        string             `json:"model"`
	ProjectID    *string            `json:"project_id,omitempty"`
}

// GenerateImageResponse - результат генерации изображения
type GenerateImageResponse struct {
	GenerationID string            `json:"generation_id"`
	ImageURL     string            `json:"image_url"`
	Style        models.ImageStyle `json:"style"`
	Model        string            `json:"model"`
	ProjectID    *string           `json:"project_id,omitempty"`
}

// GenerationDTO - запись истории генераций
type GenerationDTO struct {
	ID          string                `json:"id"`
	Kind        models.GenerationKind `json:"kind"`
	ContentType models.ContentType    `json:"content_type,omitempty"`
	Style       models.ImageStyle     `json:"style,omitempty"`
	Prompt      string                `json:"prompt"`
	Content     string                `json:"content,omitempty"`
	ImageURL    string                `json:"image_url,omitempty"`
	WordCount   int                   `json:"word_count"`
	TokensUsed  int                   `json:"tokens_used"`
	Model       string                `json:"model"`
	ProjectID   *string               `json:"project_id,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}

// GenerationHistoryResponse - страница истории генераций
type GenerationHistoryResponse struct {
	Items  []GenerationDTO `json:"items"`
	Total  int64           `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// Template - готовый шаблон промпта
type Template struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	ContentType models.ContentType `json:"content_type"`
	Prompt      string             `json:"prompt"`
	Description string             `json:"description"`
}

func NewGenerationDTO(g *models.Generation) GenerationDTO {
	return GenerationDTO{
		ID:          g.ID,
		Kind:        g.Kind,
		ContentType: g.ContentType,
		Style:       g.Style,
		Prompt:      g.Prompt,
		Content:     g.Content,
		ImageURL:    g.ImageURL,
		WordCount:   g.WordCount,
		TokensUsed:  g.TokensUsed,
		Model:       g.Model,
		ProjectID:   g.ProjectID,
		CreatedAt:   g.CreatedAt,
	}
}
