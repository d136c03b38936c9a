package generation

import (
	"context"
)

// TextRequest - запрос на генерацию текста внешнему провайдеру
type TextRequest struct {
	SystemPrompt string
	Prompt       string
	Model        string
	MaxTokens    int
	Temperature  float32
}

// TextResult - результат генерации текста вместе со счетчиками токенов
type TextResult struct {
	Content          string
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// ImageRequest - запрос на генерацию изображения
type ImageRequest struct {
	Prompt  string
	Model   string
	Size    string
	Quality string
}

// ImageResult - результат генерации изображения
type ImageResult struct {
	URL   string
	Model string
}

// Provider - граница с внешним API генерации: отправили prompt и
// параметры, получили текст или URL изображения и счетчики.
// Надежность и ретраи провайдера - вне нашей зоны ответственности.
type Provider interface {
	GenerateText(ctx context.Context, req TextRequest) (*TextResult, error)
	GenerateImage(ctx context.Context, req ImageRequest) (*ImageResult, error)
}
