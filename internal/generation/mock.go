package generation

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"contentcraft_backend/internal/models"
)

// MockProvider - детерминированный провайдер для разработки и тестов.
// Возвращает шаблонный текст по типу контента, без обращения к внешнему API.
type MockProvider struct {
	// Delay ограничивает верхнюю границу искусственной задержки.
	// Нулевое значение отключает задержку (используется в тестах).
	Delay time.Duration
}

func NewMockProvider() *MockProvider {
	return &MockProvider{Delay: 1500 * time.Millisecond}
}

var mockTemplates = map[models.ContentType]string{
	models.ContentTypeArticle: "# %s\n\nThis is a generated article about the requested topic. " +
		"It covers the key points in a structured way, with an introduction, " +
		"a main body and a short conclusion.\n\n" +
		"## Overview\n\nThe topic deserves attention for several reasons, " +
		"each explored in the sections below.\n\n" +
		"## Conclusion\n\nIn summary, the subject offers plenty of room for further exploration.",
	models.ContentTypeSocialPost: "%s\n\nGenerated social media post with an engaging hook " +
		"and a clear call to action. #content #generated",
	models.ContentTypeVideoScript: "VIDEO SCRIPT: %s\n\n[INTRO]\nHook the viewer in the first five seconds.\n\n" +
		"[MAIN]\nWalk through the core message step by step.\n\n" +
		"[OUTRO]\nClose with a call to action.",
	models.ContentTypeEmail: "Subject: %s\n\nHi there,\n\nThis is a generated marketing email. " +
		"It opens with a friendly greeting, states the value proposition " +
		"and ends with a single clear call to action.\n\nBest regards",
	models.ContentTypeSEOContent: "%s\n\nGenerated SEO-optimized content. The primary keyword appears " +
		"naturally throughout the text, headings follow a logical hierarchy " +
		"and the copy stays readable for humans first.",
}

func (p *MockProvider) GenerateText(ctx context.Context, req TextRequest) (*TextResult, error) {
	if err := p.sleep(ctx); err != nil {
		return nil, err
	}

	tmpl, ok := mockTemplates[contentTypeForSystemPrompt(req.SystemPrompt)]
	if !ok {
		tmpl = "%s\n\nGenerated content based on the provided prompt."
	}
	content := fmt.Sprintf(tmpl, req.Prompt)

	promptWords := len(strings.Fields(req.Prompt))
	contentWords := len(strings.Fields(content))
	return &TextResult{
		Content:          content,
		Model:            "mock",
		PromptTokens:     promptWords,
		CompletionTokens: contentWords,
		TotalTokens:      promptWords + contentWords,
	}, nil
}

func (p *MockProvider) GenerateImage(ctx context.Context, req ImageRequest) (*ImageResult, error) {
	if err := p.sleep(ctx); err != nil {
		return nil, err
	}

	return &ImageResult{
		URL:   fmt.Sprintf("https://placehold.co/1024x1024?text=%d", rand.Intn(100000)),
		Model: "mock",
	}, nil
}

func (p *MockProvider) sleep(ctx context.Context) error {
	if p.Delay <= 0 {
		return nil
	}
	d := time.Duration(rand.Int63n(int64(p.Delay)))
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// contentTypeForSystemPrompt подбирает шаблон по системному промпту,
// чтобы мок возвращал текст того же жанра, что и реальный провайдер.
func contentTypeForSystemPrompt(system string) models.ContentType {
	for ct, prompt := range systemPrompts {
		if prompt == system {
			return ct
		}
	}
	return ""
}
