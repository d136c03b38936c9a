package generation

import (
	"context"
	"strings"
	"testing"

	"contentcraft_backend/internal/models"

	"github.com/stretchr/testify/require"
)

func TestSystemPromptFor(t *testing.T) {
	require.Contains(t, SystemPromptFor(models.ContentTypeArticle), "content writer")
	require.Contains(t, SystemPromptFor(models.ContentTypeSEOContent), "SEO expert")

	// Неизвестный тип получает общую инструкцию
	require.Equal(t, defaultSystemPrompt, SystemPromptFor(models.ContentType("podcast")))
}

func TestEnhancePrompt(t *testing.T) {
	enhanced := EnhancePrompt("a cat on a roof", models.ImageStylePhotographic)
	require.True(t, strings.HasPrefix(enhanced, "a cat on a roof, "))
	require.Contains(t, enhanced, "photorealistic")

	// natural оставляет prompt без изменений
	require.Equal(t, "a cat on a roof", EnhancePrompt("a cat on a roof", models.ImageStyleNatural))
	require.Equal(t, "a cat on a roof", EnhancePrompt("a cat on a roof", models.ImageStyle("")))
}

func TestMockProviderDeterministicText(t *testing.T) {
	provider := &MockProvider{Delay: 0}

	req := TextRequest{
		SystemPrompt: SystemPromptFor(models.ContentTypeEmail),
		Prompt:       "quarterly update",
		Model:        "mock",
	}

	first, err := provider.GenerateText(context.Background(), req)
	require.NoError(t, err)
	second, err := provider.GenerateText(context.Background(), req)
	require.NoError(t, err)

	// Один и тот же prompt дает один и тот же текст
	require.Equal(t, first.Content, second.Content)
	require.Contains(t, first.Content, "quarterly update")
	require.Equal(t, "mock", first.Model)
	require.Greater(t, first.TotalTokens, 0)
}

func TestMockProviderTemplatesPerContentType(t *testing.T) {
	provider := &MockProvider{Delay: 0}

	article, err := provider.GenerateText(context.Background(), TextRequest{
		SystemPrompt: SystemPromptFor(models.ContentTypeArticle),
		Prompt:       "go generics",
	})
	require.NoError(t, err)
	require.Contains(t, article.Content, "# go generics")

	script, err := provider.GenerateText(context.Background(), TextRequest{
		SystemPrompt: SystemPromptFor(models.ContentTypeVideoScript),
		Prompt:       "go generics",
	})
	require.NoError(t, err)
	require.Contains(t, script.Content, "VIDEO SCRIPT")
	require.NotEqual(t, article.Content, script.Content)
}

func TestMockProviderImage(t *testing.T) {
	provider := &MockProvider{Delay: 0}

	result, err := provider.GenerateImage(context.Background(), ImageRequest{
		Prompt: "sunset",
		Model:  "mock",
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.URL)
	require.Equal(t, "mock", result.Model)
}

func TestMockProviderRespectsContextCancel(t *testing.T) {
	provider := NewMockProvider()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := provider.GenerateText(ctx, TextRequest{Prompt: "never"})
	require.ErrorIs(t, err, context.Canceled)
}
