package generation

import (
	"fmt"

	"contentcraft_backend/internal/models"
)

// Системные инструкции по типам контента
var systemPrompts = map[models.ContentType]string{
	models.ContentTypeArticle:     "You are a professional content writer. Create well-structured, engaging articles with proper headings and paragraphs.",
	models.ContentTypeSocialPost:  "You are a social media expert. Create engaging, concise posts optimized for social media platforms.",
	models.ContentTypeVideoScript: "You are a professional scriptwriter. Create engaging video scripts with clear dialogue and scene descriptions.",
	models.ContentTypeEmail:       "You are an email marketing specialist. Create compelling email content that drives engagement.",
	models.ContentTypeSEOContent:  "You are an SEO expert. Create content that is optimized for search engines while maintaining readability.",
}

const defaultSystemPrompt = "You are a helpful AI assistant that creates high-quality content."

// SystemPromptFor возвращает системную инструкцию для типа контента.
// Неизвестный тип получает общую инструкцию.
func SystemPromptFor(contentType models.ContentType) string {
	if prompt, ok := systemPrompts[contentType]; ok {
		return prompt
	}
	return defaultSystemPrompt
}

// Суффиксы усиления prompt по стилям изображений
var styleSuffixes = map[models.ImageStyle]string{
	models.ImageStylePhotographic: "photorealistic, high quality photography",
	models.ImageStyleDigitalArt:   "digital art, highly detailed",
	models.ImageStyleIllustration: "illustration, clean lines, vibrant colors",
	models.ImageStyleAbstract:     "abstract art, creative interpretation",
}

// EnhancePrompt дополняет prompt стилевым суффиксом.
// Стиль natural (и неизвестные) оставляет prompt как есть.
func EnhancePrompt(prompt string, style models.ImageStyle) string {
	if suffix, ok := styleSuffixes[style]; ok {
		return fmt.Sprintf("%s, %s", prompt, suffix)
	}
	return prompt
}
