package services

import (
	"context"
	"encoding/json"

	"contentcraft_backend/internal/generation"
	"contentcraft_backend/internal/logger"
	"contentcraft_backend/internal/models"
	"contentcraft_backend/internal/repositories"
	"contentcraft_backend/internal/services/dto"
	"contentcraft_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ContentService interface {
	GenerateText(ctx context.Context, db *gorm.DB, userID string, req *dto.GenerateTextRequest) (*dto.GenerateTextResponse, error)
	GenerateImage(ctx context.Context, db *gorm.DB, userID string, req *dto.GenerateImageRequest) (*dto.GenerateImageResponse, error)
	History(db *gorm.DB, userID string, limit, offset int) (*dto.GenerationHistoryResponse, error)
	Get(db *gorm.DB, userID, generationID string) (*dto.GenerationDTO, error)
	Delete(db *gorm.DB, userID, generationID string) error
	Templates() []dto.Template
}

type ContentServiceImpl struct {
	provider       generation.Provider
	usageService   UsageService
	projectService ProjectService
	generationRepo repositories.GenerationRepository
	textModel      string
	imageModel     string
}

func NewContentService(
	provider generation.Provider,
	usageService UsageService,
	projectService ProjectService,
	generationRepo repositories.GenerationRepository,
	textModel, imageModel string,
) ContentService {
	return &ContentServiceImpl{
		provider:       provider,
		usageService:   usageService,
		projectService: projectService,
		generationRepo: generationRepo,
		textModel:      textModel,
		imageModel:     imageModel,
	}
}

// GenerateText - полный цикл генерации текста:
// квота -> провайдер -> подсчет слов -> журнал -> проект -> история.
// Квота проверяется ДО обращения к провайдеру: при превышении
// внешний API не вызывается и журнал не пополняется.
func (s *ContentServiceImpl) GenerateText(ctx context.Context, db *gorm.DB, userID string, req *dto.GenerateTextRequest) (*dto.GenerateTextResponse, error) {
	contentType := models.ContentType(req.ContentType)

	check, err := s.usageService.CheckLimit(db, userID, models.ResourceWords, 1)
	if err != nil {
		return nil, err
	}
	if !check.Allowed {
		return nil, apperrors.QuotaExceeded(check)
	}

	// Чужой проект отклоняем до траты токенов
	if req.ProjectID != nil {
		if _, err := s.projectService.Get(db, userID, *req.ProjectID); err != nil {
			return nil, err
		}
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1000
	}
	temperature := req.Temperature
	if temperature == 0 {
		temperature = 0.7
	}

	result, err := s.provider.GenerateText(ctx, generation.TextRequest{
		SystemPrompt: generation.SystemPromptFor(contentType),
		Prompt:       req.Prompt,
		Model:        s.textModel,
		MaxTokens:    maxTokens,
		Temperature:  temperature,
	})
	if err != nil {
		logger.CtxWithError(ctx, "Text generation provider call failed", err)
		return nil, apperrors.UpstreamError(err, "Content generation service is unavailable")
	}

	wordCount := models.CountWords(result.Content)

	if err := s.usageService.LogUsage(db, userID, &dto.LogUsageRequest{
		ResourceType: string(models.ResourceWords),
		Amount:       wordCount,
		ProjectID:    req.ProjectID,
	}); err != nil {
		return nil, err
	}

	if req.ProjectID != nil {
		content := result.Content
		status := string(models.ProjectStatusCompleted)
		if _, err := s.projectService.Update(db, userID, *req.ProjectID, &dto.ProjectPatch{
			Content: &content,
			Status:  &status,
		}); err != nil {
			return nil, err
		}
	}

	record := &models.Generation{
		UserID:      userID,
		ProjectID:   req.ProjectID,
		Kind:        models.GenerationKindText,
		ContentType: contentType,
		Prompt:      req.Prompt,
		Content:     result.Content,
		WordCount:   wordCount,
		TokensUsed:  result.TotalTokens,
		Model:       result.Model,
	}
	if err := s.generationRepo.Create(db, record); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.GenerateTextResponse{
		GenerationID: record.ID,
		Content:      result.Content,
		ContentType:  contentType,
		WordCount:    wordCount,
		TokensUsed:   result.TotalTokens,
		Model:        result.Model,
		ProjectID:    req.ProjectID,
	}, nil
}

// GenerateImage - та же схема против ресурса images (amount 1),
// с усилением prompt по выбранному стилю
func (s *ContentServiceImpl) GenerateImage(ctx context.Context, db *gorm.DB, userID string, req *dto.GenerateImageRequest) (*dto.GenerateImageResponse, error) {
	style := models.ImageStyle(req.Style)
	if style == "" {
		style = models.ImageStyleNatural
	}

	check, err := s.usageService.CheckLimit(db, userID, models.ResourceImages, 1)
	if err != nil {
		return nil, err
	}
	if !check.Allowed {
		return nil, apperrors.QuotaExceeded(check)
	}

	if req.ProjectID != nil {
		if _, err := s.projectService.Get(db, userID, *req.ProjectID); err != nil {
			return nil, err
		}
	}

	size := req.Size
	if size == "" {
		size = "1024x1024"
	}

	result, err := s.provider.GenerateImage(ctx, generation.ImageRequest{
		Prompt:  generation.EnhancePrompt(req.Prompt, style),
		Model:   s.imageModel,
		Size:    size,
		Quality: "standard",
	})
	if err != nil {
		logger.CtxWithError(ctx, "Image generation provider call failed", err)
		return nil, apperrors.UpstreamError(err, "Image generation service is unavailable")
	}

	if err := s.usageService.LogUsage(db, userID, &dto.LogUsageRequest{
		ResourceType: string(models.ResourceImages),
		Amount:       1,
		ProjectID:    req.ProjectID,
	}); err != nil {
		return nil, err
	}

	if req.ProjectID != nil {
		if err := s.attachImageToProject(db, userID, *req.ProjectID, result.URL, style); err != nil {
			return nil, err
		}
	}

	record := &models.Generation{
		UserID:    userID,
		ProjectID: req.ProjectID,
		Kind:      models.GenerationKindImage,
		Style:     style,
		Prompt:    req.Prompt,
		ImageURL:  result.URL,
		Model:     result.Model,
	}
	if err := s.generationRepo.Create(db, record); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.GenerateImageResponse{
		GenerationID: record.ID,
		ImageURL:     result.URL,
		Style:        style,
		Model:        result.Model,
		ProjectID:    req.ProjectID,
	}, nil
}

func (s *ContentServiceImpl) History(db *gorm.DB, userID string, limit, offset int) (*dto.GenerationHistoryResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	items, total, err := s.generationRepo.FindByUser(db, userID, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.GenerationDTO, 0, len(items))
	for i := range items {
		result = append(result, dto.NewGenerationDTO(&items[i]))
	}

	return &dto.GenerationHistoryResponse{
		Items:  result,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

func (s *ContentServiceImpl) Get(db *gorm.DB, userID, generationID string) (*dto.GenerationDTO, error) {
	record, err := s.findOwned(db, userID, generationID)
	if err != nil {
		return nil, err
	}
	result := dto.NewGenerationDTO(record)
	return &result, nil
}

func (s *ContentServiceImpl) Delete(db *gorm.DB, userID, generationID string) error {
	if _, err := s.findOwned(db, userID, generationID); err != nil {
		return err
	}
	if err := s.generationRepo.Delete(db, generationID); err != nil {
		if err == repositories.ErrGenerationNotFound {
			return apperrors.ErrGenerationNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// Templates возвращает статический набор стартовых промптов
func (s *ContentServiceImpl) Templates() []dto.Template {
	return contentTemplates
}

var contentTemplates = []dto.Template{
	{
		ID:          "blog-post",
		Name:        "Blog Post",
		ContentType: models.ContentTypeArticle,
		Prompt:      "Write a comprehensive blog post about [topic]. Include an engaging introduction, detailed main points, and a strong conclusion.",
		Description: "Long-form article with a clear structure",
	},
	{
		ID:          "product-announcement",
		Name:        "Product Announcement",
		ContentType: models.ContentTypeSocialPost,
		Prompt:      "Create an exciting social media post announcing [product]. Highlight its key benefits and include a call to action.",
		Description: "Short promotional post for social platforms",
	},
	{
		ID:          "tutorial-script",
		Name:        "Tutorial Script",
		ContentType: models.ContentTypeVideoScript,
		Prompt:      "Write a video script for a tutorial on [topic]. Include an intro hook, step-by-step instructions, and an outro.",
		Description: "Step-by-step video walkthrough",
	},
	{
		ID:          "newsletter",
		Name:        "Newsletter",
		ContentType: models.ContentTypeEmail,
		Prompt:      "Write a newsletter email about [topic]. Keep a friendly tone, summarize the key updates, and end with a call to action.",
		Description: "Periodic update email for subscribers",
	},
}

// findOwned возвращает запись истории, если она принадлежит пользователю.
// Чужая запись дает FORBIDDEN.
func (s *ContentServiceImpl) findOwned(db *gorm.DB, userID, generationID string) (*models.Generation, error) {
	record, err := s.generationRepo.FindByID(db, generationID)
	if err != nil {
		if err == repositories.ErrGenerationNotFound {
			return nil, apperrors.ErrGenerationNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if record.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return record, nil
}

// attachImageToProject дописывает URL изображения в metadata проекта
func (s *ContentServiceImpl) attachImageToProject(db *gorm.DB, userID, projectID, imageURL string, style models.ImageStyle) error {
	project, err := s.projectService.Get(db, userID, projectID)
	if err != nil {
		return err
	}

	meta := make(map[string]interface{})
	if len(project.Metadata) > 0 {
		if err := json.Unmarshal(project.Metadata, &meta); err != nil {
			meta = make(map[string]interface{})
		}
	}

	images, _ := meta["images"].([]interface{})
	images = append(images, map[string]interface{}{
		"url":   imageURL,
		"style": string(style),
	})
	meta["images"] = images

	_, err = s.projectService.Update(db, userID, projectID, &dto.ProjectPatch{
		Metadata: meta,
	})
	return err
}
