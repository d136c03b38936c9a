package generation

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider - реальный провайдер поверх OpenAI API
type OpenAIProvider struct {
	client *openai.Client
}

func NewOpenAIProvider(apiKey string) *OpenAIProvider {
	return &OpenAIProvider{
		client: openai.NewClient(apiKey),
	}
}

func (p *OpenAIProvider) GenerateText(ctx context.Context, req TextRequest) (*TextResult, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("openai chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, errors.New("openai returned no choices")
	}

	return &TextResult{
		Content:          resp.Choices[0].Message.Content,
		Model:            resp.Model,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.TotalTokens,
	}, nil
}

func (p *OpenAIProvider) GenerateImage(ctx context.Context, req ImageRequest) (*ImageResult, error) {
	resp, err := p.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:  req.Prompt,
		Model:   req.Model,
		Size:    req.Size,
		Quality: req.Quality,
		N:       1,
	})
	if err != nil {
		return nil, fmt.Errorf("openai image generation: %w", err)
	}

	if len(resp.Data) == 0 {
		return nil, errors.New("openai returned no images")
	}

	return &ImageResult{
		URL:   resp.Data[0].URL,
		Model: req.Model,
	}, nil
}
