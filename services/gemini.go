package services

import (
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// DefaultGeminiEndpoint is Gemini's OpenAI-compatible API surface.
const DefaultGeminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/openai"

type GeminiClient struct {
	Chat llms.Model
}

func NewGeminiClient(apiKey, apiEndpoint, model string) (*GeminiClient, error) {
	if apiEndpoint == "" {
		apiEndpoint = DefaultGeminiEndpoint
	}
	if model == "" {
		model = "gemini-pro"
	}

	chat, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(apiEndpoint),
		openai.WithModel(model),
		openai.WithResponseFormat(&openai.ResponseFormat{
			Type: "json_object",
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		Chat: chat,
	}, nil
}
