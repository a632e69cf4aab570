package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/tmc/langchaingo/llms"

	"github.com/cansuyumceylan/FlowSync/config"
	"github.com/cansuyumceylan/FlowSync/models"
)

const suggestSystemPrompt = `Analyze the complexity of the task the user gives you and recommend a focus mode.

Modes:
- spark: Quick tasks, emails, admin work (25 min)
- deepDive: Coding, writing, complex problem solving (50 min)
- peakFlow: Learning new concepts, architecture design, deep research (90 min)

Return ONLY a JSON object with this format (no markdown):
{
  "mode": "spark" | "deepDive" | "peakFlow",
  "motivation": "A short, punchy 1-sentence motivation specifically for this task."
}`

// SuggestService asks the model provider for a focus mode matching a task.
// Provider failures never reach the user: missing credentials, transport
// errors and malformed output all resolve to the same fixed fallback.
type SuggestService struct {
	client *GeminiClient
}

func NewSuggestService(client *GeminiClient) *SuggestService {
	return &SuggestService{client: client}
}

func fallbackSuggestion() models.ModeSuggestion {
	return models.ModeSuggestion{
		Mode:       models.ModeDeepDive,
		Motivation: "Let's dive deep into this anyway. You got this!",
		IsFallback: true,
	}
}

// SuggestMode never fails; the worst outcome is the fallback suggestion.
func (s *SuggestService) SuggestMode(ctx context.Context, task string) models.ModeSuggestion {
	if s.client == nil {
		return fallbackSuggestion()
	}

	messages := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(suggestSystemPrompt)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(task)},
		},
	}

	resp, err := s.client.Chat.GenerateContent(ctx, messages, llms.WithTemperature(0.7))
	if err != nil {
		config.Logger.Errorw("mode suggestion request failed", "error", err)
		return fallbackSuggestion()
	}
	if len(resp.Choices) == 0 {
		config.Logger.Errorw("mode suggestion returned no choices")
		return fallbackSuggestion()
	}

	// Strip markdown fences in case the model wraps its JSON anyway.
	text := resp.Choices[0].Content
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	text = strings.TrimSpace(text)

	var out struct {
		Mode       string `json:"mode"`
		Motivation string `json:"motivation"`
	}
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		config.Logger.Errorw("mode suggestion returned malformed JSON",
			"error", err, "response", text)
		return fallbackSuggestion()
	}

	switch out.Mode {
	case models.ModeSpark, models.ModeDeepDive, models.ModePeakFlow:
	default:
		config.Logger.Errorw("mode suggestion returned unknown mode", "mode", out.Mode)
		return fallbackSuggestion()
	}
	if strings.TrimSpace(out.Motivation) == "" {
		return fallbackSuggestion()
	}

	return models.ModeSuggestion{
		Mode:       out.Mode,
		Motivation: out.Motivation,
	}
}
