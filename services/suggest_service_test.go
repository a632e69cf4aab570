package services

import (
	"context"
	"errors"
	"testing"

	"github.com/tmc/langchaingo/llms"

	"github.com/cansuyumceylan/FlowSync/models"
)

// fakeChatModel scripts the provider's answer.
type fakeChatModel struct {
	content string
	err     error
}

func (f *fakeChatModel) GenerateContent(_ context.Context, _ []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.content}},
	}, nil
}

func (f *fakeChatModel) Call(_ context.Context, _ string, _ ...llms.CallOption) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.content, nil
}

func suggestServiceWith(model llms.Model) *SuggestService {
	return NewSuggestService(&GeminiClient{Chat: model})
}

func assertFallback(t *testing.T, got models.ModeSuggestion) {
	t.Helper()
	if got.Mode != models.ModeDeepDive {
		t.Errorf("fallback mode = %q, want deepDive", got.Mode)
	}
	if got.Motivation == "" {
		t.Error("fallback must carry a motivational string")
	}
	if !got.IsFallback {
		t.Error("fallback must be marked as such")
	}
}

func TestSuggestModeParsesProviderAnswer(t *testing.T) {
	svc := suggestServiceWith(&fakeChatModel{
		content: `{"mode": "peakFlow", "motivation": "Architecture needs a clear head. Go."}`,
	})

	got := svc.SuggestMode(context.Background(), "design the storage layer")
	if got.Mode != models.ModePeakFlow {
		t.Errorf("mode = %q, want peakFlow", got.Mode)
	}
	if got.Motivation != "Architecture needs a clear head. Go." {
		t.Errorf("motivation = %q", got.Motivation)
	}
	if got.IsFallback {
		t.Error("a parsed answer is not a fallback")
	}
}

func TestSuggestModeStripsMarkdownFences(t *testing.T) {
	svc := suggestServiceWith(&fakeChatModel{
		content: "```json\n{\"mode\": \"spark\", \"motivation\": \"Quick win, grab it.\"}\n```",
	})

	got := svc.SuggestMode(context.Background(), "answer two emails")
	if got.Mode != models.ModeSpark || got.IsFallback {
		t.Errorf("got %+v, want the fenced JSON parsed", got)
	}
}

func TestSuggestModeFallsBackWithoutClient(t *testing.T) {
	svc := NewSuggestService(nil)
	assertFallback(t, svc.SuggestMode(context.Background(), "anything"))
}

func TestSuggestModeFallsBackOnProviderError(t *testing.T) {
	svc := suggestServiceWith(&fakeChatModel{err: errors.New("connection refused")})
	assertFallback(t, svc.SuggestMode(context.Background(), "anything"))
}

func TestSuggestModeFallsBackOnMalformedAnswer(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"not json", "take a deep dive, friend"},
		{"unknown mode", `{"mode": "custom", "motivation": "hm"}`},
		{"empty motivation", `{"mode": "spark", "motivation": "  "}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := suggestServiceWith(&fakeChatModel{content: tc.content})
			assertFallback(t, svc.SuggestMode(context.Background(), "anything"))
		})
	}
}
