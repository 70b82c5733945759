// ABOUTME: Tests for the OpenAI client wrapper
// ABOUTME: Covers configuration, input validation, and JSON fence stripping without network calls
package llm

import (
	"testing"
	"time"

	"github.com/moodreads/moodreads/internal/models"
)

func TestNewOpenAIClient_RequiresKey(t *testing.T) {
	if _, err := NewOpenAIClient(""); err == nil {
		t.Error("NewOpenAIClient should reject an empty API key")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("test-key")
	if cfg.APIKey != "test-key" {
		t.Errorf("APIKey = %s, want test-key", cfg.APIKey)
	}
	if cfg.ChatModel != DefaultChatModel {
		t.Errorf("ChatModel = %s, want %s", cfg.ChatModel, DefaultChatModel)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.MaxRetries)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
}

func TestAnalyzeSource_InputValidation(t *testing.T) {
	client, err := NewOpenAIClient("test-key")
	if err != nil {
		t.Fatalf("NewOpenAIClient failed: %v", err)
	}

	if _, err := client.AnalyzeSource("   ", models.SourceReviews); err == nil {
		t.Error("AnalyzeSource should reject empty text")
	}
	if _, err := client.AnalyzeSource("some text", "weird"); err == nil {
		t.Error("AnalyzeSource should reject an invalid source kind")
	}
}

func TestInterpretMood_InputValidation(t *testing.T) {
	client, err := NewOpenAIClient("test-key")
	if err != nil {
		t.Fatalf("NewOpenAIClient failed: %v", err)
	}

	if _, err := client.InterpretMood(""); err == nil {
		t.Error("InterpretMood should reject an empty query")
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "bare json",
			content: `{"summary": "warm"}`,
			want:    `{"summary": "warm"}`,
		},
		{
			name:    "fenced json",
			content: "```json\n{\"summary\": \"warm\"}\n```",
			want:    `{"summary": "warm"}`,
		},
		{
			name:    "fenced without language",
			content: "```\n{\"summary\": \"warm\"}\n```",
			want:    `{"summary": "warm"}`,
		},
		{
			name:    "surrounding whitespace",
			content: "  \n{\"summary\": \"warm\"}\n  ",
			want:    `{"summary": "warm"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSON(tt.content); got != tt.want {
				t.Errorf("extractJSON() = %q, want %q", got, tt.want)
			}
		})
	}
}
