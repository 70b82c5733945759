// ABOUTME: OpenAI client for LLM-based emotional analysis
// ABOUTME: Extracts structured emotional profiles from book text and mood intents from user queries
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/moodreads/moodreads/internal/models"
	"github.com/moodreads/moodreads/internal/util"
	openai "github.com/sashabaranov/go-openai"
)

// DefaultChatModel is the default model for chat completions
const DefaultChatModel = "gpt-4o-mini"

// ClientConfig holds configuration for the OpenAI client
type ClientConfig struct {
	APIKey     string
	ChatModel  string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

// DefaultConfig returns the default client configuration
func DefaultConfig(apiKey string) *ClientConfig {
	chatModel := os.Getenv("MOODREADS_OPENAI_MODEL")
	if chatModel == "" {
		chatModel = DefaultChatModel
	}

	return &ClientConfig{
		APIKey:     apiKey,
		ChatModel:  chatModel,
		Timeout:    time.Second * 30,
		MaxRetries: 3,
		RetryDelay: time.Second * 2,
	}
}

// OpenAIClient wraps the OpenAI API client with retry logic
type OpenAIClient struct {
	client     *openai.Client
	chatModel  string
	timeout    time.Duration
	maxRetries int
	retryDelay time.Duration
}

// NewOpenAIClient creates a new OpenAI client with the given API key using default configuration
func NewOpenAIClient(apiKey string) (*OpenAIClient, error) {
	return NewOpenAIClientWithConfig(DefaultConfig(apiKey))
}

// NewOpenAIClientWithConfig creates a new OpenAI client with custom configuration
func NewOpenAIClientWithConfig(config *ClientConfig) (*OpenAIClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = time.Second * 30
	}

	return &OpenAIClient{
		client:     openai.NewClient(config.APIKey),
		chatModel:  config.ChatModel,
		timeout:    timeout,
		maxRetries: config.MaxRetries,
		retryDelay: config.RetryDelay,
	}, nil
}

// GetClient returns the underlying OpenAI client for direct use
func (c *OpenAIClient) GetClient() *openai.Client {
	return c.client
}

const analyzeSystemPrompt = `You are an expert literary analyst specializing in emotional analysis of books. Your task is to extract nuanced emotional signals from book text to create comprehensive emotional profiles.`

// AnalyzeSource extracts an emotional profile from one source of book text
// (a description, a batch of reviews, or genre conventions)
func (c *OpenAIClient) AnalyzeSource(text string, kind models.SourceKind) (*models.SourceProfile, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("no %s text to analyze", kind)
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("invalid source kind: %s", kind)
	}

	userPrompt := fmt.Sprintf(`Analyze the emotional content of the following book %s. Identify the primary emotions it evokes and score each with an intensity from 1 to 10.

Text:
%s

Please provide your analysis in the following JSON format:
{
  "primary_emotions": [
    {"emotion": "emotion_name", "intensity": intensity_score},
    ...
  ],
  "emotional_arc": {
    "beginning": ["emotion1", "emotion2", ...],
    "middle": ["emotion1", "emotion2", ...],
    "end": ["emotion1", "emotion2", ...]
  },
  "emotional_keywords": ["keyword1", "keyword2", ...],
  "overall_profile": "brief summary of the overall emotional profile"
}

Return ONLY the JSON object. No additional text.`, kind, text)

	content, err := c.complete(analyzeSystemPrompt, userPrompt, 0.2)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze %s: %w", kind, err)
	}

	var profile models.SourceProfile
	if err := json.Unmarshal([]byte(extractJSON(content)), &profile); err != nil {
		return nil, fmt.Errorf("failed to parse %s analysis: %w", kind, err)
	}
	profile.Kind = kind
	profile.AnalyzedAt = time.Now()

	return &profile, nil
}

const interpretSystemPrompt = `You are an expert at understanding readers' emotional needs. Your task is to translate a free-text mood query into structured emotional preferences.`

// InterpretMood extracts structured emotional intent from a free-text mood query
func (c *OpenAIClient) InterpretMood(query string) (*models.QueryIntent, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("no mood query to interpret")
	}

	userPrompt := fmt.Sprintf(`Analyze the following user query about their mood and what kind of book they want to read. Extract:

1. Current emotional state of the user
2. Desired emotional experience they want from a book
3. Any specific emotional journey or arc they're looking for
4. Emotional intensity preference (high, medium, low)
5. Relevant emotional keywords from their query

User Query:
%s

Please provide your analysis in the following JSON format:
{
  "current_emotional_state": ["emotion1", "emotion2", ...],
  "desired_emotional_experience": ["emotion1", "emotion2", ...],
  "emotional_journey": "free-text description of the desired arc",
  "intensity_preference": "high/medium/low",
  "emotional_keywords": ["keyword1", "keyword2", ...],
  "summary": "brief summary of the user's emotional preferences"
}

Return ONLY the JSON object. No additional text.`, query)

	content, err := c.complete(interpretSystemPrompt, userPrompt, 0.3)
	if err != nil {
		return nil, fmt.Errorf("failed to interpret mood query: %w", err)
	}

	var intent models.QueryIntent
	if err := json.Unmarshal([]byte(extractJSON(content)), &intent); err != nil {
		return nil, fmt.Errorf("failed to parse mood interpretation: %w", err)
	}
	intent.Intensity = models.ParseIntensity(string(intent.Intensity))

	return &intent, nil
}

// complete runs one chat completion with retries and backoff
func (c *OpenAIClient) complete(systemPrompt, userPrompt string, temperature float32) (string, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(util.CalculateBackoff(c.retryDelay, attempt))
		}

		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)

		resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: c.chatModel,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: userPrompt,
				},
			},
			Temperature: temperature,
		})

		if err != nil {
			cancel()
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			continue
		}

		if len(resp.Choices) == 0 {
			cancel()
			lastErr = fmt.Errorf("attempt %d: no completion choices returned", attempt+1)
			continue
		}

		cancel()
		return resp.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("completion failed after %d attempts: %w", c.maxRetries+1, lastErr)
}

// extractJSON strips markdown fences some models wrap around JSON output
func extractJSON(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx >= 0 {
			content = content[:idx]
		}
		content = strings.TrimSpace(content)
	}
	return content
}
