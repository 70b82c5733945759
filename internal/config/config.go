// ABOUTME: Centralized configuration for the MoodReads recommendation engine
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/moodreads/moodreads/internal/core"
	"github.com/moodreads/moodreads/internal/models"
)

// Config holds all configuration for the recommendation system
type Config struct {
	// Charm settings
	CharmHost   string
	CharmDBName string
	AutoSync    bool

	// OpenAI settings
	OpenAIKey  string
	ChatModel  string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration

	// Scoring settings
	KeywordBoostWeight  float64
	MaxIntensityPenalty float64
	TopEmotions         int

	// Intent interpretation settings
	JourneyWeight float64
	StateDamping  float64

	// Profile aggregation settings
	ReviewsWeight     float64
	DescriptionWeight float64
	GenreWeight       float64
	ArcWeight         float64

	// Lexicon settings
	OpenLexicon bool

	// Result settings
	DefaultLimit     int
	MaxLimit         int
	DetailedProfiles bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		CharmHost:           getEnv("CHARM_HOST", "cloud.charm.sh"),
		CharmDBName:         getEnv("CHARM_DB", "moodreads"),
		AutoSync:            getEnvBool("CHARM_AUTO_SYNC", true),
		OpenAIKey:           os.Getenv("OPENAI_API_KEY"),
		ChatModel:           getEnv("MOODREADS_OPENAI_MODEL", "gpt-4o-mini"),
		Timeout:             getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		MaxRetries:          getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:          getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),
		KeywordBoostWeight:  getEnvFloat("KEYWORD_BOOST_WEIGHT", 0.15),
		MaxIntensityPenalty: getEnvFloat("MAX_INTENSITY_PENALTY", 0.1),
		TopEmotions:         getEnvInt("EXPLAIN_TOP_EMOTIONS", 3),
		JourneyWeight:       getEnvFloat("JOURNEY_WEIGHT", 0.5),
		StateDamping:        getEnvFloat("STATE_DAMPING", 0.5),
		ReviewsWeight:       getEnvFloat("REVIEWS_WEIGHT", 0.5),
		DescriptionWeight:   getEnvFloat("DESCRIPTION_WEIGHT", 0.3),
		GenreWeight:         getEnvFloat("GENRE_WEIGHT", 0.2),
		ArcWeight:           getEnvFloat("ARC_WEIGHT", 0.3),
		OpenLexicon:         getEnvBool("OPEN_LEXICON", false),
		DefaultLimit:        getEnvInt("DEFAULT_RESULT_LIMIT", 5),
		MaxLimit:            getEnvInt("MAX_RESULT_LIMIT", 20),
		DetailedProfiles:    getEnvBool("DETAILED_PROFILES", false),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.KeywordBoostWeight < 0 || c.KeywordBoostWeight > 1 {
		return fmt.Errorf("KEYWORD_BOOST_WEIGHT must be 0-1, got %f", c.KeywordBoostWeight)
	}
	if c.MaxIntensityPenalty < 0 || c.MaxIntensityPenalty > 1 {
		return fmt.Errorf("MAX_INTENSITY_PENALTY must be 0-1, got %f", c.MaxIntensityPenalty)
	}
	if c.JourneyWeight < 0 || c.JourneyWeight > 1 {
		return fmt.Errorf("JOURNEY_WEIGHT must be 0-1, got %f", c.JourneyWeight)
	}
	if c.StateDamping < 0 || c.StateDamping > 1 {
		return fmt.Errorf("STATE_DAMPING must be 0-1, got %f", c.StateDamping)
	}
	if c.ArcWeight < 0 || c.ArcWeight > 1 {
		return fmt.Errorf("ARC_WEIGHT must be 0-1, got %f", c.ArcWeight)
	}
	if c.ReviewsWeight < 0 {
		return fmt.Errorf("REVIEWS_WEIGHT must be non-negative, got %f", c.ReviewsWeight)
	}
	if c.DescriptionWeight < 0 {
		return fmt.Errorf("DESCRIPTION_WEIGHT must be non-negative, got %f", c.DescriptionWeight)
	}
	if c.GenreWeight < 0 {
		return fmt.Errorf("GENRE_WEIGHT must be non-negative, got %f", c.GenreWeight)
	}
	if c.TopEmotions < 1 || c.TopEmotions > 10 {
		return fmt.Errorf("EXPLAIN_TOP_EMOTIONS must be 1-10, got %d", c.TopEmotions)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if c.MaxLimit < 1 {
		return fmt.Errorf("MAX_RESULT_LIMIT must be positive, got %d", c.MaxLimit)
	}
	if c.DefaultLimit < 1 || c.DefaultLimit > c.MaxLimit {
		return fmt.Errorf("DEFAULT_RESULT_LIMIT must be 1-%d, got %d", c.MaxLimit, c.DefaultLimit)
	}
	return nil
}

// PipelineConfig maps the loaded tunables onto the recommendation pipeline
// stages. Every weight is passed through as loaded, so a configured zero
// (for example KEYWORD_BOOST_WEIGHT=0 to switch the boost off) reaches the
// pipeline as zero.
func (c *Config) PipelineConfig() core.PipelineConfig {
	return core.PipelineConfig{
		Encoder: core.EncoderConfig{ArcWeight: c.ArcWeight},
		Sources: core.SourceWeights{
			models.SourceReviews:     c.ReviewsWeight,
			models.SourceDescription: c.DescriptionWeight,
			models.SourceGenre:       c.GenreWeight,
		},
		Interpreter: core.InterpreterConfig{
			JourneyWeight: c.JourneyWeight,
			StateDamping:  c.StateDamping,
		},
		Ranker: core.RankerConfig{
			KeywordBoostWeight:  c.KeywordBoostWeight,
			MaxIntensityPenalty: c.MaxIntensityPenalty,
		},
		Explainer: core.ExplainerConfig{TopEmotions: c.TopEmotions},
	}
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	return v == "true" || v == "1"
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
