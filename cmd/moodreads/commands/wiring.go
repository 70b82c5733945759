// ABOUTME: Shared setup helpers for CLI commands
// ABOUTME: Loads config and opens the catalog, profile store, and LLM client
package commands

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/moodreads/moodreads/internal/charm"
	"github.com/moodreads/moodreads/internal/config"
	"github.com/moodreads/moodreads/internal/lexicon"
	"github.com/moodreads/moodreads/internal/llm"
	"github.com/moodreads/moodreads/internal/storage"
)

// loadConfig reads .env and the environment into a validated Config.
func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return cfg, nil
}

// openCatalog opens the SQLite book catalog.
func openCatalog() (*storage.Storage, error) {
	store, err := storage.NewStorage()
	if err != nil {
		return nil, fmt.Errorf("initializing storage: %w", err)
	}
	return store, nil
}

// openProfiles connects to the charm KV and wraps it in a ProfileStore.
// The raw KV is returned alongside for the stores that share the
// connection. The returned close func must be called when done.
func openProfiles(cfg *config.Config) (*storage.ProfileStore, storage.KV, func() error, error) {
	client, err := charm.NewClient(&charm.Config{
		Host:     cfg.CharmHost,
		DBName:   cfg.CharmDBName,
		AutoSync: cfg.AutoSync,
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connecting to charm KV: %w", err)
	}
	return storage.NewProfileStore(client), client, client.Close, nil
}

// openLexicon returns the emotion lexicon in the configured mode. Open mode
// loads the persisted label list through the given KV so dimension indices
// assigned in earlier runs stay stable; the returned store is nil in closed
// mode, where nothing ever needs persisting.
func openLexicon(cfg *config.Config, kv storage.KV) (*lexicon.Lexicon, *storage.LexiconStore, error) {
	if !cfg.OpenLexicon {
		return lexicon.Default(), nil, nil
	}
	lexicons := storage.NewLexiconStore(kv)
	lex, err := lexicons.OpenLexicon()
	if err != nil {
		return nil, nil, fmt.Errorf("loading persisted lexicon: %w", err)
	}
	return lex, lexicons, nil
}

// newAnalyzer creates the OpenAI-backed analyzer from config.
func newAnalyzer(cfg *config.Config) (*llm.OpenAIClient, error) {
	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY not set")
	}
	return llm.NewOpenAIClientWithConfig(&llm.ClientConfig{
		APIKey:     cfg.OpenAIKey,
		ChatModel:  cfg.ChatModel,
		Timeout:    cfg.Timeout,
		MaxRetries: cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay,
	})
}
