// ABOUTME: Main entry point for the MoodReads MCP server with stdio transport
// ABOUTME: Initializes storage, the recommendation pipeline, and all MCP tools
package main

import (
	"log"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/moodreads/moodreads/internal/charm"
	"github.com/moodreads/moodreads/internal/config"
	"github.com/moodreads/moodreads/internal/lexicon"
	"github.com/moodreads/moodreads/internal/llm"
	"github.com/moodreads/moodreads/internal/mcp"
	"github.com/moodreads/moodreads/internal/storage"
)

func main() {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if cfg.OpenAIKey == "" {
		log.Fatal("OPENAI_API_KEY not set - mood interpretation and book analysis require it")
	}

	// Initialize the book catalog with XDG-compliant paths
	store, err := storage.NewStorage()
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer store.Close()

	// Initialize charm-backed profile storage
	charmClient, err := charm.NewClient(&charm.Config{
		Host:     cfg.CharmHost,
		DBName:   cfg.CharmDBName,
		AutoSync: cfg.AutoSync,
	})
	if err != nil {
		log.Fatalf("Failed to connect to charm KV: %v", err)
	}
	defer charmClient.Close()
	profiles := storage.NewProfileStore(charmClient)

	analyzer, err := llm.NewOpenAIClientWithConfig(&llm.ClientConfig{
		APIKey:     cfg.OpenAIKey,
		ChatModel:  cfg.ChatModel,
		Timeout:    cfg.Timeout,
		MaxRetries: cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay,
	})
	if err != nil {
		log.Fatalf("Failed to create OpenAI client: %v", err)
	}

	lex := lexicon.Default()
	var lexicons *storage.LexiconStore
	if cfg.OpenLexicon {
		// Open mode: load the persisted label registry so dimension
		// indices assigned in earlier runs stay stable.
		lexicons = storage.NewLexiconStore(charmClient)
		lex, err = lexicons.OpenLexicon()
		if err != nil {
			log.Fatalf("Failed to load persisted lexicon: %v", err)
		}
	}

	// Create MCP server
	server := mcpserver.NewMCPServer(
		"MoodReads Recommendation Engine",
		"0.1.0",
	)

	// Register MCP tools
	pipeline := cfg.PipelineConfig()
	mcp.RegisterTools(server, store, profiles, analyzer, lex, lexicons, mcp.HandlerConfig{
		DefaultLimit:     cfg.DefaultLimit,
		MaxLimit:         cfg.MaxLimit,
		DetailedProfiles: cfg.DetailedProfiles,
		Pipeline:         &pipeline,
	})

	// Start server with stdio transport
	log.Println("MoodReads MCP server starting on stdio...")
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
