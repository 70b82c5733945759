// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Enables LLM agents like Claude to use MoodReads via stdio
package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/moodreads/moodreads/internal/mcp"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents.

Runs MoodReads as an MCP (Model Context Protocol) server, enabling
LLM agents like Claude to recommend and analyze books via stdio.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an MCP client)
  moodreads mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "moodreads": {
  #       "command": "moodreads",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.OpenAIKey == "" {
		log.Println("Warning: OPENAI_API_KEY not set - mood interpretation and book analysis will not work")
	}

	store, err := openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	profiles, kv, closeProfiles, err := openProfiles(cfg)
	if err != nil {
		return err
	}
	defer closeProfiles()

	lex, lexicons, err := openLexicon(cfg, kv)
	if err != nil {
		return err
	}

	analyzer, err := newAnalyzer(cfg)
	if err != nil {
		return fmt.Errorf("initializing analyzer: %w", err)
	}

	server := mcpserver.NewMCPServer(
		"MoodReads Recommendation Engine",
		versionInfo.Version,
	)

	pipeline := cfg.PipelineConfig()
	mcp.RegisterTools(server, store, profiles, analyzer, lex, lexicons, mcp.HandlerConfig{
		DefaultLimit:     cfg.DefaultLimit,
		MaxLimit:         cfg.MaxLimit,
		DetailedProfiles: cfg.DetailedProfiles,
		Pipeline:         &pipeline,
	})

	if verbose {
		log.Println("MoodReads MCP server starting on stdio...")
	}

	// Serve until the client disconnects or we get a shutdown signal.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		if verbose {
			log.Println("Shutting down MCP server...")
		}
		return nil
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("MCP server error: %w", err)
		}
		return nil
	}
}
