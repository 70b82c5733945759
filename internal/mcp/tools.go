// ABOUTME: MCP tool definitions and registration for the MoodReads server
// ABOUTME: Defines JSON schemas for the recommendation and analysis tools
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/moodreads/moodreads/internal/lexicon"
	"github.com/moodreads/moodreads/internal/storage"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, store *storage.Storage, profiles *storage.ProfileStore, analyzer Analyzer, lex *lexicon.Lexicon, lexicons *storage.LexiconStore, cfg HandlerConfig) *Handlers {
	handlers := NewHandlers(store, profiles, analyzer, lex, lexicons, cfg)

	// 1. recommend_books - Rank the catalog against a free-text mood query
	server.AddTool(mcp.Tool{
		Name:        "recommend_books",
		Description: "Recommend books matching a described mood. Interprets the query into emotional preferences and ranks the catalog by emotional similarity.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Free-text description of the reader's mood and what they want to feel",
				},
				"limit": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of recommendations to return (default: 5, max: 20)",
					"default":     5,
				},
			},
			Required: []string{"query"},
		},
	}, handlers.RecommendBooks)

	// 2. analyze_book - Build or refresh a book's emotional profile
	server.AddTool(mcp.Tool{
		Name:        "analyze_book",
		Description: "Analyze a book's emotional content from its description, reviews, or genre conventions and rebuild its composite emotional profile. At least one text source is required.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"book_id": map[string]interface{}{
					"type":        "string",
					"description": "ID of the book to analyze",
				},
				"description": map[string]interface{}{
					"type":        "string",
					"description": "Publisher description or synopsis text",
				},
				"reviews": map[string]interface{}{
					"type":        "string",
					"description": "Reader review text, concatenated",
				},
				"genre": map[string]interface{}{
					"type":        "string",
					"description": "Genre names and conventions to analyze",
				},
			},
			Required: []string{"book_id"},
		},
	}, handlers.AnalyzeBook)

	// 3. list_books - List the catalog
	server.AddTool(mcp.Tool{
		Name:        "list_books",
		Description: "List all books in the catalog with their metadata.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ListBooks)

	// 4. get_book_profile - Inspect a book's emotional profile
	server.AddTool(mcp.Tool{
		Name:        "get_book_profile",
		Description: "Get a book's composite emotional profile with its strongest emotions, keywords, and the per-source analyses behind it.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"book_id": map[string]interface{}{
					"type":        "string",
					"description": "ID of the book to inspect",
				},
			},
			Required: []string{"book_id"},
		},
	}, handlers.GetBookProfile)

	return handlers
}
