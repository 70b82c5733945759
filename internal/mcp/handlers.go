// ABOUTME: MCP tool handler implementations for the MoodReads server
// ABOUTME: Contains handler implementations with proper error handling for all 4 tools
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/moodreads/moodreads/internal/core"
	"github.com/moodreads/moodreads/internal/lexicon"
	"github.com/moodreads/moodreads/internal/models"
	"github.com/moodreads/moodreads/internal/storage"
)

// Analyzer is the LLM surface the handlers need. *llm.OpenAIClient
// satisfies it; tests supply a canned implementation.
type Analyzer interface {
	AnalyzeSource(text string, kind models.SourceKind) (*models.SourceProfile, error)
	InterpretMood(query string) (*models.QueryIntent, error)
}

// HandlerConfig carries the result-limit bounds and pipeline tunables for
// the tool handlers
type HandlerConfig struct {
	DefaultLimit int
	MaxLimit     int

	// DetailedProfiles adds each book's emotional arc and overall profile
	// summary to recommendation results.
	DetailedProfiles bool

	// Pipeline carries the loaded stage tunables. Nil means the documented
	// defaults; a non-nil config is used exactly as given, so the same
	// weights drive analysis and ranking here as in the CLI.
	Pipeline *core.PipelineConfig
}

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	storage     *storage.Storage
	profiles    *storage.ProfileStore
	analyzer    Analyzer
	lexicon     *lexicon.Lexicon
	lexicons    *storage.LexiconStore
	encoder     *core.Encoder
	aggregator  *core.Aggregator
	recommender *core.Recommender
	cfg         HandlerConfig
}

// NewHandlers wires the recommendation pipeline behind the MCP tool
// surface. lexicons may be nil for a closed lexicon, which never needs
// persisting.
func NewHandlers(store *storage.Storage, profiles *storage.ProfileStore, analyzer Analyzer, lex *lexicon.Lexicon, lexicons *storage.LexiconStore, cfg HandlerConfig) *Handlers {
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = 5
	}
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = 20
	}
	pipeline := core.DefaultPipelineConfig()
	if cfg.Pipeline != nil {
		pipeline = *cfg.Pipeline
	}
	return &Handlers{
		storage:     store,
		profiles:    profiles,
		analyzer:    analyzer,
		lexicon:     lex,
		lexicons:    lexicons,
		encoder:     core.NewEncoder(lex, pipeline.Encoder),
		aggregator:  core.NewAggregator(lex, pipeline.Sources),
		recommender: core.NewRecommenderWithConfig(lex, pipeline),
		cfg:         cfg,
	}
}

// persistLexicon saves the label list after an operation registered new
// labels, so their dimension indices survive a restart. Failures are
// logged, not fatal: the in-process lexicon stays consistent either way.
func (h *Handlers) persistLexicon(sizeBefore int) {
	if h.lexicons == nil || h.lexicon.Size() == sizeBefore {
		return
	}
	if err := h.lexicons.Save(h.lexicon.Labels()); err != nil {
		log.Printf("Warning: failed to persist new lexicon labels: %v", err)
	}
}

// RecommendBooks handles the recommend_books tool
func (h *Handlers) RecommendBooks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}

	limit := request.GetInt("limit", h.cfg.DefaultLimit)
	if limit <= 0 {
		return mcp.NewToolResultError(fmt.Sprintf("limit must be positive, got %d", limit)), nil
	}
	if limit > h.cfg.MaxLimit {
		limit = h.cfg.MaxLimit
	}

	intent, err := h.analyzer.InterpretMood(query)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("mood interpretation failed: %v", err)), nil
	}

	candidates, err := h.profiles.ListProfiles()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load book profiles: %v", err)), nil
	}

	lexSize := h.lexicon.Size()
	ranking, err := h.recommender.Recommend(*intent, candidates, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("recommendation failed: %v", err)), nil
	}
	h.persistLexicon(lexSize)

	recommendations := make([]map[string]interface{}, 0, len(ranking.Results))
	for _, result := range ranking.Results {
		entry := map[string]interface{}{
			"book_id":           result.BookID,
			"match_score":       result.Score,
			"matching_emotions": result.Matched,
			"explanation":       result.Explanation,
		}
		if book, err := h.storage.GetBook(result.BookID); err == nil {
			entry["title"] = book.Title
			entry["author"] = book.Author
			entry["genre"] = book.Genre
			entry["cover_url"] = book.CoverURL
			entry["goodreads_url"] = book.GoodreadsURL
		}
		if h.cfg.DetailedProfiles {
			arc, summary := h.storage.BookDetail(result.BookID)
			if arc != nil {
				entry["emotional_arc"] = arc
			}
			if summary != "" {
				entry["overall_profile"] = summary
			}
		}
		recommendations = append(recommendations, entry)
	}

	response := map[string]interface{}{
		"recommendations": recommendations,
		"intent_summary":  intent.Summary,
	}
	if len(ranking.Skipped) > 0 {
		response["skipped"] = ranking.Skipped
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// AnalyzeBook handles the analyze_book tool
func (h *Handlers) AnalyzeBook(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	bookID, err := request.RequireString("book_id")
	if err != nil {
		return mcp.NewToolResultError("book_id argument is required and must be a string"), nil
	}

	if _, err := h.storage.GetBook(bookID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("unknown book: %v", err)), nil
	}

	sources := []struct {
		kind models.SourceKind
		text string
	}{
		{models.SourceDescription, request.GetString("description", "")},
		{models.SourceReviews, request.GetString("reviews", "")},
		{models.SourceGenre, request.GetString("genre", "")},
	}

	analyzed := []string{}
	for _, src := range sources {
		if strings.TrimSpace(src.text) == "" {
			continue
		}
		profile, err := h.analyzer.AnalyzeSource(src.text, src.kind)
		if err != nil {
			// One failed source should not lose the others
			log.Printf("Warning: %s analysis for %s failed: %v", src.kind, bookID, err)
			continue
		}
		profile.BookID = bookID
		if err := h.storage.SaveSourceProfile(profile); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to save %s analysis: %v", src.kind, err)), nil
		}
		analyzed = append(analyzed, string(src.kind))
	}

	if len(analyzed) == 0 {
		return mcp.NewToolResultError("at least one of description, reviews, or genre must contain text"), nil
	}

	stored, err := h.storage.GetSourceProfiles(bookID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load analyses: %v", err)), nil
	}

	lexSize := h.lexicon.Size()
	composite, err := h.aggregator.Rebuild(h.encoder, bookID, stored)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to build composite profile: %v", err)), nil
	}
	if err := h.profiles.SaveProfile(composite); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to save composite profile: %v", err)), nil
	}
	h.persistLexicon(lexSize)

	response := map[string]interface{}{
		"book_id":            bookID,
		"sources_analyzed":   analyzed,
		"dominant_intensity": composite.DominantIntensity,
		"keywords":           composite.Keywords,
		"unscored":           composite.Unscored,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// ListBooks handles the list_books tool
func (h *Handlers) ListBooks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	books, err := h.storage.ListBooks()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list books: %v", err)), nil
	}

	entries := make([]map[string]interface{}, 0, len(books))
	for _, book := range books {
		entries = append(entries, map[string]interface{}{
			"book_id":    book.BookID,
			"title":      book.Title,
			"author":     book.Author,
			"genre":      book.Genre,
			"rating":     book.Rating,
			"created_at": book.CreatedAt.Format(time.RFC3339),
		})
	}

	response := map[string]interface{}{
		"books": entries,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// GetBookProfile handles the get_book_profile tool
func (h *Handlers) GetBookProfile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	bookID, err := request.RequireString("book_id")
	if err != nil {
		return mcp.NewToolResultError("book_id argument is required and must be a string"), nil
	}

	book, err := h.storage.GetBook(bookID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("unknown book: %v", err)), nil
	}

	profile, err := h.profiles.GetProfile(bookID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("book has no emotional profile yet, run analyze_book first: %v", err)), nil
	}

	sources, err := h.storage.GetSourceProfiles(bookID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load analyses: %v", err)), nil
	}

	response := map[string]interface{}{
		"book_id":            book.BookID,
		"title":              book.Title,
		"author":             book.Author,
		"top_emotions":       h.topEmotions(profile.Composite, 5),
		"dominant_intensity": profile.DominantIntensity,
		"keywords":           profile.Keywords,
		"sources":            sources,
		"updated_at":         profile.UpdatedAt.Format(time.RFC3339),
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// topEmotions names the strongest composite dimensions, strongest first
func (h *Handlers) topEmotions(vector models.EmotionVector, max int) []map[string]interface{} {
	type weighted struct {
		idx    int
		weight float64
	}
	var entries []weighted
	for i, w := range vector {
		if w > 0 {
			entries = append(entries, weighted{idx: i, weight: w})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].weight != entries[j].weight {
			return entries[i].weight > entries[j].weight
		}
		return entries[i].idx < entries[j].idx
	})
	if len(entries) > max {
		entries = entries[:max]
	}

	result := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		result = append(result, map[string]interface{}{
			"emotion": h.lexicon.Label(e.idx),
			"weight":  e.weight,
		})
	}
	return result
}
