// ABOUTME: CLI command to recommend books for a mood query
// ABOUTME: Interprets the query via LLM and ranks the analyzed catalog
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/moodreads/moodreads/internal/core"
	"github.com/moodreads/moodreads/internal/models"
)

var recommendLimit int

// NewRecommendCmd creates the recommend command
func NewRecommendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend [mood query]",
		Short: "Recommend books for your current mood",
		Long: `Recommend books for your current mood.

Describe how you feel and how you want to feel in plain language.
The query is interpreted into an emotional target, and every analyzed
book in the catalog is ranked by emotional fit.

Examples:
  moodreads recommend "I'm stressed and want something comforting"
  moodreads recommend "something dark and tense" --limit 3
  moodreads recommend "hopeful but bittersweet" --format json`,
		Args: cobra.ExactArgs(1),
		RunE: runRecommend,
	}

	cmd.Flags().IntVar(&recommendLimit, "limit", 5, "Maximum number of recommendations")

	return cmd
}

func runRecommend(cmd *cobra.Command, args []string) error {
	if err := validatePositiveInt(recommendLimit, "limit"); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	limit := recommendLimit
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}

	analyzer, err := newAnalyzer(cfg)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintln(cmd.OutOrStdout(), "Interpreting mood query...")
	}
	intent, err := analyzer.InterpretMood(args[0])
	if err != nil {
		return fmt.Errorf("interpreting mood: %w", err)
	}

	profiles, kv, closeProfiles, err := openProfiles(cfg)
	if err != nil {
		return err
	}
	defer closeProfiles()

	candidates, err := profiles.ListProfiles()
	if err != nil {
		return fmt.Errorf("loading profiles: %w", err)
	}
	if len(candidates) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No analyzed books in the catalog yet. Run 'moodreads analyze' first.")
		return nil
	}

	lex, lexicons, err := openLexicon(cfg, kv)
	if err != nil {
		return err
	}
	lexSize := lex.Size()
	recommender := core.NewRecommenderWithConfig(lex, cfg.PipelineConfig())
	ranking, err := recommender.Recommend(*intent, candidates, limit)
	if err != nil {
		return fmt.Errorf("ranking catalog: %w", err)
	}
	if lexicons != nil {
		if err := lexicons.Persist(lex, lexSize); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to persist new lexicon labels: %v\n", err)
		}
	}

	store, err := openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	recs := make([]models.Recommendation, 0, len(ranking.Results))
	for _, result := range ranking.Results {
		rec := models.Recommendation{
			Score:       result.Score,
			Matched:     result.Matched,
			Explanation: result.Explanation,
		}
		if book, err := store.GetBook(result.BookID); err == nil {
			rec.Book = *book
		} else {
			rec.Book = models.Book{BookID: result.BookID}
		}
		if cfg.DetailedProfiles {
			rec.EmotionalArc, rec.OverallProfile = store.BookDetail(result.BookID)
		}
		recs = append(recs, rec)
	}

	if outputFormat == "json" {
		out := map[string]interface{}{
			"query":           args[0],
			"intent_summary":  intent.Summary,
			"recommendations": recs,
		}
		if len(ranking.Skipped) > 0 {
			out["skipped"] = ranking.Skipped
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling recommendations: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	if !quiet && intent.Summary != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Mood: %s\n\n", intent.Summary)
	}
	if len(recs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No matches found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SCORE\tTITLE\tAUTHOR\tWHY")
	for _, rec := range recs {
		title := rec.Book.Title
		if title == "" {
			title = rec.Book.BookID
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			rec.Score,
			truncate(title, 32),
			truncate(rec.Book.Author, 24),
			truncate(rec.Explanation, 60))
	}
	w.Flush()

	if verbose {
		for _, rec := range recs {
			if len(rec.Matched) == 0 {
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%s (%d%% match)\n", rec.Book.Title, rec.Score)
			for _, emotion := range rec.Matched {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s: %.0f/10\n", emotion.Label, emotion.Intensity)
			}
			if rec.OverallProfile != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", truncate(rec.OverallProfile, 100))
			}
		}
	}

	if verbose && len(ranking.Skipped) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "\nSkipped %d candidate(s):\n", len(ranking.Skipped))
		for _, notice := range ranking.Skipped {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", notice.BookID, notice.Reason)
		}
	}
	return nil
}
