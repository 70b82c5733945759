// ABOUTME: CLI command to analyze a book's emotional content
// ABOUTME: Runs LLM analysis per source and rebuilds the composite profile
package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/moodreads/moodreads/internal/core"
	"github.com/moodreads/moodreads/internal/models"
)

var (
	analyzeDescription     string
	analyzeDescriptionFile string
	analyzeReviews         string
	analyzeReviewsFile     string
	analyzeGenreText       string
)

// NewAnalyzeCmd creates the analyze command
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [book-id]",
		Short: "Analyze a book's emotional content",
		Long: `Analyze a book's emotional content from its description, reviews,
and genre conventions.

Each provided source is analyzed independently, then combined into a
weighted composite emotional profile used for recommendations. A source
that fails to analyze is skipped; re-running replaces that source.

Examples:
  moodreads analyze book_a1b2c3d4 --description "A circus arrives..."
  moodreads analyze book_a1b2c3d4 --reviews-file reviews.txt --genre-text fantasy`,
		Args: cobra.ExactArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().StringVar(&analyzeDescription, "description", "", "Book description text")
	cmd.Flags().StringVar(&analyzeDescriptionFile, "description-file", "", "Read description from file")
	cmd.Flags().StringVar(&analyzeReviews, "reviews", "", "Reader review text")
	cmd.Flags().StringVar(&analyzeReviewsFile, "reviews-file", "", "Read reviews from file")
	cmd.Flags().StringVar(&analyzeGenreText, "genre-text", "", "Genre conventions text")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	bookID := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sources, err := collectSources()
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return fmt.Errorf("at least one of --description, --reviews, or --genre-text is required")
	}

	store, err := openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	book, err := store.GetBook(bookID)
	if err != nil {
		return fmt.Errorf("looking up book: %w", err)
	}

	analyzer, err := newAnalyzer(cfg)
	if err != nil {
		return err
	}

	analyzed := 0
	for kind, text := range sources {
		if verbose {
			fmt.Fprintf(cmd.OutOrStdout(), "Analyzing %s...\n", kind)
		}
		profile, err := analyzer.AnalyzeSource(text, kind)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s analysis failed: %v\n", kind, err)
			continue
		}
		profile.BookID = bookID
		if err := store.SaveSourceProfile(profile); err != nil {
			return fmt.Errorf("saving %s profile: %w", kind, err)
		}
		analyzed++
	}
	if analyzed == 0 {
		return fmt.Errorf("no sources could be analyzed")
	}

	// Rebuild the composite from every stored source, not just this run's.
	sourceProfiles, err := store.GetSourceProfiles(bookID)
	if err != nil {
		return fmt.Errorf("loading source profiles: %w", err)
	}

	profiles, kv, closeProfiles, err := openProfiles(cfg)
	if err != nil {
		return err
	}
	defer closeProfiles()

	lex, lexicons, err := openLexicon(cfg, kv)
	if err != nil {
		return err
	}
	lexSize := lex.Size()
	pc := cfg.PipelineConfig()
	encoder := core.NewEncoder(lex, pc.Encoder)
	aggregator := core.NewAggregator(lex, pc.Sources)

	composite, err := aggregator.Rebuild(encoder, bookID, sourceProfiles)
	if err != nil {
		return fmt.Errorf("building composite profile: %w", err)
	}

	if err := profiles.SaveProfile(composite); err != nil {
		return fmt.Errorf("saving composite profile: %w", err)
	}
	if lexicons != nil {
		if err := lexicons.Persist(lex, lexSize); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to persist new lexicon labels: %v\n", err)
		}
	}

	if outputFormat == "json" {
		data, err := json.MarshalIndent(composite, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling profile: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Analyzed %q (%d source(s))\n", book.Title, analyzed)
		fmt.Fprintf(cmd.OutOrStdout(), "  Dominant intensity: %.1f\n", composite.DominantIntensity)
		if len(composite.Keywords) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "  Keywords: %v\n", composite.Keywords)
		}
		if composite.Unscored {
			fmt.Fprintln(cmd.OutOrStdout(), "  Note: no emotional signal detected; book will not be ranked")
		}
	}
	return nil
}

// collectSources resolves text/file flags into per-kind source text.
func collectSources() (map[models.SourceKind]string, error) {
	sources := make(map[models.SourceKind]string)

	description, err := textOrFile(analyzeDescription, analyzeDescriptionFile)
	if err != nil {
		return nil, err
	}
	if description != "" {
		sources[models.SourceDescription] = description
	}

	reviews, err := textOrFile(analyzeReviews, analyzeReviewsFile)
	if err != nil {
		return nil, err
	}
	if reviews != "" {
		sources[models.SourceReviews] = reviews
	}

	if analyzeGenreText != "" {
		sources[models.SourceGenre] = analyzeGenreText
	}
	return sources, nil
}

func textOrFile(text, path string) (string, error) {
	if text != "" {
		return text, nil
	}
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
