// ABOUTME: CLI command to show a book's emotional profile
// ABOUTME: Displays top composite emotions, keywords, and analyzed sources
package commands

import (
	"encoding/json"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/moodreads/moodreads/internal/models"
)

// NewProfileCmd creates the profile command
func NewProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile [book-id]",
		Short: "Show a book's emotional profile",
		Long: `Show a book's emotional profile.

Displays the composite emotion weights, dominant intensity, keywords,
and the sources the profile was built from.

Examples:
  moodreads profile book_a1b2c3d4
  moodreads profile book_a1b2c3d4 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: runProfile,
	}

	return cmd
}

func runProfile(cmd *cobra.Command, args []string) error {
	bookID := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
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

	profiles, kv, closeProfiles, err := openProfiles(cfg)
	if err != nil {
		return err
	}
	defer closeProfiles()

	profile, err := profiles.GetProfile(bookID)
	if err != nil {
		if outputFormat == "json" {
			data, _ := json.MarshalIndent(map[string]interface{}{
				"book":     book,
				"analyzed": false,
			}, "", "  ")
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s by %s\n", book.Title, book.Author)
		fmt.Fprintln(cmd.OutOrStdout(), "Not analyzed yet. Run 'moodreads analyze' to build its profile.")
		return nil
	}

	sources, err := store.GetSourceProfiles(bookID)
	if err != nil {
		return fmt.Errorf("loading source profiles: %w", err)
	}

	if outputFormat == "json" {
		data, err := json.MarshalIndent(map[string]interface{}{
			"book":     book,
			"analyzed": true,
			"profile":  profile,
			"sources":  sources,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling profile: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s by %s\n", book.Title, book.Author)
	if book.Genre != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Genre: %s\n", book.Genre)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Dominant intensity: %.1f\n", profile.DominantIntensity)
	if profile.Unscored {
		fmt.Fprintln(cmd.OutOrStdout(), "No emotional signal detected; book is excluded from ranking.")
	}

	lex, _, err := openLexicon(cfg, kv)
	if err != nil {
		return err
	}
	top := topEmotions(profile, lex.Labels(), 5)
	if len(top) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "\nTop emotions:")
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, e := range top {
			fmt.Fprintf(w, "  %s\t%.2f\n", e.label, e.weight)
		}
		w.Flush()
	}

	if len(profile.Keywords) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "\nKeywords: %v\n", profile.Keywords)
	}

	if len(sources) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "\nSources:")
		for _, src := range sources {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s (%s): %s\n",
				src.Kind, formatTime(src.AnalyzedAt), truncate(src.Summary, 70))
		}
	}
	return nil
}

type emotionWeight struct {
	label  string
	weight float64
}

// topEmotions returns the n heaviest composite dimensions with their labels.
func topEmotions(profile *models.ItemProfile, labels []string, n int) []emotionWeight {
	weights := make([]emotionWeight, 0, len(profile.Composite))
	for i, w := range profile.Composite {
		if w <= 0 || i >= len(labels) {
			continue
		}
		weights = append(weights, emotionWeight{label: labels[i], weight: w})
	}
	sort.Slice(weights, func(i, j int) bool {
		if weights[i].weight != weights[j].weight {
			return weights[i].weight > weights[j].weight
		}
		return weights[i].label < weights[j].label
	})
	if len(weights) > n {
		weights = weights[:n]
	}
	return weights
}
