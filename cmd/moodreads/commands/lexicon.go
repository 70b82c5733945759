// ABOUTME: CLI command to print the emotion lexicon
// ABOUTME: Shows every label and its vector dimension index
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/moodreads/moodreads/internal/lexicon"
)

// NewLexiconCmd creates the lexicon command
func NewLexiconCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Print the emotion lexicon",
		Long: `Print the emotion lexicon.

Lists every emotion label the engine recognizes and the vector
dimension each one maps to. Dimension indices are stable: labels
are only ever appended, never reordered.`,
		RunE: runLexicon,
	}

	return cmd
}

func runLexicon(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	lex := lexicon.Default()
	if cfg.OpenLexicon {
		// Open mode: show the persisted registry, including labels
		// appended by earlier analysis runs.
		_, kv, closeProfiles, err := openProfiles(cfg)
		if err != nil {
			return err
		}
		defer closeProfiles()
		if lex, _, err = openLexicon(cfg, kv); err != nil {
			return err
		}
	}
	labels := lex.Labels()

	if outputFormat == "json" {
		data, err := json.MarshalIndent(labels, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling labels: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DIM\tEMOTION")
	for i, label := range labels {
		fmt.Fprintf(w, "%d\t%s\n", i, label)
	}
	w.Flush()

	if !quiet {
		mode := "closed"
		if lex.Open() {
			mode = "open"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d emotion(s), %s lexicon\n", len(labels), mode)
	}
	return nil
}
