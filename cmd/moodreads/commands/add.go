// ABOUTME: CLI command to add a book to the catalog
// ABOUTME: Stores catalog metadata; emotional analysis happens via analyze
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moodreads/moodreads/internal/models"
)

var (
	addAuthor       string
	addGenre        string
	addRating       float64
	addCoverURL     string
	addGoodreadsURL string
)

// NewAddCmd creates the add command
func NewAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a book to the catalog",
		Long: `Add a book to the catalog.

Only stores metadata. Run 'moodreads analyze' afterwards with the
book's description and reviews to build its emotional profile.

Examples:
  moodreads add "The Night Circus" --author "Erin Morgenstern" --genre fantasy
  moodreads add "Project Hail Mary" --author "Andy Weir" --rating 4.5`,
		Args: cobra.ExactArgs(1),
		RunE: runAdd,
	}

	cmd.Flags().StringVar(&addAuthor, "author", "", "Book author")
	cmd.Flags().StringVar(&addGenre, "genre", "", "Primary genre")
	cmd.Flags().Float64Var(&addRating, "rating", 0, "Average rating (0-5)")
	cmd.Flags().StringVar(&addCoverURL, "cover-url", "", "Cover image URL")
	cmd.Flags().StringVar(&addGoodreadsURL, "goodreads-url", "", "Goodreads page URL")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	store, err := openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	book := &models.Book{
		Title:        args[0],
		Author:       addAuthor,
		Genre:        addGenre,
		Rating:       addRating,
		CoverURL:     addCoverURL,
		GoodreadsURL: addGoodreadsURL,
	}

	if err := store.AddBook(book); err != nil {
		return fmt.Errorf("adding book: %w", err)
	}

	if outputFormat == "json" {
		data, err := json.MarshalIndent(book, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling book: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Added %q (%s)\n", book.Title, book.BookID)
		fmt.Fprintf(cmd.OutOrStdout(), "  Next: moodreads analyze %s --description \"...\"\n", book.BookID)
	}
	return nil
}
