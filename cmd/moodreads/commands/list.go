// ABOUTME: CLI command to list books in the catalog
// ABOUTME: Shows catalog metadata as a table or JSON
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listSearch string

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List books in the catalog",
		Long: `List books in the catalog.

Examples:
  moodreads list
  moodreads list --search morgenstern
  moodreads list --format json`,
		RunE: runList,
	}

	cmd.Flags().StringVar(&listSearch, "search", "", "Filter by title, author, or genre")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	books, err := store.ListBooks()
	if err != nil {
		return fmt.Errorf("listing books: %w", err)
	}
	if listSearch != "" {
		books, err = store.SearchBooks(listSearch, len(books))
		if err != nil {
			return fmt.Errorf("searching books: %w", err)
		}
	}

	if outputFormat == "json" {
		data, err := json.MarshalIndent(books, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling books: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	if len(books) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No books in the catalog. Add one with 'moodreads add'.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tGENRE\tRATING\tADDED")
	for _, book := range books {
		rating := "-"
		if book.Rating > 0 {
			rating = fmt.Sprintf("%.1f", book.Rating)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			book.BookID,
			truncate(book.Title, 32),
			truncate(book.Author, 24),
			truncate(book.Genre, 16),
			rating,
			formatTime(book.CreatedAt))
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d book(s)\n", len(books))
	}
	return nil
}
