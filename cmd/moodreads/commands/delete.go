// ABOUTME: CLI command to remove a book from the catalog
// ABOUTME: Deletes catalog metadata, stored analyses, and the synced profile
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// NewDeleteCmd creates the delete command
func NewDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [book-id]",
		Short: "Remove a book from the catalog",
		Long: `Remove a book from the catalog.

Deletes the book's metadata and per-source analyses from the local
catalog, plus its composite emotional profile from the synced store.

Examples:
  moodreads list --search "night circus"   # find the ID first
  moodreads delete 6f1b2c3d-...`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	bookID := args[0]

	store, err := openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	book, err := store.GetBook(bookID)
	if err != nil {
		return fmt.Errorf("looking up book: %w", err)
	}
	if err := store.DeleteBook(bookID); err != nil {
		return fmt.Errorf("deleting book: %w", err)
	}

	// The synced profile is removed best-effort: if the KV is not
	// reachable, 'moodreads sync repair' picks the orphan up later.
	if cfg, err := loadConfig(); err == nil {
		if profiles, _, closeProfiles, err := openProfiles(cfg); err == nil {
			if err := profiles.DeleteProfile(bookID); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: synced profile not removed: %v\n", err)
			}
			_ = closeProfiles()
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: profile store unavailable (%v); run 'moodreads sync repair' later\n", err)
		}
	}

	remaining, err := store.CountBooks()
	if err != nil {
		return fmt.Errorf("counting books: %w", err)
	}

	if outputFormat == "json" {
		data, err := json.MarshalIndent(map[string]interface{}{
			"deleted":         book,
			"remaining_books": remaining,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted %q (%s)\n", book.Title, bookID)
		fmt.Fprintf(cmd.OutOrStdout(), "  %d book(s) remain in the catalog\n", remaining)
	}
	return nil
}
