// ABOUTME: Sync commands for Charm cloud synchronization
// ABOUTME: Provides status, wipe, repair, and keys management
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/moodreads/moodreads/internal/charm"
)

// NewSyncCmd creates the sync command group
func NewSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Manage Charm cloud synchronization",
		Long: `Manage synchronization with Charm cloud.

MoodReads stores emotional profiles in Charm for automatic cloud sync
via SSH keys. Profiles sync across devices linked to the same Charm
account; the book catalog itself stays local.`,
	}

	cmd.AddCommand(newSyncStatusCmd())
	cmd.AddCommand(newSyncNowCmd())
	cmd.AddCommand(newSyncRepairCmd())
	cmd.AddCommand(newSyncWipeCmd())
	cmd.AddCommand(newSyncKeysCmd())

	return cmd
}

func newSyncStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show sync status and connection info",
		RunE: func(cmd *cobra.Command, args []string) error {
			if store, err := openCatalog(); err == nil {
				count, countErr := store.CountBooks()
				if countErr == nil {
					fmt.Printf("Catalog: %s (%d book(s))\n", store.BasePath(), count)
				} else {
					fmt.Printf("Catalog: %s\n", store.BasePath())
				}
				store.Close()
			}

			client, err := charm.GetClient()
			if err != nil {
				return fmt.Errorf("failed to connect to Charm: %w", err)
			}

			id, err := client.ID()
			if err != nil {
				fmt.Println("Status: Not connected")
				fmt.Println("Run 'moodreads sync keys' to check your SSH keys")
				return nil
			}

			fmt.Println("Status: Connected")
			fmt.Printf("User ID: %s\n", id)
			fmt.Printf("Host: %s\n", os.Getenv("CHARM_HOST"))

			return nil
		},
	}
}

func newSyncNowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Force immediate sync with Charm cloud",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := charm.GetClient()
			if err != nil {
				return fmt.Errorf("failed to connect to Charm: %w", err)
			}

			fmt.Println("Syncing...")
			if err := client.Sync(); err != nil {
				return fmt.Errorf("sync failed: %w", err)
			}

			fmt.Println("Sync complete")
			return nil
		},
	}
}

func newSyncRepairCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repair",
		Short: "Remove profiles for books no longer in the catalog",
		Long: `Remove orphaned emotional profiles.

Profiles sync across devices but the book catalog is local, so a book
deleted on one device can leave its profile behind on another. This
command drops every profile whose book is missing from the catalog.`,
		RunE: runSyncRepair,
	}
}

func runSyncRepair(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	profiles, _, closeProfiles, err := openProfiles(cfg)
	if err != nil {
		return err
	}
	defer closeProfiles()

	all, err := profiles.ListProfiles()
	if err != nil {
		return fmt.Errorf("listing profiles: %w", err)
	}

	removed := 0
	for _, profile := range all {
		if _, err := store.GetBook(profile.BookID); err == nil {
			continue
		}
		if err := profiles.DeleteProfile(profile.BookID); err != nil {
			return fmt.Errorf("removing orphaned profile %s: %w", profile.BookID, err)
		}
		removed++
	}

	if removed > 0 {
		fmt.Printf("Repaired: removed %d orphaned profile(s)\n", removed)
	} else {
		fmt.Println("No repair needed: every profile has a catalog entry")
	}
	return nil
}

func newSyncWipeCmd() *cobra.Command {
	var confirm bool

	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "Wipe all local data (nuclear option)",
		Long: `Completely wipe all locally cached Charm data.

WARNING: This deletes all locally cached profile data. Your cloud data
remains intact and will be re-synced on next access.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm {
				fmt.Println("This will wipe ALL local profile data!")
				fmt.Println("Run with --confirm to proceed")
				return nil
			}

			client, err := charm.GetClient()
			if err != nil {
				return fmt.Errorf("failed to connect to Charm: %w", err)
			}

			if err := client.Reset(); err != nil {
				return fmt.Errorf("failed to wipe data: %w", err)
			}

			fmt.Println("Local data wiped successfully")
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirm, "confirm", false, "Confirm the wipe operation")

	return cmd
}

func newSyncKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List authorized SSH keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := charm.GetClient()
			if err != nil {
				return fmt.Errorf("failed to connect to Charm: %w", err)
			}

			keys, err := client.GetAuthorizedKeys()
			if err != nil {
				return fmt.Errorf("failed to get authorized keys: %w", err)
			}

			if keys == "" {
				fmt.Println("No authorized keys found")
				return nil
			}

			fmt.Println("Authorized SSH keys:")
			fmt.Println(keys)

			return nil
		},
	}
}
