// ABOUTME: Composite profile storage with Charm KV backend
// ABOUTME: Keeps each book's emotional profile cloud-synced and queryable by prefix
package storage

import (
	"fmt"
	"os"

	"github.com/moodreads/moodreads/internal/charm"
	"github.com/moodreads/moodreads/internal/models"
)

// KV is the key-value surface the profile store needs. *charm.Client
// satisfies it; tests supply an in-memory implementation.
type KV interface {
	SetJSON(key string, value interface{}) error
	GetJSON(key string, dest interface{}) error
	Delete(key string) error
	ListKeys(prefix string) ([]string, error)
}

// ProfileStore manages composite emotional profiles in Charm KV
type ProfileStore struct {
	kv KV
}

// NewProfileStore creates a ProfileStore over the given KV backend
func NewProfileStore(kv KV) *ProfileStore {
	return &ProfileStore{kv: kv}
}

// SaveProfile stores a book's composite profile
func (ps *ProfileStore) SaveProfile(profile *models.ItemProfile) error {
	if profile.BookID == "" {
		return fmt.Errorf("profile requires a book ID")
	}
	if len(profile.Composite) == 0 {
		return fmt.Errorf("profile for %s has no composite vector", profile.BookID)
	}
	if !profile.Composite.IsFinite() {
		return fmt.Errorf("profile for %s has non-finite components", profile.BookID)
	}

	key := charm.ProfileKey(profile.BookID)
	return ps.kv.SetJSON(key, profile)
}

// GetProfile retrieves a book's composite profile
func (ps *ProfileStore) GetProfile(bookID string) (*models.ItemProfile, error) {
	var profile models.ItemProfile
	if err := ps.kv.GetJSON(charm.ProfileKey(bookID), &profile); err != nil {
		return nil, fmt.Errorf("failed to load profile for %s: %w", bookID, err)
	}
	return &profile, nil
}

// DeleteProfile removes a book's composite profile
func (ps *ProfileStore) DeleteProfile(bookID string) error {
	return ps.kv.Delete(charm.ProfileKey(bookID))
}

// ListProfiles loads every stored profile. A corrupt entry is skipped with
// a warning rather than failing the whole listing.
func (ps *ProfileStore) ListProfiles() ([]*models.ItemProfile, error) {
	keys, err := ps.kv.ListKeys(charm.ProfilePrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list profile keys: %w", err)
	}

	profiles := make([]*models.ItemProfile, 0, len(keys))
	for _, key := range keys {
		var profile models.ItemProfile
		if err := ps.kv.GetJSON(key, &profile); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping unreadable profile %s: %v\n", key, err)
			continue
		}
		profiles = append(profiles, &profile)
	}

	return profiles, nil
}
