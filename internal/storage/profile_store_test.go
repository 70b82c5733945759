// ABOUTME: Tests for the Charm-backed profile store
// ABOUTME: Uses an in-memory KV so no charm server or SSH keys are needed
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/moodreads/moodreads/internal/models"
)

// memoryKV is an in-memory stand-in for the charm client
type memoryKV struct {
	data map[string][]byte
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: make(map[string][]byte)}
}

func (m *memoryKV) SetJSON(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = data
	return nil
}

func (m *memoryKV) GetJSON(key string, dest interface{}) error {
	data, ok := m.data[key]
	if !ok {
		return fmt.Errorf("key not found: %s", key)
	}
	return json.Unmarshal(data, dest)
}

func (m *memoryKV) Delete(key string) error {
	delete(m.data, key)
	return nil
}

func (m *memoryKV) ListKeys(prefix string) ([]string, error) {
	var keys []string
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func testProfile(bookID string) *models.ItemProfile {
	return &models.ItemProfile{
		BookID:            bookID,
		Composite:         models.EmotionVector{0.8, 0, 0.6},
		DominantIntensity: 0.8,
		Keywords:          []string{"uplifting"},
		UpdatedAt:         time.Now(),
	}
}

func TestProfileStore_SaveAndGet(t *testing.T) {
	store := NewProfileStore(newMemoryKV())

	profile := testProfile("book_1")
	if err := store.SaveProfile(profile); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}

	loaded, err := store.GetProfile("book_1")
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if loaded.BookID != "book_1" {
		t.Errorf("BookID = %s, want book_1", loaded.BookID)
	}
	if len(loaded.Composite) != 3 {
		t.Errorf("Composite dimension = %d, want 3", len(loaded.Composite))
	}
	if loaded.DominantIntensity != 0.8 {
		t.Errorf("DominantIntensity = %f, want 0.8", loaded.DominantIntensity)
	}
}

func TestProfileStore_SaveValidation(t *testing.T) {
	store := NewProfileStore(newMemoryKV())

	if err := store.SaveProfile(&models.ItemProfile{}); err == nil {
		t.Error("SaveProfile should reject a missing book ID")
	}
	if err := store.SaveProfile(&models.ItemProfile{BookID: "x"}); err == nil {
		t.Error("SaveProfile should reject an empty composite vector")
	}
}

func TestProfileStore_GetMissing(t *testing.T) {
	store := NewProfileStore(newMemoryKV())

	if _, err := store.GetProfile("nope"); err == nil {
		t.Error("GetProfile should fail for an unknown book")
	}
}

func TestProfileStore_Delete(t *testing.T) {
	store := NewProfileStore(newMemoryKV())

	if err := store.SaveProfile(testProfile("book_1")); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}
	if err := store.DeleteProfile("book_1"); err != nil {
		t.Fatalf("DeleteProfile failed: %v", err)
	}
	if _, err := store.GetProfile("book_1"); err == nil {
		t.Error("GetProfile should fail after deletion")
	}
}

func TestProfileStore_ListProfiles(t *testing.T) {
	kv := newMemoryKV()
	store := NewProfileStore(kv)

	for _, id := range []string{"book_1", "book_2", "book_3"} {
		if err := store.SaveProfile(testProfile(id)); err != nil {
			t.Fatalf("SaveProfile(%s) failed: %v", id, err)
		}
	}
	// A key outside the profile prefix must not appear in the listing.
	kv.data["book:book_1"] = []byte(`{"title":"x"}`)

	profiles, err := store.ListProfiles()
	if err != nil {
		t.Fatalf("ListProfiles failed: %v", err)
	}
	if len(profiles) != 3 {
		t.Errorf("got %d profiles, want 3", len(profiles))
	}
}

func TestProfileStore_ListSkipsCorruptEntries(t *testing.T) {
	kv := newMemoryKV()
	store := NewProfileStore(kv)

	if err := store.SaveProfile(testProfile("book_1")); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}
	kv.data["profile:broken"] = []byte("not json")

	profiles, err := store.ListProfiles()
	if err != nil {
		t.Fatalf("ListProfiles should tolerate corrupt entries, got: %v", err)
	}
	if len(profiles) != 1 {
		t.Errorf("got %d profiles, want 1 readable", len(profiles))
	}
}
