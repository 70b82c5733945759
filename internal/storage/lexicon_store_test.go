// ABOUTME: Tests for the persisted open-mode lexicon
// ABOUTME: Verifies label indices survive across independent store instances
package storage

import (
	"testing"

	"github.com/moodreads/moodreads/internal/lexicon"
)

func TestLexiconStore_SeedsStandardSetOnFirstUse(t *testing.T) {
	store := NewLexiconStore(newMemoryKV())

	lex, err := store.OpenLexicon()
	if err != nil {
		t.Fatalf("OpenLexicon() error = %v", err)
	}
	if lex.Size() != 30 {
		t.Errorf("seeded lexicon has %d labels, want 30", lex.Size())
	}
	if !lex.Open() {
		t.Error("seeded lexicon should be in open mode")
	}

	labels, err := store.Labels()
	if err != nil {
		t.Fatalf("Labels() error = %v", err)
	}
	if len(labels) != 30 {
		t.Errorf("persisted %d labels on first use, want 30", len(labels))
	}
	if labels[0] != "joy" {
		t.Errorf("labels[0] = %q, want joy", labels[0])
	}
}

func TestLexiconStore_IndicesStableAcrossProcesses(t *testing.T) {
	// Two store instances over one KV stand in for two separate runs.
	// A label registered in the first run must come back with the same
	// index in the second, and a label first seen in the second run must
	// get a fresh index instead of reusing it.
	kv := newMemoryKV()

	first := NewLexiconStore(kv)
	lexA, err := first.OpenLexicon()
	if err != nil {
		t.Fatalf("OpenLexicon() error = %v", err)
	}
	before := lexA.Size()
	griefIdx, err := lexA.IndexOf("grief")
	if err != nil {
		t.Fatalf("IndexOf(grief) error = %v", err)
	}
	if griefIdx != 30 {
		t.Fatalf("grief registered at %d, want 30", griefIdx)
	}
	if err := first.Persist(lexA, before); err != nil {
		t.Fatalf("Persist() error = %v", err)
	}

	second := NewLexiconStore(kv)
	lexB, err := second.OpenLexicon()
	if err != nil {
		t.Fatalf("OpenLexicon() error = %v", err)
	}
	if !lexB.Contains("grief") {
		t.Fatal("grief did not survive the reload")
	}
	idx, err := lexB.IndexOf("grief")
	if err != nil {
		t.Fatalf("IndexOf(grief) after reload error = %v", err)
	}
	if idx != griefIdx {
		t.Errorf("grief index changed across runs: %d then %d", griefIdx, idx)
	}
	dreadIdx, err := lexB.IndexOf("dread")
	if err != nil {
		t.Fatalf("IndexOf(dread) error = %v", err)
	}
	if dreadIdx != 31 {
		t.Errorf("dread registered at %d, want 31: it must not reuse grief's dimension", dreadIdx)
	}
}

func TestLexiconStore_PersistSkipsUnchanged(t *testing.T) {
	kv := newMemoryKV()
	store := NewLexiconStore(kv)
	lex, err := store.OpenLexicon()
	if err != nil {
		t.Fatalf("OpenLexicon() error = %v", err)
	}

	// Wipe the stored copy, then Persist with no growth: nothing should
	// be written back.
	for k := range kv.data {
		delete(kv.data, k)
	}
	if err := store.Persist(lex, lex.Size()); err != nil {
		t.Fatalf("Persist() error = %v", err)
	}
	if len(kv.data) != 0 {
		t.Error("Persist wrote despite no new labels")
	}
	if _, err := lex.IndexOf("grief"); err != nil {
		t.Fatalf("IndexOf(grief) error = %v", err)
	}
	if err := store.Persist(lex, lex.Size()-1); err != nil {
		t.Fatalf("Persist() after growth error = %v", err)
	}
	labels, err := store.Labels()
	if err != nil {
		t.Fatalf("Labels() error = %v", err)
	}
	if len(labels) != 31 || labels[30] != "grief" {
		t.Errorf("persisted labels = %v, want the standard set plus grief", labels)
	}
}

func TestLexiconStore_OpenLexiconUsesDefaultWhenFresh(t *testing.T) {
	store := NewLexiconStore(newMemoryKV())
	lex, err := store.OpenLexicon()
	if err != nil {
		t.Fatalf("OpenLexicon() error = %v", err)
	}
	want := lexicon.DefaultOpen().Labels()
	got := lex.Labels()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("label %d = %q, want %q", i, got[i], want[i])
		}
	}
}
