// ABOUTME: Persists the open-mode emotion lexicon in Charm KV
// ABOUTME: Keeps runtime-registered label indices stable across processes
package storage

import (
	"fmt"

	"github.com/moodreads/moodreads/internal/charm"
	"github.com/moodreads/moodreads/internal/lexicon"
)

// LexiconStore persists the ordered emotion label list so dimension indices
// assigned in one process stay valid in the next. A label's index anchors a
// vector dimension in every stored profile, so the stored order is
// authoritative and append-only. Only open-mode lexicons need persistence;
// the closed standard lexicon never changes.
type LexiconStore struct {
	kv KV
}

// NewLexiconStore creates a LexiconStore over the given KV backend
func NewLexiconStore(kv KV) *LexiconStore {
	return &LexiconStore{kv: kv}
}

// Labels loads the persisted label list, or nil when none was saved yet.
func (ls *LexiconStore) Labels() ([]string, error) {
	keys, err := ls.kv.ListKeys(charm.LexiconPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list lexicon keys: %w", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}
	var labels []string
	if err := ls.kv.GetJSON(charm.LexiconKey(), &labels); err != nil {
		return nil, fmt.Errorf("failed to load lexicon labels: %w", err)
	}
	return labels, nil
}

// Save persists the label list in index order.
func (ls *LexiconStore) Save(labels []string) error {
	if err := ls.kv.SetJSON(charm.LexiconKey(), labels); err != nil {
		return fmt.Errorf("failed to save lexicon labels: %w", err)
	}
	return nil
}

// OpenLexicon builds the open-mode lexicon from the persisted label list,
// seeding and persisting the standard set on first use.
func (ls *LexiconStore) OpenLexicon() (*lexicon.Lexicon, error) {
	labels, err := ls.Labels()
	if err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		lex := lexicon.DefaultOpen()
		if err := ls.Save(lex.Labels()); err != nil {
			return nil, err
		}
		return lex, nil
	}
	return lexicon.New(labels, true), nil
}

// Persist saves the lexicon's labels when it grew past the given size.
// Call it after operations that may have registered new labels.
func (ls *LexiconStore) Persist(lex *lexicon.Lexicon, sizeBefore int) error {
	if lex.Size() == sizeBefore {
		return nil
	}
	return ls.Save(lex.Labels())
}
