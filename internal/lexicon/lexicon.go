// ABOUTME: Lexicon maps emotion labels to stable vector dimension indices
// ABOUTME: Append-only registry supporting closed and open registration modes
package lexicon

import (
	"fmt"
	"strings"
	"sync"
)

// standardEmotions seeds the default lexicon. Order matters: each label's
// position is its vector dimension, and stored vectors depend on it staying
// append-only.
var standardEmotions = []string{
	"joy", "sadness", "anger", "fear", "surprise", "disgust",
	"anticipation", "trust", "wonder", "excitement", "reflection",
	"tension", "comfort", "outrage", "melancholy", "nostalgia",
	"hope", "despair", "curiosity", "confusion", "awe", "love",
	"hate", "anxiety", "relief", "pride", "shame", "courage",
	"oppression", "liberation",
}

// UnknownLabelError is returned by a closed lexicon when a label was never
// registered.
type UnknownLabelError struct {
	Label string
}

func (e *UnknownLabelError) Error() string {
	return fmt.Sprintf("unknown emotion label: %q", e.Label)
}

// Lexicon assigns each emotion label a stable dimension index. Indices are
// assigned once and never reused, so vectors encoded against an older,
// smaller lexicon stay valid (new trailing dimensions default to zero).
type Lexicon struct {
	mu      sync.RWMutex
	indexes map[string]int
	labels  []string
	open    bool
}

// New creates a lexicon seeded with the given labels, in order.
// If open is true, IndexOf registers unseen labels instead of failing.
func New(labels []string, open bool) *Lexicon {
	lex := &Lexicon{
		indexes: make(map[string]int, len(labels)),
		labels:  make([]string, 0, len(labels)),
		open:    open,
	}
	for _, label := range labels {
		lex.register(Canonical(label))
	}
	return lex
}

// Default returns a closed lexicon with the 30 standard emotion dimensions.
func Default() *Lexicon {
	return New(standardEmotions, false)
}

// DefaultOpen returns the standard lexicon in open mode, so labels produced
// by upstream analysis that are not in the standard set get appended.
func DefaultOpen() *Lexicon {
	return New(standardEmotions, true)
}

// Canonical normalizes a label for lookup: lowercased and trimmed.
func Canonical(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// IndexOf returns the dimension index for a label. In open mode an unseen
// label is registered and assigned the next free index; in closed mode the
// lookup fails with UnknownLabelError.
func (l *Lexicon) IndexOf(label string) (int, error) {
	key := Canonical(label)
	if key == "" {
		return 0, &UnknownLabelError{Label: label}
	}

	l.mu.RLock()
	idx, ok := l.indexes[key]
	l.mu.RUnlock()
	if ok {
		return idx, nil
	}

	if !l.open {
		return 0, &UnknownLabelError{Label: label}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	// Re-check under the write lock: another goroutine may have registered
	// the label between the two lock acquisitions.
	if idx, ok := l.indexes[key]; ok {
		return idx, nil
	}
	return l.register(key), nil
}

// Contains reports whether a label is already registered, without
// registering it in open mode.
func (l *Lexicon) Contains(label string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.indexes[Canonical(label)]
	return ok
}

// Size returns the current dimensionality of the emotion space.
func (l *Lexicon) Size() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.labels)
}

// Labels returns a copy of all registered labels in index order.
func (l *Lexicon) Labels() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]string, len(l.labels))
	copy(out, l.labels)
	return out
}

// Label returns the label at the given dimension index, or "" if out of range.
func (l *Lexicon) Label(idx int) string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if idx < 0 || idx >= len(l.labels) {
		return ""
	}
	return l.labels[idx]
}

// Open reports whether the lexicon registers unseen labels.
func (l *Lexicon) Open() bool {
	return l.open
}

// register appends a canonical label. Caller must hold the write lock (or
// be the constructor, before the lexicon is shared).
func (l *Lexicon) register(key string) int {
	if idx, ok := l.indexes[key]; ok {
		return idx
	}
	idx := len(l.labels)
	l.indexes[key] = idx
	l.labels = append(l.labels, key)
	return idx
}
