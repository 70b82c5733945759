// ABOUTME: Synthetic catalog and query generation for ranking benchmarks
// ABOUTME: Deterministic generation so runs are comparable across changes
package rankbench

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/moodreads/moodreads/internal/core"
	"github.com/moodreads/moodreads/internal/lexicon"
	"github.com/moodreads/moodreads/internal/models"
)

// moodVocabulary are the emotions synthetic books and queries draw from.
var moodVocabulary = []string{
	"joy", "sadness", "fear", "wonder", "tension", "comfort",
	"melancholy", "hope", "despair", "awe", "anxiety", "relief",
}

var keywordPool = []string{
	"cozy", "haunting", "uplifting", "bittersweet", "gripping",
	"tender", "bleak", "whimsical", "cathartic", "unsettling",
}

// GenerateCatalog builds profileCount synthetic book profiles. The same
// seed always produces the same catalog.
func GenerateCatalog(seed int64, profileCount int) ([]*models.ItemProfile, error) {
	rng := rand.New(rand.NewSource(seed))
	lex := lexicon.Default()
	encoder := core.NewEncoder(lex, core.DefaultEncoderConfig())
	aggregator := core.NewAggregator(lex, nil)

	catalog := make([]*models.ItemProfile, 0, profileCount)
	for i := 0; i < profileCount; i++ {
		bookID := fmt.Sprintf("book_bench%04d", i)
		profiles := []models.SourceProfile{
			syntheticSource(rng, bookID, models.SourceDescription),
			syntheticSource(rng, bookID, models.SourceReviews),
		}
		profile, err := aggregator.Rebuild(encoder, bookID, profiles)
		if err != nil {
			return nil, fmt.Errorf("building profile %s: %w", bookID, err)
		}
		catalog = append(catalog, profile)
	}
	return catalog, nil
}

// GenerateQueries builds queryCount synthetic mood intents.
func GenerateQueries(seed int64, queryCount int) []models.QueryIntent {
	rng := rand.New(rand.NewSource(seed))

	intents := make([]models.QueryIntent, 0, queryCount)
	for i := 0; i < queryCount; i++ {
		intent := models.QueryIntent{
			DesiredExperience: pickLabels(rng, 1+rng.Intn(3)),
			Intensity:         models.ParseIntensity(pickIntensity(rng)),
			Keywords:          pickKeywords(rng, rng.Intn(3)),
		}
		if rng.Float64() < 0.5 {
			intent.CurrentState = pickLabels(rng, 1+rng.Intn(2))
		}
		intents = append(intents, intent)
	}
	return intents
}

func syntheticSource(rng *rand.Rand, bookID string, kind models.SourceKind) models.SourceProfile {
	labels := pickLabels(rng, 2+rng.Intn(3))
	signals := make([]models.EmotionSignal, 0, len(labels))
	for _, label := range labels {
		signals = append(signals, models.EmotionSignal{
			Label:     label,
			Intensity: float64(1 + rng.Intn(10)),
		})
	}
	return models.SourceProfile{
		BookID:     bookID,
		Kind:       kind,
		Signals:    signals,
		Keywords:   pickKeywords(rng, rng.Intn(4)),
		AnalyzedAt: time.Now(),
	}
}

func pickLabels(rng *rand.Rand, n int) []string {
	perm := rng.Perm(len(moodVocabulary))
	labels := make([]string, 0, n)
	for _, idx := range perm[:n] {
		labels = append(labels, moodVocabulary[idx])
	}
	return labels
}

func pickKeywords(rng *rand.Rand, n int) []string {
	if n == 0 {
		return nil
	}
	perm := rng.Perm(len(keywordPool))
	keywords := make([]string, 0, n)
	for _, idx := range perm[:n] {
		keywords = append(keywords, keywordPool[idx])
	}
	return keywords
}

func pickIntensity(rng *rand.Rand) string {
	switch rng.Intn(3) {
	case 0:
		return "low"
	case 1:
		return "medium"
	default:
		return "high"
	}
}
