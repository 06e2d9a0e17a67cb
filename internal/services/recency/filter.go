package recency

import (
	"github.com/aixtraball/pinadmin/internal/dependencies/clock"
	"github.com/aixtraball/pinadmin/internal/model"
)

// Mode selects how far back the score view reaches.
type Mode string

const (
	// ModeAll passes scores through unchanged.
	ModeAll Mode = "all"

	// ModeLatest retains only scores dated today or yesterday. This is a
	// boundary-day comparison in local wall-clock terms, not a rolling
	// 48-hour window.
	ModeLatest Mode = "latest"
)

// dateLayout matches the ISO calendar dates the backend stores.
const dateLayout = "2006-01-02"

// Filter narrows scores to the given mode's recency window. The result is
// always non-nil so aggregated mappings keep an entry per machine even when
// everything is filtered out. Filtering with ModeLatest is idempotent.
func Filter(scores []model.Score, mode Mode, clk clock.Clock) []model.Score {
	if mode != ModeLatest {
		if scores == nil {
			return []model.Score{}
		}
		return scores
	}

	now := clk.Now()
	today := now.Format(dateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)

	filtered := make([]model.Score, 0, len(scores))
	for _, score := range scores {
		if score.Date == today || score.Date == yesterday {
			filtered = append(filtered, score)
		}
	}
	return filtered
}
