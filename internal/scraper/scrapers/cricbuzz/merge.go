package cricbuzz

import (
	"strings"

	"github.com/Vodeneev/cricfeed/internal/pkg/models"
)

// candidate pairs a finished canonical entry with the raw date and time it
// was built from. The entry carries display defaults ("Today", "Live") while
// the raw values stay empty when the page had no start timestamp, so
// replacement checks compare what each sighting actually resolved.
type candidate struct {
	key     string
	entry   models.CanonicalMatch
	rawDate string
	rawTime string
}

// mergeCandidates keeps one entry per raw id, in first-seen order. A later
// sighting replaces the kept one when it brings an absolute date where the
// kept entry has none, or a strictly longer time string.
func mergeCandidates(cands []candidate) []models.CanonicalMatch {
	kept := make(map[string]candidate, len(cands))
	order := make([]string, 0, len(cands))

	for _, c := range cands {
		existing, ok := kept[c.key]
		if !ok {
			kept[c.key] = c
			order = append(order, c.key)
			continue
		}
		datedUpgrade := !strings.Contains(existing.entry.Date, "/") && strings.Contains(c.rawDate, "/")
		richerTime := len(existing.entry.Time) < len(c.rawTime)
		if datedUpgrade || richerTime {
			kept[c.key] = c
		}
	}

	out := make([]models.CanonicalMatch, 0, len(order))
	for _, key := range order {
		out = append(out, kept[key].entry)
	}
	return out
}
