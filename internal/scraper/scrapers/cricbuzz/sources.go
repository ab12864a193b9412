package cricbuzz

import "github.com/Vodeneev/cricfeed/internal/pkg/models"

const defaultBaseURL = "https://www.cricbuzz.com"

const (
	pathLiveScores   = "/cricket-match/live-scores"
	pathUpcoming     = "/cricket-match/live-scores/upcoming-matches"
	pathRecent       = "/cricket-match/live-scores/recent-matches"
	pathScheduleIntl = "/cricket-schedule/upcoming-series/international"
	pathScheduleT20  = "/cricket-schedule/upcoming-series/t20-leagues"
	pathScheduleDom  = "/cricket-schedule/upcoming-series/domestic"
)

// source is one page fetch within an extraction. Only the live-scores page
// feeds the live-state index.
type source struct {
	path      string
	liveState bool
}

// sourcesFor resolves a category to the pages to fetch. The live-scores page
// is always included. A supplied explicit date implies the schedule category.
func sourcesFor(category models.Category, explicitDate string) []source {
	out := []source{{path: pathLiveScores, liveState: true}}
	if explicitDate != "" {
		category = models.CategorySchedule
	}
	switch category {
	case models.CategorySchedule:
		out = append(out,
			source{path: pathUpcoming},
			source{path: pathScheduleIntl},
			source{path: pathScheduleT20},
			source{path: pathScheduleDom},
		)
	case models.CategoryUpcoming:
		out = append(out, source{path: pathUpcoming})
	case models.CategoryRecent:
		out = append(out, source{path: pathRecent})
	}
	return out
}
