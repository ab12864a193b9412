package cricbuzz

import "github.com/Vodeneev/cricfeed/internal/pkg/models"

// rawRecord is one match carved out of an embedded page payload, before
// live-state reconciliation and merging. Start time and venue offset stay in
// raw form here; localization happens during canonicalization so the merger
// can see which sightings actually resolved a timestamp.
type rawRecord struct {
	id        string
	series    string
	status    string
	state     string
	startMs   int64
	hasStart  bool
	offsetMin int
	hasOffset bool
	team1     models.TeamInfo
	team2     models.TeamInfo
}
