package models

// Category selects which set of sources the HTML-family scraper fetches.
type Category string

const (
	CategoryLive     Category = "live"
	CategorySchedule Category = "schedule"
	CategoryUpcoming Category = "upcoming"
	CategoryRecent   Category = "recent"
)

// TeamInfo is one side of a match as shown to clients.
type TeamInfo struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// CanonicalMatch is the deduplicated match representation returned to callers.
//
// ID carries a source-family prefix ("cb_" for the HTML family, "sr_" for the
// structured feed) so ids from different families never collide. Date is
// "Today", "Tomorrow" or zero-padded DD/MM/YYYY; Time is a human-readable
// string that may encode viewer, GMT and venue-local clocks.
type CanonicalMatch struct {
	ID     string   `json:"id"`
	Series string   `json:"series"`
	Date   string   `json:"date"`
	Time   string   `json:"time"`
	Venue  string   `json:"venue"`
	Team1  TeamInfo `json:"team1"`
	Team2  TeamInfo `json:"team2"`
	Status string   `json:"status"`
	IsLive bool     `json:"isLive"`
}

// LiveState is the authoritative status/state pair for one raw match id.
// Built once from the live-scores source within a single extraction and
// read-only afterwards.
type LiveState struct {
	Status string
	State  string
}
