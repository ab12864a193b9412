package sportradar

import "encoding/json"

// FeedResponse is the top-level per-day feed document.
type FeedResponse struct {
	Doc []FeedDoc `json:"doc"`
}

type FeedDoc struct {
	Data FeedData `json:"data"`
}

// FeedData holds the day's matches keyed by match id and the tournament
// lookup table keyed by tournament id.
type FeedData struct {
	Matches     map[string]FeedMatch      `json:"matches"`
	Tournaments map[string]FeedTournament `json:"tournaments"`
}

type FeedTournament struct {
	Name string `json:"name"`
}

// FeedMatch is one match entry. Pointer fields are absent for matches the
// feed has not fully populated yet.
type FeedMatch struct {
	ID           int64       `json:"_id"`
	TournamentID int64       `json:"_tid"`
	Time         *FeedTime   `json:"time"`
	Status       *FeedStatus `json:"status"`
	Result       *FeedResult `json:"result"`
	Teams        *FeedTeams  `json:"teams"`
	Venue        *FeedVenue  `json:"venue"`
}

type FeedTime struct {
	Time string `json:"time"`
}

type FeedStatus struct {
	Name string `json:"name"`
}

// FeedResult carries the running score. json.Number keeps the feed's own
// rendering of the values; absent fields stay empty.
type FeedResult struct {
	Home json.Number `json:"home"`
	Away json.Number `json:"away"`
}

type FeedTeams struct {
	Home *FeedTeam `json:"home"`
	Away *FeedTeam `json:"away"`
}

type FeedTeam struct {
	Name string `json:"name"`
	UID  int64  `json:"uid"`
}

type FeedVenue struct {
	Name string `json:"name"`
}
