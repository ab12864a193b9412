package sportradar

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/Vodeneev/cricfeed/internal/pkg/config"
	"github.com/Vodeneev/cricfeed/internal/pkg/fetch"
	"github.com/Vodeneev/cricfeed/internal/pkg/models"
	"github.com/Vodeneev/cricfeed/internal/pkg/validation"
	"github.com/Vodeneev/cricfeed/internal/scraper/scrapers"
)

const (
	familyName = "sportradar"
	idPrefix   = "sr_"

	defaultSeries = "Cricket Match"
	defaultVenue  = "Sportradar"

	crestURL       = "https://img.sportradar.com/ls/crest/big/%d.png"
	placeholderURL = "https://placehold.co/152x152?text=%s"
)

func init() {
	scrapers.Register(familyName, func(cfg *config.Config) scrapers.Scraper {
		return NewScraper(cfg, nil)
	})
}

// Scraper extracts matches from the per-day structured feed. Unlike the
// HTML family there is no merge step; feed entries are already unique.
type Scraper struct {
	client *Client
	now    func() time.Time
}

func NewScraper(cfg *config.Config, fetcher fetch.TextFetcher) *Scraper {
	return &Scraper{client: NewClient(cfg, fetcher), now: time.Now}
}

func (s *Scraper) GetName() string {
	return familyName
}

// Extract returns the canonical list for the requested day, default today
// (UTC). The category is ignored; the feed carries live and scheduled
// matches together. Feed failure yields an empty list, not an error.
func (s *Scraper) Extract(ctx context.Context, q scrapers.Query) ([]models.CanonicalMatch, error) {
	day := q.Date
	if day == "" {
		day = s.now().UTC().Format("2006-01-02")
	}

	data, err := s.client.GetDayMatches(ctx, day)
	if err != nil {
		slog.Warn("Feed unavailable", "scraper", familyName, "day", day, "error", err)
		return []models.CanonicalMatch{}, nil
	}

	// Map iteration order is random; sort ids so output is deterministic.
	ids := make([]string, 0, len(data.Matches))
	for id := range data.Matches {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	matches := make([]models.CanonicalMatch, 0, len(ids))
	for _, id := range ids {
		m := data.Matches[id]
		matches = append(matches, s.canonicalize(m, data, day))
	}

	slog.Info("Extraction finished", "scraper", familyName, "day", day, "matches", len(matches))
	return matches, nil
}

func (s *Scraper) canonicalize(m FeedMatch, data *FeedData, day string) models.CanonicalMatch {
	status := "Scheduled"
	isLive := false
	if m.Status != nil {
		status = m.Status.Name
		isLive = m.Status.Name == "Live"
	}
	if m.Result != nil && m.Result.Home != "" && m.Result.Away != "" {
		status = fmt.Sprintf("%s - %s", m.Result.Home, m.Result.Away)
	}

	series := defaultSeries
	if t, ok := data.Tournaments[strconv.FormatInt(m.TournamentID, 10)]; ok && t.Name != "" {
		series = t.Name
	}

	venue := defaultVenue
	if m.Venue != nil && m.Venue.Name != "" {
		venue = m.Venue.Name
	}

	timeStr := "TBD"
	if m.Time != nil && m.Time.Time != "" {
		timeStr = m.Time.Time
	}

	var home, away *FeedTeam
	if m.Teams != nil {
		home, away = m.Teams.Home, m.Teams.Away
	}

	out := models.CanonicalMatch{
		ID:     idPrefix + strconv.FormatInt(m.ID, 10),
		Series: series,
		Date:   day,
		Time:   timeStr,
		Venue:  venue,
		Team1:  extractTeam(home, "Team 1"),
		Team2:  extractTeam(away, "Team 2"),
		Status: status,
		IsLive: isLive,
	}
	validation.SanitizeMatch(&out)
	return out
}

// extractTeam builds display info for one side; crest from the team uid when
// present, generated placeholder otherwise.
func extractTeam(t *FeedTeam, fallback string) models.TeamInfo {
	name := fallback
	if t != nil && t.Name != "" {
		name = t.Name
	}
	logo := placeholderLogo(name)
	if t != nil && t.UID != 0 {
		logo = fmt.Sprintf(crestURL, t.UID)
	}
	return models.TeamInfo{Name: name, Logo: logo}
}

func placeholderLogo(name string) string {
	initial := ""
	for _, r := range name {
		initial = string(r)
		break
	}
	return fmt.Sprintf(placeholderURL, url.QueryEscape(initial))
}
