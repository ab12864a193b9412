package cricbuzz

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Vodeneev/cricfeed/internal/pkg/config"
	"github.com/Vodeneev/cricfeed/internal/pkg/fetch"
	"github.com/Vodeneev/cricfeed/internal/pkg/models"
	"github.com/Vodeneev/cricfeed/internal/pkg/timeutil"
	"github.com/Vodeneev/cricfeed/internal/pkg/validation"
	"github.com/Vodeneev/cricfeed/internal/scraper/scrapers"
)

const (
	familyName = "cricbuzz"
	idPrefix   = "cb_"
	venueLabel = "Cricbuzz Data"
)

// liveStatusPhrases mark an in-play chase in status text, e.g.
// "India Need 20 runs", "Australia trails by 45 runs".
var liveStatusPhrases = []string{"Need", "trails", "leads"}

func init() {
	scrapers.Register(familyName, func(cfg *config.Config) scrapers.Scraper {
		return NewScraper(cfg, nil)
	})
}

// Scraper extracts matches from embedded page payloads.
type Scraper struct {
	cfg     *config.Config
	fetcher fetch.TextFetcher
	baseURL string
	now     func() time.Time
}

// NewScraper creates the scraper. A nil fetcher selects the plain HTTP client
// or the headless browser per configuration.
func NewScraper(cfg *config.Config, fetcher fetch.TextFetcher) *Scraper {
	sc := cfg.Scraper
	baseURL := sc.Cricbuzz.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := sc.Cricbuzz.Timeout
	if timeout <= 0 {
		timeout = sc.Timeout
	}
	if fetcher == nil {
		if sc.Cricbuzz.UseBrowser {
			fetcher = fetch.NewChromeFetcher(sc.UserAgent, timeout)
		} else {
			fetcher = fetch.NewClient(sc.UserAgent, timeout, sc.Headers)
		}
	}
	return &Scraper{cfg: cfg, fetcher: fetcher, baseURL: baseURL, now: time.Now}
}

func (s *Scraper) GetName() string {
	return familyName
}

// Extract fetches every page the category calls for, reconciles live state
// from the live-scores page and returns the merged canonical list. A page
// that fails to fetch or carries no recognizable payload contributes
// nothing; total failure yields an empty list, not an error.
func (s *Scraper) Extract(ctx context.Context, q scrapers.Query) ([]models.CanonicalMatch, error) {
	category := q.Category
	if q.Date != "" {
		category = models.CategorySchedule
	}
	sources := sourcesFor(q.Category, q.Date)

	results := make([][]rawRecord, len(sources))
	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(i int, src source) {
			defer wg.Done()
			url := s.baseURL + src.path
			records, err := s.scrapePage(ctx, url)
			if err != nil {
				slog.Warn("Page skipped", "url", url, "error", err)
				return
			}
			results[i] = records
		}(i, src)
	}
	wg.Wait()

	// The live-scores page is authoritative for current state. Its index is
	// built from raw records before any date filtering, so live state
	// survives even for matches the filter would drop.
	liveIndex := make(map[string]models.LiveState)
	for i, src := range sources {
		if !src.liveState {
			continue
		}
		for _, r := range results[i] {
			liveIndex[r.id] = models.LiveState{Status: r.status, State: r.state}
		}
	}

	now := s.now()
	var cands []candidate
	for i := range sources {
		for _, r := range results[i] {
			c, ok := s.canonicalize(r, liveIndex, category, q.Date, now)
			if ok {
				cands = append(cands, c)
			}
		}
	}

	merged := mergeCandidates(cands)
	slog.Info("Extraction finished", "scraper", familyName, "category", category, "matches", len(merged))
	return merged, nil
}

func (s *Scraper) scrapePage(ctx context.Context, url string) ([]rawRecord, error) {
	body, err := s.fetcher.FetchText(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	blob, err := locatePayload(body)
	if err != nil {
		return nil, err
	}

	blocks := splitBlocks(blob)
	records := make([]rawRecord, 0, len(blocks))
	for _, block := range blocks {
		r, ok := extractRecord(block, blob)
		if !ok {
			slog.Debug("Chunk dropped", "url", url)
			continue
		}
		records = append(records, r)
	}
	return records, nil
}

// canonicalize finishes one raw record: live-state override, localization,
// date filtering and display defaults. Returns false when the schedule date
// filter drops the record.
func (s *Scraper) canonicalize(r rawRecord, liveIndex map[string]models.LiveState, category models.Category, day string, now time.Time) (candidate, bool) {
	status, state := r.status, r.state
	if live, ok := liveIndex[r.id]; ok {
		status, state = live.Status, live.State
	}

	var rawDate, rawTime string
	if r.hasStart {
		var offset *int
		if r.hasOffset {
			offset = &r.offsetMin
		}
		rawDate, rawTime = timeutil.Localize(r.startMs, offset, now)
	}

	// Records without a start timestamp cannot satisfy an explicit date.
	if category == models.CategorySchedule && day != "" {
		if !r.hasStart || !timeutil.MatchesDay(r.startMs, day, now.Location()) {
			return candidate{}, false
		}
	}

	date, timeStr := rawDate, rawTime
	if date == "" {
		date = "Today"
	}
	if timeStr == "" {
		timeStr = "Live"
	}

	isLive := state == "In Progress"
	for _, phrase := range liveStatusPhrases {
		if strings.Contains(status, phrase) {
			isLive = true
			break
		}
	}

	m := models.CanonicalMatch{
		ID:     idPrefix + r.id,
		Series: r.series,
		Date:   date,
		Time:   timeStr,
		Venue:  venueLabel,
		Team1:  r.team1,
		Team2:  r.team2,
		Status: status,
		IsLive: isLive,
	}
	validation.SanitizeMatch(&m)
	return candidate{key: r.id, entry: m, rawDate: rawDate, rawTime: rawTime}, true
}
