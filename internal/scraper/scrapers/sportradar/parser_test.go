package sportradar

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Vodeneev/cricfeed/internal/pkg/config"
	"github.com/Vodeneev/cricfeed/internal/scraper/scrapers"
)

type stubFetcher struct {
	mu      sync.Mutex
	body    string
	err     error
	lastURL string
	headers map[string]string
}

func (f *stubFetcher) FetchText(_ context.Context, url string, headers map[string]string) (string, error) {
	f.mu.Lock()
	f.lastURL = url
	f.headers = headers
	f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	return f.body, nil
}

const feedFixture = `{"doc":[{"data":{
  "matches":{
    "9001":{"_id":9001,"_tid":77,"time":{"time":"14:30"},"status":{"name":"Live"},"result":{"home":145,"away":98},"teams":{"home":{"name":"India","uid":501},"away":{"name":"Australia"}},"venue":{"name":"MCG"}},
    "9002":{"_id":9002,"_tid":999}
  },
  "tournaments":{"77":{"name":"ICC World Cup"}}
}}]}`

func testScraper(f *stubFetcher) *Scraper {
	cfg := &config.Config{}
	cfg.Scraper.Sportradar.BaseURL = "http://feed"
	s := NewScraper(cfg, f)
	s.now = func() time.Time { return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestExtractFeed(t *testing.T) {
	f := &stubFetcher{body: feedFixture}
	s := testScraper(f)

	got, err := s.Extract(context.Background(), scrapers.Query{Date: "2025-03-10"})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d matches, want 2", len(got))
	}

	m := got[0]
	if m.ID != "sr_9001" {
		t.Errorf("id = %q, want sr_9001", m.ID)
	}
	if !m.IsLive {
		t.Error("isLive = false, want true for feed status Live")
	}
	if m.Status != "145 - 98" {
		t.Errorf("status = %q, want the running score", m.Status)
	}
	if m.Series != "ICC World Cup" {
		t.Errorf("series = %q", m.Series)
	}
	if m.Venue != "MCG" || m.Time != "14:30" || m.Date != "2025-03-10" {
		t.Errorf("venue/time/date = %q/%q/%q", m.Venue, m.Time, m.Date)
	}
	if m.Team1.Logo != "https://img.sportradar.com/ls/crest/big/501.png" {
		t.Errorf("team1 logo = %q", m.Team1.Logo)
	}
	if m.Team2.Name != "Australia" || m.Team2.Logo != "https://placehold.co/152x152?text=A" {
		t.Errorf("team2 = %+v, want placeholder crest", m.Team2)
	}
}

func TestExtractFeedSparseEntry(t *testing.T) {
	f := &stubFetcher{body: feedFixture}
	s := testScraper(f)

	got, err := s.Extract(context.Background(), scrapers.Query{Date: "2025-03-10"})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	m := got[1]
	if m.ID != "sr_9002" {
		t.Fatalf("id = %q, want sr_9002", m.ID)
	}
	if m.Series != "Cricket Match" {
		t.Errorf("series = %q, unknown tournament should fall back", m.Series)
	}
	if m.Status != "Scheduled" || m.IsLive {
		t.Errorf("status/isLive = %q/%v", m.Status, m.IsLive)
	}
	if m.Team1.Name != "Team 1" || m.Team2.Name != "Team 2" {
		t.Errorf("teams = %q vs %q", m.Team1.Name, m.Team2.Name)
	}
	if m.Time != "TBD" || m.Venue != "Sportradar" {
		t.Errorf("time/venue = %q/%q", m.Time, m.Venue)
	}
}

func TestExtractFeedURLAndHeaders(t *testing.T) {
	f := &stubFetcher{body: feedFixture}
	s := testScraper(f)

	if _, err := s.Extract(context.Background(), scrapers.Query{Date: "2025-03-10"}); err != nil {
		t.Fatalf("Extract: %v", err)
	}
	wantURL := "http://feed/common/en/Etc:UTC/gismo/sport_matches/21/2025-03-10"
	if f.lastURL != wantURL {
		t.Errorf("url = %q, want %q", f.lastURL, wantURL)
	}
	if f.headers["Origin"] != "https://sportcenter.sir.sportradar.com" {
		t.Errorf("Origin header = %q", f.headers["Origin"])
	}
	if f.headers["Referer"] != "https://sportcenter.sir.sportradar.com/" {
		t.Errorf("Referer header = %q", f.headers["Referer"])
	}
}

func TestExtractFeedDefaultsToToday(t *testing.T) {
	f := &stubFetcher{body: feedFixture}
	s := testScraper(f)

	got, err := s.Extract(context.Background(), scrapers.Query{})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got[0].Date != "2025-03-10" {
		t.Errorf("date = %q, want today (UTC)", got[0].Date)
	}
}

func TestExtractFeedFailureYieldsEmptyList(t *testing.T) {
	f := &stubFetcher{err: errors.New("connection refused")}
	s := testScraper(f)

	got, err := s.Extract(context.Background(), scrapers.Query{Date: "2025-03-10"})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d matches, want 0", len(got))
	}
}

func TestExtractFeedMalformedBody(t *testing.T) {
	f := &stubFetcher{body: "<html>blocked</html>"}
	s := testScraper(f)

	got, err := s.Extract(context.Background(), scrapers.Query{Date: "2025-03-10"})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d matches, want 0", len(got))
	}
}
