package sportradar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Vodeneev/cricfeed/internal/pkg/config"
	"github.com/Vodeneev/cricfeed/internal/pkg/fetch"
)

const (
	defaultBaseURL = "https://lsc.fn.sportradar.com"
	defaultOrigin  = "https://sportcenter.sir.sportradar.com"
	defaultSportID = 21 // cricket
)

// Client fetches the per-day structured feed. The feed host rejects requests
// without browser-like Origin and Referer headers.
type Client struct {
	fetcher fetch.TextFetcher
	baseURL string
	origin  string
	sportID int
}

func NewClient(cfg *config.Config, fetcher fetch.TextFetcher) *Client {
	sc := cfg.Scraper
	baseURL := sc.Sportradar.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	origin := sc.Sportradar.Origin
	if origin == "" {
		origin = defaultOrigin
	}
	sportID := sc.Sportradar.SportID
	if sportID == 0 {
		sportID = defaultSportID
	}
	if fetcher == nil {
		timeout := sc.Sportradar.Timeout
		if timeout <= 0 {
			timeout = sc.Timeout
		}
		fetcher = fetch.NewClient(sc.UserAgent, timeout, sc.Headers)
	}
	return &Client{fetcher: fetcher, baseURL: baseURL, origin: origin, sportID: sportID}
}

// GetDayMatches fetches and decodes the feed document for one day
// (YYYY-MM-DD, UTC).
func (c *Client) GetDayMatches(ctx context.Context, day string) (*FeedData, error) {
	url := fmt.Sprintf("%s/common/en/Etc:UTC/gismo/sport_matches/%d/%s", c.baseURL, c.sportID, day)
	headers := map[string]string{
		"Origin":  c.origin,
		"Referer": c.origin + "/",
	}

	body, err := c.fetcher.FetchText(ctx, url, headers)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}

	var resp FeedResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}
	if len(resp.Doc) == 0 {
		return nil, errors.New("empty feed document")
	}
	return &resp.Doc[0].Data, nil
}
