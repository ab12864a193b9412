package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// ChromeFetcher fetches pages with a headless browser. Some upstream hosts
// serve the embedded match payload only after client-side rendering or block
// non-browser clients outright; this fetcher is the fallback for those.
type ChromeFetcher struct {
	userAgent string
	timeout   time.Duration
}

// NewChromeFetcher creates a headless-browser fetcher with a bounded
// per-navigation timeout.
func NewChromeFetcher(userAgent string, timeout time.Duration) *ChromeFetcher {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	return &ChromeFetcher{userAgent: userAgent, timeout: timeout}
}

// FetchText navigates to url and returns the rendered document HTML.
// Custom headers are not supported by the browser transport and are ignored.
func (f *ChromeFetcher) FetchText(ctx context.Context, url string, headers map[string]string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.UserAgent(f.userAgent),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("navigate %s: %w", url, err)
	}
	return html, nil
}
