// Package fetch provides the text-fetch capability the scrapers consume.
// Scrapers depend only on TextFetcher, so tests inject stubs and sources
// that block plain HTTP clients can switch to the headless-browser fetcher.
package fetch

import "context"

// TextFetcher fetches one URL and returns the response body as text.
// Failures cover network errors, timeouts and non-success responses.
type TextFetcher interface {
	FetchText(ctx context.Context, url string, headers map[string]string) (string, error)
}
