package cricbuzz

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// payloadMarkers identify the inline script that embeds the match payload.
// Pages embed it under different variable names depending on the section.
var payloadMarkers = []string{"currentMatchesList", "matchesList", "scheduleData"}

var errPayloadNotFound = errors.New("no embedded match payload in page")

// locatePayload finds the first inline script carrying one of the known
// payload markers and returns its text with escape sequences normalized.
func locatePayload(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parse page: %w", err)
	}

	var payload string
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		for _, marker := range payloadMarkers {
			if strings.Contains(text, marker) {
				payload = text
				return false
			}
		}
		return true
	})
	if payload == "" {
		return "", errPayloadNotFound
	}
	return normalizeEscapes(payload), nil
}

// normalizeEscapes undoes the serialize-then-escape the pages apply to the
// payload. Quotes must be unescaped before backslashes; the reverse order
// would corrupt legitimate backslashes.
func normalizeEscapes(s string) string {
	s = strings.ReplaceAll(s, `\"`, `"`)
	return strings.ReplaceAll(s, `\\`, `\`)
}
