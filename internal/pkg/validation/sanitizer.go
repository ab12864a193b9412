// Package validation cleans display strings extracted from upstream payloads
// before they reach the canonical record.
package validation

import (
	"regexp"
	"strings"

	"github.com/Vodeneev/cricfeed/internal/pkg/models"
)

var (
	controlCharRegex = regexp.MustCompile(`[\x00-\x1F\x7F]`)
	multiSpaceRegex  = regexp.MustCompile(`\s+`)
)

const maxDisplayLen = 200

// DisplayString trims whitespace, strips control characters and collapses
// runs of whitespace. Upstream text blobs carry stray tabs and newlines.
func DisplayString(str string) string {
	sanitized := strings.TrimSpace(str)
	sanitized = controlCharRegex.ReplaceAllString(sanitized, "")
	sanitized = multiSpaceRegex.ReplaceAllString(sanitized, " ")
	if len(sanitized) > maxDisplayLen {
		sanitized = sanitized[:maxDisplayLen]
	}
	return sanitized
}

// SanitizeMatch sanitizes every display field of a canonical match in place.
func SanitizeMatch(match *models.CanonicalMatch) {
	if match == nil {
		return
	}
	match.Series = DisplayString(match.Series)
	match.Venue = DisplayString(match.Venue)
	match.Status = DisplayString(match.Status)
	match.Team1.Name = DisplayString(match.Team1.Name)
	match.Team2.Name = DisplayString(match.Team2.Name)
}
