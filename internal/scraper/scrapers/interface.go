package scrapers

import (
	"context"

	"github.com/Vodeneev/cricfeed/internal/pkg/models"
)

// Query selects what one extraction returns.
//
// Date (YYYY-MM-DD) is optional; for the HTML family a supplied date implies
// the schedule category, for the structured feed it picks the day (default
// today, UTC).
type Query struct {
	Category models.Category
	Date     string
}

// Scraper extracts the canonical match list for one source family.
// Extract never fails on partial source trouble: unusable sources contribute
// nothing and total failure yields an empty list.
type Scraper interface {
	Extract(ctx context.Context, q Query) ([]models.CanonicalMatch, error)
	GetName() string
}
