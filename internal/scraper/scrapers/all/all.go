// Package all imports all available scrapers for side-effect registration.
//
// Import this package from your main to ensure all scrapers are registered:
//
//	import _ "github.com/Vodeneev/cricfeed/internal/scraper/scrapers/all"
package all

import (
	_ "github.com/Vodeneev/cricfeed/internal/scraper/scrapers/cricbuzz"
	_ "github.com/Vodeneev/cricfeed/internal/scraper/scrapers/sportradar"
)
