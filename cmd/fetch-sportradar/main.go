// Dev tool: run the structured-feed extraction for one day and dump the
// canonical list. Run from the repo root:
//
//	go run ./cmd/fetch-sportradar
//	go run ./cmd/fetch-sportradar -date 2026-09-01
//	go run ./cmd/fetch-sportradar -save feed.json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Vodeneev/cricfeed/internal/pkg/config"
	"github.com/Vodeneev/cricfeed/internal/pkg/logging"
	"github.com/Vodeneev/cricfeed/internal/scraper/scrapers"
	_ "github.com/Vodeneev/cricfeed/internal/scraper/scrapers/all"
)

func main() {
	configPath := flag.String("config", "configs/production.yaml", "path to config yaml")
	date := flag.String("date", "", "day YYYY-MM-DD, default today (UTC)")
	save := flag.String("save", "", "save canonical JSON to this file")
	flag.Parse()

	if err := run(*configPath, *date, *save); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, date, save string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logging.Setup(&cfg.Logging, "fetch-sportradar")

	factory, ok := scrapers.FactoryByName("sportradar")
	if !ok {
		return fmt.Errorf("sportradar scraper is not registered (available: %v)", scrapers.AvailableNames())
	}
	scraper := factory(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	matches, err := scraper.Extract(ctx, scrapers.Query{Date: date})
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	fmt.Printf("=== %s: %d matches ===\n\n", scraper.GetName(), len(matches))
	for _, m := range matches {
		live := ""
		if m.IsLive {
			live = " [LIVE]"
		}
		fmt.Printf("%s%s  %s vs %s\n", m.ID, live, m.Team1.Name, m.Team2.Name)
		fmt.Printf("  %s | %s %s | %s | %s\n\n", m.Series, m.Date, m.Time, m.Venue, m.Status)
	}

	if save != "" {
		raw, _ := json.MarshalIndent(matches, "", "  ")
		if err := os.WriteFile(save, raw, 0644); err != nil {
			return fmt.Errorf("save %s: %w", save, err)
		}
		fmt.Printf("Saved %s\n", save)
	}
	return nil
}
