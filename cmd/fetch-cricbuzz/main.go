// Dev tool: run the cricbuzz extraction for one category and dump the
// canonical list. Run from the repo root:
//
//	go run ./cmd/fetch-cricbuzz
//	go run ./cmd/fetch-cricbuzz -category schedule -date 2026-09-01
//	go run ./cmd/fetch-cricbuzz -save matches.json
//
// Flag -save writes the canonical list as indented JSON to the given file.
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
	"github.com/Vodeneev/cricfeed/internal/pkg/models"
	"github.com/Vodeneev/cricfeed/internal/scraper/scrapers"
	_ "github.com/Vodeneev/cricfeed/internal/scraper/scrapers/all"
)

func main() {
	configPath := flag.String("config", "configs/production.yaml", "path to config yaml")
	category := flag.String("category", "live", "live, schedule, upcoming or recent")
	date := flag.String("date", "", "explicit day YYYY-MM-DD (implies schedule)")
	save := flag.String("save", "", "save canonical JSON to this file")
	flag.Parse()

	if err := run(*configPath, *category, *date, *save); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, category, date, save string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logging.Setup(&cfg.Logging, "fetch-cricbuzz")

	factory, ok := scrapers.FactoryByName("cricbuzz")
	if !ok {
		return fmt.Errorf("cricbuzz scraper is not registered (available: %v)", scrapers.AvailableNames())
	}
	scraper := factory(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	matches, err := scraper.Extract(ctx, scrapers.Query{Category: models.Category(category), Date: date})
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	fmt.Printf("=== %s: %d matches ===\n\n", scraper.GetName(), len(matches))
	for _, m := range matches {
		live := ""
		if m.IsLive {
			live = " [LIVE]"
		}
		fmt.Printf("%s%s\n", m.ID, live)
		fmt.Printf("  %s vs %s\n", m.Team1.Name, m.Team2.Name)
		fmt.Printf("  %s | %s | %s\n", m.Series, m.Date, m.Time)
		fmt.Printf("  %s\n\n", m.Status)
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
