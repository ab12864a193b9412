package scrapers

import (
	"context"
	"testing"

	"github.com/Vodeneev/cricfeed/internal/pkg/config"
	"github.com/Vodeneev/cricfeed/internal/pkg/models"
)

type fakeScraper struct{ name string }

func (f *fakeScraper) Extract(context.Context, Query) ([]models.CanonicalMatch, error) {
	return nil, nil
}

func (f *fakeScraper) GetName() string { return f.name }

func TestRegisterAndLookup(t *testing.T) {
	Register("Fake-One", func(*config.Config) Scraper { return &fakeScraper{name: "fake-one"} })

	// lookup is case-insensitive and trims whitespace
	for _, name := range []string{"fake-one", "FAKE-ONE", "  fake-one  "} {
		factory, ok := FactoryByName(name)
		if !ok {
			t.Fatalf("FactoryByName(%q) not found", name)
		}
		if got := factory(&config.Config{}).GetName(); got != "fake-one" {
			t.Errorf("GetName() = %q, want fake-one", got)
		}
	}
}

func TestFactoryByNameUnknown(t *testing.T) {
	if _, ok := FactoryByName("no-such-scraper"); ok {
		t.Error("unknown name resolved to a factory")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("fake-dup", func(*config.Config) Scraper { return &fakeScraper{} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("fake-dup", func(*config.Config) Scraper { return &fakeScraper{} })
}
