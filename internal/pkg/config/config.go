package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Scraper ScraperConfig `yaml:"scraper"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

type ScraperConfig struct {
	UserAgent  string            `yaml:"user_agent"`
	Timeout    time.Duration     `yaml:"timeout"`
	Headers    map[string]string `yaml:"headers"`
	Cricbuzz   CricbuzzConfig    `yaml:"cricbuzz"`
	Sportradar SportradarConfig  `yaml:"sportradar"`
}

type CricbuzzConfig struct {
	BaseURL    string        `yaml:"base_url"`
	Timeout    time.Duration `yaml:"timeout"`
	UseBrowser bool          `yaml:"use_browser"` // fetch pages with headless Chrome when the plain client gets blocked
}

type SportradarConfig struct {
	BaseURL string        `yaml:"base_url"`
	Origin  string        `yaml:"origin"` // sent as Origin/Referer, required by the feed host
	SportID int           `yaml:"sport_id"`
	Timeout time.Duration `yaml:"timeout"`
}

func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}
