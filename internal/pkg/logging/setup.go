package logging

import (
	"log/slog"
	"os"
	"strings"

	"github.com/Vodeneev/cricfeed/internal/pkg/config"
)

// Setup configures the global slog logger for a service binary.
func Setup(cfg *config.LoggingConfig, serviceName string) *slog.Logger {
	level := slog.LevelInfo
	if cfg != nil {
		switch strings.ToLower(cfg.Level) {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
	}

	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})

	logger := slog.New(textHandler)
	logger = logger.With("service", serviceName)

	slog.SetDefault(logger)

	return logger
}
