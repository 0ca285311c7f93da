// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gcmt/internal/config"
)

// New builds a logger writing to w with the configured level and format.
func New(w io.Writer, cfg config.LogConfig) zerolog.Logger {
	if cfg.GetFormat() == config.FormatConsole {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(cfg.GetLevel()).With().Timestamp().Logger()
}

// Setup replaces the global logger and returns it.
func Setup(w io.Writer, cfg config.LogConfig) zerolog.Logger {
	logger := New(w, cfg)
	log.Logger = logger
	return logger
}
