// Package logging builds the process logger from configuration.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/dom/superheroes-api/internal/config"
	"github.com/rs/zerolog"
	"gorm.io/gorm/logger"
)

// New returns a logger writing to stderr.
func New(cfg *config.Config) (zerolog.Logger, error) {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter returns a logger writing to w in the configured format and level.
func NewWithWriter(cfg *config.Config, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), err
	}

	out := w
	if cfg.LogFormat == "console" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: !cfg.IsDevelopment()}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// GormLevel maps the application log level onto gorm's SQL logger.
func GormLevel(cfg *config.Config) logger.LogLevel {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return logger.Warn
	}
	switch {
	case level <= zerolog.DebugLevel:
		return logger.Info
	case level <= zerolog.WarnLevel:
		return logger.Warn
	case level <= zerolog.ErrorLevel:
		return logger.Error
	}
	return logger.Silent
}
