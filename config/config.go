// Package config reads lineage settings from the environment, optionally
// seeded from .env files, and builds the process logger.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrBadLogFormat is returned by Logger for a format other than text or json.
var ErrBadLogFormat = errors.New("config: log format must be text or json")

// Config holds the settings of a generation run. Command-line flags take
// precedence over these values.
type Config struct {
	// DataDir holds the six table CSVs; empty means the embedded dataset.
	DataDir string `env:"LINEAGE_DATA_DIR"`

	// Seed fixes the random source; nil means time-seeded.
	Seed *int64 `env:"LINEAGE_SEED"`

	// Horizon is the last admissible birth year.
	Horizon int `env:"LINEAGE_HORIZON" envDefault:"2120"`

	LogLevel  slog.Level `env:"LINEAGE_LOG_LEVEL"  envDefault:"INFO"`
	LogFormat string     `env:"LINEAGE_LOG_FORMAT" envDefault:"text"`
}

// Load reads the given .env files (".env" when none are named) into the
// environment without overriding variables already set, then parses Config.
// Missing .env files are not an error.
func Load(dotenv ...string) (Config, error) {
	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load dotenv: %w", err)
	}

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Logger builds a slog logger writing to w in the configured format at the
// configured level.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	switch strings.ToLower(c.LogFormat) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadLogFormat, c.LogFormat)
	}
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
