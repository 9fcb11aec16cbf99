// Package config provides application configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvCatalog  = "ACADEMY_CATALOG"
	EnvCertDir  = "ACADEMY_CERT_DIR"
	EnvJournal  = "ACADEMY_JOURNAL"
	EnvLogFile  = "ACADEMY_LOG_FILE"
	EnvLogLevel = "ACADEMY_LOG_LEVEL"
)

// DefaultCertDir is where certificates are saved when nothing is configured.
const DefaultCertDir = "./certificates"

// Config holds all application configuration.
type Config struct {
	CatalogPath string // empty = embedded catalog
	CertDir     string
	JournalPath string // empty = in-memory journal
	LogFile     string // empty = discard
	LogLevel    string
}

// LoadDotEnv loads variables from the given .env files (default ".env")
// without overriding ones already set. A missing file is not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		CatalogPath: getEnv(EnvCatalog, ""),
		CertDir:     getEnv(EnvCertDir, DefaultCertDir),
		JournalPath: getEnv(EnvJournal, ""),
		LogFile:     getEnv(EnvLogFile, ""),
		LogLevel:    getEnv(EnvLogLevel, "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.CertDir) == "" {
		return fmt.Errorf("%s cannot be empty", EnvCertDir)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the configured slog level.
func (c *Config) Level() slog.Level {
	lvl, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// NewLogger builds the application logger. The terminal belongs to the UI,
// so records go to LogFile as JSON, or nowhere when it is unset. The
// returned closer releases the file.
func (c *Config) NewLogger() (*slog.Logger, io.Closer, error) {
	if c.LogFile == "" {
		return slog.New(slog.DiscardHandler), nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(c.LogFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: c.Level()}))
	return logger, f, nil
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("%s: unknown level %q", EnvLogLevel, s)
	}
	return lvl, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
