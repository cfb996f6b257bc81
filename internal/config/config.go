package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the runtime settings for shelf.
type Config struct {
	CatalogURL    string
	CatalogDSN    string
	CoverBase     string
	LogFile       string
	NoticeSeconds int
	FetchTimeout  int // seconds
	CoverProbeRPS int
}

const (
	defaultConfigPath    = "~/.config/shelf/config.toml"
	defaultCatalogURL    = "http://127.0.0.1:4000/graphql"
	defaultCoverBase     = "~/.local/share/shelf/covers"
	defaultLogFile       = "~/.local/share/shelf/shelf.log"
	defaultNoticeSeconds = 3
	defaultFetchTimeout  = 10
	defaultCoverProbeRPS = 5
)

// Environment variables that override the file.
const (
	EnvCatalogURL = "SHELF_CATALOG_URL"
	EnvCatalogDSN = "SHELF_CATALOG_DSN"
	EnvCoverBase  = "SHELF_COVER_BASE"
	EnvLogFile    = "SHELF_LOG_FILE"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		CatalogURL:    defaultCatalogURL,
		CoverBase:     mustExpand(defaultCoverBase),
		LogFile:       mustExpand(defaultLogFile),
		NoticeSeconds: defaultNoticeSeconds,
		FetchTimeout:  defaultFetchTimeout,
		CoverProbeRPS: defaultCoverProbeRPS,
	}
}

// Load locates and parses the shelf config, falling back to defaults when
// missing. Environment overrides are applied last.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		CatalogURL    string `toml:"catalog_url"`
		CatalogDSN    string `toml:"catalog_dsn"`
		CoverBase     string `toml:"cover_base"`
		LogFile       string `toml:"log_file"`
		NoticeSeconds int    `toml:"notice_seconds"`
		FetchTimeout  int    `toml:"fetch_timeout_seconds"`
		CoverProbeRPS int    `toml:"cover_probe_rps"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.CatalogURL); v != "" {
		cfg.CatalogURL = v
	}
	cfg.CatalogDSN = strings.TrimSpace(raw.CatalogDSN)
	if v := strings.TrimSpace(raw.CoverBase); v != "" {
		cfg.CoverBase = expandBase(v)
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if raw.NoticeSeconds > 0 {
		cfg.NoticeSeconds = raw.NoticeSeconds
	}
	if raw.FetchTimeout > 0 {
		cfg.FetchTimeout = raw.FetchTimeout
	}
	if raw.CoverProbeRPS > 0 {
		cfg.CoverProbeRPS = raw.CoverProbeRPS
	}

	applyEnv(&cfg)
	return cfg, nil
}

// DefaultPath returns the expanded default config file location.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

// NoticeDuration is how long an add/remove notice stays visible.
func (c Config) NoticeDuration() time.Duration {
	if c.NoticeSeconds <= 0 {
		return defaultNoticeSeconds * time.Second
	}
	return time.Duration(c.NoticeSeconds) * time.Second
}

// FetchTimeoutDuration bounds the one-shot catalog fetch.
func (c Config) FetchTimeoutDuration() time.Duration {
	if c.FetchTimeout <= 0 {
		return defaultFetchTimeout * time.Second
	}
	return time.Duration(c.FetchTimeout) * time.Second
}

func applyEnv(cfg *Config) {
	envDSN, hasEnvDSN := lookupEnv(EnvCatalogDSN)
	if v, ok := lookupEnv(EnvCatalogURL); ok {
		cfg.CatalogURL = v
		// A DSN wins over a URL, so an env URL must displace a file DSN.
		if !hasEnvDSN {
			cfg.CatalogDSN = ""
		}
	}
	if hasEnvDSN {
		cfg.CatalogDSN = envDSN
	}
	if v, ok := lookupEnv(EnvCoverBase); ok {
		cfg.CoverBase = expandBase(v)
	}
	if v, ok := lookupEnv(EnvLogFile); ok {
		cfg.LogFile = mustExpand(v)
	}
	if v, ok := lookupEnv("SHELF_NOTICE_SECONDS"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.NoticeSeconds = n
		}
	}
}

func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

// expandBase leaves URL bases alone and expands directory bases.
func expandBase(base string) string {
	if strings.HasPrefix(base, "http://") || strings.HasPrefix(base, "https://") {
		return base
	}
	return mustExpand(base)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
