package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/shelf/internal/catalog"
	"github.com/five82/shelf/internal/config"
	"github.com/five82/shelf/internal/covers"
	"github.com/five82/shelf/internal/prefs"
	"github.com/five82/shelf/internal/state"
	"github.com/five82/shelf/internal/ui"
)

// Options configure the shelf application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses ~/.config/shelf/prefs.toml
	CatalogURL string // overrides config and environment when set
	Theme      string // overrides the saved theme when set
}

// Run boots the shelf TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if v := strings.TrimSpace(opts.CatalogURL); v != "" {
		cfg.CatalogURL = v
		cfg.CatalogDSN = ""
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	userPrefs := prefs.Load(opts.PrefsPath)
	themeName := userPrefs.Theme
	if v := strings.TrimSpace(opts.Theme); v != "" {
		themeName = v
	}

	src, closeSrc, err := catalog.Open(cfg.CatalogURL, cfg.CatalogDSN)
	if err != nil {
		return fmt.Errorf("init catalog source: %w", err)
	}
	defer closeSrc()

	var resolver CoverResolver
	if r, err := covers.NewResolver(cfg.CoverBase, cfg.CoverProbeRPS); err != nil {
		log.Printf("covers: disabled: %v", err)
	} else {
		resolver = r
	}

	store := &state.Store{}
	StartFetch(ctx, store, src, resolver, cfg.FetchTimeoutDuration())

	return ui.Run(ui.Options{
		Context:   ctx,
		Store:     store,
		Config:    &cfg,
		ThemeName: themeName,
		PrefsPath: opts.PrefsPath,
		LogPath:   cfg.LogFile,
	})
}

// setupLogging sends the standard logger to the log file so nothing is
// written over the TUI.
func setupLogging(path string) (func(), error) {
	if strings.TrimSpace(path) == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "shelf")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() { _ = f.Close() }, nil
}
