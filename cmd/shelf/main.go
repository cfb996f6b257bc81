package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/five82/shelf/internal/app"
	"github.com/five82/shelf/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional, defaults to "+config.DefaultPath()+")")
	catalogURL := flag.String("catalog", "", "catalog GraphQL endpoint (optional, overrides config)")
	theme := flag.String("theme", "", "color theme (optional, overrides saved preference)")
	flag.Parse()

	// Real environment wins; .env files only fill gaps.
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		CatalogURL: *catalogURL,
		Theme:      *theme,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "shelf: %v\n", err)
		return 1
	}
	return 0
}
