package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/five82/shelf/internal/catalog"
	"github.com/five82/shelf/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		command    = flag.String("command", "up", "migration command: up, down, status")
		seedPath   = flag.String("seed", "", "JSON file of books to load after migrating (optional)")
		dsnFlag    = flag.String("dsn", "", "Postgres DSN (optional, defaults to catalog_dsn)")
		configPath = flag.String("config", "", "override config path (optional, defaults to "+config.DefaultPath()+")")
	)
	flag.Parse()

	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	dsn, err := resolveDSN(*dsnFlag, *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shelf-migrate: %v\n", err)
		return 1
	}

	ctx := context.Background()
	if err := migrate(ctx, dsn, *command, *seedPath); err != nil {
		fmt.Fprintf(os.Stderr, "shelf-migrate: %v\n", err)
		return 1
	}
	return 0
}

func resolveDSN(flagValue, configPath string) (string, error) {
	if v := strings.TrimSpace(flagValue); v != "" {
		return v, nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return "", fmt.Errorf("load config: %w", err)
	}
	if cfg.CatalogDSN == "" {
		return "", fmt.Errorf("no DSN: pass -dsn, set %s, or set catalog_dsn", config.EnvCatalogDSN)
	}
	return cfg.CatalogDSN, nil
}

var errSeedNeedsUp = errors.New("-seed requires -command up")

func migrate(ctx context.Context, dsn, command, seedPath string) error {
	var books []catalog.Book
	if seedPath != "" {
		// Both checks run before connecting so nothing touches the schema.
		if command != "up" {
			return errSeedNeedsUp
		}
		var err error
		books, err = catalog.ReadSeedFile(seedPath)
		if err != nil {
			return err
		}
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connect %s: %w", catalog.RedactDSN(dsn), err)
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := catalog.Migrate(db, command); err != nil {
		return err
	}
	fmt.Printf("migrate %s: ok (%s)\n", command, catalog.RedactDSN(dsn))

	if seedPath == "" {
		return nil
	}
	n, err := catalog.NewPostgresSourceFromPool(pool).Seed(ctx, books)
	if err != nil {
		return err
	}
	fmt.Printf("seeded %d books\n", n)
	return nil
}
