// Package config loads shelf's TOML configuration.
//
// # Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/shelf/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. Empty or missing fields keep their defaults
//  5. SHELF_* environment variables override whatever the file said
//
// # Defaults
//
//   - catalog_url: http://127.0.0.1:4000/graphql
//   - catalog_dsn: empty (GraphQL source is used)
//   - cover_base: ~/.local/share/shelf/covers
//   - log_file: ~/.local/share/shelf/shelf.log
//   - notice_seconds: 3
//   - fetch_timeout_seconds: 10
//   - cover_probe_rps: 5
//
// # TOML Format
//
//	catalog_url = "http://books.internal:4000/graphql"
//	cover_base = "https://books.internal/static"
//	notice_seconds = 5
//
// Tilde expansion applies to cover_base (when it is a directory) and log_file.
// A missing config file is not an error.
package config
