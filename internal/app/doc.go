// Package app wires configuration, the catalog source, cover resolution, and
// the UI into the running shelf program.
//
// # Startup
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()        TOML + SHELF_* overrides
//	       ├─────> tea.LogToFile()      standard logger → log_file
//	       ├─────> prefs.Load()         saved theme
//	       ├─────> catalog.Open()       GraphQL client or Postgres source
//	       ├─────> covers.NewResolver() directory or URL base
//	       ├─────> StartFetch()         one-shot background fetch
//	       └─────> ui.Run()             TUI (blocks)
//
// # Fetching
//
// The catalog is fetched exactly once, bounded by fetch_timeout_seconds.
// The outcome lands in a state.Store which the UI polls until loaded. A
// failure is recorded as a *catalog.LoadError and shown as the only content
// on screen; there is no retry.
//
// Cover resolution runs in the same goroutine after a successful fetch.
// Unresolved covers are logged and rendered as placeholders.
//
// # Errors
//
// Run returns errors only for problems that prevent the UI from starting:
// an unreadable config, an unusable log file, or a malformed catalog
// endpoint. Catalog load failures are not returned; they are displayed.
package app
