// Package catalog provides the book catalog data model and the sources that
// answer shelf's single read-only books query.
//
// # Overview
//
// The catalog is fetched exactly once per session. Two sources implement the
// Source interface:
//
//   - Client: GraphQL over HTTP. Sends BooksQuery as a POST and decodes
//     {"data":{"books":[...]}}. Non-2xx status, decode failures, and GraphQL
//     "errors" arrays are all failures.
//   - PostgresSource: reads the books table through a pgx pool. The schema is
//     embedded as goose migrations and applied by cmd/shelf-migrate.
//
// Open selects the source from configuration (a DSN wins over a URL).
//
// # Error Handling
//
// Load wraps every source failure in *LoadError so callers can tell a catalog
// failure apart from everything else with errors.As. There are no retries.
//
// # Usage Example
//
//	src, closeSrc, err := catalog.Open(cfg.CatalogURL, cfg.CatalogDSN)
//	if err != nil {
//		return err
//	}
//	defer closeSrc()
//
//	books, err := catalog.Load(ctx, src)
//	var loadErr *catalog.LoadError
//	if errors.As(err, &loadErr) {
//		// render the static error message
//	}
package catalog
