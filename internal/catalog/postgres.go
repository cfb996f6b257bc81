package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure PostgresSource implements Source at compile time.
var _ Source = (*PostgresSource)(nil)

// PostgresSource answers the books query from a Postgres table managed by
// the embedded migrations.
type PostgresSource struct {
	db  *pgxpool.Pool
	dsn string
}

// NewPostgresSource creates a pool for dsn. Connections are opened lazily, so
// an unreachable server surfaces on the first FetchBooks call.
func NewPostgresSource(dsn string) (*PostgresSource, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse catalog dsn %s: %w", RedactDSN(dsn), err)
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("create catalog pool: %w", err)
	}
	return &PostgresSource{db: pool, dsn: dsn}, nil
}

// NewPostgresSourceFromPool wraps an existing pool. Close is a no-op for the
// caller's pool; the caller keeps ownership.
func NewPostgresSourceFromPool(pool *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{db: pool}
}

// Describe returns the redacted DSN.
func (s *PostgresSource) Describe() string {
	if s.dsn == "" {
		return "postgres"
	}
	return RedactDSN(s.dsn)
}

// Close releases the pool when this source created it.
func (s *PostgresSource) Close() {
	if s.dsn != "" && s.db != nil {
		s.db.Close()
	}
}

// FetchBooks returns every book in catalog order.
func (s *PostgresSource) FetchBooks(ctx context.Context) ([]Book, error) {
	const query = `
	SELECT title, author, cover_photo_url, reading_level
	FROM books
	ORDER BY position, id`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}
	defer rows.Close()

	books := []Book{}
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.Title, &b.Author, &b.CoverPhotoURL, &b.ReadingLevel); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read books: %w", err)
	}
	return books, nil
}

// Seed replaces the table contents with books, preserving their order.
func (s *PostgresSource) Seed(ctx context.Context, books []Book) (int64, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM books`); err != nil {
		return 0, fmt.Errorf("clear books: %w", err)
	}

	rows := make([][]any, 0, len(books))
	for i, b := range books {
		rows = append(rows, []any{i, b.Title, b.Author, b.CoverPhotoURL, b.ReadingLevel})
	}
	n, err := tx.CopyFrom(ctx,
		pgx.Identifier{"books"},
		[]string{"position", "title", "author", "cover_photo_url", "reading_level"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, fmt.Errorf("copy books: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit seed: %w", err)
	}
	return n, nil
}

// RedactDSN hides the credentials of a URL-style DSN.
func RedactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
