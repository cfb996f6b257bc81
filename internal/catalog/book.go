package catalog

import (
	"context"
	"errors"
	"fmt"
)

// Book mirrors one record of the catalog's books query.
type Book struct {
	Title         string `json:"title"`
	Author        string `json:"author"`
	CoverPhotoURL string `json:"coverPhotoURL"`
	ReadingLevel  string `json:"readingLevel"`
}

// Source answers the read-only books query. It is implemented by *Client
// (GraphQL over HTTP) and *PostgresSource.
type Source interface {
	FetchBooks(ctx context.Context) ([]Book, error)
	Describe() string
}

// ErrNoSource is returned when neither a catalog URL nor a DSN is configured.
var ErrNoSource = errors.New("no catalog source configured")

// LoadError reports that the catalog could not be fetched. It is the only
// failure surfaced on screen; nothing catalog-dependent renders after it.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("load catalog: %v", e.Err)
	}
	return fmt.Sprintf("load catalog from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load runs the books query once against src. Every failure is wrapped in a
// *LoadError. A successful empty result is returned as a non-nil empty slice.
func Load(ctx context.Context, src Source) ([]Book, error) {
	if src == nil {
		return nil, &LoadError{Err: ErrNoSource}
	}
	books, err := src.FetchBooks(ctx)
	if err != nil {
		return nil, &LoadError{Source: src.Describe(), Err: err}
	}
	if books == nil {
		books = []Book{}
	}
	return books, nil
}

// Open picks the configured source. A DSN selects Postgres and wins over the
// endpoint. The returned close func is never nil.
func Open(endpoint, dsn string) (Source, func(), error) {
	if dsn != "" {
		src, err := NewPostgresSource(dsn)
		if err != nil {
			return nil, func() {}, err
		}
		return src, src.Close, nil
	}
	if endpoint == "" {
		return nil, func() {}, ErrNoSource
	}
	client, err := NewClient(endpoint)
	if err != nil {
		return nil, func() {}, err
	}
	return client, func() {}, nil
}
