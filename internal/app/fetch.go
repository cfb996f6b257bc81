package app

import (
	"context"
	"log"
	"time"

	"github.com/five82/shelf/internal/catalog"
	"github.com/five82/shelf/internal/covers"
	"github.com/five82/shelf/internal/state"
)

const defaultFetchTimeout = 10 * time.Second

// CoverResolver resolves the cover paths of a loaded catalog.
type CoverResolver interface {
	ResolveAll(ctx context.Context, books []catalog.Book) map[string]covers.Resolution
}

var _ CoverResolver = (*covers.Resolver)(nil)

// StartFetch launches the one-shot catalog fetch in a background goroutine and
// returns a channel closed once the result is recorded. After a successful
// fetch the cover phase always ends with SetCovers, even with no resolver,
// so the UI knows when to stop polling. The fetch is never retried.
func StartFetch(ctx context.Context, store *state.Store, src catalog.Source, resolver CoverResolver, timeout time.Duration) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		fetchOnce(ctx, store, src, resolver, timeout)
	}()
	return done
}

func fetchOnce(ctx context.Context, store *state.Store, src catalog.Source, resolver CoverResolver, timeout time.Duration) {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}

	fetchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	desc := "catalog"
	if src != nil {
		desc = src.Describe()
	}
	log.Printf("catalog: fetching from %s", desc)
	started := time.Now()

	books, err := catalog.Load(fetchCtx, src)
	if err != nil {
		log.Printf("catalog: fetch failed: %v", err)
		store.SetCatalog(nil, err)
		return
	}
	log.Printf("catalog: loaded %d books in %s", len(books), time.Since(started).Round(time.Millisecond))
	store.SetCatalog(books, nil)

	if resolver == nil || len(books) == 0 {
		store.SetCovers(nil)
		return
	}
	res := resolver.ResolveAll(ctx, books)
	missing := 0
	for _, r := range res {
		if r.Err != nil {
			missing++
			log.Printf("covers: %v", r.Err)
		}
	}
	if missing > 0 {
		log.Printf("covers: %d of %d unresolved", missing, len(res))
	}
	store.SetCovers(res)
}
