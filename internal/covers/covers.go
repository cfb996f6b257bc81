// Package covers resolves a book's coverPhotoURL against a fixed base
// location. A failed resolution never blocks anything else: callers log it
// and render a placeholder.
package covers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/five82/shelf/internal/catalog"
)

var (
	// ErrEmptyPath is returned for books without a cover path.
	ErrEmptyPath = errors.New("cover path is empty")
	// ErrOutsideBase is returned when a cover path escapes the base location.
	ErrOutsideBase = errors.New("cover path escapes base")
	// ErrNoBase is returned when no base location is configured.
	ErrNoBase = errors.New("no cover base configured")
)

// ResolutionError reports a cover path that could not be resolved.
type ResolutionError struct {
	Path string
	Err  error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve cover %q: %v", e.Path, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// Resolution is the outcome for one cover path.
type Resolution struct {
	Location string
	Err      error
}

// OK reports whether the cover resolved.
func (r Resolution) OK() bool {
	return r.Err == nil && r.Location != ""
}

const (
	defaultProbeRPS = 5
	probeTimeout    = 3 * time.Second
)

// Resolver maps cover paths to files under a directory or to URLs under an
// http(s) base. URL existence is probed with rate-limited HEAD requests.
type Resolver struct {
	dir     string
	baseURL *url.URL
	http    *http.Client
	limiter *rate.Limiter
}

// NewResolver builds a Resolver for base. probeRPS caps HEAD probes per
// second for URL bases; zero or less uses the default.
func NewResolver(base string, probeRPS int) (*Resolver, error) {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		return nil, ErrNoBase
	}
	if probeRPS <= 0 {
		probeRPS = defaultProbeRPS
	}

	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		u, err := url.Parse(trimmed)
		if err != nil {
			return nil, fmt.Errorf("parse cover base %q: %w", base, err)
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		return &Resolver{
			baseURL: u,
			http:    &http.Client{Timeout: probeTimeout},
			limiter: rate.NewLimiter(rate.Limit(probeRPS), 1),
		}, nil
	}

	dir, err := filepath.Abs(trimmed)
	if err != nil {
		return nil, fmt.Errorf("resolve cover base %q: %w", base, err)
	}
	return &Resolver{dir: dir}, nil
}

// Resolve returns the file path or URL for coverPath. Failures are
// *ResolutionError.
func (r *Resolver) Resolve(ctx context.Context, coverPath string) (string, error) {
	if r == nil {
		return "", &ResolutionError{Path: coverPath, Err: ErrNoBase}
	}
	cleaned := strings.TrimSpace(coverPath)
	if cleaned == "" {
		return "", &ResolutionError{Path: coverPath, Err: ErrEmptyPath}
	}

	var (
		loc string
		err error
	)
	if r.baseURL != nil {
		loc, err = r.resolveURL(ctx, cleaned)
	} else {
		loc, err = r.resolveFile(cleaned)
	}
	if err != nil {
		return "", &ResolutionError{Path: coverPath, Err: err}
	}
	return loc, nil
}

// ResolveAll resolves the distinct cover paths of books. The map is keyed by
// the book's CoverPhotoURL.
func (r *Resolver) ResolveAll(ctx context.Context, books []catalog.Book) map[string]Resolution {
	out := make(map[string]Resolution, len(books))
	for _, b := range books {
		if _, seen := out[b.CoverPhotoURL]; seen {
			continue
		}
		if ctx.Err() != nil {
			out[b.CoverPhotoURL] = Resolution{Err: &ResolutionError{Path: b.CoverPhotoURL, Err: ctx.Err()}}
			continue
		}
		loc, err := r.Resolve(ctx, b.CoverPhotoURL)
		out[b.CoverPhotoURL] = Resolution{Location: loc, Err: err}
	}
	return out
}

func (r *Resolver) resolveFile(coverPath string) (string, error) {
	rel := path.Clean(strings.TrimPrefix(filepath.ToSlash(coverPath), "/"))
	full := filepath.Join(r.dir, filepath.FromSlash(rel))
	within, err := filepath.Rel(r.dir, full)
	if err != nil || within == ".." || strings.HasPrefix(within, ".."+string(filepath.Separator)) {
		return "", ErrOutsideBase
	}
	info, err := os.Stat(full)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", full)
	}
	return full, nil
}

func (r *Resolver) resolveURL(ctx context.Context, coverPath string) (string, error) {
	ref, err := url.Parse(strings.TrimPrefix(coverPath, "/"))
	if err != nil {
		return "", fmt.Errorf("parse cover path: %w", err)
	}
	if ref.IsAbs() || ref.Host != "" {
		return "", ErrOutsideBase
	}
	target := r.baseURL.ResolveReference(ref)
	if !strings.HasPrefix(target.Path, r.baseURL.Path) {
		return "", ErrOutsideBase
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target.String(), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	resp, err := r.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("probe cover: %w", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("probe cover returned status %d", resp.StatusCode)
	}
	return target.String(), nil
}
