package covers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/shelf/internal/catalog"
)

func writeCover(t *testing.T, dir, rel string) string {
	t.Helper()
	full := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte("img"), 0o600))
	return full
}

func TestNewResolver_EmptyBase(t *testing.T) {
	_, err := NewResolver("  ", 0)
	assert.ErrorIs(t, err, ErrNoBase)
}

func TestResolve_Directory(t *testing.T) {
	dir := t.TempDir()
	want := writeCover(t, dir, "assets/image1.webp")

	r, err := NewResolver(dir, 0)
	require.NoError(t, err)

	got, err := r.Resolve(context.Background(), "assets/image1.webp")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = r.Resolve(context.Background(), "/assets/image1.webp")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolve_DirectoryFailures(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))

	r, err := NewResolver(dir, 0)
	require.NoError(t, err)

	tests := []struct {
		name string
		path string
		is   error
	}{
		{"empty", "  ", ErrEmptyPath},
		{"escape", "../../etc/passwd", ErrOutsideBase},
		{"missing", "assets/missing.webp", os.ErrNotExist},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Resolve(context.Background(), tt.path)
			var resErr *ResolutionError
			require.ErrorAs(t, err, &resErr)
			assert.Equal(t, tt.path, resErr.Path)
			assert.ErrorIs(t, err, tt.is)
		})
	}

	_, err = r.Resolve(context.Background(), "assets")
	assert.Error(t, err, "directories are not covers")
}

func TestResolve_URLBase(t *testing.T) {
	var probes atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		probes.Add(1)
		if r.Method != http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if r.URL.Path == "/static/assets/bee.webp" {
			w.WriteHeader(http.StatusOK)
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(server.Close)

	r, err := NewResolver(server.URL+"/static", 100)
	require.NoError(t, err)

	got, err := r.Resolve(context.Background(), "assets/bee.webp")
	require.NoError(t, err)
	assert.Equal(t, server.URL+"/static/assets/bee.webp", got)

	_, err = r.Resolve(context.Background(), "assets/cat.webp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")

	_, err = r.Resolve(context.Background(), "../secret.webp")
	assert.ErrorIs(t, err, ErrOutsideBase)

	_, err = r.Resolve(context.Background(), "https://elsewhere.example/x.webp")
	assert.ErrorIs(t, err, ErrOutsideBase)

	assert.EqualValues(t, 2, probes.Load())
}

func TestResolveAll_DeduplicatesPaths(t *testing.T) {
	dir := t.TempDir()
	writeCover(t, dir, "assets/bee.webp")

	r, err := NewResolver(dir, 0)
	require.NoError(t, err)

	books := []catalog.Book{
		{Title: "Bee", CoverPhotoURL: "assets/bee.webp"},
		{Title: "Bee again", CoverPhotoURL: "assets/bee.webp"},
		{Title: "Cat", CoverPhotoURL: "assets/cat.webp"},
	}
	got := r.ResolveAll(context.Background(), books)
	require.Len(t, got, 2)
	assert.True(t, got["assets/bee.webp"].OK())
	assert.False(t, got["assets/cat.webp"].OK())
}

func TestResolve_NilResolver(t *testing.T) {
	var r *Resolver
	_, err := r.Resolve(context.Background(), "a.webp")
	assert.ErrorIs(t, err, ErrNoBase)
}
