package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/shelf/internal/config"
)

func TestResolveDSN_FlagWins(t *testing.T) {
	t.Setenv(config.EnvCatalogDSN, "postgres://env/db")
	dsn, err := resolveDSN("  postgres://flag/db ", "")
	require.NoError(t, err)
	assert.Equal(t, "postgres://flag/db", dsn)
}

func TestResolveDSN_FromEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvCatalogDSN, "postgres://env/db")
	dsn, err := resolveDSN("", filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, "postgres://env/db", dsn)
}

func TestResolveDSN_Missing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvCatalogDSN, "")
	_, err := resolveDSN("", filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no DSN")
}

func TestMigrate_BadSeedFailsBeforeConnecting(t *testing.T) {
	seed := filepath.Join(t.TempDir(), "books.json")
	require.NoError(t, os.WriteFile(seed, []byte(`{"nothing": true}`), 0o600))

	// The DSN is unreachable; the seed error must come first.
	err := migrate(context.Background(), "postgres://nobody@127.0.0.1:1/none", "up", seed)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "no books"), err.Error())
}

func TestMigrate_SeedWithDownFailsBeforeConnecting(t *testing.T) {
	seed := filepath.Join(t.TempDir(), "books.json")
	require.NoError(t, os.WriteFile(seed, []byte(`[{"title":"Bee","author":"A"}]`), 0o600))

	// An unreachable DSN would surface a connect error if the check ran late.
	err := migrate(context.Background(), "postgres://nobody@127.0.0.1:1/none", "down", seed)
	require.ErrorIs(t, err, errSeedNeedsUp)
	assert.Equal(t, "-seed requires -command up", err.Error())
}
