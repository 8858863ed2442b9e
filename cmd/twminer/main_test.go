package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twminer/internal/config"
	"twminer/internal/model"
	"twminer/internal/store/history"
)

func TestInitWritesDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "twminer.yaml")
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out

	require.NoError(t, app.Run([]string{"twminer", "init", "--path", path}))
	assert.Contains(t, out.String(), "Config written to:")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Search.Count)
}

func TestAppFlags(t *testing.T) {
	app := newApp()
	names := map[string]bool{}
	for _, f := range app.Flags {
		names[f.Names()[0]] = true
	}
	assert.True(t, names["config"])
	assert.True(t, names["metrics-addr"])
	require.Len(t, app.Commands, 2)
	assert.Equal(t, "init", app.Commands[0].Name)
	assert.Equal(t, "history", app.Commands[1].Name)
}

func TestHistoryListsRecentQueries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	t.Setenv("STORAGE_DB_PATH", path)

	db, err := history.Open(path)
	require.NoError(t, err)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	events := []model.QueryEvent{
		{At: base, Kind: model.QuerySearch, Term: "golang", Results: 20},
		{At: base.Add(time.Minute), Kind: model.QueryLookup, Term: "gopher", Err: "not found"},
		{At: base.Add(2 * time.Minute), Kind: model.QueryTimeline, Term: "nasa", Results: 5},
	}
	for _, e := range events {
		require.NoError(t, db.Record(context.Background(), e))
	}
	require.NoError(t, db.Close())

	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	require.NoError(t, app.Run([]string{"twminer", "history", "-n", "2"}))

	got := out.String()
	assert.Contains(t, got, "Kind")
	assert.Contains(t, got, "nasa")
	assert.Contains(t, got, "timeline")
	assert.Contains(t, got, "not found")
	assert.NotContains(t, got, "golang", "limited to the two newest")
	assert.Less(t, strings.Index(got, "nasa"), strings.Index(got, "gopher"), "newest first")
}

func TestHistoryEmpty(t *testing.T) {
	t.Setenv("STORAGE_DB_PATH", filepath.Join(t.TempDir(), "history.db"))

	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	require.NoError(t, app.Run([]string{"twminer", "history"}))
	assert.Equal(t, "No queries recorded yet.\n", out.String())
}

func TestHistoryDisabledWithoutDBPath(t *testing.T) {
	t.Setenv("STORAGE_DB_PATH", "")

	err := newApp().Run([]string{"twminer", "history"})
	assert.ErrorIs(t, err, errHistoryDisabled)
}

func TestHistoryRejectsNonPositiveCount(t *testing.T) {
	err := newApp().Run([]string{"twminer", "history", "-n", "0"})
	assert.ErrorContains(t, err, "-n must be positive")
}
