package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twminer/internal/model"
)

func TestRecordAndRecent(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	events := []model.QueryEvent{
		{At: base, Kind: model.QuerySearch, Term: "golang", Results: 20},
		{At: base.Add(time.Minute), Kind: model.QueryTimeline, Term: "gopher", Results: 5},
		{At: base.Add(2 * time.Minute), Kind: model.QueryLookup, Term: "nobody", Err: "not found"},
	}
	for _, e := range events {
		require.NoError(t, db.Record(ctx, e))
	}

	got, err := db.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, events[2], got[0])
	assert.Equal(t, events[1], got[1])
}

func TestRecordDefaultsTimestamp(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Record(context.Background(), model.QueryEvent{Kind: model.QuerySearch, Term: "x"}))
	got, err := db.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.WithinDuration(t, time.Now(), got[0].At, time.Minute)
	assert.Empty(t, got[0].Err)
}

func TestReopenKeepsEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Record(ctx, model.QueryEvent{Kind: model.QueryLookup, Term: "gopher", Results: 1}))
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()
	got, err := db.Recent(ctx, 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "gopher", got[0].Term)
}

func TestNop(t *testing.T) {
	assert.NoError(t, Nop{}.Record(context.Background(), model.QueryEvent{}))
}
