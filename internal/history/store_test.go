// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdf-converter/pkg/logger"
	"github.com/pdiddy/pdf-converter/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(types.HistoryConfig{Dir: t.TempDir(), MaxList: 5}, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_RecordAndList(t *testing.T) {
	store := testStore(t)

	rec := types.ConversionRecord{
		Source:       "/docs/report.pdf",
		Kind:         types.KindImage,
		ResultPath:   "/output/report",
		Pages:        12,
		BytesWritten: 4_000_000,
		Duration:     1500 * time.Millisecond,
	}
	require.NoError(t, store.Record(rec))

	records, err := store.List(0)
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.NotEmpty(t, got.ID, "missing ID is filled in")
	assert.False(t, got.CreatedAt.IsZero(), "missing timestamp is filled in")
	assert.Equal(t, rec.Source, got.Source)
	assert.Equal(t, types.KindImage, got.Kind)
	assert.Equal(t, rec.ResultPath, got.ResultPath)
	assert.Equal(t, 12, got.Pages)
	assert.Equal(t, int64(4_000_000), got.BytesWritten)
	assert.Equal(t, 1500*time.Millisecond, got.Duration)
	assert.True(t, got.Succeeded())
}

func TestStore_RecordFailure(t *testing.T) {
	store := testStore(t)

	require.NoError(t, store.Record(types.ConversionRecord{
		Source: "/docs/broken.pdf",
		Kind:   types.KindText,
		Error:  "extraction exploded",
	}))

	records, err := store.List(0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.False(t, records[0].Succeeded())
	assert.Equal(t, "extraction exploded", records[0].Error)
}

func TestStore_ListNewestFirstAndLimited(t *testing.T) {
	store := testStore(t)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 8; i++ {
		require.NoError(t, store.Record(types.ConversionRecord{
			ID:        fmt.Sprintf("rec-%d", i),
			Source:    fmt.Sprintf("/docs/doc-%d.pdf", i),
			Kind:      types.KindText,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	t.Run("explicit limit", func(t *testing.T) {
		records, err := store.List(3)
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "rec-7", records[0].ID)
		assert.Equal(t, "rec-5", records[2].ID)
	})

	t.Run("default limit from config", func(t *testing.T) {
		records, err := store.List(0)
		require.NoError(t, err)
		assert.Len(t, records, 5)
	})

	t.Run("list all ignores the cap", func(t *testing.T) {
		records, err := store.ListAll()
		require.NoError(t, err)
		assert.Len(t, records, 8)
	})
}

func TestStore_Export(t *testing.T) {
	store := testStore(t)

	require.NoError(t, store.Record(types.ConversionRecord{
		ID:     "rec-export",
		Source: "/docs/report.pdf",
		Kind:   types.KindHTML,
	}))

	var buf bytes.Buffer
	require.NoError(t, store.Export(&buf))

	out := buf.String()
	assert.Contains(t, out, "rec-export")
	assert.Contains(t, out, "/docs/report.pdf")
	assert.Contains(t, out, "kind: html")
}

func TestStore_ReopenKeepsRecords(t *testing.T) {
	dir := t.TempDir()
	cfg := types.HistoryConfig{Dir: dir, MaxList: 5}

	store, err := NewStore(cfg, logger.NewNop())
	require.NoError(t, err)
	require.NoError(t, store.Record(types.ConversionRecord{
		ID:     "persisted",
		Source: "/docs/report.pdf",
		Kind:   types.KindText,
	}))
	require.NoError(t, store.Close())

	reopened, err := NewStore(cfg, logger.NewNop())
	require.NoError(t, err)
	defer reopened.Close()

	records, err := reopened.ListAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "persisted", records[0].ID)
}
