// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdf-converter/pkg/logger"
	"github.com/pdiddy/pdf-converter/pkg/types"
)

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		pages     *PageRange
		wantFirst int
		wantLast  int
	}{
		{name: "nil range covers whole document", total: 10, wantFirst: 1, wantLast: 10},
		{name: "inner window", total: 10, pages: &PageRange{First: 3, Last: 7}, wantFirst: 3, wantLast: 7},
		{name: "single page", total: 10, pages: &PageRange{First: 4, Last: 4}, wantFirst: 4, wantLast: 4},
		{name: "last clamped to total", total: 5, pages: &PageRange{First: 2, Last: 99}, wantFirst: 2, wantLast: 5},
		{name: "first below one clamped", total: 5, pages: &PageRange{First: -3, Last: 4}, wantFirst: 1, wantLast: 4},
		{name: "zero range covers whole document", total: 5, pages: &PageRange{}, wantFirst: 1, wantLast: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := pageWindow(tt.total, tt.pages)
			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantLast, last)
		})
	}
}

func TestFitzService_OpenErrors(t *testing.T) {
	svc := NewFitzService(logger.NewNop())
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := svc.Load(filepath.Join(dir, "absent.pdf"))
		assert.ErrorIs(t, err, types.ErrSourceNotFound)
	})

	t.Run("not a pdf", func(t *testing.T) {
		path := filepath.Join(dir, "garbage.pdf")
		require.NoError(t, os.WriteFile(path, []byte("this is not a pdf at all"), 0o644))

		_, err := svc.Load(path)
		assert.ErrorIs(t, err, types.ErrInvalidFormat)
	})
}

func TestFitzService_IsEncrypted(t *testing.T) {
	svc := NewFitzService(logger.NewNop())
	dir := t.TempDir()

	t.Run("plain file", func(t *testing.T) {
		path := filepath.Join(dir, "plain.pdf")
		require.NoError(t, os.WriteFile(path, []byte("%PDF-1.7\ntrailer\n<< /Root 1 0 R >>"), 0o644))

		encrypted, err := svc.IsEncrypted(path)
		require.NoError(t, err)
		assert.False(t, encrypted)
	})

	t.Run("encryption dictionary present", func(t *testing.T) {
		path := filepath.Join(dir, "locked.pdf")
		require.NoError(t, os.WriteFile(path, []byte("%PDF-1.7\ntrailer\n<< /Encrypt 5 0 R /Root 1 0 R >>"), 0o644))

		encrypted, err := svc.IsEncrypted(path)
		require.NoError(t, err)
		assert.True(t, encrypted)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := svc.IsEncrypted(filepath.Join(dir, "absent.pdf"))
		assert.ErrorIs(t, err, types.ErrSourceNotFound)
	})
}
