// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePDF(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.7 stub"), 0o644))
	return path
}

func TestNewDocument(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		path     func(t *testing.T) string
		pages    int
		metadata map[string]string
		wantErr  error
	}{
		{
			name:  "valid document",
			path:  func(t *testing.T) string { return writePDF(t, dir, "report.pdf") },
			pages: 12,
			metadata: map[string]string{
				"title":  "Quarterly Report",
				"author": "Finance",
			},
		},
		{
			name:  "uppercase extension accepted",
			path:  func(t *testing.T) string { return writePDF(t, dir, "SCAN.PDF") },
			pages: 1,
		},
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(dir, "absent.pdf") },
			pages:   1,
			wantErr: ErrSourceNotFound,
		},
		{
			name: "non-pdf extension",
			path: func(t *testing.T) string {
				p := filepath.Join(dir, "notes.txt")
				require.NoError(t, os.WriteFile(p, []byte("plain text"), 0o644))
				return p
			},
			pages:   1,
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "directory path",
			path:    func(t *testing.T) string { return dir },
			pages:   1,
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "zero pages",
			path:    func(t *testing.T) string { return writePDF(t, dir, "empty.pdf") },
			pages:   0,
			wantErr: ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := NewDocument(tt.path(t), tt.pages, tt.metadata)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.pages, doc.Pages)
		})
	}
}

func TestDocument_Accessors(t *testing.T) {
	dir := t.TempDir()
	path := writePDF(t, dir, "annual report.pdf")

	doc, err := NewDocument(path, 3, map[string]string{
		"title":   "Annual Report",
		"author":  "",
		"subject": "finances",
	})
	require.NoError(t, err)

	assert.Equal(t, "annual report.pdf", doc.Filename())
	assert.Equal(t, "annual report", doc.Stem())
	assert.Equal(t, "Annual Report", doc.Title())
	assert.Empty(t, doc.Author(), "empty metadata values are dropped")
	assert.NotContains(t, doc.Metadata, "author")

	size, err := doc.Size()
	require.NoError(t, err)
	assert.Positive(t, size)
}
