// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdf-converter/pkg/logger"
	"github.com/pdiddy/pdf-converter/pkg/types"
)

func TestTextConverter_Convert(t *testing.T) {
	dir := t.TempDir()
	source := &fakeSource{texts: []string{"first page", "", "third page"}}
	c := NewTextConverter(source, logger.NewNop())

	opts, err := types.NewConversionOptions(types.KindText, filepath.Join(dir, "report.txt"))
	require.NoError(t, err)

	out, err := c.Convert(testDocument(dir), opts)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report.txt"), out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "--- Page 1 ---\nfirst page")
	assert.Contains(t, content, "--- Page 3 ---\nthird page")
	assert.NotContains(t, content, "--- Page 2 ---", "blank pages are skipped")
}

func TestTextConverter_AppendsExtension(t *testing.T) {
	dir := t.TempDir()
	c := NewTextConverter(&fakeSource{texts: []string{"content"}}, logger.NewNop())

	opts, err := types.NewConversionOptions(types.KindText, filepath.Join(dir, "report"))
	require.NoError(t, err)

	out, err := c.Convert(testDocument(dir), opts)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report.txt"), out)
}

func TestTextConverter_SourceFailure(t *testing.T) {
	dir := t.TempDir()
	c := NewTextConverter(&fakeSource{err: errors.New("extraction exploded")}, logger.NewNop())

	opts, err := types.NewConversionOptions(types.KindText, filepath.Join(dir, "report.txt"))
	require.NoError(t, err)

	_, err = c.Convert(testDocument(dir), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extraction exploded")
}

func TestTextConverter_RejectsWrongKind(t *testing.T) {
	dir := t.TempDir()
	c := NewTextConverter(&fakeSource{}, logger.NewNop())

	opts, err := types.NewConversionOptions(types.KindHTML, filepath.Join(dir, "report.html"))
	require.NoError(t, err)

	assert.False(t, c.ValidateConversion(opts))
	_, err = c.Convert(testDocument(dir), opts)
	assert.ErrorIs(t, err, types.ErrInvalidOptions)
}
