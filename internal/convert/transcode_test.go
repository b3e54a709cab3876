// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdf-converter/pkg/logger"
	"github.com/pdiddy/pdf-converter/pkg/types"
)

// fakeRuntime is an in-memory container runtime that echoes canned output.
type fakeRuntime struct {
	name      string
	output    string
	imageErr  error
	runErr    error
	ranImages []string
}

func (f *fakeRuntime) Name() string    { return f.name }
func (f *fakeRuntime) Available() bool { return true }

func (f *fakeRuntime) ImageExists(image string) error { return f.imageErr }

func (f *fakeRuntime) Run(image string, stdin io.Reader, stdout io.Writer) error {
	f.ranImages = append(f.ranImages, image)
	if f.runErr != nil {
		return f.runErr
	}
	_, err := io.Copy(io.Discard, stdin)
	if err != nil {
		return err
	}
	_, err = stdout.Write([]byte(f.output))
	return err
}

func TestTranscodeConverter_Convert(t *testing.T) {
	dir := t.TempDir()
	rt := &fakeRuntime{name: "docker", output: "# Report\n\nbody text\n"}
	c := NewMarkdownConverter(rt, "markitdown:latest", logger.NewNop())

	doc := existingDocument(t, dir)
	opts, err := types.NewConversionOptions(types.KindMarkdown, filepath.Join(dir, "report.md"))
	require.NoError(t, err)

	out, err := c.Convert(doc, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"markitdown:latest"}, rt.ranImages)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "# Report\n\nbody text\n", string(data))
}

func TestTranscodeConverter_Validate(t *testing.T) {
	dir := t.TempDir()
	opts, err := types.NewConversionOptions(types.KindWord, filepath.Join(dir, "report.docx"))
	require.NoError(t, err)

	t.Run("nil runtime answers false", func(t *testing.T) {
		c := NewWordConverter(nil, "pdf2docx:latest", logger.NewNop())
		assert.False(t, c.ValidateConversion(opts))
	})

	t.Run("missing image answers false", func(t *testing.T) {
		rt := &fakeRuntime{name: "docker", imageErr: errors.New("image not found")}
		c := NewWordConverter(rt, "pdf2docx:latest", logger.NewNop())
		assert.False(t, c.ValidateConversion(opts))
	})

	t.Run("present image answers true", func(t *testing.T) {
		rt := &fakeRuntime{name: "docker"}
		c := NewWordConverter(rt, "pdf2docx:latest", logger.NewNop())
		assert.True(t, c.ValidateConversion(opts))
	})
}

func TestTranscodeConverter_FailureRemovesOutput(t *testing.T) {
	dir := t.TempDir()
	doc := existingDocument(t, dir)

	t.Run("run failure", func(t *testing.T) {
		rt := &fakeRuntime{name: "docker", runErr: errors.New("container exited 1")}
		c := NewMarkdownConverter(rt, "markitdown:latest", logger.NewNop())

		opts, err := types.NewConversionOptions(types.KindMarkdown, filepath.Join(dir, "fail.md"))
		require.NoError(t, err)

		_, err = c.Convert(doc, opts)
		require.Error(t, err)
		assert.NoFileExists(t, filepath.Join(dir, "fail.md"))
	})

	t.Run("empty output", func(t *testing.T) {
		rt := &fakeRuntime{name: "docker", output: ""}
		c := NewMarkdownConverter(rt, "markitdown:latest", logger.NewNop())

		opts, err := types.NewConversionOptions(types.KindMarkdown, filepath.Join(dir, "empty.md"))
		require.NoError(t, err)

		_, err = c.Convert(doc, opts)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty output")
		assert.NoFileExists(t, filepath.Join(dir, "empty.md"))
	})
}
