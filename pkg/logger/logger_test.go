// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("defaults build", func(t *testing.T) {
		log, err := New()
		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("invalid level rejected", func(t *testing.T) {
		_, err := New(WithLevel("chatty"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "chatty")
	})

	t.Run("file sink writes json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "app.log")
		log, err := New(
			WithLevel("debug"),
			WithEncoding("json"),
			WithOutputPaths(path),
		)
		require.NoError(t, err)

		log.Info("hello from the test", String("component", "logger"))
		require.NoError(t, log.Sync())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"message":"hello from the test"`)
		assert.Contains(t, string(data), `"component":"logger"`)
	})
}

func TestNamedAndWith(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	log, err := New(WithEncoding("json"), WithOutputPaths(path))
	require.NoError(t, err)

	log.Named("convert").With(String("kind", "image")).Info("starting")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"logger":"convert"`)
	assert.Contains(t, string(data), `"kind":"image"`)
}

func TestNewNop(t *testing.T) {
	log := NewNop()
	log.Info("discarded")
	assert.NoError(t, log.Sync())
}
