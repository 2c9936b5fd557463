package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "roster.log")
	logger, err := New("info", file, false)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("shown")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"shown"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNewVerboseEnablesDebug(t *testing.T) {
	file := filepath.Join(t.TempDir(), "roster.log")
	logger, err := New("warn", file, true)
	require.NoError(t, err)

	logger.Debug("detail")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "detail")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New("loud", filepath.Join(t.TempDir(), "x.log"), false)
	assert.Error(t, err)
}

func TestNewWithoutFileIsNop(t *testing.T) {
	logger, err := New("debug", "", false)
	require.NoError(t, err)
	logger.Info("dropped")
}
