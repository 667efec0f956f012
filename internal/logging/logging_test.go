package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewNop(t *testing.T) {
	l, err := New(Options{})
	require.NoError(t, err)
	l.Info("dropped")
}

func TestNewBadLevel(t *testing.T) {
	_, err := New(Options{Level: "loud", Console: &bytes.Buffer{}})
	assert.Error(t, err)
}

func TestConsoleLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Options{Level: "warn", Console: &buf})
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("shown", zap.String("session_id", "s-1"))
	require.NoError(t, l.Sync())

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "s-1")
}

func TestFileCore(t *testing.T) {
	dir := t.TempDir()
	l, err := New(Options{Level: "debug", Dir: dir})
	require.NoError(t, err)

	l.Named("quiz").Debug("answer", zap.Int("question", 3))
	require.NoError(t, l.Sync())

	raw, err := os.ReadFile(filepath.Join(dir, "madboat.log"))
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(raw), &entry))
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "quiz", entry["logger"])
	assert.Equal(t, "answer", entry["message"])
	assert.EqualValues(t, 3, entry["question"])
}
