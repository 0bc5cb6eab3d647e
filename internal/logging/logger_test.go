package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestInitWriter_JSONWithComponent(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, "debug", "json")

	WithComponent("overlay").Debug("applied", "family", "Inter")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "overlay", entry["component"])
	assert.Equal(t, "applied", entry["msg"])
	assert.Equal(t, "Inter", entry["family"])
}

func TestInitWriter_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, "warn", "text")

	Logger.Info("hidden")
	assert.Empty(t, buf.String())

	Logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}
