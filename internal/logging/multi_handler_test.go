package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiHandler_LevelsPerHandler(t *testing.T) {
	var terminal, file bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&terminal, &slog.HandlerOptions{Level: slog.LevelWarn}),
		slog.NewJSONHandler(&file, &slog.HandlerOptions{Level: slog.LevelDebug}),
		nil,
	)
	logger := slog.New(h).With("target", "gemini")

	assert.True(t, h.Enabled(t.Context(), slog.LevelDebug))
	assert.False(t, h.Enabled(t.Context(), LevelTrace))

	logger.Debug("wrote file", "path", "/home/dev/.gemini/settings.json")
	logger.Warn("deploy failed")

	assert.NotContains(t, terminal.String(), "wrote file")
	assert.Contains(t, terminal.String(), "deploy failed")
	assert.Contains(t, file.String(), `"msg":"wrote file"`)
	assert.Contains(t, file.String(), `"target":"gemini"`)
}

func TestMultiHandler_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewMultiHandler(slog.NewJSONHandler(&buf, nil))).WithGroup("backup")

	logger.Info("created", "id", "20260123T100712")
	require.Contains(t, buf.String(), `"backup":{"id":"20260123T100712"}`)
}
