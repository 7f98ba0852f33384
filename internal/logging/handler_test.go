package logging

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(level slog.Level) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: level})), &buf
}

func TestHandler_Handle(t *testing.T) {
	logger, buf := newTestLogger(slog.LevelDebug)

	now := time.Now()
	logger.Info("deployed team", "target", "cline")

	out := buf.String()
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "deployed team target=cline")
	assert.Contains(t, out, now.Format(time.Kitchen))
	assert.Equal(t, byte('\n'), out[len(out)-1])
}

func TestHandler_WithAttrs(t *testing.T) {
	logger, buf := newTestLogger(slog.LevelInfo)

	logger.With("target", "gemini").Info("wrote file", "bytes", 42)

	assert.Contains(t, buf.String(), "wrote file target=gemini bytes=42")
}

func TestHandler_Enabled(t *testing.T) {
	h := NewHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})
	ctx := t.Context()

	assert.False(t, h.Enabled(ctx, slog.LevelInfo))
	assert.True(t, h.Enabled(ctx, slog.LevelWarn))
	assert.True(t, h.Enabled(ctx, slog.LevelError))

	assert.True(t, NewHandler(&bytes.Buffer{}, nil).Enabled(ctx, slog.LevelInfo))
}

func TestHandler_NoTime(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, nil)

	require.NoError(t, h.Handle(t.Context(), slog.NewRecord(time.Time{}, slog.LevelWarn, "no time", 0)))

	assert.Equal(t, "WARN  no time\n", buf.String())
}

func TestHandler_Masking(t *testing.T) {
	tests := []struct {
		name   string
		args   []any
		want   string
		secret string
	}{
		{
			name:   "secret key pattern",
			args:   []any{"api_key", "secret12345"},
			want:   "api_key=****2345",
			secret: "secret12345",
		},
		{
			name:   "key match ignores case",
			args:   []any{"Authorization", "opaque-value"},
			want:   "Authorization=****alue",
			secret: "opaque-value",
		},
		{
			name:   "token prefix under a safe key",
			args:   []any{"env", "ghp_abcdef123456"},
			want:   "env=****3456",
			secret: "ghp_abcdef123456",
		},
		{
			name:   "bearer header value",
			args:   []any{"header", "Bearer eyJhbGciOi"},
			want:   "header=****ciOi",
			secret: "eyJhbGciOi",
		},
		{
			name:   "short secret fully masked",
			args:   []any{"password", "abc"},
			want:   "password=********",
			secret: "abc",
		},
		{
			name:   "non-string secret",
			args:   []any{"token_count", 123456},
			want:   "token_count=****3456",
			secret: "123456",
		},
		{
			name:   "environment map masked per entry",
			args:   []any{"env", map[string]string{"GITHUB_TOKEN": "plainvalue99", "REGION": "eu-west-1"}},
			want:   "env=map[GITHUB_TOKEN:****ue99 REGION:eu-west-1]",
			secret: "plainvalue99",
		},
		{
			name: "plain values untouched",
			args: []any{"path", "/work/proj/.clinerules"},
			want: "path=/work/proj/.clinerules",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newTestLogger(slog.LevelInfo)

			logger.Info("mcp server", tt.args...)

			out := buf.String()
			assert.Contains(t, out, tt.want)
			if tt.secret != "" {
				assert.NotContains(t, out, tt.secret)
			}
		})
	}
}

func TestHandler_MaskingAppliesToBoundAttrs(t *testing.T) {
	logger, buf := newTestLogger(slog.LevelInfo)

	logger.With("token", "sk-live-abcdef").WithGroup("mcp").Info("connect", "url", "https://example.com")

	out := buf.String()
	assert.Contains(t, out, "token=****cdef")
	assert.Contains(t, out, "mcp.url=https://example.com")
	assert.NotContains(t, out, "sk-live")
}

func TestHandler_WithGroup(t *testing.T) {
	logger, buf := newTestLogger(slog.LevelInfo)

	logger.WithGroup("deploy").WithGroup("cline").Info("wrote file", "path", "/tmp/x")

	assert.Contains(t, buf.String(), "deploy.cline.path=/tmp/x")
}

func TestHandler_TraceLevel(t *testing.T) {
	logger, buf := newTestLogger(LevelTrace)

	logger.Log(t.Context(), LevelTrace, "mkdir", "dir", ".claude")

	assert.Contains(t, buf.String(), "TRACE mkdir dir=.claude")
}
