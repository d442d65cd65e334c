package logging

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{name: "debug", level: "debug", want: zerolog.DebugLevel},
		{name: "warn", level: "warn", want: zerolog.WarnLevel},
		{name: "empty defaults to info", level: "", want: zerolog.InfoLevel},
		{name: "invalid defaults to info", level: "loud", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLogger(Config{Level: tt.level, Format: FormatJSON, Output: OutputStderr})
			assert.Equal(t, tt.want, l.GetLevel())
		})
	}
}

func TestNewLoggerWithPath_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "pagekit.log")

	result := NewLoggerWithPath(Config{Level: "info", Format: FormatJSON, Output: OutputFile, File: path})
	t.Cleanup(func() { _ = result.Close() })

	assert.True(t, result.UsingFile)
	assert.False(t, result.FallbackUsed)
	assert.Equal(t, path, result.FilePath)
	assert.FileExists(t, path)
}

func TestNewLoggerWithPath_FallsBackWithoutFile(t *testing.T) {
	result := NewLoggerWithPath(Config{Output: OutputFile})

	assert.False(t, result.UsingFile)
	assert.True(t, result.FallbackUsed)
	assert.Contains(t, result.FallbackReason, "empty")
	require.NoError(t, result.Close())
}

func TestTraceID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, TraceIDFromContext(ctx))

	id := GetOrGenerateTraceID(ctx)
	assert.Len(t, id, 26)

	ctx = ContextWithTraceID(ctx, id)
	assert.Equal(t, id, TraceIDFromContext(ctx))
	assert.Equal(t, id, GetOrGenerateTraceID(ctx))
}

func TestTraceHook_StampsTraceID(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, Config{Level: "info", Format: FormatJSON})
	ctx := ContextWithTraceID(context.Background(), "01TESTTRACE")

	l.Info().Ctx(ctx).Msg("hello")
	assert.Contains(t, buf.String(), `"trace_id":"01TESTTRACE"`)

	buf.Reset()
	l.Info().Msg("no context")
	assert.NotContains(t, buf.String(), "trace_id")
}

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	l := ComponentLogger(zerolog.New(&buf), "cli")

	l.Info().Msg("started")
	assert.Contains(t, buf.String(), `"component":"cli"`)
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("via context")
	assert.Contains(t, buf.String(), "via context")
}

func TestPrintMessages(t *testing.T) {
	var buf bytes.Buffer
	PrintLogPathMessage(&buf, "/tmp/x.log")
	PrintFallbackWarning(&buf, "permission denied")

	assert.Contains(t, buf.String(), "Logging to /tmp/x.log")
	assert.Contains(t, buf.String(), "permission denied")
}
