package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlogLogger_WritesLevelsAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	ctx := context.Background()

	l.Debug(ctx, "d", "k", "v1")
	l.Info(ctx, "i", "k", "v2")
	l.Warn(ctx, "w", "k", "v3")
	l.Error(ctx, "e", "k", "v4")

	out := buf.String()
	require.Contains(t, out, "msg=d")
	require.Contains(t, out, "msg=i")
	require.Contains(t, out, "msg=w")
	require.Contains(t, out, "msg=e")
	require.Contains(t, out, "k=v4")
}

func TestSlogLogger_WithAddsPermanentAttrs(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	child := l.With("component", "session")
	child.Info(context.Background(), "hello")

	require.Contains(t, buf.String(), "component=session")
}
