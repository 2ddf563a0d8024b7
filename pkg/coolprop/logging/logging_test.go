package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewRoutesToSlog(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l := New(base).With("component", "test")
	l.Debug(context.Background(), "hello", "k", "v")

	out := buf.String()
	if !strings.Contains(out, "hello") || !strings.Contains(out, "component=test") || !strings.Contains(out, "k=v") {
		t.Fatalf("unexpected log output: %q", out)
	}
}

func TestNewNilUsesDefault(t *testing.T) {
	if New(nil) == nil {
		t.Fatal("New(nil) returned nil")
	}
}

func TestNopDiscards(t *testing.T) {
	l := Nop()
	l.Info(context.Background(), "dropped")
	if l.With("a", 1) == nil {
		t.Fatal("Nop().With returned nil")
	}
}
