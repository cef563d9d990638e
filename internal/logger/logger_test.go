package logger

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, c := range cases {
		if got := parseLevel(c.in); got != c.want {
			t.Errorf("parseLevel(%q) = %v; want %v", c.in, got, c.want)
		}
	}
}

func TestWithBeforeInit(t *testing.T) {
	// With must not panic before Init; the lazy default covers it.
	if l := With("component", "test"); l == nil {
		t.Fatal("With returned nil logger")
	}
}
