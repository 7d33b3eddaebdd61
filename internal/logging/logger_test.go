package logging

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != "info" {
		t.Errorf("Expected Level 'info', got '%s'", cfg.Level)
	}
	if !cfg.Pretty {
		t.Error("Expected Pretty true")
	}
	if cfg.TimeFormat != time.RFC3339 {
		t.Errorf("Expected TimeFormat %q, got %q", time.RFC3339, cfg.TimeFormat)
	}
}

func TestInitLevels(t *testing.T) {
	defer Init(DefaultConfig())

	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{name: "debug", level: "debug", want: zerolog.DebugLevel},
		{name: "error", level: "error", want: zerolog.ErrorLevel},
		{name: "unknown falls back to info", level: "nope", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(Config{Level: tt.level, TimeFormat: "15:04:05"})
			if got := Logger.GetLevel(); got != tt.want {
				t.Errorf("Logger level = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEventHelpers(t *testing.T) {
	defer Init(DefaultConfig())
	Init(Config{Level: "debug"})

	if Debug() == nil || Info() == nil || Warn() == nil || Error() == nil || Fatal() == nil {
		t.Error("Expected non-nil events from the level helpers")
	}
}
