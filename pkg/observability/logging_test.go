package observability

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected slog.Level
	}{
		{name: "debug level", input: "debug", expected: slog.LevelDebug},
		{name: "info level", input: "info", expected: slog.LevelInfo},
		{name: "warn level", input: "warn", expected: slog.LevelWarn},
		{name: "warning level", input: "warning", expected: slog.LevelWarn},
		{name: "error level", input: "error", expected: slog.LevelError},
		{name: "uppercase WARN", input: "WARN", expected: slog.LevelWarn},
		{name: "mixed case Info", input: "Info", expected: slog.LevelInfo},
		{name: "empty string defaults to info", input: "", expected: slog.LevelInfo},
		{name: "unknown level defaults to info", input: "verbose", expected: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parseLevel(tt.input)
			if result != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestInitLoggerFormats(t *testing.T) {
	for _, format := range []string{"json", "text", ""} {
		t.Run("format "+format, func(t *testing.T) {
			logger := InitLogger(LogConfig{Level: "info", Format: format})
			if logger == nil {
				t.Fatal("InitLogger returned nil")
			}
			logger.Info("test message", "key", "value")
		})
	}
}

func TestInitLoggerWithService(t *testing.T) {
	logger := InitLogger(LogConfig{
		Service: "analytics-service",
		Level:   "debug",
		Format:  "json",
	})
	if logger == nil {
		t.Fatal("InitLogger returned nil")
	}

	// The service attribute is attached ahead of the handler, so the
	// returned logger and the process default share the same handler.
	if logger.Handler() != slog.Default().Handler() {
		t.Error("InitLogger did not set the default logger")
	}
	logger.Debug("debug msg")
}
