package utils

import (
	"log/slog"
	"testing"
)

func TestGetLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected slog.Level
	}{
		{"debug level", "debug", slog.LevelDebug},
		{"info level", "info", slog.LevelInfo},
		{"warn level", "warn", slog.LevelWarn},
		{"error level", "error", slog.LevelError},
		{"unknown defaults to info", "unknown", slog.LevelInfo},
		{"empty defaults to info", "", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetLogLevel(tt.level)
			if result != tt.expected {
				t.Errorf("GetLogLevel(%q) = %v, want %v", tt.level, result, tt.expected)
			}
		})
	}
}

func TestValidateLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected string
	}{
		{"valid debug", "debug", "debug"},
		{"valid info", "info", "info"},
		{"valid warn", "warn", "warn"},
		{"valid error", "error", "error"},
		{"invalid defaults to info", "invalid", "info"},
		{"empty defaults to info", "", "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateLogLevel(tt.level)
			if result != tt.expected {
				t.Errorf("ValidateLogLevel(%q) = %q, want %q", tt.level, result, tt.expected)
			}
		})
	}
}

func TestValidateLogFormat(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		expected string
	}{
		{"valid text", "text", "text"},
		{"valid json", "json", "json"},
		{"invalid defaults to text", "xml", "text"},
		{"empty defaults to text", "", "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateLogFormat(tt.format)
			if result != tt.expected {
				t.Errorf("ValidateLogFormat(%q) = %q, want %q", tt.format, result, tt.expected)
			}
		})
	}
}

func TestSetupLogger(t *testing.T) {
	t.Run("text format", func(t *testing.T) {
		logger := SetupLogger("debug", "text")
		if logger == nil {
			t.Fatal("SetupLogger returned nil")
		}
	})

	t.Run("json format", func(t *testing.T) {
		logger := SetupLogger("info", "json")
		if logger == nil {
			t.Fatal("SetupLogger returned nil")
		}
	})

	t.Run("invalid values fall back to defaults", func(t *testing.T) {
		logger := SetupLogger("nope", "xml")
		if logger == nil {
			t.Fatal("SetupLogger returned nil")
		}
	})
}
