package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/JaimeStill/dpi-lab/pkg/logging"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&logging.Config{Level: logging.LevelInfo, Format: logging.FormatJSON}, &buf)

	logger.Debug("hidden")
	logger.Info("resolution applied", "dpi", 600)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "resolution applied" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["dpi"] != float64(600) {
		t.Errorf("dpi = %v", entry["dpi"])
	}
}

func TestConfig_Finalize(t *testing.T) {
	t.Setenv("TEST_LOG_LEVEL", "debug")

	cfg := &logging.Config{}
	if err := cfg.Finalize(&logging.Env{Level: "TEST_LOG_LEVEL", Format: "TEST_LOG_FORMAT"}); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Level != logging.LevelDebug {
		t.Errorf("Level = %q, want %q", cfg.Level, logging.LevelDebug)
	}
	if cfg.Format != logging.FormatText {
		t.Errorf("Format = %q, want %q", cfg.Format, logging.FormatText)
	}
}

func TestConfig_Finalize_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  logging.Config
	}{
		{"invalid level", logging.Config{Level: "verbose"}},
		{"invalid format", logging.Config{Format: "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(nil); err == nil {
				t.Error("Finalize() expected error")
			}
		})
	}
}

func TestLevel_Slog(t *testing.T) {
	tests := []struct {
		level logging.Level
		want  slog.Level
	}{
		{logging.LevelDebug, slog.LevelDebug},
		{logging.LevelWarn, slog.LevelWarn},
		{"info+2", slog.LevelInfo + 2},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := tt.level.Slog(); got != tt.want {
			t.Errorf("Level(%q).Slog() = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestConfig_Finalize_NormalizesCase(t *testing.T) {
	t.Setenv("TEST_LOG_FORMAT", "JSON")

	cfg := &logging.Config{Level: "WARN"}
	if err := cfg.Finalize(&logging.Env{Format: "TEST_LOG_FORMAT"}); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if cfg.Level != logging.LevelWarn || cfg.Format != logging.FormatJSON {
		t.Errorf("Finalize() = %+v", cfg)
	}
}
