package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/mortgage-forecast/internal/config"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.LoggingConfig
		override  string
		wantLevel zapcore.Level
		wantError bool
	}{
		{"Defaults", config.LoggingConfig{}, "", zapcore.InfoLevel, false},
		{"Configured level", config.LoggingConfig{Level: "warn"}, "", zapcore.WarnLevel, false},
		{"Override wins", config.LoggingConfig{Level: "error"}, "debug", zapcore.DebugLevel, false},
		{"Console format", config.LoggingConfig{Format: "console", Level: "error"}, "", zapcore.ErrorLevel, false},
		{"Warning alias", config.LoggingConfig{Level: "warning"}, "", zapcore.WarnLevel, false},
		{"Invalid level", config.LoggingConfig{Level: "verbose"}, "", zapcore.InfoLevel, true},
		{"Invalid override", config.LoggingConfig{}, "trace", zapcore.InfoLevel, true},
		{"Invalid format", config.LoggingConfig{Format: "xml"}, "", zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg, tt.override)
			if tt.wantError {
				if err == nil {
					t.Fatal("New() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if !logger.Core().Enabled(tt.wantLevel) {
				t.Errorf("expected level %s to be enabled", tt.wantLevel)
			}
			if tt.wantLevel > zapcore.DebugLevel && logger.Core().Enabled(tt.wantLevel-1) {
				t.Errorf("expected level %s to be disabled", tt.wantLevel-1)
			}
		})
	}
}

func TestNewWritesToOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "mortgage.log")

	logger, err := New(config.LoggingConfig{Level: "info", Format: "json", OutputFile: path}, "")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("forecast computed")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "forecast computed") {
		t.Errorf("log file does not contain message: %s", data)
	}
}
