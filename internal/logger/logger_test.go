package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dbsmedya/gogeomine/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected string // String representation of zapcore.Level
	}{
		{"debug", "debug"},
		{"info", "info"},
		{"", "info"}, // empty defaults to info
		{"warn", "warn"},
		{"error", "error"},
		{"unknown", "info"}, // unknown defaults to info
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level := parseLevel(tt.input)
			if level.String() != tt.expected {
				t.Errorf("parseLevel(%q) = %v, expected %v", tt.input, level.String(), tt.expected)
			}
		})
	}
}

func TestNew(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		cfg     *config.LoggingConfig
		wantErr bool
	}{
		{
			name:    "json format info level",
			cfg:     &config.LoggingConfig{Level: "info", Format: "json", Output: "stdout"},
			wantErr: false,
		},
		{
			name:    "text format debug level",
			cfg:     &config.LoggingConfig{Level: "debug", Format: "text", Output: "stderr"},
			wantErr: false,
		},
		{
			name:    "file output",
			cfg:     &config.LoggingConfig{Level: "warn", Format: "json", Output: filepath.Join(tmpDir, "mine.log")},
			wantErr: false,
		},
		{
			name:    "unwritable file output",
			cfg:     &config.LoggingConfig{Level: "info", Format: "json", Output: filepath.Join(tmpDir, "missing", "dir", "mine.log")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if logger == nil && !tt.wantErr {
				t.Error("New() returned nil logger without error")
			}
			if logger != nil {
				_ = logger.Sync()
			}
		})
	}
}

func TestNewDefault(t *testing.T) {
	logger := NewDefault()
	if logger == nil {
		t.Fatal("NewDefault() returned nil")
	}

	logger.Info("test message")
	_ = logger.Sync()
}

func TestNewNop(t *testing.T) {
	logger := NewNop()
	if logger == nil {
		t.Fatal("NewNop() returned nil")
	}

	logger.Debugw("discarded", "k", "v")
	logger.WithJob("job").WithPhase("tree").Info("discarded")
	if err := logger.Sync(); err != nil {
		t.Errorf("Sync() on nop logger returned %v", err)
	}
}

func TestWithJob(t *testing.T) {
	logger := NewNop()

	jobLogger := logger.WithJob("test-job")
	if jobLogger == nil {
		t.Fatalf("WithJob() returned nil")
	}
	if jobLogger == logger {
		t.Error("WithJob() should return a new logger instance")
	}
}

func TestWithFields(t *testing.T) {
	logger := NewNop()

	fieldLogger := logger.WithFields(map[string]interface{}{
		"min_sup": 3.0,
		"items":   12,
	})
	if fieldLogger == nil {
		t.Fatalf("WithFields() returned nil")
	}
	fieldLogger.Info("test with fields")
}

func TestBuildEncoder(t *testing.T) {
	if buildEncoder("json") == nil {
		t.Error("buildEncoder('json') returned nil")
	}
	if buildEncoder("text") == nil {
		t.Error("buildEncoder('text') returned nil")
	}
	if buildEncoder("unknown") == nil {
		t.Error("buildEncoder('unknown') returned nil")
	}
}

func TestBuildWriters(t *testing.T) {
	for _, output := range []string{"stdout", "stderr", ""} {
		w, err := buildWriters(output)
		if err != nil || w == nil {
			t.Errorf("buildWriters(%q) = %v, %v", output, w, err)
		}
	}

	w, err := buildWriters(filepath.Join(t.TempDir(), "out.log"))
	if err != nil || w == nil {
		t.Errorf("buildWriters(file) = %v, %v", w, err)
	}
}

func TestLoggingOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logger-test.json")

	cfg := &config.LoggingConfig{
		Level:  "info",
		Format: "json",
		Output: path,
	}

	logger, err := New(cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	logger.Info("test info message")
	logger.Debug("hidden debug message")
	logger.WithJob("test-job").WithPhase("correction").Info("message with context")
	_ = logger.Sync()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	contentStr := string(content)
	if !strings.Contains(contentStr, "test info message") {
		t.Error("Log file should contain 'test info message'")
	}
	if strings.Contains(contentStr, "hidden debug message") {
		t.Error("Debug message should be filtered at info level")
	}
	if !strings.Contains(contentStr, "test-job") || !strings.Contains(contentStr, "correction") {
		t.Error("Log file should contain job and phase context")
	}
}
