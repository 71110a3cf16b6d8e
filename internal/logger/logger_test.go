package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func fileOptions(level, path string) Options {
	opts := DefaultOptions()
	opts.Level = level
	opts.File = path
	opts.Compress = false
	opts.Console = false
	return opts
}

func TestLogLevels(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{
			level:    "error",
			expected: []string{"ERROR"},
			excluded: []string{"WARN", "INFO", "DEBUG"},
		},
		{
			level:    "warn",
			expected: []string{"ERROR", "WARN"},
			excluded: []string{"INFO", "DEBUG"},
		},
		{
			level:    "info",
			expected: []string{"ERROR", "WARN", "INFO"},
			excluded: []string{"DEBUG"},
		},
		{
			level:    "debug",
			expected: []string{"ERROR", "WARN", "INFO", "DEBUG"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(tempDir, tt.level+".log")

			if err := Init(fileOptions(tt.level, logFile)); err != nil {
				t.Fatalf("failed to init logger: %v", err)
			}

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")
			Sync()

			content, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("failed to read log file: %v", err)
			}
			logContent := string(content)

			for _, exp := range tt.expected {
				if !strings.Contains(logContent, exp) {
					t.Errorf("expected %s in log output", exp)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(logContent, exc) {
					t.Errorf("unexpected %s in log output for level %s", exc, tt.level)
				}
			}
		})
	}
}

func TestNamedLoggerWritesName(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "nested", "dir", "named.log")
	if err := Init(fileOptions("debug", logFile)); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	Named("shape").Info("sphere built")
	Sync()

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "shape") || !strings.Contains(string(content), "sphere built") {
		t.Errorf("named entry missing from %q", content)
	}
}

func TestInvalidLevel(t *testing.T) {
	opts := DefaultOptions()
	opts.Level = "loud"
	if err := Init(opts); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.Level != "info" {
		t.Errorf("expected level info, got %s", opts.Level)
	}
	if opts.File != "" {
		t.Errorf("expected no log file, got %s", opts.File)
	}
	if opts.MaxSizeMB != 50 {
		t.Errorf("expected MaxSizeMB 50, got %d", opts.MaxSizeMB)
	}
	if opts.MaxBackups != 3 {
		t.Errorf("expected MaxBackups 3, got %d", opts.MaxBackups)
	}
	if opts.MaxAgeDays != 7 {
		t.Errorf("expected MaxAgeDays 7, got %d", opts.MaxAgeDays)
	}
	if !opts.Compress || !opts.Console {
		t.Error("expected Compress and Console to be true")
	}
}
