package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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
			excluded: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(tempDir, tt.level+".log")
			fileCfg := DefaultFileConfig(logFile)
			fileCfg.Compress = false

			log, err := New(Config{Level: tt.level, File: fileCfg})
			require.NoError(t, err)

			log.Debug("debug message")
			log.Info("info message")
			log.Warn("warn message")
			log.Error("error message")
			Sync(log)

			content, err := os.ReadFile(logFile)
			require.NoError(t, err)
			logContent := string(content)

			for _, exp := range tt.expected {
				assert.Contains(t, logContent, exp)
			}
			for _, exc := range tt.excluded {
				assert.NotContains(t, logContent, exc, "level %s", tt.level)
			}
		})
	}
}

func TestConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "info", Console: &buf})
	require.NoError(t, err)

	log.Info("level appended")
	log.Debug("hidden")
	Sync(log)

	assert.Contains(t, buf.String(), "level appended")
	assert.False(t, strings.Contains(buf.String(), "hidden"))
}

func TestNewWithoutOutputs(t *testing.T) {
	log, err := New(Config{})
	require.NoError(t, err)
	require.NotNil(t, log)
	log.Info("discarded")
}

func TestUnknownLevel(t *testing.T) {
	_, err := New(Config{Level: "verbose"})
	assert.Error(t, err)

	_, ok := ParseLevel("trace")
	assert.False(t, ok)
	lvl, ok := ParseLevel("")
	assert.True(t, ok)
	assert.Equal(t, "info", lvl.String())
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/test.log")

	assert.Equal(t, "/tmp/test.log", cfg.Path)
	assert.Equal(t, 50, cfg.MaxSizeMB)
	assert.Equal(t, 3, cfg.MaxBackups)
	assert.Equal(t, 7, cfg.MaxAgeDays)
	assert.True(t, cfg.Compress)
}
