// SPDX-License-Identifier: MIT
// Package logger builds the structured zap loggers used by the subdtopo tool.
//
// The library packages never construct loggers themselves; they accept one
// through refiner.WithLogger. This package owns the console and rotating
// file outputs of the command-line front end.
package logger

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Level names accepted by ParseLevel.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// FileConfig holds file logging configuration.
type FileConfig struct {
	Path       string `yaml:"path"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// DefaultFileConfig returns default file logging settings.
func DefaultFileConfig(path string) FileConfig {
	return FileConfig{
		Path:       path,
		MaxSizeMB:  50,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Compress:   true,
	}
}

// Config selects the level and outputs of a logger.
// A nil Console and an empty File.Path yield a logger that discards everything.
type Config struct {
	Level   string
	Console io.Writer
	File    FileConfig
}

// New builds a logger writing human-readable lines to the configured outputs.
func New(cfg Config) (*zap.Logger, error) {
	lvl, ok := ParseLevel(cfg.Level)
	if !ok {
		return nil, fmt.Errorf("logger: unknown level %q", cfg.Level)
	}

	var cores []zapcore.Core

	// Console output
	if cfg.Console != nil {
		consoleEncoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			TimeKey:          "time",
			LevelKey:         "level",
			MessageKey:       "msg",
			EncodeTime:       zapcore.TimeEncoderOfLayout("15:04:05"),
			EncodeLevel:      zapcore.CapitalColorLevelEncoder,
			ConsoleSeparator: " ",
		})
		cores = append(cores, zapcore.NewCore(consoleEncoder, zapcore.AddSync(cfg.Console), lvl))
	}

	// File output (if configured)
	if cfg.File.Path != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   cfg.File.Path,
			MaxSize:    cfg.File.MaxSizeMB,
			MaxBackups: cfg.File.MaxBackups,
			MaxAge:     cfg.File.MaxAgeDays,
			Compress:   cfg.File.Compress,
			LocalTime:  true,
		}

		fileEncoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			TimeKey:          "time",
			LevelKey:         "level",
			MessageKey:       "msg",
			CallerKey:        "caller",
			EncodeTime:       zapcore.ISO8601TimeEncoder,
			EncodeLevel:      zapcore.CapitalLevelEncoder,
			EncodeCaller:     zapcore.ShortCallerEncoder,
			ConsoleSeparator: " ",
		})
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.AddSync(fileWriter), lvl))
	}

	if len(cores) == 0 {
		return zap.NewNop(), nil
	}
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

// ParseLevel converts a level name to zapcore.Level. The empty name means info.
func ParseLevel(level string) (zapcore.Level, bool) {
	switch level {
	case LevelDebug:
		return zapcore.DebugLevel, true
	case LevelInfo, "":
		return zapcore.InfoLevel, true
	case LevelWarn:
		return zapcore.WarnLevel, true
	case LevelError:
		return zapcore.ErrorLevel, true
	default:
		return zapcore.InfoLevel, false
	}
}

// Sync flushes any buffered log entries, ignoring errors from unsyncable
// terminals.
func Sync(l *zap.Logger) {
	if l != nil {
		_ = l.Sync()
	}
}
