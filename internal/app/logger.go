package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/heartmarshall/lifeflow-backend/internal/config"
)

// NewLogger builds the process logger from cfg and installs it as the slog
// default. "json" is for deployments; anything else gives text lines with
// source positions for local runs. With cfg.File set, output goes to a
// size-rotated file instead of stderr.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(logWriter(cfg), cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	asJSON := strings.EqualFold(cfg.Format, "json")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !asJSON,
	}

	if asJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func logWriter(cfg config.LogConfig) io.Writer {
	file := strings.TrimSpace(cfg.File)
	if file == "" {
		return os.Stderr
	}
	return &lumberjack.Logger{
		Filename:   file,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}
}

// parseLevel accepts anything slog.Level.UnmarshalText does ("warn",
// "DEBUG", "info+2") and falls back to info.
func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
