package ui

import (
	"log/slog"
	"os"
)

// logger traces layout passes. It only reports warnings unless replaced.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

// SetLogger replaces the package logger. A nil l restores the default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
	logger = l
}
