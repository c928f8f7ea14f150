package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/san-kum/discoball/internal/scene"
)

const (
	logSubdir     = "logs"
	logFileName   = "discoball.log"
	maxLogSize    = 10 * 1024 * 1024
	maxLogBackups = 3
)

var logFile *lumberjack.Logger

// setupLogging routes scene logs to <dataDir>/logs/discoball.log when debug
// is set. The file is rotated once it grows past maxLogSize and at most
// maxLogBackups old files are kept. Logs never go to stdout or stderr since
// frames are drawn there. It returns nil when logging is disabled or the
// directory cannot be created.
func setupLogging(dataDir string, debug bool) *lumberjack.Logger {
	if !debug {
		scene.SetLogger(nil)
		return nil
	}

	dir := filepath.Join(dataDir, logSubdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		scene.SetLogger(nil)
		return nil
	}

	out := &lumberjack.Logger{
		Filename:   filepath.Join(dir, logFileName),
		MaxSize:    maxLogSize / (1024 * 1024),
		MaxBackups: maxLogBackups,
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	scene.SetLogger(logger)
	logger.Info("logging started", "pid", os.Getpid())
	return out
}
