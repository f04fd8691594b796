package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	logDir      = "logs"
	logFileName = "vi-pixel.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging returns a logger writing to logs/vi-pixel.log when debug is set.
// Otherwise output is discarded, the TUI owns stdout and stderr.
// A log file over maxLogSize is rotated aside with a timestamp suffix.
// The error is a warning for the user: on failure to open the file the
// logger still works and discards its output; a failed rotation keeps
// appending to the current file
func setupLogging(debug bool) (*logrus.Logger, *os.File, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	logger.SetOutput(io.Discard)

	if !debug {
		return logger, nil, nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return logger, nil, fmt.Errorf("log dir: %w", err)
	}

	var rotateErr error
	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("vi-pixel-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			rotateErr = fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return logger, nil, fmt.Errorf("open log: %w", err)
	}
	logger.SetOutput(f)
	return logger, f, rotateErr
}
