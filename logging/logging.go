package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for the log file
const (
	MaxSizeMB  = 20
	MaxBackups = 5
	MaxAgeDays = 30
)

// Setup points the standard logger at stdout, teed into a rotating file when
// path is set. The returned writer is what other loggers (echo) should use.
func Setup(path string) (io.Writer, func() error, error) {
	if path == "" {
		log.SetOutput(os.Stdout)
		return os.Stdout, func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    MaxSizeMB,
		MaxBackups: MaxBackups,
		MaxAge:     MaxAgeDays,
		Compress:   true,
	}

	w := io.MultiWriter(os.Stdout, rotator)
	log.SetOutput(w)
	return w, rotator.Close, nil
}
