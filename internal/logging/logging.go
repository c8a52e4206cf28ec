package logging

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options mirrors the [logging] config section.
type Options struct {
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Setup points the standard logger at stderr and, when File is set, at a
// rotating log file as well. The returned closer releases the file.
func Setup(opts Options) io.Closer {
	return setup(log.Default(), os.Stderr, opts)
}

func setup(logger *log.Logger, stderr io.Writer, opts Options) io.Closer {
	logger.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if opts.File == "" {
		logger.SetOutput(stderr)
		return nopCloser{}
	}
	rotator := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   true,
	}
	logger.SetOutput(io.MultiWriter(stderr, rotator))
	logger.Printf("[logging] writing to %s (max %dMB, %d backups, %d days)", opts.File, opts.MaxSizeMB, opts.MaxBackups, opts.MaxAgeDays)
	return rotator
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
