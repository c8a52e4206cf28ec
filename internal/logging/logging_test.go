package logging

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupStderrOnly(t *testing.T) {
	var stderr bytes.Buffer
	logger := log.New(os.Stdout, "", 0)

	closer := setup(logger, &stderr, Options{})
	logger.Printf("[test] hello")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !strings.Contains(stderr.String(), "[test] hello") {
		t.Fatalf("expected log line on stderr, got %q", stderr.String())
	}
}

func TestSetupWritesRotatingFile(t *testing.T) {
	var stderr bytes.Buffer
	logger := log.New(os.Stdout, "", 0)
	path := filepath.Join(t.TempDir(), "cineworld.log")

	closer := setup(logger, &stderr, Options{File: path, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1})
	logger.Printf("[test] to file")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "[test] to file") {
		t.Fatalf("expected log line in file, got %q", data)
	}
	if !strings.Contains(stderr.String(), "[test] to file") {
		t.Fatalf("expected log line on stderr too, got %q", stderr.String())
	}
}
