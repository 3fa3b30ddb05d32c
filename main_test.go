package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hnnsb/hecto/config"
)

func TestNewLoggerWritesToLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "hecto.log")
	cfg.LogLevel = "warn"

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		t.Fatalf("newLogger failed: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown", "file", "a.txt")
	if err := closeLog(); err != nil {
		t.Fatalf("closing log: %v", err)
	}

	data, err := os.ReadFile(cfg.LogFile)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	log := string(data)
	if strings.Contains(log, "hidden") {
		t.Errorf("Expected info record to be filtered, got %q", log)
	}
	if !strings.Contains(log, "msg=shown file=a.txt") {
		t.Errorf("Expected warn record in log, got %q", log)
	}
}

func TestNewLoggerWithoutFile(t *testing.T) {
	logger, closeLog, err := newLogger(config.Default())
	if err != nil {
		t.Fatalf("newLogger failed: %v", err)
	}
	logger.Error("discarded")
	if err := closeLog(); err != nil {
		t.Errorf("Expected no-op close, got %v", err)
	}
}

func TestNewLoggerBadPath(t *testing.T) {
	cfg := config.Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "missing", "hecto.log")
	if _, _, err := newLogger(cfg); err == nil {
		t.Errorf("Expected an error for a log file in a missing directory")
	}
}
