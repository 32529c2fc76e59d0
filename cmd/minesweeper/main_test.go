package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/minesweeper/internal/config"
)

func TestDefaultsCommand(t *testing.T) {
	var out bytes.Buffer
	defaultsCmd.SetOut(&out)
	if err := defaultsCmd.RunE(defaultsCmd, nil); err != nil {
		t.Fatalf("defaults failed: %v", err)
	}
	if out.String() != string(config.DefaultYAML()) {
		t.Errorf("defaults printed %q", out.String())
	}
}

func TestNewLogger(t *testing.T) {
	oldLevel, oldFile := flagLogLevel, flagLogFile
	t.Cleanup(func() { flagLogLevel, flagLogFile = oldLevel, oldFile })

	t.Run("bad level", func(t *testing.T) {
		flagLogLevel, flagLogFile = "loud", ""
		if _, _, err := newLogger(io.Discard); err == nil {
			t.Error("expected an error for an unknown level")
		}
	})

	t.Run("fallback writer", func(t *testing.T) {
		flagLogLevel, flagLogFile = "info", ""
		var buf bytes.Buffer
		logger, closeLog, err := newLogger(&buf)
		if err != nil {
			t.Fatalf("newLogger failed: %v", err)
		}
		logger.Debug("hidden")
		logger.Info("shown", "k", 1)
		if err := closeLog(); err != nil {
			t.Fatalf("close failed: %v", err)
		}
		if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
			t.Errorf("unexpected log output %q", buf.String())
		}
		if !strings.Contains(buf.String(), "minesweeper") {
			t.Errorf("log line should carry the prefix: %q", buf.String())
		}
	})

	t.Run("log file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "game.log")
		flagLogLevel, flagLogFile = "debug", path
		logger, closeLog, err := newLogger(io.Discard)
		if err != nil {
			t.Fatalf("newLogger failed: %v", err)
		}
		logger.Debug("to file")
		if err := closeLog(); err != nil {
			t.Fatalf("close failed: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read log: %v", err)
		}
		if !strings.Contains(string(data), "to file") {
			t.Errorf("log file = %q", data)
		}
	})
}
