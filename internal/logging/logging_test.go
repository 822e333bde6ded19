package logging

import (
	"os"
	"path/filepath"
	"strings"
	"terminal-rpg/internal/config"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		t.Run(format, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "rpg.log")
			log, err := New(config.LoggingConfig{Level: "debug", Format: format, File: path})
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			log.Debug("hello from the log test")
			_ = log.Sync()

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(string(data), "hello from the log test") {
				t.Errorf("log file missing message: %q", data)
			}
		})
	}
}

func TestNewFiltersBelowLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rpg.log")
	log, err := New(config.LoggingConfig{Level: "warn", Format: "console", File: path})
	if err != nil {
		t.Fatal(err)
	}
	log.Info("quiet")
	_ = log.Sync()
	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "quiet") {
		t.Error("info message written at warn level")
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(config.LoggingConfig{Level: "loud", Format: "console", File: filepath.Join(t.TempDir(), "rpg.log")})
	if err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}
