package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestLoadFileMissingKeepsDefaults(t *testing.T) {
	base := DefaultConfig()
	got, err := LoadFile(base, filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got != base {
		t.Fatalf("missing file changed config: %+v", got)
	}
}

func TestLoadFileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "theme: dracula\nasset_dir: /srv/assets\ndebug: true\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := LoadFile(DefaultConfig(), path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got.Theme != "dracula" || got.AssetDir != "/srv/assets" || !got.Debug {
		t.Fatalf("overlay not applied: %+v", got)
	}
	if got.ExportDir != "exports" {
		t.Fatalf("unset field lost its default: %q", got.ExportDir)
	}
}

func TestLoadFileRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("theme: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(DefaultConfig(), path); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvTheme: " gruvbox ",
		EnvDebug: "1",
		EnvLog:   "/tmp/crowdboard.log",
	}
	lookup := func(k string) (string, bool) { v, ok := env[k]; return v, ok }
	got := ApplyEnv(DefaultConfig(), lookup)
	if got.Theme != "gruvbox" || !got.Debug || got.LogFile != "/tmp/crowdboard.log" {
		t.Fatalf("env not applied: %+v", got)
	}
	if got.AssetDir != "public" {
		t.Fatalf("asset dir should keep default, got %q", got.AssetDir)
	}
}

func TestNewLoggerWithoutFileIsNop(t *testing.T) {
	logger, err := NewLogger(Config{})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if logger.Core().Enabled(zap.ErrorLevel) {
		t.Fatal("expected a no-op logger")
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "crowdboard.log")
	logger, err := NewLogger(Config{LogFile: path, Debug: true})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	logger.Debug("scene advanced", zap.Int("scene", 1))
	_ = logger.Sync()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "scene advanced") {
		t.Fatalf("log line missing: %s", data)
	}
}
