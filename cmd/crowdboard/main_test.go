package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DaanHessen/crowdboard/internal/engine"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := runCmd(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if strings.TrimSpace(out) != "crowdboard "+version {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestExportBoth(t *testing.T) {
	dir := t.TempDir()
	out, err := runCmd(t, "export", "--out", dir, "--format", "png")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	for _, name := range []string{"venue-peak.png", "venue-nonpeak.png"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("missing %s: %v", name, err)
		}
		if !strings.Contains(out, path) {
			t.Fatalf("output does not list %s: %q", path, out)
		}
	}
}

func TestExportRejectsUnknownMode(t *testing.T) {
	if _, err := runCmd(t, "export", "--out", t.TempDir(), "--mode", "rush"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestExportUsesConfiguredDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CROWDBOARD_EXPORT_DIR", dir)
	if _, err := runCmd(t, "export", "--mode", "peak"); err != nil {
		t.Fatalf("export: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "venue-peak.svg")); err != nil {
		t.Fatalf("env export dir ignored: %v", err)
	}
}

func TestStartTabFlag(t *testing.T) {
	tab, err := startTab(" Prototype ")
	if err != nil || tab != engine.TabPrototype {
		t.Fatalf("startTab: %v %v", tab, err)
	}
	if tab, _ := startTab(""); tab != engine.TabStoryboard {
		t.Fatalf("empty flag should keep storyboard, got %v", tab)
	}
	if _, err := runCmd(t, "--tab", "lobby"); err == nil || !strings.Contains(err.Error(), "unknown tab") {
		t.Fatalf("expected unknown tab error, got %v", err)
	}
}
