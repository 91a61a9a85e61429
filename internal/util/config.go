package util

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds runtime settings and flags.
type Config struct {
	AssetDir     string `yaml:"asset_dir,omitempty"`
	ExportDir    string `yaml:"export_dir,omitempty"`
	Theme        string `yaml:"theme,omitempty"`         // catppuccin|dracula|gruvbox|solarized_dark
	GlamourStyle string `yaml:"glamour_style,omitempty"` // auto|dark|light|notty
	LogFile      string `yaml:"log_file,omitempty"`
	Debug        bool   `yaml:"debug,omitempty"`
}

// Environment variables consulted by ApplyEnv.
const (
	EnvAssets    = "CROWDBOARD_ASSETS"
	EnvExportDir = "CROWDBOARD_EXPORT_DIR"
	EnvTheme     = "CROWDBOARD_THEME"
	EnvLog       = "CROWDBOARD_LOG"
	EnvDebug     = "CROWDBOARD_DEBUG"
)

// DefaultConfig reads assets from ./public like the web build did.
func DefaultConfig() Config {
	return Config{
		AssetDir:     "public",
		ExportDir:    "exports",
		Theme:        "catppuccin",
		GlamourStyle: "auto",
	}
}

// DefaultConfigPath is $XDG_CONFIG_HOME/crowdboard/config.yaml, falling back
// to ~/.config.
func DefaultConfigPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "crowdboard", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "crowdboard", "config.yaml")
}

// LoadFile overlays the YAML file at path onto base. A missing file is not an
// error; base comes back unchanged.
func LoadFile(base Config, path string) (Config, error) {
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return base, nil
		}
		return base, fmt.Errorf("read config: %w", err)
	}
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return base, fmt.Errorf("parse config %s: %w", path, err)
	}
	return merge(base, file), nil
}

// ApplyEnv overlays CROWDBOARD_* variables read through lookup.
func ApplyEnv(base Config, lookup func(string) (string, bool)) Config {
	get := func(key string) string {
		v, ok := lookup(key)
		if !ok {
			return ""
		}
		return strings.TrimSpace(v)
	}
	base = merge(base, Config{
		AssetDir:  get(EnvAssets),
		ExportDir: get(EnvExportDir),
		Theme:     get(EnvTheme),
		LogFile:   get(EnvLog),
	})
	if v := get(EnvDebug); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			base.Debug = b
		}
	}
	return base
}

// merge copies the non-zero string fields of over onto base. Debug only ever
// switches on here.
func merge(base, over Config) Config {
	if over.AssetDir != "" {
		base.AssetDir = over.AssetDir
	}
	if over.ExportDir != "" {
		base.ExportDir = over.ExportDir
	}
	if over.Theme != "" {
		base.Theme = over.Theme
	}
	if over.GlamourStyle != "" {
		base.GlamourStyle = over.GlamourStyle
	}
	if over.LogFile != "" {
		base.LogFile = over.LogFile
	}
	if over.Debug {
		base.Debug = true
	}
	return base
}
