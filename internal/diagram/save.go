package diagram

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported format (want svg or png)")
	ErrNoPath            = errors.New("output path is required")
)

// Options controls a diagram export.
type Options struct {
	Path   string // output path; format inferred from extension when Format empty
	Format string // "svg" or "png"
	Peak   bool
}

// Save writes the venue diagram for opts.Peak to opts.Path.
func Save(opts Options) (string, error) {
	if opts.Path == "" {
		return "", ErrNoPath
	}
	format := strings.ToLower(strings.TrimPrefix(opts.Format, "."))
	if format == "" {
		switch strings.ToLower(filepath.Ext(opts.Path)) {
		case ".png":
			format = "png"
		case ".svg":
			format = "svg"
		case "":
			format = "svg"
			opts.Path += ".svg"
		default:
			return "", fmt.Errorf("%s: %w", opts.Path, ErrUnsupportedFormat)
		}
	}
	write, err := writerFor(format)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return "", fmt.Errorf("create parent dir: %w", err)
	}
	f, err := os.Create(opts.Path)
	if err != nil {
		return "", err
	}
	if err := write(f, Build(opts.Peak)); err != nil {
		f.Close()
		return "", fmt.Errorf("render %s: %w", format, err)
	}
	return opts.Path, f.Close()
}

func writerFor(format string) (func(io.Writer, Layout) error, error) {
	switch format {
	case "svg":
		return WriteSVG, nil
	case "png":
		return WritePNG, nil
	}
	return nil, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
}

// FileName is the conventional export name, e.g. "venue-peak.svg".
func FileName(peak bool, format string) string {
	mode := "nonpeak"
	if peak {
		mode = "peak"
	}
	return fmt.Sprintf("venue-%s.%s", mode, strings.ToLower(format))
}
