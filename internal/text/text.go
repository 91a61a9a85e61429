package text

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
)

// Renderer turns section markdown into terminal text at a given width.
type Renderer interface {
	Render(md string, width int) (string, error)
}

// glamourRenderer wraps glamour and caches output per (width, markdown).
// Not safe for concurrent use; the UI renders from a single goroutine.
type glamourRenderer struct {
	style     string
	renderers map[int]*glamour.TermRenderer
	cache     map[[32]byte]string
}

// NewGlamour returns a glamour-backed renderer. style is a glamour standard
// style name; "auto" or empty picks one from the terminal background.
func NewGlamour(style string) Renderer {
	return &glamourRenderer{
		style:     style,
		renderers: map[int]*glamour.TermRenderer{},
		cache:     map[[32]byte]string{},
	}
}

func (g *glamourRenderer) Render(md string, width int) (string, error) {
	key := CacheKey(md, width)
	if out, ok := g.cache[key]; ok {
		return out, nil
	}
	r, err := g.rendererFor(width)
	if err != nil {
		return "", err
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	g.cache[key] = out
	return out, nil
}

func (g *glamourRenderer) rendererFor(width int) (*glamour.TermRenderer, error) {
	if r, ok := g.renderers[width]; ok {
		return r, nil
	}
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if g.style == "" || g.style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(g.style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("glamour renderer: %w", err)
	}
	g.renderers[width] = r
	return r, nil
}

// CacheKey is a stable hash of the markdown and wrap width.
func CacheKey(md string, width int) [32]byte {
	buf := make([]byte, 8, 8+len(md))
	binary.LittleEndian.PutUint64(buf, uint64(width))
	buf = append(buf, md...)
	return sha256.Sum256(buf)
}

// plainRenderer is a deterministic, offline renderer used as fallback and in
// tests. It drops markdown markers and wraps paragraphs.
type plainRenderer struct{}

func Plain() Renderer { return plainRenderer{} }

var (
	emphasis = regexp.MustCompile(`\*\*([^*]+)\*\*|\*([^*]+)\*|_([^_]+)_`)
	heading  = regexp.MustCompile(`^#{1,6}\s+`)
)

func (plainRenderer) Render(md string, width int) (string, error) {
	var b strings.Builder
	for _, line := range strings.Split(md, "\n") {
		line = heading.ReplaceAllString(line, "")
		line = emphasis.ReplaceAllString(line, "$1$2$3")
		if strings.HasPrefix(line, "- ") {
			line = "• " + line[2:]
		}
		if strings.TrimSpace(line) == "---" {
			line = strings.Repeat("─", max(width, 3))
		}
		b.WriteString(wrap(line, width))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n", nil
}

func wrap(line string, width int) string {
	if width <= 0 {
		return line
	}
	return strings.TrimRight(wordwrap.String(line, width), " ")
}

// WithFallback returns a renderer that prefers primary and falls back to backup on error.
func WithFallback(primary, fallback Renderer) Renderer {
	return &fallbackRenderer{p: primary, f: fallback}
}

type fallbackRenderer struct{ p, f Renderer }

func (r *fallbackRenderer) Render(md string, width int) (string, error) {
	if r.p == nil {
		return r.f.Render(md, width)
	}
	if s, err := r.p.Render(md, width); err == nil {
		return s, nil
	}
	return r.f.Render(md, width)
}
