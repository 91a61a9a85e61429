package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/image/draw"

	"github.com/DaanHessen/crowdboard/internal/content"
)

const maxMapRows = 24

// venueMapImage renders the venue map asset at the given column width, or a
// placeholder when the asset cannot be loaded.
func (m *model) venueMapImage(cols int) string {
	if cols < 8 {
		cols = 8
	}
	if out, ok := m.mapCache[cols]; ok {
		return out
	}
	img, err := m.assets.VenueMap()
	if err != nil {
		m.log.Debug("venue map unavailable", zap.Error(err))
		return lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(m.pal.Border).
			Foreground(m.pal.Muted).
			Padding(1, 2).
			Render(fmt.Sprintf("venue map unavailable (%s)", m.assets.Path(content.VenueMapAsset)))
	}
	out := halfBlocks(img, cols, maxMapRows)
	m.mapCache[cols] = out
	return out
}

// halfBlocks scales img to fit cols x rows cells. Every cell shows two pixels
// stacked with the upper half block glyph.
func halfBlocks(img image.Image, cols, rows int) string {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || cols <= 0 || rows <= 0 {
		return ""
	}
	w := cols
	h := b.Dy() * w / b.Dx()
	if h > rows*2 {
		h = rows * 2
		w = max(b.Dx()*h/b.Dy(), 1)
	}
	if h < 2 {
		h = 2
	}
	if h%2 == 1 {
		h++
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)

	var sb strings.Builder
	for y := 0; y < h; y += 2 {
		for x := 0; x < w; x++ {
			top := dst.RGBAAt(x, y)
			bottom := dst.RGBAAt(x, y+1)
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(rgbHex(top))).
				Background(lipgloss.Color(rgbHex(bottom))).
				Render("▀"))
		}
		if y+2 < h {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func rgbHex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
