package diagram

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"git.sr.ht/~sbinet/gg"
)

// PNGScale upsamples the 500x280 canvas so the basic font stays legible.
const PNGScale = 2

// WritePNG rasterises l with gg. Text uses gg's built-in bitmap face, so font
// sizes are approximate.
func WritePNG(w io.Writer, l Layout) error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("layout has no canvas")
	}
	dc := gg.NewContext(l.Width*PNGScale, l.Height*PNGScale)
	dc.Scale(PNGScale, PNGScale)
	for _, s := range l.Shapes {
		drawShapePNG(dc, s)
	}
	for _, m := range l.Crowd {
		dc.SetColor(hexColor(m.Fill, m.Opacity))
		dc.DrawCircle(float64(m.X), float64(m.Y), float64(m.R))
		dc.Fill()
	}
	return dc.EncodePNG(w)
}

func drawShapePNG(dc *gg.Context, s Shape) {
	alpha := s.Alpha()
	switch s.Kind {
	case KindRect:
		x, y, w, h := float64(s.X), float64(s.Y), float64(s.W), float64(s.H)
		rect := func() {
			if s.Corner > 0 {
				dc.DrawRoundedRectangle(x, y, w, h, float64(s.Corner))
				return
			}
			dc.DrawRectangle(x, y, w, h)
		}
		if s.Fill != "" && s.Fill != "none" {
			dc.SetColor(hexColor(s.Fill, alpha))
			rect()
			dc.Fill()
		}
		if s.Stroke != "" {
			dc.SetColor(hexColor(s.Stroke, alpha))
			dc.SetLineWidth(float64(s.StrokeWidth))
			rect()
			dc.Stroke()
		}
	case KindLine:
		dc.SetColor(hexColor(s.Stroke, alpha))
		dc.SetLineWidth(float64(s.StrokeWidth))
		if dashes := parseDash(s.Dash); len(dashes) > 0 {
			dc.SetDash(dashes...)
		}
		dc.DrawLine(float64(s.X), float64(s.Y), float64(s.X2), float64(s.Y2))
		dc.Stroke()
		dc.SetDash()
		if s.Arrow != "" {
			drawArrowHead(dc, s, alpha)
		}
	case KindCircle:
		dc.SetColor(hexColor(s.Fill, alpha))
		dc.DrawCircle(float64(s.X), float64(s.Y), float64(s.R))
		dc.Fill()
	case KindText:
		dc.SetColor(hexColor(s.Fill, alpha))
		ax := 0.0
		if s.Anchor == AnchorMiddle {
			ax = 0.5
		}
		if s.Rotate != 0 {
			dc.Push()
			dc.RotateAbout(gg.Radians(float64(s.Rotate)), float64(s.X), float64(s.Y))
			dc.DrawStringAnchored(s.Text, float64(s.X), float64(s.Y), ax, 0)
			dc.Pop()
			return
		}
		dc.DrawStringAnchored(s.Text, float64(s.X), float64(s.Y), ax, 0)
	}
}

func drawArrowHead(dc *gg.Context, s Shape, alpha float64) {
	dx := float64(s.X2 - s.X)
	dy := float64(s.Y2 - s.Y)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	ux, uy := dx/length, dy/length
	px, py := -uy, ux
	tipX, tipY := float64(s.X2)+ux*4, float64(s.Y2)+uy*4
	baseX, baseY := tipX-ux*8, tipY-uy*8
	dc.SetColor(hexColor(s.Arrow, alpha))
	dc.NewSubPath()
	dc.MoveTo(tipX, tipY)
	dc.LineTo(baseX+px*4, baseY+py*4)
	dc.LineTo(baseX-px*4, baseY-py*4)
	dc.ClosePath()
	dc.Fill()
}

func parseDash(dash string) []float64 {
	if dash == "" {
		return nil
	}
	var out []float64
	for _, part := range strings.Split(dash, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil
		}
		out = append(out, v)
	}
	return out
}

// hexColor parses "#rrggbb"; malformed input falls back to slate.
func hexColor(hex string, alpha float64) color.NRGBA {
	c := color.NRGBA{R: 0x64, G: 0x74, B: 0x8b, A: 0xff}
	h := strings.TrimPrefix(hex, "#")
	if len(h) == 6 {
		if v, err := strconv.ParseUint(h, 16, 32); err == nil {
			c.R = uint8(v >> 16)
			c.G = uint8(v >> 8)
			c.B = uint8(v)
		}
	}
	if alpha <= 0 || alpha > 1 {
		alpha = 1
	}
	c.A = uint8(math.Round(alpha * 255))
	return c
}
