package diagram

import (
	"fmt"
	"io"
	"strings"

	"github.com/ajstarks/svgo"
)

// WriteSVG renders l as a standalone SVG document.
func WriteSVG(w io.Writer, l Layout) error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("layout has no canvas")
	}
	canvas := svg.New(w)
	canvas.Start(l.Width, l.Height, fmt.Sprintf(`viewBox="0 0 %d %d"`, l.Width, l.Height))

	arrows := arrowColors(l)
	if len(arrows) > 0 {
		canvas.Def()
		for _, c := range arrows {
			canvas.Marker(markerID(c), 9, 3, 10, 10, `orient="auto"`)
			canvas.Path("M0,0 L0,6 L9,3 z", "fill:"+c)
			canvas.MarkerEnd()
		}
		canvas.DefEnd()
	}

	for _, s := range l.Shapes {
		drawShapeSVG(canvas, s)
	}
	for _, m := range l.Crowd {
		canvas.Circle(m.X, m.Y, m.R, fmt.Sprintf("fill:%s;opacity:%s", m.Fill, ftoa(m.Opacity)))
	}
	canvas.End()
	return nil
}

func drawShapeSVG(canvas *svg.SVG, s Shape) {
	switch s.Kind {
	case KindRect:
		style := fmt.Sprintf("fill:%s", s.Fill)
		if s.Stroke != "" {
			style += fmt.Sprintf(";stroke:%s;stroke-width:%d", s.Stroke, s.StrokeWidth)
		}
		style += opacityStyle(s)
		if s.Corner > 0 {
			canvas.Roundrect(s.X, s.Y, s.W, s.H, s.Corner, s.Corner, style)
		} else {
			canvas.Rect(s.X, s.Y, s.W, s.H, style)
		}
	case KindLine:
		style := fmt.Sprintf("stroke:%s;stroke-width:%d", s.Stroke, s.StrokeWidth)
		if s.Dash != "" {
			style += ";stroke-dasharray:" + s.Dash
		}
		style += opacityStyle(s)
		if s.Arrow != "" {
			canvas.Line(s.X, s.Y, s.X2, s.Y2, style, fmt.Sprintf(`marker-end="url(#%s)"`, markerID(s.Arrow)))
			return
		}
		canvas.Line(s.X, s.Y, s.X2, s.Y2, style)
	case KindCircle:
		canvas.Circle(s.X, s.Y, s.R, fmt.Sprintf("fill:%s", s.Fill)+opacityStyle(s))
	case KindText:
		style := fmt.Sprintf("fill:%s;font-size:%dpx;font-family:sans-serif", s.Fill, s.FontSize)
		if s.Anchor == AnchorMiddle {
			style += ";text-anchor:middle"
		}
		if s.Bold {
			style += ";font-weight:bold"
		}
		style += opacityStyle(s)
		if s.Rotate != 0 {
			canvas.Text(s.X, s.Y, s.Text, style, fmt.Sprintf(`transform="rotate(%d %d %d)"`, s.Rotate, s.X, s.Y))
			return
		}
		canvas.Text(s.X, s.Y, s.Text, style)
	}
}

func opacityStyle(s Shape) string {
	if s.Opacity == 0 || s.Opacity == 1 {
		return ""
	}
	return ";opacity:" + ftoa(s.Opacity)
}

// arrowColors lists the distinct arrowhead colours in drawing order.
func arrowColors(l Layout) []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range l.Shapes {
		if s.Arrow == "" || seen[s.Arrow] {
			continue
		}
		seen[s.Arrow] = true
		out = append(out, s.Arrow)
	}
	return out
}

func markerID(color string) string {
	return "arrow-" + strings.TrimPrefix(color, "#")
}

func ftoa(f float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", f), "0"), ".")
}
