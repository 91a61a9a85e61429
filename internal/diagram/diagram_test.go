package diagram

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"
)

func TestBuildIsDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		peak := rapid.Bool().Draw(t, "peak")
		if diff := cmp.Diff(Build(peak), Build(peak)); diff != "" {
			t.Fatalf("layout changed between calls (-first +second):\n%s", diff)
		}
	})
}

func TestCrowdMarkers(t *testing.T) {
	peak := Build(true)
	calm := Build(false)
	if len(peak.Crowd) != PeakCrowd || len(calm.Crowd) != NonPeakCrowd {
		t.Fatalf("crowd sizes: peak=%d non-peak=%d", len(peak.Crowd), len(calm.Crowd))
	}
	// marker 8: x = 80 + 1*50 + (136 mod 30) = 146, y = 160 + 1*25 + (184 mod 20) = 189
	if m := peak.Crowd[8]; m.X != 146 || m.Y != 189 || m.R != 5 {
		t.Fatalf("marker 8 at (%d,%d) r=%d", m.X, m.Y, m.R)
	}
	for i, m := range calm.Crowd {
		if m != (Marker{Index: i, X: peak.Crowd[i].X, Y: peak.Crowd[i].Y, R: 7, Fill: colorCrowdCalm, Opacity: 0.8}) {
			t.Fatalf("non-peak marker %d differs in position or style: %+v", i, m)
		}
	}
}

func TestFixedFurniture(t *testing.T) {
	for _, peak := range []bool{true, false} {
		l := Build(peak)
		if n := l.Count(RoleGuard); n != 7 {
			t.Fatalf("guards: %d", n)
		}
		if n := l.Count(RoleCamera); n != 4 {
			t.Fatalf("cameras: %d", n)
		}
		if n := l.Count(RoleSensor); n != 6 {
			t.Fatalf("sensors: %d", n)
		}
		if len(l.Legend) != 6 {
			t.Fatalf("legend: %d", len(l.Legend))
		}
	}
}

func TestPeakOnlyDetails(t *testing.T) {
	peak := Build(true)
	calm := Build(false)
	if peak.Capacity != "4,200 / 5,000" || calm.Capacity != "1,200 / 5,000" {
		t.Fatalf("capacity: %q / %q", peak.Capacity, calm.Capacity)
	}
	if !strings.HasPrefix(peak.Badge, "PEAK") || !strings.HasPrefix(calm.Badge, "NON-PEAK") {
		t.Fatalf("badges: %q / %q", peak.Badge, calm.Badge)
	}
	hasLabel := func(l Layout) bool {
		for _, s := range l.Shapes {
			if s.Text == "EMERGENCY" {
				return true
			}
		}
		return false
	}
	if !hasLabel(peak) || hasLabel(calm) {
		t.Fatal("EMERGENCY label should appear only at peak")
	}
	for _, s := range calm.Shapes {
		if s.Role == RoleEmergencyExit && s.Kind == KindLine && s.Alpha() != 0.3 {
			t.Fatalf("emergency exit should be faded off-peak, alpha %v", s.Alpha())
		}
	}
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSVG(&buf, Build(true)); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"<svg", "STAGE", "4,200 / 5,000", "url(#arrow-16a34a)", "stroke-dasharray:8,4", "</svg>"} {
		if !strings.Contains(out, want) {
			t.Fatalf("svg missing %q", want)
		}
	}
	if got := strings.Count(out, `fill:#ef4444;opacity:0.8`); got != PeakCrowd {
		t.Fatalf("expected %d peak crowd circles, got %d", PeakCrowd, got)
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, Build(false)); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != CanvasWidth*PNGScale || b.Dy() != CanvasHeight*PNGScale {
		t.Fatalf("unexpected size %v", b)
	}
}

func TestRaster(t *testing.T) {
	g := Raster(Build(true), 100, 28)
	if g.Rows != 28 || len(g.Lines()) != 28 {
		t.Fatalf("rows: %d", g.Rows)
	}
	if !strings.Contains(g.String(), "STAGE") {
		t.Fatalf("raster lost the stage label:\n%s", g)
	}
	if g.Count('G') < 5 {
		t.Fatalf("expected guard glyphs, got %d\n%s", g.Count('G'), g)
	}
	if g.Count('●') == 0 {
		t.Fatal("peak raster has no crowd dots")
	}
	calm := Raster(Build(false), 100, 28)
	if calm.Count('○') == 0 || strings.Contains(calm.String(), "EMERGENCY") {
		t.Fatalf("non-peak raster wrong:\n%s", calm)
	}
	if Raster(Build(true), 100, 28).String() != g.String() {
		t.Fatal("raster not deterministic")
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path, err := Save(Options{Path: filepath.Join(dir, "out", "venue"), Peak: true})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filepath.Ext(path) != ".svg" {
		t.Fatalf("extension not defaulted: %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat: %v", err)
	}
	if _, err := Save(Options{Path: filepath.Join(dir, "venue.gif")}); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := Save(Options{}); !errors.Is(err, ErrNoPath) {
		t.Fatalf("expected ErrNoPath, got %v", err)
	}
	if got := FileName(false, "PNG"); got != "venue-nonpeak.png" {
		t.Fatalf("FileName: %s", got)
	}
}
