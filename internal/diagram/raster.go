package diagram

import (
	"math"
	"strings"
)

// Cell is one terminal character of a rasterised layout.
type Cell struct {
	Rune  rune
	Color string // foreground hex, empty for default
	Bold  bool
}

// Grid is a rows x cols character canvas.
type Grid struct {
	Cols, Rows int
	Cells      [][]Cell
}

// Raster maps the layout onto a character grid for the terminal view. Small
// icon letters are dropped; each staff marker becomes its own glyph instead.
func Raster(l Layout, cols, rows int) Grid {
	if cols < 10 {
		cols = 10
	}
	if rows < 5 {
		rows = 5
	}
	g := Grid{Cols: cols, Rows: rows, Cells: make([][]Cell, rows)}
	for r := range g.Cells {
		row := make([]Cell, cols)
		for c := range row {
			row[c] = Cell{Rune: ' '}
		}
		g.Cells[r] = row
	}
	sx := float64(cols) / float64(l.Width)
	sy := float64(rows) / float64(l.Height)
	col := func(x int) int { return int(math.Floor(float64(x) * sx)) }
	row := func(y int) int { return int(math.Floor(float64(y) * sy)) }

	for _, s := range l.Shapes {
		color := s.Fill
		if s.Kind == KindLine || (s.Kind == KindRect && s.Fill == "none") {
			color = s.Stroke
		}
		if s.Alpha() < 0.5 {
			color = dim(color)
		}
		switch s.Kind {
		case KindRect:
			switch s.Role {
			case RoleBackground, RoleCapacity:
			case RoleVenue:
				g.box(col(s.X), row(s.Y), col(s.X+s.W), row(s.Y+s.H), color)
			case RoleStage:
				g.fill(col(s.X), row(s.Y), col(s.X+s.W), row(s.Y+s.H), '░', s.Fill)
				g.box(col(s.X), row(s.Y), col(s.X+s.W), row(s.Y+s.H), s.Stroke)
			case RoleCamera:
				g.set(col(s.X), row(s.Y), Cell{Rune: 'C', Color: color, Bold: true})
			}
		case KindLine:
			g.line(s, col, row, color)
		case KindCircle:
			glyph := '●'
			switch s.Role {
			case RoleGuard:
				glyph = 'G'
			case RoleSensor:
				glyph = 'T'
			}
			g.set(col(s.X), row(s.Y), Cell{Rune: glyph, Color: color, Bold: true})
		case KindText:
			if s.Role == RoleIconLetter {
				continue
			}
			g.text(s, col, row, color)
		}
	}
	for _, m := range l.Crowd {
		glyph := '○'
		if l.Peak {
			glyph = '●'
		}
		g.set(col(m.X), row(m.Y), Cell{Rune: glyph, Color: m.Fill})
	}
	return g
}

func (g *Grid) set(c, r int, cell Cell) {
	if r < 0 || r >= g.Rows || c < 0 || c >= g.Cols {
		return
	}
	g.Cells[r][c] = cell
}

func (g *Grid) box(c0, r0, c1, r1 int, color string) {
	if c1 >= g.Cols {
		c1 = g.Cols - 1
	}
	if r1 >= g.Rows {
		r1 = g.Rows - 1
	}
	for c := c0 + 1; c < c1; c++ {
		g.set(c, r0, Cell{Rune: '─', Color: color})
		g.set(c, r1, Cell{Rune: '─', Color: color})
	}
	for r := r0 + 1; r < r1; r++ {
		g.set(c0, r, Cell{Rune: '│', Color: color})
		g.set(c1, r, Cell{Rune: '│', Color: color})
	}
	g.set(c0, r0, Cell{Rune: '╭', Color: color})
	g.set(c1, r0, Cell{Rune: '╮', Color: color})
	g.set(c0, r1, Cell{Rune: '╰', Color: color})
	g.set(c1, r1, Cell{Rune: '╯', Color: color})
}

func (g *Grid) fill(c0, r0, c1, r1 int, glyph rune, color string) {
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			g.set(c, r, Cell{Rune: glyph, Color: color})
		}
	}
}

func (g *Grid) line(s Shape, col, row func(int) int, color string) {
	c0, r0, c1, r1 := col(s.X), row(s.Y), col(s.X2), row(s.Y2)
	glyph := lineGlyph(s, c0 == c1)
	steps := abs(c1 - c0)
	if d := abs(r1 - r0); d > steps {
		steps = d
	}
	for i := 0; i <= steps; i++ {
		c, r := c0, r0
		if steps > 0 {
			c = c0 + (c1-c0)*i/steps
			r = r0 + (r1-r0)*i/steps
		}
		if s.Dash != "" && i%3 == 2 {
			continue
		}
		g.set(c, r, Cell{Rune: glyph, Color: color})
	}
	if s.Arrow != "" {
		g.set(c1, r1, Cell{Rune: arrowGlyph(c1-c0, r1-r0), Color: color, Bold: true})
	}
}

func lineGlyph(s Shape, vertical bool) rune {
	switch {
	case s.Role == RoleStrongBarricade:
		return '━'
	case s.Dash != "":
		return '╌'
	case vertical:
		return '│'
	}
	return '─'
}

func arrowGlyph(dc, dr int) rune {
	switch {
	case abs(dc) >= abs(dr) && dc < 0:
		return '◀'
	case abs(dc) >= abs(dr):
		return '▶'
	case dr < 0:
		return '▲'
	}
	return '▼'
}

func (g *Grid) text(s Shape, col, row func(int) int, color string) {
	runes := []rune(s.Text)
	c, r := col(s.X), row(s.Y)
	if s.Rotate != 0 {
		// vertical labels, centred on their anchor row
		start := r - len(runes)/2
		for i, ch := range runes {
			g.set(c, start+i, Cell{Rune: ch, Color: color})
		}
		return
	}
	if s.Anchor == AnchorMiddle {
		c -= len(runes) / 2
	}
	if c+len(runes) > g.Cols {
		c = g.Cols - len(runes)
	}
	for i, ch := range runes {
		g.set(c+i, r, Cell{Rune: ch, Color: color, Bold: s.Bold})
	}
}

// Lines renders the grid without colour.
func (g Grid) Lines() []string {
	out := make([]string, g.Rows)
	for r, row := range g.Cells {
		var b strings.Builder
		for _, cell := range row {
			b.WriteRune(cell.Rune)
		}
		out[r] = strings.TrimRight(b.String(), " ")
	}
	return out
}

func (g Grid) String() string { return strings.Join(g.Lines(), "\n") }

// Count returns how many cells hold r.
func (g Grid) Count(r rune) int {
	n := 0
	for _, row := range g.Cells {
		for _, cell := range row {
			if cell.Rune == r {
				n++
			}
		}
	}
	return n
}

func dim(hex string) string {
	c := hexColor(hex, 1)
	return "#" + hexByte(c.R/2+0x40) + hexByte(c.G/2+0x40) + hexByte(c.B/2+0x40)
}

func hexByte(b uint8) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[b>>4], digits[b&0x0f]})
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
