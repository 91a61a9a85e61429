package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/DaanHessen/crowdboard/internal/content"
	"github.com/DaanHessen/crowdboard/internal/diagram"
	"github.com/DaanHessen/crowdboard/internal/engine"
)

const (
	framesWidth   = 32
	minSplitWidth = 84
	white         = lipgloss.Color("#ffffff")
)

func (m *model) renderStoryboard() string {
	w, _ := m.size()
	var sections []string
	sections = append(sections, m.renderProgress())

	frames := m.renderFrames()
	panelWidth := w - framesWidth - 2
	if w < minSplitWidth {
		panelWidth = w - 2
	}
	panel := m.renderPanel(panelWidth)
	if w < minSplitWidth {
		sections = append(sections, frames, panel)
	} else {
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, frames, "  ", panel))
	}

	if m.nav.VenueMapVisible() {
		sections = append(sections, m.renderVenueMap(w-2))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *model) renderProgress() string {
	var dots []string
	for i := range m.scenes {
		if i == m.nav.Scene() {
			dots = append(dots, lipgloss.NewStyle().Foreground(m.pal.Accent).Render("━━━━"))
			continue
		}
		dots = append(dots, lipgloss.NewStyle().Foreground(m.pal.Border).Render("──"))
	}
	return strings.Join(dots, " ") + "\n"
}

func (m *model) renderFrames() string {
	heading := lipgloss.NewStyle().Bold(true).Foreground(m.pal.Text).Render("Storyboard Frames")
	hint := lipgloss.NewStyle().Foreground(m.pal.Muted).Render("↑/↓ + enter to open a scene")
	lines := []string{heading, hint, ""}
	for i, sc := range m.scenes {
		marker := "  "
		if i == m.cursor {
			marker = "› "
		}
		title := truncate(sc.Title, framesWidth-6)
		style := lipgloss.NewStyle().Width(framesWidth).Foreground(m.pal.Muted)
		if i == m.nav.Scene() {
			style = style.Bold(true).Foreground(m.pal.Text).Background(m.pal.Selected)
		}
		lines = append(lines,
			style.Render(fmt.Sprintf("%s%d %s", marker, sc.ID, truncate(sc.Label, framesWidth-5))),
			style.Render("    "+title))
	}
	label := "Show Full Venue Map"
	if m.nav.VenueMapVisible() {
		label = "Hide Full Venue Map"
	}
	lines = append(lines, "", lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.pal.Accent).
		Foreground(m.pal.Accent).
		Padding(0, 1).
		Render("[m] "+label))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *model) renderPanel(width int) string {
	sc := m.panel.Scene()
	grad := gradientFor(sc.Style)
	inner := width - 2

	id := lipgloss.NewStyle().Bold(true).Foreground(white).Background(grad[1]).Padding(0, 1).Render(directionMark(m.nav.Direction()) + fmt.Sprintf("%02d", sc.ID))
	titleWidth := max(inner-lipgloss.Width(id), 10)
	title := lipgloss.NewStyle().Foreground(white).Background(grad[0]).Width(titleWidth).Padding(0, 1).Render(
		sc.Label + "\n" + lipgloss.NewStyle().Bold(true).Render(sc.Title))
	header := lipgloss.JoinHorizontal(lipgloss.Top, title, id)

	layout := diagram.Build(m.panel.Peak())
	parts := []string{
		header,
		"",
		m.renderModeButtons(),
		"",
		m.renderDiagram(layout, inner),
		m.renderDiagramBadge(layout),
		m.renderDiagramLegend(layout, inner),
		"",
		m.renderNarrative(inner),
		"",
		m.renderTags("Key Elements", sc.Elements, m.pal.Element, inner),
		m.renderTags("Constraints", sc.Constraints, m.pal.Limit, inner),
		"",
		m.renderSceneNav(inner),
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.pal.Border).
		Width(inner).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *model) renderModeButtons() string {
	button := func(label string, active bool, c lipgloss.Color) string {
		style := lipgloss.NewStyle().Padding(0, 2).Foreground(m.pal.Muted).Background(m.pal.Surface)
		if active {
			style = style.Bold(true).Foreground(white).Background(c)
		}
		return style.Render(label)
	}
	return button("[p] Peak Hours", m.panel.Peak(), m.pal.Peak) + " " +
		button("[n] Non-Peak Hours", !m.panel.Peak(), m.pal.NonPeak)
}

func (m *model) renderDiagram(l diagram.Layout, width int) string {
	cols := max(width-2, 20)
	rows := min(max(cols*diagram.CanvasHeight/diagram.CanvasWidth/2, 10), 30)
	g := diagram.Raster(l, cols, rows)
	lines := make([]string, g.Rows)
	for r, row := range g.Cells {
		var b strings.Builder
		// group runs of identical styling so each run is one escape sequence
		start := 0
		for c := 1; c <= len(row); c++ {
			if c < len(row) && row[c].Color == row[start].Color && row[c].Bold == row[start].Bold {
				continue
			}
			var run strings.Builder
			for _, cell := range row[start:c] {
				run.WriteRune(cell.Rune)
			}
			style := lipgloss.NewStyle().Bold(row[start].Bold)
			if row[start].Color != "" {
				style = style.Foreground(lipgloss.Color(row[start].Color))
			}
			b.WriteString(style.Render(run.String()))
			start = c
		}
		lines[r] = b.String()
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(m.pal.Border).
		Render(strings.Join(lines, "\n"))
}

func (m *model) renderDiagramBadge(l diagram.Layout) string {
	bg := m.pal.NonPeak
	if l.Peak {
		bg = m.pal.Peak
	}
	badge := lipgloss.NewStyle().Bold(true).Foreground(white).Background(bg).Padding(0, 1).Render(l.Badge)
	capacity := lipgloss.NewStyle().Foreground(m.pal.Muted).Render("Capacity " + l.Capacity)
	return badge + "  " + capacity
}

func (m *model) renderDiagramLegend(l diagram.Layout, width int) string {
	var items []string
	for _, it := range l.Legend {
		swatch := "■"
		switch it.Swatch {
		case "bar":
			swatch = "━━"
		case "dashed":
			swatch = "╌╌"
		}
		items = append(items, lipgloss.NewStyle().Foreground(lipgloss.Color(it.Color)).Render(swatch)+" "+it.Label)
	}
	return lipgloss.NewStyle().Width(width).Foreground(m.pal.Muted).Render(strings.Join(items, "   "))
}

func (m *model) renderNarrative(width int) string {
	accent := m.pal.NonPeak
	if m.panel.Peak() {
		accent = m.pal.Peak
	}
	heading := lipgloss.NewStyle().Bold(true).Foreground(accent).Render(m.panel.ScenarioHeading())
	body := lipgloss.NewStyle().Foreground(m.pal.Text).Render(m.panel.Narrative())
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(accent).
		PaddingLeft(1).
		Width(width - 1).
		Render(heading + "\n" + body)
}

func (m *model) renderTags(title string, tags []string, c lipgloss.Color, width int) string {
	var rendered []string
	for _, t := range tags {
		rendered = append(rendered, lipgloss.NewStyle().Foreground(c).Render("["+t+"]"))
	}
	head := lipgloss.NewStyle().Bold(true).Foreground(m.pal.Text).Render(title)
	return head + "\n" + lipgloss.NewStyle().Width(width).Render(strings.Join(rendered, " "))
}

func (m *model) renderSceneNav(width int) string {
	muted := lipgloss.NewStyle().Foreground(m.pal.Muted)
	prev, next := "◀ Previous Scene", "Next Scene ▶"
	if m.nav.AtFirst() {
		prev = "◀ Last Scene"
	}
	if m.nav.AtLast() {
		next = "First Scene ▶"
	}
	left := muted.Render(prev)
	right := muted.Render(next)
	mid := lipgloss.NewStyle().Foreground(m.pal.Text).Render(fmt.Sprintf("Scene %d of %d", m.nav.Scene()+1, m.nav.SceneCount()))
	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - lipgloss.Width(mid)
	if gap < 2 {
		return left + "  " + mid + "  " + right
	}
	pad := strings.Repeat(" ", gap/2)
	return left + pad + mid + pad + strings.Repeat(" ", gap%2) + right
}

func (m *model) renderVenueMap(width int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(m.pal.Text).Render(content.VenueMapTitle)
	var legend []string
	for _, e := range content.MapLegend() {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(e.Color)).Render("●")
		name := lipgloss.NewStyle().Bold(true).Foreground(m.pal.Text).Render(e.Label)
		legend = append(legend, fmt.Sprintf("%s %s  %s", dot, name, lipgloss.NewStyle().Foreground(m.pal.Muted).Render(e.Hint)))
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		m.venueMapImage(width-4),
		"",
		strings.Join(legend, "\n"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.pal.Accent).
		Padding(0, 1).
		Width(width - 2).
		Render(body)
}

// directionMark shows which side the current scene came in from.
func directionMark(d engine.Direction) string {
	switch d {
	case engine.DirectionForward:
		return "▶ "
	case engine.DirectionBackward:
		return "◀ "
	}
	return ""
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 1 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
