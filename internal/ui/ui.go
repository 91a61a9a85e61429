package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/DaanHessen/crowdboard/internal/content"
	"github.com/DaanHessen/crowdboard/internal/diagram"
	"github.com/DaanHessen/crowdboard/internal/engine"
	"github.com/DaanHessen/crowdboard/internal/store"
	"github.com/DaanHessen/crowdboard/internal/text"
	"github.com/DaanHessen/crowdboard/internal/util"
)

const (
	defaultWidth  = 100
	defaultHeight = 32
)

// Options wires the model to its collaborators.
type Options struct {
	Config   util.Config
	Assets   *store.Assets
	Renderer text.Renderer
	Logger   *zap.Logger
	Version  string
	// StartTab opens a view other than the storyboard; empty means storyboard.
	StartTab engine.Tab
}

type model struct {
	nav    *engine.Navigator
	panel  *engine.Panel
	scenes []content.Scene
	// frame list cursor on the storyboard tab
	cursor int

	cfg      util.Config
	assets   *store.Assets
	renderer text.Renderer
	log      *zap.Logger
	copyText func(string) error
	version  string

	theme string
	pal   palette
	keys  keyMap
	help  help.Model
	vp    viewport.Model

	width  int
	height int
	status string
	// rendered venue map keyed by column width
	mapCache map[int]string
}

func newModel(opts Options) (model, error) {
	scenes := content.Scenes()
	nav, err := engine.NewNavigator(len(scenes))
	if err != nil {
		return model{}, err
	}
	if opts.Renderer == nil {
		opts.Renderer = text.Plain()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Assets == nil {
		opts.Assets = store.Open(opts.Config)
	}
	theme := opts.Config.Theme
	if _, ok := palettes[theme]; !ok {
		theme = defaultTheme
	}
	m := model{
		nav:      nav,
		scenes:   scenes,
		cfg:      opts.Config,
		assets:   opts.Assets,
		renderer: opts.Renderer,
		log:      opts.Logger,
		copyText: clipboard.WriteAll,
		version:  opts.Version,
		theme:    theme,
		pal:      paletteFor(theme),
		keys:     defaultKeyMap(),
		help:     help.New(),
		vp:       viewport.New(defaultWidth, defaultHeight),
		mapCache: map[int]string{},
	}
	m.vp.KeyMap = viewport.KeyMap{}
	if opts.StartTab != "" && !nav.SelectTab(opts.StartTab) {
		m.log.Warn("unknown start tab", zap.String("tab", string(opts.StartTab)))
	}
	m.mountPanel()
	m.refresh()
	return m, nil
}

// mountPanel builds a fresh panel for the current scene, so its peak flag
// starts over.
func (m *model) mountPanel() {
	m.panel = engine.NewPanel(m.scenes[m.nav.Scene()])
	m.cursor = m.nav.Scene()
}

// tea.Model implementation ---------------------------------------------------
func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.handleKey(msg)
		m.refresh()
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Theme):
		m.theme = nextThemeName(m.theme, 1)
		m.pal = paletteFor(m.theme)
		m.status = "theme: " + m.theme
	case key.Matches(msg, m.keys.NextTab):
		m.switchTab(func() { m.nav.NextTab() })
	case key.Matches(msg, m.keys.PrevTab):
		m.switchTab(func() { m.nav.PrevTab() })
	case key.Matches(msg, m.keys.Tabs):
		idx := int(msg.String()[0] - '1')
		m.switchTab(func() { m.nav.SelectTab(engine.AllTabs[idx]) })
	case key.Matches(msg, m.keys.PageDown):
		m.vp.ViewDown()
	case key.Matches(msg, m.keys.PageUp):
		m.vp.ViewUp()
	default:
		if m.nav.Tab() == engine.TabStoryboard {
			m.handleStoryboardKey(msg)
			return
		}
		switch {
		case key.Matches(msg, m.keys.Down):
			m.vp.LineDown(1)
		case key.Matches(msg, m.keys.Up):
			m.vp.LineUp(1)
		}
	}
}

func (m *model) handleStoryboardKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.NextScene):
		m.nav.Advance()
		m.sceneChanged()
	case key.Matches(msg, m.keys.PrevScene):
		m.nav.Retreat()
		m.sceneChanged()
	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % len(m.scenes)
	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor - 1 + len(m.scenes)) % len(m.scenes)
	case key.Matches(msg, m.keys.Select):
		prev := m.nav.Scene()
		// the panel is keyed by scene, so re-selecting the shown one keeps it
		if m.nav.SelectScene(m.cursor) && m.nav.Scene() != prev {
			m.sceneChanged()
		}
	case key.Matches(msg, m.keys.Toggle):
		m.panel.Toggle()
		m.log.Debug("panel toggled", zap.String("mode", string(m.panel.Mode())))
	case key.Matches(msg, m.keys.Peak):
		m.panel.SetMode(engine.ModePeak)
	case key.Matches(msg, m.keys.NonPeak):
		m.panel.SetMode(engine.ModeNonPeak)
	case key.Matches(msg, m.keys.VenueMap):
		m.nav.ToggleVenueMap()
		m.log.Debug("venue map toggled", zap.Bool("visible", m.nav.VenueMapVisible()))
	case key.Matches(msg, m.keys.Copy):
		m.copyNarrative()
	case key.Matches(msg, m.keys.Export):
		m.exportDiagram()
	}
}

func (m *model) sceneChanged() {
	m.mountPanel()
	m.vp.GotoTop()
	m.status = ""
	m.log.Debug("scene selected",
		zap.Int("scene", m.nav.Scene()),
		zap.String("direction", m.nav.Direction().String()))
}

// switchTab applies a tab change. Coming back to the storyboard remounts the
// panel, like any other fresh mount.
func (m *model) switchTab(change func()) {
	prev := m.nav.Tab()
	change()
	cur := m.nav.Tab()
	if cur == prev {
		return
	}
	if cur == engine.TabStoryboard {
		m.mountPanel()
	}
	m.vp.GotoTop()
	m.status = ""
	m.log.Debug("tab selected", zap.String("tab", string(cur)))
}

func (m *model) copyNarrative() {
	if err := m.copyText(m.panel.Narrative()); err != nil {
		m.status = "clipboard unavailable"
		m.log.Warn("clipboard copy failed", zap.Error(err))
		return
	}
	m.status = fmt.Sprintf("Copied %s narrative of scene %d", strings.ToLower(m.panel.Mode().Label()), m.panel.Scene().ID)
}

func (m *model) exportDiagram() {
	path := filepath.Join(m.cfg.ExportDir, diagram.FileName(m.panel.Peak(), "svg"))
	written, err := diagram.Save(diagram.Options{Path: path, Peak: m.panel.Peak()})
	if err != nil {
		m.status = "export failed: " + err.Error()
		m.log.Warn("diagram export failed", zap.String("path", path), zap.Error(err))
		return
	}
	m.status = "exported " + written
	m.log.Info("diagram exported", zap.String("path", written))
}

// Layout rendering -----------------------------------------------------------

func (m model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), m.renderTabs(), m.vp.View(), m.renderFooter())
}

// refresh re-renders the body into the viewport after any state change.
func (m *model) refresh() {
	w, h := m.size()
	chrome := lipgloss.Height(m.renderHeader()) + lipgloss.Height(m.renderTabs()) + lipgloss.Height(m.renderFooter())
	m.vp.Width = w
	m.vp.Height = max(h-chrome, 3)
	m.vp.SetContent(m.body())
}

func (m *model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

// body renders exactly one of the six top-level views.
func (m *model) body() string {
	switch m.nav.Tab() {
	case engine.TabStoryboard:
		return m.renderStoryboard()
	case engine.TabEmpathize:
		return m.markdown(text.Empathize(content.Stakeholders()))
	case engine.TabDefine:
		return m.markdown(text.Define(content.ProblemStatements(), content.DefineStats()))
	case engine.TabIdeate:
		return m.markdown(text.Ideate(content.Solutions()))
	case engine.TabPrototype:
		return m.renderPrototype()
	case engine.TabTest:
		return m.markdown(text.Test(content.Risks()))
	}
	return ""
}

func (m *model) markdown(md string) string {
	w, _ := m.size()
	out, err := m.renderer.Render(md, w-4)
	if err != nil {
		m.log.Warn("markdown render failed", zap.Error(err))
		return md
	}
	return out
}

func (m *model) renderPrototype() string {
	w, _ := m.size()
	var b strings.Builder
	b.WriteString(m.markdown(text.Prototype(content.SafetyFeatures())))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(m.pal.Accent).Render("German Hanger Venue Map"))
	b.WriteString("\n")
	b.WriteString(m.venueMapImage(w - 4))
	return b.String()
}

func (m *model) renderHeader() string {
	w, _ := m.size()
	title := lipgloss.NewStyle().Bold(true).Foreground(m.pal.Text).Render(content.Title)
	sub := lipgloss.NewStyle().Foreground(m.pal.Muted).Render(content.Subtitle)
	var pills []string
	for i, badge := range content.Badges() {
		bg := m.pal.Accent
		if i%2 == 1 {
			bg = m.pal.NonPeak
		}
		pills = append(pills, lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(bg).Render(badge))
	}
	left := lipgloss.JoinVertical(lipgloss.Left, title, sub)
	right := strings.Join(pills, " ")
	gap := w - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), right)
}

func (m *model) renderTabs() string {
	var parts []string
	for i, t := range engine.AllTabs {
		label := fmt.Sprintf("%d %s %s", i+1, t.Icon(), t.Label())
		style := lipgloss.NewStyle().Padding(0, 1).Foreground(m.pal.Muted)
		if t == m.nav.Tab() {
			style = style.Bold(true).Foreground(m.pal.Accent).Underline(true)
		}
		parts = append(parts, style.Render(label))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	return lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(m.pal.Border).Render(bar)
}

func (m *model) renderFooter() string {
	status := m.status
	if m.version != "" {
		status = strings.TrimSpace(status + "  crowdboard " + m.version)
	}
	line := lipgloss.NewStyle().Foreground(m.pal.Muted).Render(status)
	return lipgloss.JoinVertical(lipgloss.Left, line, m.help.View(m.keys))
}
