// Package diagram draws the venue schematic shown inside every storyboard
// panel. Build produces a Layout (pure data); the SVG, PNG and terminal
// renderers only translate that layout.
package diagram

import "fmt"

const (
	CanvasWidth  = 500
	CanvasHeight = 280

	PeakCrowd    = 20
	NonPeakCrowd = 6
)

type Kind int

const (
	KindRect Kind = iota
	KindLine
	KindCircle
	KindText
)

// Role tags what a shape depicts so renderers can pick glyphs and order.
type Role string

const (
	RoleBackground       Role = "background"
	RoleVenue            Role = "venue"
	RoleLabel            Role = "label"
	RoleStage            Role = "stage"
	RoleStairs           Role = "stairs"
	RoleCelebrityEntry   Role = "celebrity_entry"
	RoleCelebrityExit    Role = "celebrity_exit"
	RoleStrongBarricade  Role = "strong_barricade"
	RoleRemovable        Role = "removable_barricade"
	RoleEntry            Role = "entry"
	RoleAccessibleEntry  Role = "accessible_entry"
	RoleExit             Role = "exit"
	RoleEmergencyExit    Role = "emergency_exit"
	RoleGuard            Role = "guard"
	RoleCamera           Role = "camera"
	RoleSensor           Role = "sensor"
	RoleCapacity         Role = "capacity"
	RoleIconLetter       Role = "icon_letter"
	RoleCrowdZoneCaption Role = "crowd_zone"
)

type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
)

// Shape is one primitive of the fixed drawing. Lines use X,Y → X2,Y2; rects
// use X,Y,W,H; circles use X,Y,R; text is anchored at X,Y on its baseline.
type Shape struct {
	Kind        Kind
	Role        Role
	X, Y        int
	W, H        int
	X2, Y2      int
	R           int
	Corner      int
	Fill        string
	Stroke      string
	StrokeWidth int
	Dash        string
	Arrow       string // arrowhead colour at the line end
	Opacity     float64
	Text        string
	FontSize    int
	Anchor      Anchor
	Bold        bool
	Rotate      int // degrees about X,Y
}

// Alpha is the effective opacity; zero means fully opaque.
func (s Shape) Alpha() float64 {
	if s.Opacity == 0 {
		return 1
	}
	return s.Opacity
}

// Marker is one crowd dot.
type Marker struct {
	Index   int
	X, Y    int
	R       int
	Fill    string
	Opacity float64
}

type LegendItem struct {
	Label  string
	Color  string
	Swatch string // "block", "bar" or "dashed"
}

type Layout struct {
	Width, Height int
	Peak          bool
	Shapes        []Shape
	Crowd         []Marker
	Capacity      string
	Badge         string
	Legend        []LegendItem
}

const (
	colorBackground = "#f8fafc"
	colorOutline    = "#334155"
	colorMuted      = "#64748b"
	colorSlate      = "#94a3b8"
	colorInk        = "#0f172a"
	colorStageFill  = "#e0e7ff"
	colorStage      = "#6366f1"
	colorStageText  = "#4338ca"
	colorBlue       = "#2563eb"
	colorPurple     = "#9333ea"
	colorGreen      = "#16a34a"
	colorPink       = "#ec4899"
	colorYellow     = "#eab308"
	colorRed        = "#dc2626"
	colorGuard      = "#10b981"
	colorSensor     = "#f97316"
	colorCrowdPeak  = "#ef4444"
	colorCrowdCalm  = "#3b82f6"
	colorWhite      = "#ffffff"
)

// CrowdCount is the number of dots drawn for the given density.
func CrowdCount(peak bool) int {
	if peak {
		return PeakCrowd
	}
	return NonPeakCrowd
}

// CrowdPosition places dot i. Placement depends on the index only.
func CrowdPosition(i int) (x, y int) {
	x = 80 + (i%7)*50 + (i*17)%30
	y = 160 + (i/7)*25 + (i*23)%20
	return x, y
}

// Build lays out the venue for peak or non-peak hours. The same input always
// yields the same layout.
func Build(peak bool) Layout {
	l := Layout{Width: CanvasWidth, Height: CanvasHeight, Peak: peak}
	l.Shapes = append(l.Shapes, structure()...)
	l.Shapes = append(l.Shapes, exits(peak)...)
	l.Shapes = append(l.Shapes, staff()...)

	l.Capacity = "1,200 / 5,000"
	capColor := colorGreen
	l.Badge = "NON-PEAK (25% Capacity)"
	if peak {
		l.Capacity = "4,200 / 5,000"
		capColor = colorCrowdPeak
		l.Badge = "PEAK HOURS (85% Capacity)"
	}
	l.Shapes = append(l.Shapes,
		Shape{Kind: KindRect, Role: RoleCapacity, X: 360, Y: 245, W: 80, H: 25, Corner: 2, Fill: colorWhite, Stroke: colorMuted, StrokeWidth: 1},
		Shape{Kind: KindText, Role: RoleCapacity, X: 400, Y: 255, Text: "Capacity", FontSize: 8, Fill: colorMuted, Anchor: AnchorMiddle},
		Shape{Kind: KindText, Role: RoleCapacity, X: 400, Y: 267, Text: l.Capacity, FontSize: 10, Fill: capColor, Anchor: AnchorMiddle, Bold: true},
	)

	n := CrowdCount(peak)
	l.Crowd = make([]Marker, 0, n)
	for i := 0; i < n; i++ {
		x, y := CrowdPosition(i)
		m := Marker{Index: i, X: x, Y: y, R: 7, Fill: colorCrowdCalm, Opacity: 0.8}
		if peak {
			m.R = 5
			m.Fill = colorCrowdPeak
		}
		l.Crowd = append(l.Crowd, m)
	}

	l.Legend = []LegendItem{
		{Label: "General Entry", Color: "#22c55e", Swatch: "block"},
		{Label: "Accessible Entry", Color: colorPink, Swatch: "block"},
		{Label: "Regular Exit", Color: colorYellow, Swatch: "block"},
		{Label: "Emergency Exit", Color: "#ef4444", Swatch: "block"},
		{Label: "Strong Barricade", Color: colorInk, Swatch: "bar"},
		{Label: "Removable", Color: colorMuted, Swatch: "dashed"},
	}
	return l
}

func structure() []Shape {
	s := []Shape{
		{Kind: KindRect, Role: RoleBackground, W: CanvasWidth, H: CanvasHeight, Fill: colorBackground},
		{Kind: KindRect, Role: RoleVenue, X: 50, Y: 20, W: 400, H: 240, Corner: 4, Fill: "none", Stroke: colorOutline, StrokeWidth: 3},
		{Kind: KindText, Role: RoleLabel, X: 10, Y: 140, Text: "Open Campus Area", FontSize: 10, Fill: colorMuted, Rotate: -90},
		{Kind: KindText, Role: RoleLabel, X: 490, Y: 140, Text: "Open Campus Area", FontSize: 10, Fill: colorMuted, Rotate: 90},
		{Kind: KindRect, Role: RoleStage, X: 150, Y: 30, W: 200, H: 60, Corner: 2, Fill: colorStageFill, Stroke: colorStage, StrokeWidth: 2},
		{Kind: KindText, Role: RoleStage, X: 250, Y: 65, Text: "STAGE", FontSize: 16, Fill: colorStageText, Anchor: AnchorMiddle, Bold: true},
	}
	for i := 0; i < 4; i++ {
		y := 40 + i*8
		s = append(s, Shape{Kind: KindLine, Role: RoleStairs, X: 120, Y: y, X2: 140, Y2: y, Stroke: colorMuted, StrokeWidth: 2})
	}
	s = append(s,
		Shape{Kind: KindText, Role: RoleStairs, X: 130, Y: 80, Text: "Stairs", FontSize: 8, Fill: colorMuted, Anchor: AnchorMiddle},
		Shape{Kind: KindLine, Role: RoleCelebrityEntry, X: 250, Y: 20, X2: 250, Y2: 30, Stroke: colorBlue, StrokeWidth: 4, Arrow: colorBlue},
		Shape{Kind: KindText, Role: RoleCelebrityEntry, X: 270, Y: 25, Text: "Celebrity Entry", FontSize: 9, Fill: colorBlue},
		Shape{Kind: KindLine, Role: RoleCelebrityExit, X: 270, Y: 30, X2: 270, Y2: 20, Stroke: colorPurple, StrokeWidth: 3, Arrow: colorPurple},
		Shape{Kind: KindText, Role: RoleCelebrityExit, X: 285, Y: 18, Text: "Celebrity Exit", FontSize: 9, Fill: colorPurple},
		Shape{Kind: KindLine, Role: RoleStrongBarricade, X: 50, Y: 100, X2: 450, Y2: 100, Stroke: colorInk, StrokeWidth: 8},
		Shape{Kind: KindText, Role: RoleStrongBarricade, X: 460, Y: 105, Text: "Strong Barricade", FontSize: 8, Fill: colorInk},
		Shape{Kind: KindLine, Role: RoleRemovable, X: 50, Y: 140, X2: 450, Y2: 140, Stroke: colorMuted, StrokeWidth: 3, Dash: "8,4"},
		Shape{Kind: KindText, Role: RoleRemovable, X: 460, Y: 145, Text: "Removable", FontSize: 8, Fill: colorMuted},
		Shape{Kind: KindText, Role: RoleCrowdZoneCaption, X: 250, Y: 200, Text: "Crowd Zone", FontSize: 20, Fill: colorSlate, Anchor: AnchorMiddle, Bold: true, Opacity: 0.5},
		Shape{Kind: KindLine, Role: RoleEntry, X: 250, Y: 260, X2: 250, Y2: 240, Stroke: colorGreen, StrokeWidth: 5, Arrow: colorGreen},
		Shape{Kind: KindText, Role: RoleEntry, X: 250, Y: 275, Text: "General Entry", FontSize: 10, Fill: colorGreen, Anchor: AnchorMiddle, Bold: true},
		Shape{Kind: KindLine, Role: RoleAccessibleEntry, X: 120, Y: 260, X2: 120, Y2: 240, Stroke: colorPink, StrokeWidth: 5, Arrow: colorPink},
		Shape{Kind: KindText, Role: RoleAccessibleEntry, X: 120, Y: 275, Text: "Accessible Entry", FontSize: 9, Fill: colorPink, Anchor: AnchorMiddle},
	)
	return s
}

func exits(peak bool) []Shape {
	emergency := 0.3
	if peak {
		emergency = 1
	}
	s := []Shape{
		{Kind: KindLine, Role: RoleExit, X: 50, Y: 180, X2: 20, Y2: 180, Stroke: colorYellow, StrokeWidth: 4, Arrow: colorYellow},
		{Kind: KindLine, Role: RoleExit, X: 450, Y: 180, X2: 480, Y2: 180, Stroke: colorYellow, StrokeWidth: 4, Arrow: colorYellow},
		{Kind: KindText, Role: RoleExit, X: 465, Y: 195, Text: "Regular Exit", FontSize: 8, Fill: colorYellow, Anchor: AnchorMiddle},
		{Kind: KindLine, Role: RoleEmergencyExit, X: 50, Y: 120, X2: 20, Y2: 120, Stroke: colorRed, StrokeWidth: 4, Arrow: colorRed, Opacity: emergency},
		{Kind: KindLine, Role: RoleEmergencyExit, X: 450, Y: 120, X2: 480, Y2: 120, Stroke: colorRed, StrokeWidth: 4, Arrow: colorRed, Opacity: emergency},
	}
	if peak {
		s = append(s, Shape{Kind: KindText, Role: RoleEmergencyExit, X: 465, Y: 110, Text: "EMERGENCY", FontSize: 8, Fill: colorRed, Anchor: AnchorMiddle, Bold: true})
	}
	return s
}

var (
	guardPosts   = [][2]int{{100, 100}, {250, 100}, {400, 100}, {80, 140}, {420, 140}, {120, 240}, {250, 240}}
	cameraPosts  = [][2]int{{55, 35}, {433, 35}, {55, 220}, {433, 220}}
	sensorPoints = [][2]int{{60, 160}, {60, 200}, {440, 160}, {440, 200}, {140, 235}, {270, 235}}
)

func staff() []Shape {
	var s []Shape
	for _, p := range guardPosts {
		s = append(s,
			Shape{Kind: KindCircle, Role: RoleGuard, X: p[0], Y: p[1], R: 6, Fill: colorGuard},
			Shape{Kind: KindText, Role: RoleIconLetter, X: p[0] - 3, Y: p[1] + 4, Text: "G", FontSize: 8, Fill: colorWhite},
		)
	}
	for _, p := range cameraPosts {
		s = append(s,
			Shape{Kind: KindRect, Role: RoleCamera, X: p[0], Y: p[1], W: 12, H: 8, Corner: 1, Fill: colorStage},
			Shape{Kind: KindText, Role: RoleIconLetter, X: p[0] + 3, Y: p[1] + 6, Text: "C", FontSize: 6, Fill: colorWhite},
		)
	}
	for _, p := range sensorPoints {
		s = append(s,
			Shape{Kind: KindCircle, Role: RoleSensor, X: p[0], Y: p[1], R: 5, Fill: colorSensor, Opacity: 0.8},
			Shape{Kind: KindText, Role: RoleIconLetter, X: p[0] - 3, Y: p[1] + 3, Text: "T", FontSize: 5, Fill: colorWhite},
		)
	}
	return s
}

// Count returns how many shapes carry the given role.
func (l Layout) Count(role Role) int {
	n := 0
	for _, s := range l.Shapes {
		if s.Role == role {
			n++
		}
	}
	return n
}

func (l Layout) String() string {
	mode := "non-peak"
	if l.Peak {
		mode = "peak"
	}
	return fmt.Sprintf("venue layout (%s): %d shapes, %d crowd markers, capacity %s", mode, len(l.Shapes), len(l.Crowd), l.Capacity)
}
