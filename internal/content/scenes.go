package content

// StyleToken names the header gradient of a scene panel.
type StyleToken string

const (
	StylePurple  StyleToken = "purple"
	StyleEmerald StyleToken = "emerald"
	StyleAmber   StyleToken = "amber"
	StyleRose    StyleToken = "rose"
	StyleBlue    StyleToken = "blue"
)

var AllStyles = []StyleToken{StylePurple, StyleEmerald, StyleAmber, StyleRose, StyleBlue}

// Scene is one storyboard frame with a peak and a non-peak narrative.
type Scene struct {
	ID          int
	Label       string
	Title       string
	Visual      string
	Peak        string
	NonPeak     string
	Elements    []string
	Constraints []string
	Style       StyleToken
}

var scenes = []Scene{
	{
		ID:          1,
		Label:       "Scene 1: Arrival & Approach",
		Title:       "Students Enter from Open Campus Area",
		Visual:      "approach",
		Peak:        "Queue forms at both entry points (Green: General Entry, Pink: Specially-Abled Entry). Volunteers with signboards direct students. Digital displays show current crowd capacity (~4,200/5,000). Students with time-slot tickets get priority access. Security personnel positioned at queue start.",
		NonPeak:     "Students walk freely from Open Campus Area to entry points. No queues. Friendly volunteers welcome attendees. Capacity display shows ~800/5,000. Casual atmosphere with photo opportunities near entrance signage.",
		Elements:    []string{"2 Entry Points", "Queue Markers", "Digital Capacity Display", "Volunteer Guides", "Security Checkpoint"},
		Constraints: []string{"Max 5,000 capacity", "2 entry gates only", "ID verification mandatory"},
		Style:       StylePurple,
	},
	{
		ID:          2,
		Label:       "Scene 2: Entry & Security Screening",
		Title:       "ID Check at Designated Entry Gates",
		Visual:      "entry",
		Peak:        "All entry gates operational: Green Gate (General) processes 200 students/min, Pink Gate (Specially-Abled) has ramp access. Bag screening at both gates. Thermal sensors at entry detect crowd buildup. Guards monitor via CCTV. Students directed to least crowded zones based on real-time density data.",
		NonPeak:     "Single Green Gate operational. Quick ID verification (~10 seconds per student). No bag screening required. Guards at relaxed positions. Students freely choose viewing spots. Thermal sensors on standby.",
		Elements:    []string{"ID Verification", "Bag Screening", "Thermal Sensors", "CCTV Monitoring", "Guard Posts"},
		Constraints: []string{"Green Gate: General Entry", "Pink Gate: Accessible Entry", "No re-entry without stamp"},
		Style:       StyleEmerald,
	},
	{
		ID:          3,
		Label:       "Scene 3: Movement Through Crowd Zone",
		Title:       "Navigating to Viewing Area",
		Visual:      "movement",
		Peak:        "One-way circulation enforced via removable barricades (dotted line on map). Color-coded floor markings: Yellow arrows guide to side exits, Green arrows show entry flow. Thermal sensors on side walls monitor zone density. Guards positioned every 15 meters. Strong barricade (thick black line) separates crowd from stage area. Students in high-density zones (>80%) redirected to lower density areas.",
		NonPeak:     "Free movement throughout Crowd Zone. Removable barricades opened for flexible routing. Students explore different viewing angles. Easy access to all areas. Guards at perimeter positions only. No flow restrictions.",
		Elements:    []string{"Removable Barricades", "Floor Markings", "Side Thermal Sensors", "Guard Positions", "Density Monitors"},
		Constraints: []string{"Strong barricade: Non-removable", "Stage area: Restricted", "Max density: 5 people/m²"},
		Style:       StyleAmber,
	},
	{
		ID:          4,
		Label:       "Scene 4: Performance Experience",
		Title:       "Viewing from Crowd Zone Near Stage",
		Visual:      "experience",
		Peak:        "Crowd Zone at ~85% capacity (4,250 people). Strong barricade (non-removable) maintains 3-meter safety buffer from stage. Guards positioned along barricade every 5 meters. CCTV cameras at stage corners monitor crowd behavior. Thermal sensors detect any surge toward stage. Celebrity entry/exit (Blue/Purple arrows at top) completely separate from crowd flow. Stairs on stage left for performer access.",
		NonPeak:     "Crowd Zone at ~30% capacity (1,500 people). Students can approach closer to strong barricade. Relaxed viewing with space to move. Guards at stage corners only. CCTV recording continues. Opportunity for better photos and videos.",
		Elements:    []string{"Strong Barricade", "Stage Buffer Zone", "CCTV Coverage", "Celebrity Entry/Exit", "Guard Cordon"},
		Constraints: []string{"3m minimum from stage", "No crossing strong barricade", "Celebrity access: Separate"},
		Style:       StyleRose,
	},
	{
		ID:          5,
		Label:       "Scene 5: Exit & Emergency Protocols",
		Title:       "Departure via Designated Exit Points",
		Visual:      "exit",
		Peak:        "Staggered exit activated. Yellow arrows: Regular exits (left/right sides) for controlled crowd. Red arrows: Emergency exits (same locations) activated if density exceeds safe threshold. Guards guide flow to prevent bottlenecks. Thermal sensors monitor exit congestion. All exits lead to Open Campus Area. Emergency response team on standby. Medical aid station near exit.",
		NonPeak:     "Regular exits (Yellow arrows) handle flow smoothly. Students exit at own pace through left or right side. No congestion. Guards at exit positions for general assistance. Emergency exits remain closed but monitored.",
		Elements:    []string{"2 Regular Exits", "2 Emergency Exits", "Exit Signage", "Medical Station", "Emergency Team"},
		Constraints: []string{"Emergency exits: Staff-only activation", "Evacuation target: <5 min", "No re-entry after exit"},
		Style:       StyleBlue,
	},
}

// Scenes returns the storyboard frames in display order.
func Scenes() []Scene {
	out := make([]Scene, len(scenes))
	for i, s := range scenes {
		out[i] = s.clone()
	}
	return out
}

// SceneCount is the number of storyboard frames.
func SceneCount() int { return len(scenes) }

func (s Scene) clone() Scene {
	s.Elements = append([]string(nil), s.Elements...)
	s.Constraints = append([]string(nil), s.Constraints...)
	return s
}
