package content

// Icon is a glyph shown next to a card heading.
type Icon string

const (
	IconUsers       Icon = "👥"
	IconZap         Icon = "⚡"
	IconUserCheck   Icon = "✔"
	IconShield      Icon = "🛡"
	IconCamera      Icon = "📷"
	IconRadio       Icon = "📡"
	IconStethoscope Icon = "🩺"
	IconAlert       Icon = "⚠"
	IconCheck       Icon = "✓"
	IconMapPin      Icon = "📍"
)

type Stakeholder struct {
	Role     string
	Concern  string
	Solution string
	Icon     Icon
}

type Stat struct {
	Label string
	Value string
}

type SolutionCategory struct {
	Category string
	Items    []string
}

type SafetyFeature struct {
	Icon  Icon
	Label string
	Value string
	Desc  string
}

// Risk pairs a failure scenario with its mitigation.
type Risk struct {
	Risk       string
	Mitigation string
}

// LegendEntry describes one marker on the full venue map.
type LegendEntry struct {
	Label string
	Hint  string
	Color string
}

var stakeholders = []Stakeholder{
	{Role: "Student Participants", Concern: "Long waits & overcrowding anxiety", Solution: "Time-slot entry + 2 entry gates + real-time capacity display", Icon: IconUsers},
	{Role: "Performers/Artists", Concern: "Backstage safety & quick access", Solution: "Dedicated Blue entry + Purple exit + strong barricade protection", Icon: IconZap},
	{Role: "Volunteers", Concern: "Managing crowd surge & communication", Solution: "Radio comms + clear protocols + thermal sensor alerts", Icon: IconUserCheck},
	{Role: "Security Staff", Concern: "Emergency response & evacuation", Solution: "CCTV coverage + guard posts every 15m + emergency exits", Icon: IconShield},
}

var problemStatements = []string{
	"How might we manage continuous crowd inflow/outflow in a 24x7 setting with only 2 entry points?",
	"How might we prevent congestion at entry, exit, and the strong barricade zone during peak hours?",
	"How might we ensure safety with 5,000 max capacity while maintaining festive experience?",
}

var defineStats = []Stat{
	{Label: "Duration", Value: "24x7"},
	{Label: "Max Capacity", Value: "5,000"},
	{Label: "Entry Points", Value: "2"},
	{Label: "Safety Goal", Value: "Zero Incidents"},
}

var solutions = []SolutionCategory{
	{Category: "Entry/Exit Management", Items: []string{
		"Green Gate: General entry (bottom center)",
		"Pink Gate: Specially-abled entry (bottom left)",
		"Yellow exits: Regular crowd exit (left/right)",
		"Red exits: Emergency only (same locations)",
	}},
	{Category: "Zone Control", Items: []string{
		"Strong barricade: Non-removable stage protection",
		"Removable barricades: Flexible crowd routing",
		"Crowd Zone: Max 5,000 capacity",
		"Stage Buffer: 3-meter safety zone",
	}},
	{Category: "Safety Infrastructure", Items: []string{
		"CCTV cameras: Stage corners + entry points",
		"Thermal sensors: Side walls + entry gates",
		"Security guards: Every 15m in peak hours",
		"Medical station: Near exit points",
	}},
}

var safetyFeatures = []SafetyFeature{
	{Icon: IconCamera, Label: "CCTV Cameras", Value: "6+", Desc: "Stage corners & entries"},
	{Icon: IconRadio, Label: "Thermal Sensors", Value: "8+", Desc: "Side walls & gates"},
	{Icon: IconShield, Label: "Security Guards", Value: "15+", Desc: "Strategic posts"},
	{Icon: IconStethoscope, Label: "Medical Aid", Value: "On-site", Desc: "Near exits"},
}

var risks = []Risk{
	{Risk: "Entry bottleneck with only 2 entry gates during peak", Mitigation: "Time-slot tickets + 200 students/min processing rate + queue management"},
	{Risk: "Crowd surge toward stage breaking strong barricade", Mitigation: "3-meter buffer zone + guard cordon every 5m + thermal surge alerts"},
	{Risk: "Emergency evacuation with 5,000 people", Mitigation: "4 exit points (2 regular + 2 emergency) + staggered exit protocol"},
	{Risk: "Medical emergency in dense crowd zone", Mitigation: "Medical station near exits + quick access paths + ambulance standby"},
}

var mapLegend = []LegendEntry{
	{Label: "General Entry", Hint: "Green arrow - Bottom center", Color: "#16a34a"},
	{Label: "Accessible Entry", Hint: "Pink arrow - Bottom left", Color: "#ec4899"},
	{Label: "Regular Exits", Hint: "Yellow arrows - Left & Right", Color: "#eab308"},
	{Label: "Emergency Exits", Hint: "Red arrows - Staff activated", Color: "#dc2626"},
}

func Stakeholders() []Stakeholder { return append([]Stakeholder(nil), stakeholders...) }

func ProblemStatements() []string { return append([]string(nil), problemStatements...) }

func DefineStats() []Stat { return append([]Stat(nil), defineStats...) }

// Solutions returns the ideation categories with their items copied.
func Solutions() []SolutionCategory {
	out := make([]SolutionCategory, len(solutions))
	for i, s := range solutions {
		out[i] = SolutionCategory{Category: s.Category, Items: append([]string(nil), s.Items...)}
	}
	return out
}

func SafetyFeatures() []SafetyFeature { return append([]SafetyFeature(nil), safetyFeatures...) }

func Risks() []Risk { return append([]Risk(nil), risks...) }

func MapLegend() []LegendEntry { return append([]LegendEntry(nil), mapLegend...) }
