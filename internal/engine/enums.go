package engine

// String backed enums so view state reads cleanly in logs.

type Tab string
type Mode string

// Direction records which way the last scene change moved. The storyboard
// marks the scene header with it.
type Direction int

const (
	TabStoryboard Tab = "storyboard"
	TabEmpathize  Tab = "empathize"
	TabDefine     Tab = "define"
	TabIdeate     Tab = "ideate"
	TabPrototype  Tab = "prototype"
	TabTest       Tab = "test"
)

// AllTabs is the display order of the tab bar.
var AllTabs = []Tab{TabStoryboard, TabEmpathize, TabDefine, TabIdeate, TabPrototype, TabTest}

const (
	ModePeak    Mode = "peak"
	ModeNonPeak Mode = "non_peak"
)

const (
	DirectionBackward Direction = -1
	DirectionNone     Direction = 0
	DirectionForward  Direction = 1
)

// Valid reports whether t is one of the six tabs.
func (t Tab) Valid() bool {
	switch t {
	case TabStoryboard, TabEmpathize, TabDefine, TabIdeate, TabPrototype, TabTest:
		return true
	}
	return false
}

func (t Tab) Label() string {
	switch t {
	case TabStoryboard:
		return "Storyboard"
	case TabEmpathize:
		return "Empathize"
	case TabDefine:
		return "Define"
	case TabIdeate:
		return "Ideate"
	case TabPrototype:
		return "Prototype"
	case TabTest:
		return "Test"
	}
	return string(t)
}

func (t Tab) Icon() string {
	switch t {
	case TabStoryboard:
		return "▶"
	case TabEmpathize:
		return "♥"
	case TabDefine:
		return "◎"
	case TabIdeate:
		return "✦"
	case TabPrototype:
		return "⚡"
	case TabTest:
		return "✓"
	}
	return "•"
}

// Index returns the position of t in AllTabs, or -1.
func (t Tab) Index() int {
	for i, v := range AllTabs {
		if v == t {
			return i
		}
	}
	return -1
}

// ParseTab maps an identifier such as "ideate" to its Tab.
func ParseTab(s string) (Tab, bool) {
	t := Tab(s)
	return t, t.Valid()
}

func (m Mode) Label() string {
	if m == ModePeak {
		return "Peak Hours (High Density)"
	}
	return "Non-Peak (Low Density)"
}

func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	}
	return "none"
}
