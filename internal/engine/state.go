package engine

import "errors"

// ErrNoScenes is returned when a navigator is built over an empty storyboard.
var ErrNoScenes = errors.New("scene list must not be empty")

// Navigator holds the root view state: which scene is showing, which tab is
// active and whether the full venue map is open. It is owned by a single UI
// model and mutated only from its event handlers.
type Navigator struct {
	scene      int
	count      int
	direction  Direction
	tab        Tab
	mapVisible bool
}

// NewNavigator starts at scene 0 on the storyboard tab with the map hidden.
func NewNavigator(sceneCount int) (*Navigator, error) {
	if sceneCount < 1 {
		return nil, ErrNoScenes
	}
	return &Navigator{count: sceneCount, tab: TabStoryboard}, nil
}

func (n *Navigator) Scene() int           { return n.scene }
func (n *Navigator) SceneCount() int      { return n.count }
func (n *Navigator) Direction() Direction { return n.direction }
func (n *Navigator) Tab() Tab             { return n.tab }
func (n *Navigator) VenueMapVisible() bool {
	return n.mapVisible
}

// AtFirst and AtLast report the carousel ends; navigation still wraps.
func (n *Navigator) AtFirst() bool { return n.scene == 0 }
func (n *Navigator) AtLast() bool  { return n.scene == n.count-1 }

// Advance moves to the next scene, wrapping to 0 after the last one.
func (n *Navigator) Advance() {
	n.direction = DirectionForward
	n.scene = (n.scene + 1) % n.count
}

// Retreat moves to the previous scene, wrapping to the last from 0.
func (n *Navigator) Retreat() {
	n.direction = DirectionBackward
	n.scene = (n.scene - 1 + n.count) % n.count
}

// SelectScene jumps straight to i. Indices outside the storyboard are ignored.
func (n *Navigator) SelectScene(i int) bool {
	if i < 0 || i >= n.count {
		return false
	}
	if i > n.scene {
		n.direction = DirectionForward
	} else {
		n.direction = DirectionBackward
	}
	n.scene = i
	return true
}

// SelectTab activates t; unknown tabs leave the state untouched.
func (n *Navigator) SelectTab(t Tab) bool {
	if !t.Valid() {
		return false
	}
	n.tab = t
	return true
}

func (n *Navigator) NextTab() { n.stepTab(1) }
func (n *Navigator) PrevTab() { n.stepTab(-1) }

func (n *Navigator) stepTab(step int) {
	idx := n.tab.Index()
	if idx < 0 {
		idx = 0
	}
	idx = (idx + step) % len(AllTabs)
	if idx < 0 {
		idx += len(AllTabs)
	}
	n.tab = AllTabs[idx]
}

func (n *Navigator) ToggleVenueMap() { n.mapVisible = !n.mapVisible }
