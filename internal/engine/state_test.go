package engine

import (
	"errors"
	"testing"

	"pgregory.net/rapid"
)

func TestNewNavigatorDefaults(t *testing.T) {
	n, err := NewNavigator(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Scene() != 0 || n.Tab() != TabStoryboard || n.VenueMapVisible() || n.Direction() != DirectionNone {
		t.Fatalf("unexpected initial state: scene=%d tab=%s map=%v dir=%s", n.Scene(), n.Tab(), n.VenueMapVisible(), n.Direction())
	}
}

func TestNewNavigatorRejectsEmpty(t *testing.T) {
	if _, err := NewNavigator(0); !errors.Is(err, ErrNoScenes) {
		t.Fatalf("expected ErrNoScenes, got %v", err)
	}
}

func TestAdvanceWrapsAfterFiveScenes(t *testing.T) {
	n, _ := NewNavigator(5)
	for i := 0; i < 3; i++ {
		n.Advance()
	}
	if n.Scene() != 3 {
		t.Fatalf("after 3 advances want 3, got %d", n.Scene())
	}
	n.Advance()
	n.Advance()
	if n.Scene() != 0 {
		t.Fatalf("after 5 advances want 0, got %d", n.Scene())
	}
	if n.Direction() != DirectionForward {
		t.Fatalf("direction: %s", n.Direction())
	}
}

func TestRetreatFromZeroWrapsToLast(t *testing.T) {
	n, _ := NewNavigator(5)
	n.Retreat()
	if n.Scene() != 4 || !n.AtLast() {
		t.Fatalf("want 4, got %d", n.Scene())
	}
	if n.Direction() != DirectionBackward {
		t.Fatalf("direction: %s", n.Direction())
	}
}

func TestSelectSceneDirection(t *testing.T) {
	n, _ := NewNavigator(5)
	if !n.SelectScene(3) || n.Direction() != DirectionForward {
		t.Fatalf("forward jump failed: scene=%d dir=%s", n.Scene(), n.Direction())
	}
	if !n.SelectScene(1) || n.Direction() != DirectionBackward {
		t.Fatalf("backward jump failed: scene=%d dir=%s", n.Scene(), n.Direction())
	}
	if !n.SelectScene(1) || n.Direction() != DirectionBackward {
		t.Fatalf("same-index jump should read as backward, got %s", n.Direction())
	}
	if n.SelectScene(5) || n.SelectScene(-1) || n.Scene() != 1 {
		t.Fatalf("out of range jump changed state: %d", n.Scene())
	}
}

func TestSelectTabAndCycle(t *testing.T) {
	n, _ := NewNavigator(5)
	if n.SelectTab(Tab("settings")) || n.Tab() != TabStoryboard {
		t.Fatal("unknown tab accepted")
	}
	if !n.SelectTab(TabTest) {
		t.Fatal("valid tab rejected")
	}
	n.NextTab()
	if n.Tab() != TabStoryboard {
		t.Fatalf("next after test should wrap to storyboard, got %s", n.Tab())
	}
	n.PrevTab()
	if n.Tab() != TabTest {
		t.Fatalf("prev from storyboard should wrap to test, got %s", n.Tab())
	}
}

func TestToggleVenueMap(t *testing.T) {
	n, _ := NewNavigator(5)
	n.ToggleVenueMap()
	if !n.VenueMapVisible() {
		t.Fatal("map should be visible")
	}
	n.ToggleVenueMap()
	if n.VenueMapVisible() {
		t.Fatal("map should be hidden")
	}
}

func TestAdvanceRetreatInverse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		count := rapid.IntRange(1, 12).Draw(t, "count")
		start := rapid.IntRange(0, count-1).Draw(t, "start")
		forwardFirst := rapid.Bool().Draw(t, "forwardFirst")
		n, err := NewNavigator(count)
		if err != nil {
			t.Fatalf("navigator: %v", err)
		}
		n.SelectScene(start)
		if forwardFirst {
			n.Advance()
			n.Retreat()
		} else {
			n.Retreat()
			n.Advance()
		}
		if n.Scene() != start {
			t.Fatalf("round trip from %d landed on %d (count %d)", start, n.Scene(), count)
		}
	})
}

func TestSceneIndexStaysInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		count := rapid.IntRange(1, 12).Draw(t, "count")
		n, _ := NewNavigator(count)
		ops := rapid.SliceOf(rapid.IntRange(0, 3)).Draw(t, "ops")
		for _, op := range ops {
			switch op {
			case 0:
				n.Advance()
			case 1:
				n.Retreat()
			case 2:
				n.SelectScene(rapid.IntRange(-3, count+3).Draw(t, "jump"))
			case 3:
				n.SelectTab(rapid.SampledFrom(AllTabs).Draw(t, "tab"))
			}
			if n.Scene() < 0 || n.Scene() >= count {
				t.Fatalf("scene %d out of [0,%d)", n.Scene(), count)
			}
			if !n.Tab().Valid() {
				t.Fatalf("invalid tab %q", n.Tab())
			}
		}
	})
}
