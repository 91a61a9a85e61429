package engine

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/DaanHessen/crowdboard/internal/content"
)

func TestPanelStartsInPeak(t *testing.T) {
	s := content.Scenes()[0]
	p := NewPanel(s)
	if !p.Peak() || p.Narrative() != s.Peak {
		t.Fatalf("new panel should show peak narrative, mode=%s", p.Mode())
	}
	if p.ScenarioHeading() != "Peak Hours Scenario:" {
		t.Fatalf("heading: %q", p.ScenarioHeading())
	}
}

func TestPanelSetMode(t *testing.T) {
	s := content.Scenes()[2]
	p := NewPanel(s)
	p.SetMode(ModeNonPeak)
	if p.Peak() || p.Narrative() != s.NonPeak {
		t.Fatal("SetMode(non-peak) did not switch narrative")
	}
	p.SetMode(ModeNonPeak)
	if p.Peak() {
		t.Fatal("SetMode should be idempotent")
	}
	p.SetMode(ModePeak)
	if !p.Peak() {
		t.Fatal("SetMode(peak) did not switch back")
	}
}

func TestTogglePanelParity(t *testing.T) {
	scenes := content.Scenes()
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.SampledFrom(scenes).Draw(t, "scene")
		flips := rapid.IntRange(0, 40).Draw(t, "flips")
		p := NewPanel(s)
		for i := 0; i < flips; i++ {
			p.Toggle()
		}
		want := s.Peak
		if flips%2 == 1 {
			want = s.NonPeak
		}
		if p.Narrative() != want {
			t.Fatalf("after %d toggles got the wrong narrative", flips)
		}
	})
}
