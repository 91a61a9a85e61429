package content

import (
	"strings"
	"testing"
)

func TestScenesAreOrderedAndComplete(t *testing.T) {
	ss := Scenes()
	if len(ss) != 5 || SceneCount() != 5 {
		t.Fatalf("expected 5 scenes, got %d (count %d)", len(ss), SceneCount())
	}
	for i, s := range ss {
		if s.ID != i+1 {
			t.Fatalf("scene %d has id %d", i, s.ID)
		}
		if s.Peak == "" || s.NonPeak == "" || s.Peak == s.NonPeak {
			t.Fatalf("scene %d needs two distinct narratives", s.ID)
		}
		if len(s.Elements) == 0 || len(s.Constraints) == 0 {
			t.Fatalf("scene %d missing tags", s.ID)
		}
		if !strings.HasPrefix(s.Label, "Scene ") {
			t.Fatalf("unexpected label %q", s.Label)
		}
	}
}

func TestScenesReturnsCopies(t *testing.T) {
	a := Scenes()
	a[0].Elements[0] = "mutated"
	a[0].Title = "mutated"
	b := Scenes()
	if b[0].Elements[0] == "mutated" || b[0].Title == "mutated" {
		t.Fatal("Scenes leaked the backing table")
	}
	sol := Solutions()
	sol[0].Items[0] = "mutated"
	if Solutions()[0].Items[0] == "mutated" {
		t.Fatal("Solutions leaked the backing table")
	}
}

func TestSceneStylesAreKnown(t *testing.T) {
	known := map[StyleToken]bool{}
	for _, s := range AllStyles {
		known[s] = true
	}
	for _, s := range Scenes() {
		if !known[s.Style] {
			t.Fatalf("scene %d uses unknown style %q", s.ID, s.Style)
		}
	}
}

func TestSectionTables(t *testing.T) {
	if n := len(Stakeholders()); n != 4 {
		t.Fatalf("stakeholders: %d", n)
	}
	for _, p := range ProblemStatements() {
		if !strings.HasPrefix(p, "How might we ") {
			t.Fatalf("problem statement not framed: %q", p)
		}
	}
	if n := len(SafetyFeatures()); n != 4 {
		t.Fatalf("safety features: %d", n)
	}
	if n := len(Risks()); n != 4 {
		t.Fatalf("risks: %d", n)
	}
	if n := len(MapLegend()); n != 4 {
		t.Fatalf("legend: %d", n)
	}
}
