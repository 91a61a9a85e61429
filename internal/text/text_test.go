package text

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/DaanHessen/crowdboard/internal/content"
)

func TestCacheKeyDeterminism(t *testing.T) {
	k1 := CacheKey("# title", 80)
	k2 := CacheKey("# title", 80)
	if k1 != k2 {
		t.Fatal("CacheKey not stable for equal input")
	}
	if CacheKey("# title", 81) == k1 {
		t.Fatal("CacheKey should depend on width")
	}
	if CacheKey("# other", 80) == k1 {
		t.Fatal("CacheKey should depend on markdown")
	}
}

func TestPlainStripsMarkdown(t *testing.T) {
	out, err := Plain().Render("# Heading\n\n- **Concern:** waits\n", 80)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "#") || strings.Contains(out, "**") {
		t.Fatalf("markers left in output: %q", out)
	}
	if !strings.Contains(out, "• Concern: waits") {
		t.Fatalf("bullet not converted: %q", out)
	}
}

func TestPlainWraps(t *testing.T) {
	out, _ := Plain().Render(strings.Repeat("word ", 30), 20)
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if len(line) > 20 {
			t.Fatalf("line exceeds width: %q", line)
		}
	}
}

func TestPlainWrapsBulletsByDisplayWidth(t *testing.T) {
	md := "- " + strings.Repeat("crowd ", 12)
	out, _ := Plain().Render(md, 16)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 2 || !strings.HasPrefix(lines[0], "• ") {
		t.Fatalf("bullet not wrapped: %q", out)
	}
	words := 0
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > 16 {
			t.Fatalf("line wider than 16 cells: %q", line)
		}
		words += len(strings.Fields(strings.TrimPrefix(line, "• ")))
	}
	if words != 12 {
		t.Fatalf("wrapping dropped words: %d", words)
	}
}

type failing struct{}

func (failing) Render(string, int) (string, error) { return "", errors.New("boom") }

func TestWithFallback(t *testing.T) {
	r := WithFallback(failing{}, Plain())
	out, err := r.Render("**bold**", 40)
	if err != nil || strings.TrimSpace(out) != "bold" {
		t.Fatalf("fallback not used: %q %v", out, err)
	}
	r = WithFallback(nil, Plain())
	if _, err := r.Render("x", 10); err != nil {
		t.Fatalf("nil primary: %v", err)
	}
}

func TestSectionsCarryContent(t *testing.T) {
	cases := []struct {
		name, md, heading, sample string
	}{
		{"empathize", Empathize(content.Stakeholders()), HeadingEmpathize, "Security Staff"},
		{"define", Define(content.ProblemStatements(), content.DefineStats()), HeadingDefine, "Zero Incidents"},
		{"ideate", Ideate(content.Solutions()), HeadingIdeate, "Zone Control"},
		{"prototype", Prototype(content.SafetyFeatures()), HeadingPrototype, "Thermal Sensors"},
		{"test", Test(content.Risks()), HeadingTest, "staggered exit protocol"},
	}
	for _, tc := range cases {
		if !strings.HasPrefix(tc.md, "# "+tc.heading) {
			t.Fatalf("%s: heading missing", tc.name)
		}
		if !strings.Contains(tc.md, tc.sample) {
			t.Fatalf("%s: expected %q in markdown", tc.name, tc.sample)
		}
	}
}

func TestDefineKeepsHowMightWeOnce(t *testing.T) {
	md := Define(content.ProblemStatements(), nil)
	if strings.Contains(md, "How might we How might we") {
		t.Fatal("prefix duplicated")
	}
	if strings.Count(md, "**How might we**") != 3 {
		t.Fatalf("expected three framed statements:\n%s", md)
	}
}
