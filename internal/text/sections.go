package text

import (
	"fmt"
	"strings"

	"github.com/DaanHessen/crowdboard/internal/content"
)

// Section headings, shared with the UI so each view can be identified.
const (
	HeadingEmpathize = "Understanding Stakeholders"
	HeadingDefine    = "Problem Definition"
	HeadingIdeate    = "Solution Ideas"
	HeadingPrototype = "Conceptual Design"
	HeadingTest      = "Testing & Validation"
)

func Empathize(stakeholders []content.Stakeholder) string {
	var b strings.Builder
	b.WriteString("# " + HeadingEmpathize + "\n\n")
	b.WriteString("Who are we designing for and what do they need?\n\n")
	for _, s := range stakeholders {
		fmt.Fprintf(&b, "## %s %s\n\n", s.Icon, s.Role)
		fmt.Fprintf(&b, "- **Concern:** %s\n", s.Concern)
		fmt.Fprintf(&b, "- **Solution:** %s\n\n", s.Solution)
	}
	return b.String()
}

func Define(problems []string, stats []content.Stat) string {
	var b strings.Builder
	b.WriteString("# " + HeadingDefine + "\n\n")
	b.WriteString("Framing the core challenges\n\n")
	for i, p := range problems {
		fmt.Fprintf(&b, "%d. **How might we** %s\n", i+1, strings.TrimPrefix(p, "How might we "))
	}
	b.WriteString("\n---\n\n")
	for _, s := range stats {
		fmt.Fprintf(&b, "- **%s** %s\n", s.Value, s.Label)
	}
	return b.String()
}

func Ideate(solutions []content.SolutionCategory) string {
	var b strings.Builder
	b.WriteString("# " + HeadingIdeate + "\n\n")
	b.WriteString("Brainstorming crowd management strategies\n\n")
	for _, s := range solutions {
		fmt.Fprintf(&b, "## %s\n\n", s.Category)
		for _, item := range s.Items {
			fmt.Fprintf(&b, "- %s %s\n", content.IconCheck, item)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Prototype covers the text part of the prototype view; the venue map image
// itself is drawn by the UI.
func Prototype(features []content.SafetyFeature) string {
	var b strings.Builder
	b.WriteString("# " + HeadingPrototype + "\n\n")
	b.WriteString("Visual layout and safety infrastructure\n\n")
	for _, f := range features {
		fmt.Fprintf(&b, "- %s **%s** %s: _%s_\n", f.Icon, f.Value, f.Label, f.Desc)
	}
	return b.String()
}

func Test(risks []content.Risk) string {
	var b strings.Builder
	b.WriteString("# " + HeadingTest + "\n\n")
	b.WriteString("Risk assessment and failure mitigation\n\n")
	for _, r := range risks {
		fmt.Fprintf(&b, "## %s %s\n\n", content.IconAlert, r.Risk)
		fmt.Fprintf(&b, "%s %s\n\n", content.IconCheck, r.Mitigation)
	}
	return b.String()
}
