package engine

import "github.com/DaanHessen/crowdboard/internal/content"

// Panel is the per-scene view state. A fresh panel always opens in peak mode;
// the UI builds a new one whenever a different scene is mounted.
type Panel struct {
	scene content.Scene
	mode  Mode
}

func NewPanel(scene content.Scene) *Panel {
	return &Panel{scene: scene, mode: ModePeak}
}

func (p *Panel) Scene() content.Scene { return p.scene }
func (p *Panel) Mode() Mode           { return p.mode }
func (p *Panel) Peak() bool           { return p.mode == ModePeak }

func (p *Panel) Toggle() {
	if p.mode == ModePeak {
		p.mode = ModeNonPeak
	} else {
		p.mode = ModePeak
	}
}

// SetMode selects a mode directly; anything but ModeNonPeak means peak.
func (p *Panel) SetMode(m Mode) {
	if m == ModeNonPeak {
		p.mode = ModeNonPeak
		return
	}
	p.mode = ModePeak
}

// Narrative is the scene text for the current mode.
func (p *Panel) Narrative() string {
	if p.Peak() {
		return p.scene.Peak
	}
	return p.scene.NonPeak
}

func (p *Panel) ScenarioHeading() string {
	if p.Peak() {
		return "Peak Hours Scenario:"
	}
	return "Non-Peak Hours Scenario:"
}
