package view

import (
	"strings"

	"weather-widget/models"
)

// Panel is what the result panel shows for a snapshot. Fields that the
// current state does not populate are left empty
type Panel struct {
	Phase       string      `json:"phase"`
	Expanded    bool        `json:"expanded"`
	Loading     bool        `json:"loading"`
	Location    string      `json:"location,omitempty"`
	Icon        models.Icon `json:"icon"`
	Label       string      `json:"label,omitempty"`
	Temperature string      `json:"temperature,omitempty"`
}

// Render builds the panel for a snapshot
func Render(s Snapshot) Panel {
	p := Panel{Phase: s.State.Phase().String(), Expanded: s.Expanded}

	switch s.State.Phase() {
	case PhaseLoading:
		p.Loading = true
		p.Icon = models.LoadingIcon
	case PhaseNotFound:
		p.Icon = models.IconFor(models.NotFound)
		p.Label = string(models.NotFound)
	case PhaseSucceeded:
		r, _ := s.State.Result()
		p.Location = r.Location()
		p.Icon = r.Icon()
		if r.Matched {
			p.Label = string(r.Category)
		}
		p.Temperature = r.FormatTemperature()
	}
	return p
}

// HasIcon reports whether the panel shows an image
func (p Panel) HasIcon() bool {
	return p.Icon.Asset != ""
}

// Text renders the panel for a terminal, one item per line. A collapsed
// panel renders as nothing, spinner included
func (p Panel) Text() string {
	if !p.Expanded {
		return ""
	}
	if p.Loading {
		return p.Icon.Glyph + " loading\n"
	}

	var b strings.Builder
	if p.Location != "" {
		b.WriteString(p.Location + "\n")
	}
	switch {
	case p.HasIcon() && p.Label != "":
		b.WriteString(p.Icon.Glyph + " " + p.Label + "\n")
	case p.Label != "":
		b.WriteString(p.Label + "\n")
	}
	if p.Temperature != "" {
		b.WriteString(models.TemperatureIcon.Glyph + " " + p.Temperature + "\n")
	}
	return b.String()
}
