package tickstyle

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"checkinmonitor/internal/checkin"
	"checkinmonitor/internal/locale"
	"checkinmonitor/internal/theme"
)

// Glyphs used for terminal ticks.
const (
	GlyphSolid = "█"
	GlyphHatch = "▒"
	GlyphBlank = "·"
)

// Terminal draws ticks and labels with ANSI colors.
type Terminal struct {
	Lookup    theme.Lookup
	Localizer locale.Localizer
}

// Tick renders one tick for status. Hatched ticks draw the hatch color over the border
// color, since a terminal cell cannot be outlined.
func (t Terminal) Tick(status checkin.Status) string {
	spec := Resolve(status, t.Lookup)
	if !spec.Hatched() {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(spec.Fill)).
			Render(GlyphSolid)
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(spec.Background[0].Stops[0].Color))
	if spec.Border != nil {
		style = style.Background(lipgloss.Color(spec.Border.Color))
	}
	return style.Render(GlyphHatch)
}

// Blank renders a tick for a bucket without check-ins.
func (t Terminal) Blank() string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Lookup.Color(theme.Gray200))).
		Render(GlyphBlank)
}

// Label renders the translated label of status in its label color.
func (t Terminal) Label(status checkin.Status) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Lookup.Color(StyleFor(status).LabelColor))).
		Render(checkin.LabelFor(status, t.localizer()))
}

// Legend renders one "tick label" line per status.
func (t Terminal) Legend() string {
	lines := make([]string, 0, checkin.NumStatuses)
	for _, status := range checkin.Statuses() {
		lines = append(lines, t.Tick(status)+" "+t.Label(status))
	}
	return strings.Join(lines, "\n")
}

func (t Terminal) localizer() locale.Localizer {
	if t.Localizer == nil {
		return locale.Source
	}
	return t.Localizer
}
