// Package tickstyle maps check-in statuses to the colors of timeline ticks and derives
// renderer-neutral fill specifications from them.
package tickstyle

import (
	"checkinmonitor/internal/checkin"
	"checkinmonitor/internal/theme"
)

// TickStyle holds the palette tokens used to draw one status.
type TickStyle struct {
	// TickColor fills the tick, or borders it when the tick is hatched.
	TickColor theme.Token `json:"tick_color"`
	// LabelColor is used for the status label in tooltips and legends.
	LabelColor theme.Token `json:"label_color"`
	// HatchColor, when set, replaces the solid fill with a crosshatch.
	HatchColor theme.Token `json:"hatch_color,omitempty"`
}

// Hatched reports whether the style draws a crosshatch instead of a solid fill.
func (s TickStyle) Hatched() bool {
	return s.HatchColor != ""
}

// Failed or indeterminate outcomes are hatched; definite ones are solid.
var tickStyles = [...]TickStyle{
	checkin.StatusOK: {
		TickColor:  theme.Green300,
		LabelColor: theme.Green400,
	},
	checkin.StatusError: {
		TickColor:  theme.Red300,
		LabelColor: theme.Red400,
		HatchColor: theme.Red200,
	},
	checkin.StatusInProgress: {
		TickColor:  theme.Disabled,
		LabelColor: theme.Disabled,
	},
	checkin.StatusMissed: {
		TickColor:  theme.Yellow300,
		LabelColor: theme.Yellow400,
	},
	checkin.StatusTimeout: {
		TickColor:  theme.Red300,
		LabelColor: theme.Red400,
		HatchColor: theme.Red200,
	},
	checkin.StatusUnknown: {
		TickColor:  theme.Gray300,
		LabelColor: theme.Gray400,
		HatchColor: theme.Gray200,
	},
}

var _ = [checkin.NumStatuses]TickStyle(tickStyles)

// StyleFor returns the tick style of status.
func StyleFor(status checkin.Status) TickStyle {
	return tickStyles[status.Index()]
}
