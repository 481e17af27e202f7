package tickstyle

import (
	"checkinmonitor/internal/checkin"
	"checkinmonitor/internal/theme"
)

const (
	hatchOpacity  = 0.5
	hatchTilePx   = 3
	hatchAngleDeg = 45
)

// Border describes a tick outline.
type Border struct {
	Width int         `json:"width"`
	Style string      `json:"style"`
	Color theme.Color `json:"color"`
}

// GradientStop is a color at an offset along a gradient, in percent.
type GradientStop struct {
	Color  theme.Color `json:"color"`
	Offset float64     `json:"offset"`
}

// Gradient is a linear gradient at Angle degrees.
type Gradient struct {
	Angle int            `json:"angle"`
	Stops []GradientStop `json:"stops"`
}

// Size is a tile size in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// RenderSpec is the renderer-neutral fill of one tick. Solid ticks set Fill only; hatched
// ticks set Border, Background and TileSize and leave Fill empty.
type RenderSpec struct {
	Fill       theme.Color `json:"fill,omitempty"`
	Border     *Border     `json:"border,omitempty"`
	Opacity    float64     `json:"opacity"`
	Background []Gradient  `json:"background,omitempty"`
	TileSize   Size        `json:"tile_size"`
}

// Hatched reports whether r draws a crosshatch.
func (r RenderSpec) Hatched() bool {
	return len(r.Background) > 0
}

// Resolve derives the fill of a status tick, resolving palette tokens through lookup.
func Resolve(status checkin.Status, lookup theme.Lookup) RenderSpec {
	style := StyleFor(status)
	if !style.Hatched() {
		return RenderSpec{
			Fill:    lookup.Color(style.TickColor),
			Opacity: 1,
		}
	}
	return RenderSpec{
		Border: &Border{
			Width: 1,
			Style: "solid",
			Color: lookup.Color(style.TickColor),
		},
		Opacity:    hatchOpacity,
		Background: Crosshatch(lookup.Color(style.HatchColor)),
		TileSize:   Size{Width: hatchTilePx, Height: hatchTilePx},
	}
}

// Crosshatch returns two opposed diagonal stripe gradients of color. Layered together over
// a small repeating tile they weave into a crosshatch.
func Crosshatch(color theme.Color) []Gradient {
	return []Gradient{
		{Angle: -hatchAngleDeg, Stops: stripeStops(color)},
		{Angle: hatchAngleDeg, Stops: stripeStops(color)},
	}
}

// stripeStops alternates color and transparency in quarters, starting opaque.
func stripeStops(color theme.Color) []GradientStop {
	return []GradientStop{
		{Color: color, Offset: 0},
		{Color: color, Offset: 25},
		{Color: theme.Transparent, Offset: 25},
		{Color: theme.Transparent, Offset: 50},
		{Color: color, Offset: 50},
		{Color: color, Offset: 75},
		{Color: theme.Transparent, Offset: 75},
		{Color: theme.Transparent, Offset: 100},
	}
}
