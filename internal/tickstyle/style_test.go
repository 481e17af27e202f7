package tickstyle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkinmonitor/internal/checkin"
	"checkinmonitor/internal/locale"
	"checkinmonitor/internal/theme"
)

// tokenEcho resolves every token to a recognisable fake color.
var tokenEcho = theme.LookupFunc(func(t theme.Token) theme.Color {
	return theme.Color("#" + string(t))
})

func TestStyleForTable(t *testing.T) {
	tests := []struct {
		status checkin.Status
		want   TickStyle
	}{
		{checkin.StatusOK, TickStyle{TickColor: theme.Green300, LabelColor: theme.Green400}},
		{checkin.StatusError, TickStyle{TickColor: theme.Red300, LabelColor: theme.Red400, HatchColor: theme.Red200}},
		{checkin.StatusInProgress, TickStyle{TickColor: theme.Disabled, LabelColor: theme.Disabled}},
		{checkin.StatusMissed, TickStyle{TickColor: theme.Yellow300, LabelColor: theme.Yellow400}},
		{checkin.StatusTimeout, TickStyle{TickColor: theme.Red300, LabelColor: theme.Red400, HatchColor: theme.Red200}},
		{checkin.StatusUnknown, TickStyle{TickColor: theme.Gray300, LabelColor: theme.Gray400, HatchColor: theme.Gray200}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StyleFor(tt.status), tt.status.String())
	}
}

func TestHatchOnlyForUncertainOutcomes(t *testing.T) {
	hatched := map[checkin.Status]bool{
		checkin.StatusError:   true,
		checkin.StatusTimeout: true,
		checkin.StatusUnknown: true,
	}
	for _, s := range checkin.Statuses() {
		style := StyleFor(s)
		assert.NotEmpty(t, style.TickColor, s.String())
		assert.NotEmpty(t, style.LabelColor, s.String())
		assert.Equal(t, hatched[s], style.Hatched(), s.String())
	}
}

func TestStyleForInvalidPanics(t *testing.T) {
	assert.Panics(t, func() { StyleFor(checkin.Status(-1)) })
}

func TestResolveSolid(t *testing.T) {
	for _, s := range []checkin.Status{checkin.StatusOK, checkin.StatusMissed, checkin.StatusInProgress} {
		spec := Resolve(s, tokenEcho)
		assert.False(t, spec.Hatched(), s.String())
		assert.Equal(t, RenderSpec{
			Fill:    theme.Color("#" + string(StyleFor(s).TickColor)),
			Opacity: 1,
		}, spec, s.String())
	}
}

func TestResolveHatched(t *testing.T) {
	spec := Resolve(checkin.StatusTimeout, tokenEcho)

	require.True(t, spec.Hatched())
	assert.Empty(t, spec.Fill)
	require.NotNil(t, spec.Border)
	assert.Equal(t, Border{Width: 1, Style: "solid", Color: "#red300"}, *spec.Border)
	assert.Equal(t, 0.5, spec.Opacity)
	assert.Equal(t, Size{Width: 3, Height: 3}, spec.TileSize)

	require.Len(t, spec.Background, 2)
	assert.Equal(t, -45, spec.Background[0].Angle)
	assert.Equal(t, 45, spec.Background[1].Angle)
	assert.Equal(t, spec.Background[0].Stops, spec.Background[1].Stops)

	offsets := make([]float64, 0, 8)
	colors := make([]theme.Color, 0, 8)
	for _, stop := range spec.Background[0].Stops {
		offsets = append(offsets, stop.Offset)
		colors = append(colors, stop.Color)
	}
	hatch := theme.Color("#red200")
	assert.Equal(t, []float64{0, 25, 25, 50, 50, 75, 75, 100}, offsets)
	assert.Equal(t, []theme.Color{
		hatch, hatch, theme.Transparent, theme.Transparent,
		hatch, hatch, theme.Transparent, theme.Transparent,
	}, colors)
}

func TestResolveUsesHatchColorPerStatus(t *testing.T) {
	unknown := Resolve(checkin.StatusUnknown, theme.Light())
	assert.Equal(t, theme.Light().Color(theme.Gray300), unknown.Border.Color)
	assert.Equal(t, theme.Light().Color(theme.Gray200), unknown.Background[0].Stops[0].Color)

	failed := Resolve(checkin.StatusError, theme.Dark())
	assert.Equal(t, theme.Dark().Color(theme.Red300), failed.Border.Color)
	assert.Equal(t, theme.Dark().Color(theme.Red200), failed.Background[1].Stops[4].Color)
}

func TestResolveIsIdempotent(t *testing.T) {
	for _, s := range checkin.Statuses() {
		assert.Equal(t, Resolve(s, theme.Light()), Resolve(s, theme.Light()), s.String())
	}
}

func TestCSS(t *testing.T) {
	assert.Equal(t, "background: #green300;", Resolve(checkin.StatusOK, tokenEcho).CSS())

	css := Resolve(checkin.StatusUnknown, tokenEcho).CSS()
	stripes := "#gray200 0%, #gray200 25%, transparent 25%, transparent 50%, " +
		"#gray200 50%, #gray200 75%, transparent 75%, transparent 100%"
	assert.Equal(t, strings.Join([]string{
		"border: 1px solid #gray300;",
		"background-size: 3px 3px;",
		"opacity: 0.5;",
		"background-image: linear-gradient(-45deg, " + stripes + "), linear-gradient(45deg, " + stripes + ");",
	}, "\n"), css)
}

func TestTerminal(t *testing.T) {
	term := Terminal{Lookup: theme.Light()}

	assert.Contains(t, term.Tick(checkin.StatusOK), GlyphSolid)
	assert.Contains(t, term.Tick(checkin.StatusError), GlyphHatch)
	assert.Contains(t, term.Blank(), GlyphBlank)
	assert.Contains(t, term.Label(checkin.StatusTimeout), "Timed Out")

	legend := strings.Split(term.Legend(), "\n")
	require.Len(t, legend, checkin.NumStatuses)
	assert.Contains(t, legend[0], "Okay")
	assert.Contains(t, legend[5], "Unknown")
}

func TestTerminalTranslatesLabels(t *testing.T) {
	term := Terminal{
		Lookup:    theme.Dark(),
		Localizer: &locale.Catalog{Language: "fr", Messages: map[string]string{"Missed": "Manqué"}},
	}
	assert.Contains(t, term.Label(checkin.StatusMissed), "Manqué")
}
