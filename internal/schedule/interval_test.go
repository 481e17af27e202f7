package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"checkinmonitor/internal/locale"
)

func TestIntervalsForSingular(t *testing.T) {
	assert.Equal(t, []Option{
		{Value: Minute, Label: "minute"},
		{Value: Hour, Label: "hour"},
		{Value: Day, Label: "day"},
		{Value: Week, Label: "week"},
		{Value: Month, Label: "month"},
		{Value: Year, Label: "year"},
	}, IntervalsFor(1, locale.Source))
}

func TestIntervalsForPlural(t *testing.T) {
	for _, n := range []int{0, 2, 5, -1} {
		got := IntervalsFor(n, locale.Source)
		assert.Len(t, got, 6)
		for i, unit := range Units() {
			assert.Equal(t, unit, got[i].Value)
			assert.Equal(t, string(unit)+"s", got[i].Label, "n=%d", n)
		}
	}
}

func TestIntervalsForFreshSlice(t *testing.T) {
	first := IntervalsFor(3, locale.Source)
	first[0].Label = "changed"
	assert.Equal(t, "minutes", IntervalsFor(3, locale.Source)[0].Label)
}

func TestIntervalsForTranslated(t *testing.T) {
	de := &locale.Catalog{
		Language: "de",
		Plurals: map[string][]string{
			"hour": {"Stunde", "Stunden"},
		},
	}
	assert.Equal(t, "Stunde", IntervalsFor(1, de)[1].Label)
	assert.Equal(t, "Stunden", IntervalsFor(4, de)[1].Label)
	assert.Equal(t, "days", IntervalsFor(4, de)[2].Label)
}

func TestUnitsOrder(t *testing.T) {
	assert.Equal(t, []Unit{Minute, Hour, Day, Week, Month, Year}, Units())
}
