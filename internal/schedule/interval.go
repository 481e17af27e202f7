// Package schedule lists the interval units a monitor schedule can be expressed in.
package schedule

import "checkinmonitor/internal/locale"

// Unit is an interval unit.
type Unit string

const (
	Minute Unit = "minute"
	Hour   Unit = "hour"
	Day    Unit = "day"
	Week   Unit = "week"
	Month  Unit = "month"
	Year   Unit = "year"
)

type unitForms struct {
	unit     Unit
	singular string
	plural   string
}

var units = [...]unitForms{
	{Minute, "minute", "minutes"},
	{Hour, "hour", "hours"},
	{Day, "day", "days"},
	{Week, "week", "weeks"},
	{Month, "month", "months"},
	{Year, "year", "years"},
}

// Option is a selectable interval unit with its display label.
type Option struct {
	Value Unit   `json:"value"`
	Label string `json:"label"`
}

// Units returns every unit, smallest first.
func Units() []Unit {
	out := make([]Unit, 0, len(units))
	for _, u := range units {
		out = append(out, u.unit)
	}
	return out
}

// IntervalsFor returns the interval options labelled for a count of n, e.g. "every 5
// minutes". Units come smallest first.
func IntervalsFor(n int, loc locale.Localizer) []Option {
	out := make([]Option, 0, len(units))
	for _, u := range units {
		out = append(out, Option{Value: u.unit, Label: loc.TN(u.singular, u.plural, n)})
	}
	return out
}
