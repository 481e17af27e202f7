package models

import (
	"time"

	"checkinmonitor/internal/checkin"
	"checkinmonitor/internal/tickstyle"
)

// TimelineTick represents a single bucket of a monitor timeline. Buckets without
// check-ins have no Status.
type TimelineTick struct {
	Start  time.Time             `json:"start"`
	End    time.Time             `json:"end"`
	Status *checkin.Status       `json:"status,omitempty"`
	Label  string                `json:"label"`
	Counts map[string]int        `json:"counts,omitempty"`
	Render *tickstyle.RenderSpec `json:"render,omitempty"`
}

// MonitorTimeline aggregates timeline ticks for a single monitor.
type MonitorTimeline struct {
	Monitor    string         `json:"monitor"`
	RangeStart time.Time      `json:"range_start"`
	RangeEnd   time.Time      `json:"range_end"`
	Ticks      []TimelineTick `json:"ticks"`
}

// Empty reports whether no check-in fell into the tick.
func (t TimelineTick) Empty() bool {
	return t.Status == nil
}
