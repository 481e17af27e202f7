package history

import (
	"sort"
	"time"

	"checkinmonitor/internal/checkin"
	"checkinmonitor/internal/locale"
	"checkinmonitor/internal/models"
	"checkinmonitor/internal/theme"
	"checkinmonitor/internal/tickstyle"
)

const (
	// DefaultTimelinePoints controls how many ticks we generate per monitor.
	DefaultTimelinePoints = 48
	noDataLabel           = "No data"
)

// precedence ranks statuses when several check-ins share a tick; the highest wins so
// failures stay visible when zoomed out.
var precedence = [...]int{
	checkin.StatusInProgress: 0,
	checkin.StatusOK:         1,
	checkin.StatusUnknown:    2,
	checkin.StatusMissed:     3,
	checkin.StatusTimeout:    4,
	checkin.StatusError:      5,
}

var _ = [checkin.NumStatuses]int(precedence)

// Options controls tick rendering.
type Options struct {
	Points    int
	Lookup    theme.Lookup
	Localizer locale.Localizer
}

// BuildMonitorTimeline reduces a monitor's check-ins into a fixed number of ticks covering
// [start, end).
func BuildMonitorTimeline(
	monitor string,
	entries []models.CheckIn,
	start, end time.Time,
	opts Options,
) models.MonitorTimeline {
	points := opts.Points
	if points <= 0 {
		points = DefaultTimelinePoints
	}
	if !end.After(start) {
		end = start.Add(time.Minute)
	}
	loc := opts.Localizer
	if loc == nil {
		loc = locale.Source
	}

	samples := make([]models.CheckIn, len(entries))
	copy(samples, entries)
	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].Timestamp.Before(samples[j].Timestamp)
	})

	bucketDuration := end.Sub(start) / time.Duration(points)
	if bucketDuration <= 0 {
		bucketDuration = time.Minute
	}

	ticks := make([]models.TimelineTick, 0, points)
	cursor := 0
	for i := 0; i < points; i++ {
		bucketStart := start.Add(time.Duration(i) * bucketDuration)
		bucketEnd := bucketStart.Add(bucketDuration)
		if i == points-1 {
			bucketEnd = end
		}
		bucket, next := collectBucket(samples, bucketStart, bucketEnd, cursor)
		cursor = next
		ticks = append(ticks, buildTick(bucket, bucketStart, bucketEnd, opts.Lookup, loc))
	}

	return models.MonitorTimeline{
		Monitor:    monitor,
		RangeStart: start,
		RangeEnd:   end,
		Ticks:      ticks,
	}
}

func collectBucket(samples []models.CheckIn, start, end time.Time, cursor int) ([]models.CheckIn, int) {
	total := len(samples)
	if total == 0 || cursor >= total {
		return nil, cursor
	}

	i := cursor
	for i < total && samples[i].Timestamp.Before(start) {
		i++
	}
	j := i
	for j < total && samples[j].Timestamp.Before(end) {
		j++
	}
	if i >= j {
		return nil, j
	}
	return samples[i:j], j
}

func buildTick(bucket []models.CheckIn, start, end time.Time, lookup theme.Lookup, loc locale.Localizer) models.TimelineTick {
	tick := models.TimelineTick{Start: start, End: end}
	if len(bucket) == 0 {
		tick.Label = loc.T(noDataLabel)
		return tick
	}

	status := Dominant(bucket)
	tick.Status = &status
	tick.Label = checkin.LabelFor(status, loc)
	tick.Counts = make(map[string]int)
	for _, entry := range bucket {
		tick.Counts[entry.Status.String()]++
	}
	if lookup != nil {
		spec := tickstyle.Resolve(status, lookup)
		tick.Render = &spec
	}
	return tick
}

// Dominant returns the highest-precedence status among entries. entries must not be empty.
func Dominant(entries []models.CheckIn) checkin.Status {
	best := entries[0].Status
	for _, entry := range entries[1:] {
		if precedence[entry.Status.Index()] > precedence[best.Index()] {
			best = entry.Status
		}
	}
	return best
}
