package metrics

import (
	"math"
	"time"

	"checkinmonitor/internal/checkin"
	"checkinmonitor/internal/locale"
	"checkinmonitor/internal/models"
)

// MonitorSummary summarises the check-in history of a monitor.
type MonitorSummary struct {
	Monitor       string          `json:"monitor"`
	UptimePercent float64         `json:"uptime_percent"`
	TotalCheckIns int             `json:"total_checkins"`
	Counts        map[string]int  `json:"counts"`
	LastStatus    *checkin.Status `json:"last_status,omitempty"`
	LastLabel     string          `json:"last_label,omitempty"`
	LastUpdated   string          `json:"last_updated,omitempty"`
}

// ComputeMonitorSummary aggregates per-status counts and uptime for one monitor. Uptime is
// the share of finished check-ins that succeeded; in-progress check-ins are not counted
// against it. LastLabel is translated by loc; nil leaves it untranslated.
func ComputeMonitorSummary(monitor string, entries []models.CheckIn, loc locale.Localizer) MonitorSummary {
	if loc == nil {
		loc = locale.Source
	}
	result := MonitorSummary{
		Monitor: monitor,
		Counts:  make(map[string]int, checkin.NumStatuses),
	}
	for _, status := range checkin.Statuses() {
		result.Counts[status.String()] = 0
	}

	var (
		ok       int
		finished int
		last     models.CheckIn
	)
	for _, entry := range entries {
		result.Counts[entry.Status.String()]++
		result.TotalCheckIns++
		if entry.Status != checkin.StatusInProgress {
			finished++
		}
		if entry.Status == checkin.StatusOK {
			ok++
		}
		if !entry.Timestamp.Before(last.Timestamp) {
			last = entry
		}
	}

	if finished > 0 {
		result.UptimePercent = round2(float64(ok) / float64(finished) * 100)
	}
	if result.TotalCheckIns > 0 {
		status := last.Status
		result.LastStatus = &status
		result.LastLabel = checkin.LabelFor(status, loc)
		result.LastUpdated = last.Timestamp.UTC().Format(time.RFC3339)
	}
	return result
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
