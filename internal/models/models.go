package models

import (
	"errors"
	"time"

	"checkinmonitor/internal/checkin"
)

// ErrMissingStatus is returned when a reported check-in carries no status.
var ErrMissingStatus = errors.New("check-in status is required")

// CheckIn is one reported execution of a monitored job.
type CheckIn struct {
	ID         string         `json:"id"`
	Monitor    string         `json:"monitor"`
	Status     checkin.Status `json:"status"`
	Timestamp  time.Time      `json:"timestamp"`
	DurationMs *int64         `json:"duration_ms,omitempty"`
}

// CheckInReport is a check-in as sent by a job. Unlike CheckIn it tells an absent status
// apart from StatusOK.
type CheckInReport struct {
	ID         string          `json:"id"`
	Monitor    string          `json:"monitor"`
	Status     *checkin.Status `json:"status"`
	Timestamp  time.Time       `json:"timestamp"`
	DurationMs *int64          `json:"duration_ms"`
}

// CheckIn converts the report, failing with ErrMissingStatus when no status was sent.
func (r CheckInReport) CheckIn() (CheckIn, error) {
	if r.Status == nil {
		return CheckIn{}, ErrMissingStatus
	}
	return CheckIn{
		ID:         r.ID,
		Monitor:    r.Monitor,
		Status:     *r.Status,
		Timestamp:  r.Timestamp,
		DurationMs: r.DurationMs,
	}, nil
}
