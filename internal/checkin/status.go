// Package checkin defines the check-in outcome states reported by monitored jobs and their
// display labels.
package checkin

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidStatus is returned when a status name is not one of the known outcomes.
var ErrInvalidStatus = errors.New("invalid check-in status")

// Status is the outcome of a single check-in.
type Status int

// Status values. Tables keyed by Status are pinned to statusCount, so a new member must be
// added to every table before the package compiles again.
const (
	StatusOK Status = iota
	StatusError
	StatusInProgress
	StatusMissed
	StatusTimeout
	StatusUnknown

	statusCount
)

// NumStatuses is the number of declared statuses, for sizing per-status tables elsewhere.
const NumStatuses = int(statusCount)

var statusNames = [...]string{
	StatusOK:         "ok",
	StatusError:      "error",
	StatusInProgress: "in_progress",
	StatusMissed:     "missed",
	StatusTimeout:    "timeout",
	StatusUnknown:    "unknown",
}

var _ = [statusCount]string(statusNames)

// Statuses returns every status in declaration order.
func Statuses() []Status {
	out := make([]Status, 0, statusCount)
	for s := StatusOK; s < statusCount; s++ {
		out = append(out, s)
	}
	return out
}

// Valid reports whether s is one of the declared statuses.
func (s Status) Valid() bool {
	return s >= StatusOK && s < statusCount
}

// Index returns the position of s in declaration order. It panics when s is not a declared
// status; callers index fixed per-status tables with it.
func (s Status) Index() int {
	if !s.Valid() {
		panic(fmt.Sprintf("checkin: status %d out of range", int(s)))
	}
	return int(s)
}

func (s Status) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// ParseStatus converts a wire name such as "in_progress" into a Status.
func ParseStatus(raw string) (Status, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	for s, candidate := range statusNames {
		if candidate == name {
			return Status(s), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStatus, int(s))
	}
	return []byte(statusNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
