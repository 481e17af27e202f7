package checkin

import "checkinmonitor/internal/locale"

var statusText = [...]string{
	StatusOK:         "Okay",
	StatusError:      "Failed",
	StatusInProgress: "In Progress",
	StatusMissed:     "Missed",
	StatusTimeout:    "Timed Out",
	StatusUnknown:    "Unknown",
}

var _ = [statusCount]string(statusText)

// SourceLabel returns the untranslated display label of s.
func SourceLabel(s Status) string {
	return statusText[s.Index()]
}

// LabelFor returns the display label of s translated by loc.
func LabelFor(s Status, loc locale.Localizer) string {
	return loc.T(SourceLabel(s))
}
