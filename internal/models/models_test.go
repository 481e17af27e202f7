package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkinmonitor/internal/checkin"
)

func TestCheckInReport(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    checkin.Status
		wantErr error
	}{
		{name: "ok", input: `{"monitor":"m","status":"ok"}`, want: checkin.StatusOK},
		{name: "timeout", input: `{"monitor":"m","status":"timeout"}`, want: checkin.StatusTimeout},
		{name: "no status", input: `{"monitor":"m","timestamp":"2026-10-16T08:00:00Z"}`, wantErr: ErrMissingStatus},
		{name: "null status", input: `{"monitor":"m","status":null}`, wantErr: ErrMissingStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var report CheckInReport
			require.NoError(t, json.Unmarshal([]byte(tt.input), &report))

			got, err := report.CheckIn()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "m", got.Monitor)
			assert.Equal(t, tt.want, got.Status)
		})
	}
}
