package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"checkinmonitor/internal/history"
	"checkinmonitor/internal/models"
	"checkinmonitor/internal/storage"
	"checkinmonitor/internal/tickstyle"
)

var timelineCmd = &cobra.Command{
	Use:   "timeline <monitor>",
	Short: "Draw a monitor's timeline from a stream of JSON check-ins.",
	Args:  cobra.ExactArgs(1),
	RunE:  runTimeline,
}

func init() {
	flags := timelineCmd.Flags()
	flags.StringP("input", "i", "-", "file of JSON check-ins, - for stdin")
	flags.Int("points", 0, "number of ticks (default from config)")
	flags.Duration("window", 0, "time range ending now (default from config)")
}

func runTimeline(cmd *cobra.Command, args []string) error {
	monitor := args[0]
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	th, loc, err := presentation(cfg)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	input, _ := flags.GetString("input")
	points, _ := flags.GetInt("points")
	window, _ := flags.GetDuration("window")
	if points <= 0 {
		points = cfg.TimelinePoints
	}
	if window <= 0 {
		window = time.Duration(cfg.TimelineHours) * time.Hour
	}

	store := storage.NewCheckInStorage(cfg.HistoryLimit)
	if err := readCheckIns(cmd.InOrStdin(), input, store); err != nil {
		return err
	}

	end := time.Now().UTC()
	start := end.Add(-window)
	timeline := history.BuildMonitorTimeline(monitor, store.HistoryBetween(monitor, start, end), start, end,
		history.Options{Points: points, Localizer: loc})

	term := tickstyle.Terminal{Lookup: th, Localizer: loc}
	var b strings.Builder
	for _, tick := range timeline.Ticks {
		if tick.Status == nil {
			b.WriteString(term.Blank())
			continue
		}
		b.WriteString(term.Tick(*tick.Status))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s  %s .. %s\n", monitor, start.Format(time.RFC3339), end.Format(time.RFC3339))
	fmt.Fprintln(out, b.String())
	if latest, ok := store.Latest(monitor); ok {
		fmt.Fprintf(out, "last: %s at %s\n", term.Label(latest.Status), latest.Timestamp.Format(time.RFC3339))
	}
	return nil
}

// readCheckIns appends every JSON check-in object in the input to store. Objects may be
// newline separated or wrapped in a single array, and each must carry a status.
func readCheckIns(stdin io.Reader, path string, store *storage.CheckInStorage) error {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open check-ins: %w", err)
		}
		defer f.Close()
		r = f
	}

	dec := json.NewDecoder(r)
	for {
		var batch []models.CheckInReport
		raw := json.RawMessage{}
		if err := dec.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("decode check-ins: %w", err)
		}
		if len(raw) > 0 && raw[0] == '[' {
			if err := json.Unmarshal(raw, &batch); err != nil {
				return fmt.Errorf("decode check-ins: %w", err)
			}
		} else {
			var one models.CheckInReport
			if err := json.Unmarshal(raw, &one); err != nil {
				return fmt.Errorf("decode check-in: %w", err)
			}
			batch = append(batch, one)
		}
		for _, report := range batch {
			entry, err := report.CheckIn()
			if err != nil {
				return fmt.Errorf("check-in for %q: %w", report.Monitor, err)
			}
			if _, err := store.Append(entry); err != nil {
				return err
			}
		}
	}
}
