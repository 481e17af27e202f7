package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"checkinmonitor/internal/checkin"
	"checkinmonitor/internal/locale"
	"checkinmonitor/internal/metrics"
	"checkinmonitor/internal/schedule"
)

// Uptime thresholds for coloring the summary table.
const (
	uptimeHealthy  = 99.0
	uptimeDegraded = 90.0
)

// writeSummaryTable writes one row per monitor with its uptime and check-in counts.
func writeSummaryTable(w io.Writer, summaries []metrics.MonitorSummary, loc locale.Localizer, useColors bool) error {
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	headers := []string{"Monitor", "Uptime", "Check-ins"}
	for _, status := range checkin.Statuses() {
		headers = append(headers, checkin.LabelFor(status, loc))
	}
	headers = append(headers, "Last", "Updated")
	table.Header(headers)

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	red, green, yellow := fmt.Sprint, fmt.Sprint, fmt.Sprint
	if useColors {
		red = color.New(color.FgRed).SprintFunc()
		green = color.New(color.FgGreen).SprintFunc()
		yellow = color.New(color.FgYellow).SprintFunc()
	}

	var data [][]string
	for _, s := range summaries {
		uptime := fmt.Sprintf("%.2f%%", s.UptimePercent)
		switch {
		case s.TotalCheckIns == 0:
		case s.UptimePercent >= uptimeHealthy:
			uptime = green(uptime)
		case s.UptimePercent >= uptimeDegraded:
			uptime = yellow(uptime)
		default:
			uptime = red(uptime)
		}

		row := []string{s.Monitor, uptime, strconv.Itoa(s.TotalCheckIns)}
		for _, status := range checkin.Statuses() {
			row = append(row, strconv.Itoa(s.Counts[status.String()]))
		}
		last := "-"
		if s.LastStatus != nil {
			last = checkin.LabelFor(*s.LastStatus, loc)
		}
		row = append(row, last, s.LastUpdated)
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeIntervalsTable writes the schedule interval options as a two-column table.
func writeIntervalsTable(w io.Writer, options []schedule.Option) error {
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	table.Header([]string{"Unit", "Label"})
	var data [][]string
	for _, opt := range options {
		data = append(data, []string{string(opt.Value), opt.Label})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
