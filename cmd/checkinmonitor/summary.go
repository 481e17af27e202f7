package main

import (
	"github.com/spf13/cobra"

	"checkinmonitor/internal/metrics"
	"checkinmonitor/internal/storage"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Tabulate uptime and status counts per monitor from JSON check-ins.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		_, loc, err := presentation(cfg)
		if err != nil {
			return err
		}
		input, _ := cmd.Flags().GetString("input")
		noColor, _ := cmd.Flags().GetBool("no-color")

		store := storage.NewCheckInStorage(cfg.HistoryLimit)
		if err := readCheckIns(cmd.InOrStdin(), input, store); err != nil {
			return err
		}
		names := store.Monitors()
		summaries := make([]metrics.MonitorSummary, 0, len(names))
		for _, name := range names {
			summaries = append(summaries, metrics.ComputeMonitorSummary(name, store.History(name), loc))
		}
		return writeSummaryTable(cmd.OutOrStdout(), summaries, loc, !noColor)
	},
}

func init() {
	summaryCmd.Flags().StringP("input", "i", "-", "file of JSON check-ins, - for stdin")
	summaryCmd.Flags().Bool("no-color", false, "disable colored uptime")
}
