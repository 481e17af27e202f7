package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"checkinmonitor/internal/locale"
	"checkinmonitor/internal/schedule"
)

var intervalsCmd = &cobra.Command{
	Use:   "intervals <n>",
	Short: "List schedule interval units labelled for a count.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("count %q: %w", args[0], err)
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		locales, err := locale.LoadDirectory(cfg.Locale.Directory)
		if err != nil {
			return err
		}
		options := schedule.IntervalsFor(n, locales.Match(viper.GetString("lang"), ""))
		return writeIntervalsTable(cmd.OutOrStdout(), options)
	},
}
