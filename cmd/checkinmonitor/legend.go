package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"checkinmonitor/internal/tickstyle"
)

var legendCmd = &cobra.Command{
	Use:   "legend",
	Short: "Print every check-in status with its tick and label.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		th, loc, err := presentation(cfg)
		if err != nil {
			return err
		}
		term := tickstyle.Terminal{Lookup: th, Localizer: loc}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), term.Legend())
		return err
	},
}
