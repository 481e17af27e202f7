package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"checkinmonitor/internal/config"
	"checkinmonitor/internal/locale"
	"checkinmonitor/internal/theme"
)

var rootCmd = &cobra.Command{
	Use:           "checkinmonitor",
	Short:         "Track job check-ins and render their status timelines.",
	SilenceErrors: true,
	SilenceUsage:  true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "config.yaml", "path to configuration file (YAML)")
	flags.String("theme", "", "palette used to color ticks (default from config)")
	flags.String("lang", "", "language for labels, e.g. de")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	_ = viper.BindPFlags(flags)

	rootCmd.AddCommand(serveCmd, legendCmd, timelineCmd, summaryCmd, intervalsCmd, queryCmd)
}

// initConfig wires CHECKINMONITOR_* environment variables into viper.
func initConfig() {
	viper.SetEnvPrefix("CHECKINMONITOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// loadConfig reads the YAML file and applies flag and environment overrides on top.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(viper.GetString("config"))
	if err != nil {
		return config.Config{}, err
	}
	if addr := viper.GetString("addr"); addr != "" {
		cfg.Addr = addr
	}
	if name := viper.GetString("theme"); name != "" {
		cfg.Theme.Default = name
	}
	if level := viper.GetString("log-level"); level != "" {
		cfg.Log.Level = level
	}
	if err := cfg.Normalize(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// loadPresentation builds the theme and locale registries described by cfg.
func loadPresentation(cfg config.Config) (*theme.Registry, *locale.Registry, error) {
	themes := theme.NewRegistry()
	if err := themes.LoadDirectory(cfg.Theme.Directory); err != nil {
		return nil, nil, fmt.Errorf("load themes: %w", err)
	}
	if err := themes.SetDefault(cfg.Theme.Default); err != nil {
		return nil, nil, err
	}
	locales, err := locale.LoadDirectory(cfg.Locale.Directory)
	if err != nil {
		return nil, nil, fmt.Errorf("load locales: %w", err)
	}
	return themes, locales, nil
}

// presentation resolves the theme and localizer for the terminal commands.
func presentation(cfg config.Config) (theme.Theme, locale.Localizer, error) {
	themes, locales, err := loadPresentation(cfg)
	if err != nil {
		return theme.Theme{}, nil, err
	}
	th, err := themes.Get("")
	if err != nil {
		return theme.Theme{}, nil, err
	}
	return th, locales.Match(viper.GetString("lang"), ""), nil
}
