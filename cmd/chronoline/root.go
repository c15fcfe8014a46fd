package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kyaoi/chronoline/internal/app"
	"github.com/kyaoi/chronoline/internal/config"
)

// Version is set via ldflags at build time.
var Version = "dev"

var (
	cfgFile   string
	themeFlag string
	category  string
	startYear int
	noWatch   bool
	logFile   string
)

var rootCmd = &cobra.Command{
	Use:   "chronoline [path]",
	Short: "Browse a timeline of events in the terminal",
	Long: `chronoline shows events on a horizontal timeline. Pick an event to read
its card, open its details, and switch between light and dark themes.

The optional path is a JSON or YAML file of events, or a directory of
markdown files with year/title front matter. Without a path the built-in
computing history is shown.`,
	Version:      Version,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, args)
		if err != nil {
			return err
		}
		return app.Run(cfg)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", config.DefaultFile, "config file path")
	flags.StringVar(&themeFlag, "theme", "", "colour theme: system, light or dark")
	flags.StringVar(&category, "category", "", "only show events of this category")
	flags.IntVar(&startYear, "year", 0, "initially selected year")

	rootCmd.Flags().BoolVar(&noWatch, "no-watch", false, "do not reload when the source changes")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write debug logs to this file")
}

// loadConfig layers command line flags over the config file.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if len(args) > 0 {
		cfg.Data = args[0]
	}

	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = themeFlag
	}
	if flags.Changed("category") {
		cfg.Category = category
	}
	if flags.Changed("year") {
		cfg.StartYear = startYear
	}
	if flags.Changed("no-watch") {
		cfg.Watch = !noWatch
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
