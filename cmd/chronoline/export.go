package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/kyaoi/chronoline/internal/app"
	"github.com/kyaoi/chronoline/internal/config"
)

var (
	exportFormat string
	exportOutput string
	exportWidth  int
)

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Write the timeline as an HTML page or an image",
	Long: `Renders the timeline with the selected year as a standalone HTML page.
The png and jpg formats screenshot that page with headless Chrome, which
must be installed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, args)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("format") {
			cfg.Export.Format = config.ExportFormat(exportFormat)
		}
		if flags.Changed("output") {
			cfg.Export.Output = exportOutput
		}
		if flags.Changed("width") {
			cfg.Export.Width = exportWidth
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		var w io.Writer = os.Stdout
		if cfg.Export.Output != "" && cfg.Export.Output != "-" {
			f, err := os.Create(cfg.Export.Output)
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			defer f.Close()
			w = f
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := app.Export(ctx, cfg, w); err != nil {
			return err
		}
		if w != os.Stdout {
			fmt.Fprintf(os.Stderr, "Wrote %s\n", cfg.Export.Output)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "html", "output format: html, png, jpg or jpeg")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
	exportCmd.Flags().IntVar(&exportWidth, "width", 1280, "browser window width for image exports")
	rootCmd.AddCommand(exportCmd)
}
