package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/kyaoi/chronoline/internal/config"
	"github.com/kyaoi/chronoline/internal/render"
	"github.com/kyaoi/chronoline/internal/timeline"
)

// Export writes a static snapshot of the timeline in the configured format.
// Without an explicit theme the export is light.
func Export(ctx context.Context, cfg *config.Config, w io.Writer) error {
	tl, err := loadTimeline(cfg)
	if err != nil {
		return err
	}
	st := timeline.Initial(tl, timeline.ResolveTheme(cfg.Theme, false))
	if cfg.StartYear != 0 {
		st, _ = timeline.Activate(tl, st, cfg.StartYear)
	}

	var page bytes.Buffer
	if err := render.HTML(&page, tl, st, render.Options{Title: appName, Static: true}); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}

	format := strings.ToLower(string(cfg.Export.Format))
	if format == "" || format == string(config.FormatHTML) {
		_, err := page.WriteTo(w)
		return err
	}
	return render.Image(ctx, page.Bytes(), format, cfg.Export.Width, w)
}
