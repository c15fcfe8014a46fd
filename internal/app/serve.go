package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/kyaoi/chronoline/internal/config"
	"github.com/kyaoi/chronoline/internal/server"
	"github.com/kyaoi/chronoline/internal/timeline"
)

const shutdownTimeout = 5 * time.Second

// Serve runs the HTTP host until ctx is cancelled. With watching enabled,
// changes to the source are pushed to open pages.
func Serve(ctx context.Context, cfg *config.Config) error {
	tl, err := loadTimeline(cfg)
	if err != nil {
		return err
	}
	srv := server.New(server.Config{
		Addr:     cfg.Server.Addr,
		Title:    appName,
		Theme:    timeline.ResolveTheme(cfg.Theme, false),
		AllowAll: cfg.Server.AllowAllOrigins,
	}, tl)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	if cfg.Watch && cfg.Data != "" {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			if err := watchSource(watchCtx, cfg, srv.SetTimeline); err != nil {
				log.Printf("live reload disabled: %v", err)
			}
		}()
	}

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
