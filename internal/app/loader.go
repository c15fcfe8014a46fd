package app

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/kyaoi/chronoline/internal/config"
	"github.com/kyaoi/chronoline/internal/source"
	"github.com/kyaoi/chronoline/internal/timeline"
	"github.com/kyaoi/chronoline/internal/ui"
)

const appName = "chronoline"

// prefersDark asks the terminal for its background colour.
var prefersDark = lipgloss.HasDarkBackground

// LoadInitialState reads the configured events and prepares the UI state.
func LoadInitialState(cfg *config.Config) (ui.State, error) {
	tl, err := loadTimeline(cfg)
	if err != nil {
		return ui.State{}, err
	}

	state := ui.State{
		Timeline:  tl,
		Theme:     resolveTheme(cfg.Theme),
		StartYear: cfg.StartYear,
		Title:     appName,
		Source:    sourceLabel(cfg),
	}

	if cfg.Watch && cfg.Data != "" {
		dirs, err := source.WatchPaths(cfg.Data, cfg.Include)
		if err != nil {
			return ui.State{}, err
		}
		state.WatchPaths = dirs
		state.Reload = func() (*timeline.Timeline, error) { return loadTimeline(cfg) }
		state.Affects = func(path string) bool { return source.Affects(cfg.Data, cfg.Include, path) }
	}
	return state, nil
}

func loadTimeline(cfg *config.Config) (*timeline.Timeline, error) {
	tl, err := source.LoadTimeline(cfg.Data, cfg.Include)
	if err != nil {
		return nil, err
	}
	if cfg.Category == "" {
		return tl, nil
	}
	filtered := tl.FilterCategory(cfg.Category)
	if filtered.Len() == 0 {
		return nil, fmt.Errorf("no events in category %q", cfg.Category)
	}
	return filtered, nil
}

// resolveTheme only queries the terminal when no explicit theme is set.
func resolveTheme(pref string) timeline.Theme {
	if t, err := timeline.ParseTheme(pref); err == nil {
		return t
	}
	return timeline.ResolveTheme(pref, prefersDark())
}

func sourceLabel(cfg *config.Config) string {
	label := filepath.Base(cfg.Data)
	if cfg.Data == "" {
		label = "built-in"
	}
	if cfg.Category != "" {
		label += ", category: " + cfg.Category
	}
	return label
}
