package ui

import "github.com/kyaoi/chronoline/internal/timeline"

// State contains the data required to bootstrap the Bubble Tea model.
type State struct {
	Timeline  *timeline.Timeline
	Theme     timeline.Theme
	StartYear int
	Title     string
	// Source names where the events came from; shown in the header.
	Source string

	// Reload re-reads the events after a file change. Nil disables watching.
	Reload     func() (*timeline.Timeline, error)
	WatchPaths []string
	// Affects filters watcher events down to changes that matter.
	Affects func(path string) bool
}
