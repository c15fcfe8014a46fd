// Package source loads timeline events from files and directories.
package source

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kyaoi/chronoline/internal/timeline"
)

// ErrMissingYear is returned for records without a year.
var ErrMissingYear = errors.New("event has no year")

type document struct {
	Events []record `json:"events" yaml:"events"`
}

// record is an event as written in a file. Year is a pointer so that year 0
// is told apart from a missing key.
type record struct {
	Year        *int   `json:"year" yaml:"year"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Image       string `json:"image" yaml:"image"`
	Category    string `json:"category" yaml:"category"`
	Link        string `json:"link" yaml:"link"`
}

// Load reads events from path. An empty path yields the built-in events. A
// directory is read with an FSLoader restricted to the include patterns.
func Load(path string, include []string) ([]timeline.Event, error) {
	if path == "" {
		return timeline.DefaultEvents(), nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return NewFSLoader(path, include).Load()
	}
	return LoadFile(path)
}

// LoadTimeline is Load followed by timeline.New.
func LoadTimeline(path string, include []string) (*timeline.Timeline, error) {
	events, err := Load(path, include)
	if err != nil {
		return nil, err
	}
	tl, err := timeline.New(events)
	if err != nil {
		return nil, fmt.Errorf("building timeline from %s: %w", displayPath(path), err)
	}
	return tl, nil
}

// LoadFile reads a JSON, YAML or single markdown file.
func LoadFile(path string) ([]timeline.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return parseJSON(path, data)
	case ".yaml", ".yml":
		return parseYAML(path, data)
	case ".md", ".markdown":
		ev, err := ParseMarkdown(path, data)
		if err != nil {
			return nil, err
		}
		return []timeline.Event{ev}, nil
	}
	return nil, fmt.Errorf("unsupported event file %s: expected .json, .yaml, .yml or .md", path)
}

// parseJSON accepts {"events": [...]} and falls back to a bare array.
func parseJSON(path string, data []byte) ([]timeline.Event, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		var direct []record
		if errDirect := json.Unmarshal(data, &direct); errDirect != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		doc.Events = direct
	}
	return checkYears(path, doc.Events)
}

func parseYAML(path string, data []byte) ([]timeline.Event, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		var direct []record
		if errDirect := yaml.Unmarshal(data, &direct); errDirect != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		doc.Events = direct
	}
	return checkYears(path, doc.Events)
}

func checkYears(path string, records []record) ([]timeline.Event, error) {
	events := make([]timeline.Event, len(records))
	for i, r := range records {
		if r.Year == nil {
			return nil, fmt.Errorf("%s: entry %d: %w", path, i, ErrMissingYear)
		}
		events[i] = timeline.Event{
			Year:        *r.Year,
			Title:       r.Title,
			Description: r.Description,
			Image:       r.Image,
			Category:    r.Category,
			Link:        r.Link,
		}
	}
	return events, nil
}

// WatchPaths lists the directories a watcher has to observe to notice
// changes to the source at path.
func WatchPaths(path string, include []string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{filepath.Dir(abs)}, nil
	}
	return NewFSLoader(abs, include).Dirs()
}

// Affects reports whether a change to changed can alter the events read
// from path.
func Affects(path string, include []string, changed string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	changed = filepath.Clean(changed)
	info, err := os.Stat(abs)
	if err == nil && info.IsDir() {
		rel, err := filepath.Rel(abs, changed)
		if err != nil || strings.HasPrefix(rel, "..") {
			return false
		}
		// Removed or renamed directories cannot be stat'ed any more.
		if fi, err := os.Stat(changed); err != nil || fi.IsDir() {
			return true
		}
		return NewFSLoader(abs, include).matches(filepath.ToSlash(rel))
	}
	return changed == abs
}

func displayPath(path string) string {
	if path == "" {
		return "built-in events"
	}
	return path
}
