package timeline

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrDuplicateYear is returned when two events share the same year.
var ErrDuplicateYear = errors.New("duplicate event year")

// Event is a single entry on the timeline. Year is the key.
type Event struct {
	Year        int    `json:"year" yaml:"year"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Image       string `json:"image,omitempty" yaml:"image,omitempty"`
	Category    string `json:"category,omitempty" yaml:"category,omitempty"`
	Link        string `json:"link,omitempty" yaml:"link,omitempty"`
}

// Timeline is an immutable, year-ordered collection of events.
type Timeline struct {
	events []Event
	index  map[int]int
}

// New copies and sorts the events by year. Years must be unique.
func New(events []Event) (*Timeline, error) {
	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Year < sorted[j].Year
	})

	index := make(map[int]int, len(sorted))
	for i, ev := range sorted {
		if _, dup := index[ev.Year]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateYear, ev.Year)
		}
		index[ev.Year] = i
	}
	return &Timeline{events: sorted, index: index}, nil
}

// Len returns the number of events.
func (t *Timeline) Len() int {
	if t == nil {
		return 0
	}
	return len(t.events)
}

// Events returns a copy of the ordered events.
func (t *Timeline) Events() []Event {
	if t == nil {
		return nil
	}
	out := make([]Event, len(t.events))
	copy(out, t.events)
	return out
}

// At returns the i-th event in chronological order.
func (t *Timeline) At(i int) (Event, bool) {
	if t == nil || i < 0 || i >= len(t.events) {
		return Event{}, false
	}
	return t.events[i], true
}

// Lookup finds the event for year.
func (t *Timeline) Lookup(year int) (Event, bool) {
	i := t.IndexOf(year)
	if i < 0 {
		return Event{}, false
	}
	return t.events[i], true
}

// IndexOf returns the chronological index of year, or -1.
func (t *Timeline) IndexOf(year int) int {
	if t == nil {
		return -1
	}
	i, ok := t.index[year]
	if !ok {
		return -1
	}
	return i
}

// First returns the chronologically first event.
func (t *Timeline) First() (Event, bool) {
	return t.At(0)
}

// Categories lists the distinct categories in chronological first-seen order.
func (t *Timeline) Categories() []string {
	if t == nil {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, ev := range t.events {
		if ev.Category == "" || seen[ev.Category] {
			continue
		}
		seen[ev.Category] = true
		out = append(out, ev.Category)
	}
	return out
}

// FilterCategory returns a timeline holding only the events of the given
// category, compared case-insensitively.
func (t *Timeline) FilterCategory(category string) *Timeline {
	filtered := &Timeline{index: make(map[int]int)}
	if t == nil {
		return filtered
	}
	for _, ev := range t.events {
		if !strings.EqualFold(ev.Category, category) {
			continue
		}
		filtered.index[ev.Year] = len(filtered.events)
		filtered.events = append(filtered.events, ev)
	}
	return filtered
}
