package timeline

import "math"

// Position places the i-th of total markers on a 0..100 axis. The first and
// last markers sit on the ends.
func Position(i, total int) float64 {
	if total <= 1 {
		return 0
	}
	return float64(i) / float64(total-1) * 100
}

// Column maps an axis position onto a grid of width cells.
func Column(position float64, width int) int {
	if width <= 1 {
		return 0
	}
	col := int(math.Round(position / 100 * float64(width-1)))
	return clamp(col, 0, width-1)
}

// Marker is the clickable indicator of one event on the axis.
type Marker struct {
	Year     int
	Index    int
	Position float64
	Active   bool
	Focused  bool
}

// Panel is the inline card for one event.
type Panel struct {
	Event
	Shown bool
}

// View is everything a host needs to draw the timeline.
type View struct {
	Markers []Marker
	Panels  []Panel
	Details *Event
	Theme   Theme
}

// Render builds the full marker and panel set for s.
func Render(tl *Timeline, s State) View {
	n := tl.Len()
	v := View{
		Markers: make([]Marker, n),
		Panels:  make([]Panel, n),
		Theme:   s.Theme,
	}
	for i := 0; i < n; i++ {
		ev := tl.events[i]
		v.Markers[i] = Marker{
			Year:     ev.Year,
			Index:    i,
			Position: Position(i, n),
		}
		v.Panels[i] = Panel{Event: ev}
	}
	v.ApplyActive(s.Active, s.HasActive)
	v.ApplyFocus(s.Focus)
	v.ApplyDetails(tl, s.Modal)
	return v
}

// ApplyDetails points Details at the event shown in the modal, or clears it
// when the modal is closed.
func (v *View) ApplyDetails(tl *Timeline, m Modal) {
	v.Details = nil
	if !m.Open {
		return
	}
	if ev, ok := tl.Lookup(m.Year); ok {
		v.Details = &ev
	}
}

// ApplyActive updates only the active and shown flags. With ok false every
// panel is hidden.
func (v *View) ApplyActive(year int, ok bool) {
	for i := range v.Markers {
		v.Markers[i].Active = ok && v.Markers[i].Year == year
	}
	for i := range v.Panels {
		v.Panels[i].Shown = ok && v.Panels[i].Year == year
	}
}

// ApplyFocus marks the i-th marker as focused.
func (v *View) ApplyFocus(i int) {
	for j := range v.Markers {
		v.Markers[j].Focused = j == i
	}
}

// ActivePanel returns the shown panel.
func (v View) ActivePanel() (Panel, bool) {
	for _, p := range v.Panels {
		if p.Shown {
			return p, true
		}
	}
	return Panel{}, false
}

// ShownCount returns how many panels are shown.
func (v View) ShownCount() int {
	n := 0
	for _, p := range v.Panels {
		if p.Shown {
			n++
		}
	}
	return n
}
