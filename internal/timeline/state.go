package timeline

// Modal describes the details overlay. It is independent of the selection.
type Modal struct {
	Open bool
	Year int
	// ReturnFocus is the marker index that had focus when the overlay opened.
	ReturnFocus int
}

// State is the complete selection, theme and overlay state of a timeline.
// It is a plain value; every transition returns a new State.
type State struct {
	Active    int
	HasActive bool
	Focus     int
	Theme     Theme
	Modal     Modal
}

// Initial activates the chronologically first event.
func Initial(tl *Timeline, theme Theme) State {
	s := State{Theme: theme}
	if first, ok := tl.First(); ok {
		s.Active = first.Year
		s.HasActive = true
	}
	return s
}

// IsActive reports whether year is the active event.
func (s State) IsActive(year int) bool {
	return s.HasActive && s.Active == year
}

// Activate selects year. Unknown years leave the state untouched and report
// false.
func Activate(tl *Timeline, s State, year int) (State, bool) {
	i := tl.IndexOf(year)
	if i < 0 {
		return s, false
	}
	s.Active = year
	s.HasActive = true
	s.Focus = i
	return s, true
}

// ActivateFocused selects the event under keyboard focus.
func ActivateFocused(tl *Timeline, s State) (State, bool) {
	ev, ok := tl.At(s.Focus)
	if !ok {
		return s, false
	}
	return Activate(tl, s, ev.Year)
}

// MoveFocus shifts the keyboard focus by delta markers, clamped to the ends.
func MoveFocus(tl *Timeline, s State, delta int) State {
	if tl.Len() == 0 {
		s.Focus = 0
		return s
	}
	s.Focus = clamp(s.Focus+delta, 0, tl.Len()-1)
	return s
}

// FocusFirst moves the keyboard focus to the first marker.
func FocusFirst(tl *Timeline, s State) State {
	s.Focus = 0
	return s
}

// FocusLast moves the keyboard focus to the last marker.
func FocusLast(tl *Timeline, s State) State {
	s.Focus = max(tl.Len()-1, 0)
	return s
}

// OpenDetails shows the overlay for year without touching the selection.
func OpenDetails(tl *Timeline, s State, year int) (State, bool) {
	if tl.IndexOf(year) < 0 {
		return s, false
	}
	returnFocus := s.Focus
	if s.Modal.Open {
		returnFocus = s.Modal.ReturnFocus
	}
	s.Modal = Modal{Open: true, Year: year, ReturnFocus: returnFocus}
	return s, true
}

// CloseDetails hides the overlay and gives focus back to where it was.
func CloseDetails(s State) State {
	if !s.Modal.Open {
		return s
	}
	s.Focus = s.Modal.ReturnFocus
	s.Modal = Modal{}
	return s
}

// ToggleTheme flips the theme.
func ToggleTheme(s State) State {
	s.Theme = s.Theme.Toggle()
	return s
}

// Reconcile adapts s to a replaced event collection.
func Reconcile(tl *Timeline, s State) State {
	if !s.HasActive || tl.IndexOf(s.Active) < 0 {
		s.HasActive = false
		s.Active = 0
		if first, ok := tl.First(); ok {
			s.Active = first.Year
			s.HasActive = true
		}
	}
	if s.Modal.Open && tl.IndexOf(s.Modal.Year) < 0 {
		s = CloseDetails(s)
	}
	s.Focus = clamp(s.Focus, 0, max(tl.Len()-1, 0))
	s.Modal.ReturnFocus = clamp(s.Modal.ReturnFocus, 0, max(tl.Len()-1, 0))
	return s
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
