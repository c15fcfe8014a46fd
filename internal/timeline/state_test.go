package timeline

import "testing"

func TestInitialActivatesFirst(t *testing.T) {
	s := Initial(sample(t), Light)
	if !s.IsActive(1969) {
		t.Errorf("initial active: got %d (has=%v), want 1969", s.Active, s.HasActive)
	}
	empty, _ := New(nil)
	if s := Initial(empty, Light); s.HasActive {
		t.Error("empty timeline must have no active event")
	}
}

func TestActivateScenario(t *testing.T) {
	tl := sample(t)
	s, ok := Activate(tl, Initial(tl, Light), 1981)
	if !ok {
		t.Fatal("Activate(1981) reported a miss")
	}
	v := Render(tl, s)
	for _, m := range v.Markers {
		if m.Active != (m.Year == 1981) {
			t.Errorf("marker %d: active=%v", m.Year, m.Active)
		}
	}
	for _, p := range v.Panels {
		if p.Shown != (p.Year == 1981) {
			t.Errorf("panel %d: shown=%v", p.Year, p.Shown)
		}
	}
	if v.ShownCount() != 1 {
		t.Errorf("shown panels: got %d, want 1", v.ShownCount())
	}
	if s.Focus != 1 {
		t.Errorf("focus: got %d, want 1", s.Focus)
	}
}

func TestActivateExactlyOneForEveryYear(t *testing.T) {
	tl := Default()
	s := Initial(tl, Light)
	for _, ev := range tl.Events() {
		var ok bool
		s, ok = Activate(tl, s, ev.Year)
		if !ok {
			t.Fatalf("Activate(%d) missed", ev.Year)
		}
		v := Render(tl, s)
		active := 0
		for _, m := range v.Markers {
			if m.Active {
				active++
			}
		}
		if active != 1 || v.ShownCount() != 1 {
			t.Errorf("year %d: %d active markers, %d shown panels", ev.Year, active, v.ShownCount())
		}
		if p, _ := v.ActivePanel(); p.Year != ev.Year {
			t.Errorf("year %d: active panel is %d", ev.Year, p.Year)
		}
	}
}

func TestActivateIsIdempotent(t *testing.T) {
	tl := sample(t)
	once, _ := Activate(tl, Initial(tl, Light), 1991)
	twice, _ := Activate(tl, once, 1991)
	if once != twice {
		t.Errorf("second activation changed state: %+v -> %+v", once, twice)
	}
}

func TestActivateUnknownYearIsNoop(t *testing.T) {
	tl := sample(t)
	before, _ := Activate(tl, Initial(tl, Dark), 1991)
	after, ok := Activate(tl, before, 1234)
	if ok {
		t.Error("Activate(1234) should report a miss")
	}
	if after != before {
		t.Errorf("state changed on miss: %+v -> %+v", before, after)
	}
}

func TestNoActiveYearShowsNoPanels(t *testing.T) {
	tl := sample(t)
	v := Render(tl, State{Theme: Light})
	if v.ShownCount() != 0 {
		t.Errorf("shown panels: got %d, want 0", v.ShownCount())
	}
	if _, ok := v.ActivePanel(); ok {
		t.Error("ActivePanel should report nothing")
	}
}

func TestApplyActiveMatchesRender(t *testing.T) {
	tl := Default()
	s := Initial(tl, Light)
	v := Render(tl, s)
	for _, ev := range tl.Events() {
		s, _ = Activate(tl, s, ev.Year)
		v.ApplyActive(s.Active, s.HasActive)
		v.ApplyFocus(s.Focus)
		full := Render(tl, s)
		for i := range full.Markers {
			if full.Markers[i] != v.Markers[i] {
				t.Errorf("year %d marker %d: toggled %+v, rendered %+v", ev.Year, i, v.Markers[i], full.Markers[i])
			}
			if full.Panels[i].Shown != v.Panels[i].Shown {
				t.Errorf("year %d panel %d: shown mismatch", ev.Year, i)
			}
		}
	}
}

func TestApplyDetailsMatchesRender(t *testing.T) {
	tl := sample(t)
	s := Initial(tl, Light)
	v := Render(tl, s)

	opened, _ := OpenDetails(tl, s, 1981)
	v.ApplyDetails(tl, opened.Modal)
	if v.Details == nil || v.Details.Year != 1981 {
		t.Fatalf("toggled details: %+v", v.Details)
	}
	if full := Render(tl, opened); *full.Details != *v.Details {
		t.Errorf("toggled %+v, rendered %+v", v.Details, full.Details)
	}

	v.ApplyDetails(tl, CloseDetails(opened).Modal)
	if v.Details != nil {
		t.Errorf("closing should clear details, got %+v", v.Details)
	}
	v.ApplyDetails(tl, Modal{Open: true, Year: 4242})
	if v.Details != nil {
		t.Error("unknown year should leave details empty")
	}
}

func TestFocusNavigation(t *testing.T) {
	tl := sample(t)
	s := Initial(tl, Light)
	s = MoveFocus(tl, s, -1)
	if s.Focus != 0 {
		t.Errorf("focus clamped at start: got %d", s.Focus)
	}
	s = MoveFocus(tl, s, 5)
	if s.Focus != 2 {
		t.Errorf("focus clamped at end: got %d", s.Focus)
	}
	s = FocusFirst(tl, s)
	if s.Focus != 0 {
		t.Errorf("FocusFirst: got %d", s.Focus)
	}
	s = FocusLast(tl, s)
	if s.Focus != 2 {
		t.Errorf("FocusLast: got %d", s.Focus)
	}
	if !s.IsActive(1969) {
		t.Error("moving focus must not change the selection")
	}
	s, ok := ActivateFocused(tl, s)
	if !ok || !s.IsActive(1991) {
		t.Errorf("ActivateFocused: ok=%v active=%d", ok, s.Active)
	}
}

func TestDetailsDoNotTouchSelection(t *testing.T) {
	tl := sample(t)
	s, _ := Activate(tl, Initial(tl, Light), 1981)
	s = MoveFocus(tl, s, 1)

	opened, ok := OpenDetails(tl, s, 1969)
	if !ok || !opened.Modal.Open || opened.Modal.Year != 1969 {
		t.Fatalf("OpenDetails: ok=%v modal=%+v", ok, opened.Modal)
	}
	if v := Render(tl, opened); v.Details == nil || v.Details.Year != 1969 {
		t.Errorf("rendered details: %+v", v.Details)
	}

	opened = FocusFirst(tl, opened)
	closed := CloseDetails(opened)
	if closed.Active != 1981 || !closed.HasActive {
		t.Errorf("active after close: got %d", closed.Active)
	}
	if closed.Focus != 2 {
		t.Errorf("focus after close: got %d, want 2", closed.Focus)
	}
	if closed.Modal.Open {
		t.Error("modal still open")
	}
	if again := CloseDetails(closed); again != closed {
		t.Error("closing a closed modal changed state")
	}
}

func TestOpenDetailsUnknownYear(t *testing.T) {
	tl := sample(t)
	s := Initial(tl, Light)
	got, ok := OpenDetails(tl, s, 42)
	if ok || got != s {
		t.Errorf("OpenDetails(42): ok=%v state=%+v", ok, got)
	}
}

func TestToggleTheme(t *testing.T) {
	s := State{Theme: Light}
	s = ToggleTheme(s)
	if s.Theme != Dark {
		t.Errorf("first toggle: got %s", s.Theme)
	}
	s = ToggleTheme(s)
	if s.Theme != Light {
		t.Errorf("second toggle: got %s", s.Theme)
	}
}

func TestToggleThemeKeepsSelection(t *testing.T) {
	tl := sample(t)
	s, _ := Activate(tl, Initial(tl, Light), 1991)
	s, _ = OpenDetails(tl, s, 1969)
	toggled := ToggleTheme(s)
	if toggled.Active != s.Active || toggled.Modal != s.Modal {
		t.Error("toggling the theme touched selection or modal")
	}
}

func TestReconcile(t *testing.T) {
	tl := sample(t)
	s, _ := Activate(tl, Initial(tl, Light), 1991)
	s, _ = OpenDetails(tl, s, 1991)

	smaller, err := New([]Event{{Year: 1969}, {Year: 1981}})
	if err != nil {
		t.Fatal(err)
	}
	got := Reconcile(smaller, s)
	if !got.IsActive(1969) {
		t.Errorf("active after removal: got %d", got.Active)
	}
	if got.Modal.Open {
		t.Error("modal for a removed year should close")
	}
	if got.Focus > 1 {
		t.Errorf("focus not clamped: %d", got.Focus)
	}

	kept := Reconcile(tl, s)
	if !kept.IsActive(1991) || !kept.Modal.Open {
		t.Errorf("reconcile against the same set changed state: %+v", kept)
	}

	empty, _ := New(nil)
	if got := Reconcile(empty, s); got.HasActive || got.Focus != 0 {
		t.Errorf("reconcile against empty: %+v", got)
	}
}

func TestResolveTheme(t *testing.T) {
	tests := []struct {
		pref        string
		prefersDark bool
		want        Theme
	}{
		{"light", true, Light},
		{"dark", false, Dark},
		{"DARK", false, Dark},
		{"system", true, Dark},
		{"system", false, Light},
		{"", true, Dark},
	}
	for _, tt := range tests {
		if got := ResolveTheme(tt.pref, tt.prefersDark); got != tt.want {
			t.Errorf("ResolveTheme(%q, %v): got %s, want %s", tt.pref, tt.prefersDark, got, tt.want)
		}
	}
	if Dark.Attr() != "dark" || Light.Attr() != "" {
		t.Error("unexpected data-theme attribute values")
	}
	if _, err := ParseTheme("sepia"); err == nil {
		t.Error("ParseTheme(sepia) should fail")
	}
}
