package timeline

import (
	"errors"
	"testing"
)

func sample(t *testing.T) *Timeline {
	t.Helper()
	tl, err := New([]Event{
		{Year: 1991, Title: "Web", Category: "Networking"},
		{Year: 1969, Title: "ARPANET", Category: "Networking"},
		{Year: 1981, Title: "IBM PC", Category: "Hardware"},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return tl
}

func TestNewSortsByYear(t *testing.T) {
	tl := sample(t)
	want := []int{1969, 1981, 1991}
	for i, ev := range tl.Events() {
		if ev.Year != want[i] {
			t.Errorf("event %d: got year %d, want %d", i, ev.Year, want[i])
		}
	}
	if got := tl.IndexOf(1981); got != 1 {
		t.Errorf("IndexOf(1981): got %d, want 1", got)
	}
	if got := tl.IndexOf(2000); got != -1 {
		t.Errorf("IndexOf(2000): got %d, want -1", got)
	}
}

func TestNewRejectsDuplicateYears(t *testing.T) {
	_, err := New([]Event{{Year: 2000}, {Year: 2000}})
	if !errors.Is(err, ErrDuplicateYear) {
		t.Fatalf("expected ErrDuplicateYear, got %v", err)
	}
}

func TestEventsReturnsCopy(t *testing.T) {
	tl := sample(t)
	evs := tl.Events()
	evs[0].Title = "changed"
	if first, _ := tl.First(); first.Title != "ARPANET" {
		t.Errorf("timeline mutated through Events(): %q", first.Title)
	}
}

func TestCategoriesAndFilter(t *testing.T) {
	tl := sample(t)
	cats := tl.Categories()
	if len(cats) != 2 || cats[0] != "Networking" || cats[1] != "Hardware" {
		t.Errorf("Categories: got %v", cats)
	}
	net := tl.FilterCategory("networking")
	if net.Len() != 2 {
		t.Fatalf("FilterCategory: got %d events, want 2", net.Len())
	}
	if net.IndexOf(1991) != 1 {
		t.Errorf("filtered index of 1991: got %d, want 1", net.IndexOf(1991))
	}
	if tl.FilterCategory("Nope").Len() != 0 {
		t.Error("unknown category should produce an empty timeline")
	}
}

func TestDefault(t *testing.T) {
	tl := Default()
	if tl.Len() != 8 {
		t.Fatalf("default events: got %d, want 8", tl.Len())
	}
	first, _ := tl.First()
	if first.Year != 1969 {
		t.Errorf("first default year: got %d, want 1969", first.Year)
	}
}

func TestPosition(t *testing.T) {
	tests := []struct {
		i, total int
		want     float64
	}{
		{0, 0, 0},
		{0, 1, 0},
		{0, 3, 0},
		{1, 3, 50},
		{2, 3, 100},
		{0, 5, 0},
		{4, 5, 100},
		{1, 5, 25},
	}
	for _, tt := range tests {
		if got := Position(tt.i, tt.total); got != tt.want {
			t.Errorf("Position(%d, %d): got %v, want %v", tt.i, tt.total, got, tt.want)
		}
	}
}

func TestColumn(t *testing.T) {
	tests := []struct {
		pos   float64
		width int
		want  int
	}{
		{0, 80, 0},
		{100, 80, 79},
		{50, 81, 40},
		{50, 1, 0},
		{100, 0, 0},
	}
	for _, tt := range tests {
		if got := Column(tt.pos, tt.width); got != tt.want {
			t.Errorf("Column(%v, %d): got %d, want %d", tt.pos, tt.width, got, tt.want)
		}
	}
}
