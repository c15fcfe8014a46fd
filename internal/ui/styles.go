package ui

import (
	styles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/kyaoi/chronoline/internal/timeline"
)

type palette struct {
	fg, muted, accent, line, surface, errColor lipgloss.Color
	glamourStyle                               string
}

var (
	darkPalette = palette{
		fg:           lipgloss.Color("#c0caf5"),
		muted:        lipgloss.Color("#565f89"),
		accent:       lipgloss.Color("#7aa2f7"),
		line:         lipgloss.Color("#3b4261"),
		surface:      lipgloss.Color("#1f2335"),
		errColor:     lipgloss.Color("#ff6b6b"),
		glamourStyle: styles.TokyoNightStyle,
	}
	lightPalette = palette{
		fg:           lipgloss.Color("#1a1a1a"),
		muted:        lipgloss.Color("#6b7280"),
		accent:       lipgloss.Color("#2563eb"),
		line:         lipgloss.Color("#d1d5db"),
		surface:      lipgloss.Color("#f3f4f6"),
		errColor:     lipgloss.Color("#dc2626"),
		glamourStyle: styles.LightStyle,
	}
)

func paletteFor(t timeline.Theme) palette {
	if t == timeline.Dark {
		return darkPalette
	}
	return lightPalette
}

// theme holds the lipgloss styles derived from a palette.
type theme struct {
	palette
	header       lipgloss.Style
	badge        lipgloss.Style
	axis         lipgloss.Style
	marker       lipgloss.Style
	markerActive lipgloss.Style
	label        lipgloss.Style
	labelActive  lipgloss.Style
	errLine      lipgloss.Style
	modalBox     lipgloss.Style
	helpBox      lipgloss.Style
	prompt       lipgloss.Style
}

func newTheme(t timeline.Theme) theme {
	p := paletteFor(t)
	return theme{
		palette: p,
		header:  lipgloss.NewStyle().Bold(true).Foreground(p.accent).Padding(0, 1),
		badge: lipgloss.NewStyle().
			Foreground(p.surface).
			Background(p.muted).
			Padding(0, 1),
		axis:         lipgloss.NewStyle().Foreground(p.line),
		marker:       lipgloss.NewStyle().Foreground(p.muted),
		markerActive: lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		label:        lipgloss.NewStyle().Foreground(p.muted),
		labelActive:  lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		errLine:      lipgloss.NewStyle().Foreground(p.errColor).Padding(0, 1),
		modalBox: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.accent),
		helpBox: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Background(p.surface),
		prompt: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(p.fg).
			Background(p.surface),
	}
}
