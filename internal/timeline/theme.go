package timeline

import (
	"fmt"
	"strings"
)

// Theme is the colour scheme applied to the whole document.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// PreferSystem defers the theme to the host's reported preference.
const PreferSystem = "system"

// Toggle flips light and dark.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Attr returns the value of the document-level data-theme attribute.
// Light is the default and carries no attribute.
func (t Theme) Attr() string {
	if t == Dark {
		return string(Dark)
	}
	return ""
}

func (t Theme) String() string {
	if t == Dark {
		return string(Dark)
	}
	return string(Light)
}

// ParseTheme accepts "light" or "dark".
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	}
	return Light, fmt.Errorf("invalid theme %q: must be light or dark", s)
}

// ResolveTheme picks the explicit preference when one is set, otherwise the
// system preference.
func ResolveTheme(pref string, prefersDark bool) Theme {
	if t, err := ParseTheme(pref); err == nil {
		return t
	}
	if prefersDark {
		return Dark
	}
	return Light
}
