package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// Theme represents the UI color theme
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Validate checks if the Theme is supported
func (t Theme) Validate() error {
	switch t {
	case ThemeLight, ThemeDark:
		return nil
	default:
		return goerr.New("invalid theme", goerr.V("theme", t))
	}
}

// Toggle returns the opposite theme
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// String returns the string representation of Theme
func (t Theme) String() string {
	return string(t)
}
