package models

import "strings"

// Chrome themes a visitor can pick for the studio shell.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	DefaultTheme = ThemeLight
)

// ValidTheme reports whether value names a supported chrome theme.
func ValidTheme(value string) bool {
	switch value {
	case ThemeLight, ThemeDark:
		return true
	default:
		return false
	}
}

// NormalizeTheme returns value when valid and DefaultTheme otherwise.
func NormalizeTheme(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if ValidTheme(value) {
		return value
	}
	return DefaultTheme
}
