package state

import "github.com/miloscript/monify/internal/model"

// ThemeSlice owns UI presentation preferences.
type ThemeSlice struct {
	Config model.ThemeConfig
}

// SetDarkMode toggles the dark theme.
func (s ThemeSlice) SetDarkMode(on bool) ThemeSlice {
	s.Config.DarkMode = on
	return s
}
