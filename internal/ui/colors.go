package ui

// Shorthands for the active theme's escape codes.

func ColorReset() string  { return GetCurrentTheme().Reset }
func ColorRed() string    { return GetCurrentTheme().Error }
func ColorGreen() string  { return GetCurrentTheme().Success }
func ColorYellow() string { return GetCurrentTheme().Warning }
func ColorBlue() string   { return GetCurrentTheme().Info }
func ColorOrange() string { return GetCurrentTheme().Primary }
func ColorGrey() string   { return GetCurrentTheme().Secondary }
func ColorBold() string   { return GetCurrentTheme().Bold }

// Colors adapts the active theme to apperrors.ColorProvider.
type Colors struct{}

func (Colors) Yellow() string { return ColorYellow() }
func (Colors) Reset() string  { return ColorReset() }
