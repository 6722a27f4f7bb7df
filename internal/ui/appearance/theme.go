// Package appearance maps the persisted theme onto fyne's theme variants.
package appearance

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"pomodoro/internal/core/model"
	"pomodoro/resources"
)

var blossomPink = color.NRGBA{R: 0xf0, G: 0x62, B: 0x92, A: 0xff}

// Theme pins fyne's default theme to one variant and tints the primary colour.
type Theme struct {
	variant fyne.ThemeVariant
}

var _ fyne.Theme = (*Theme)(nil)

// New returns the fyne theme for the persisted preference.
func New(preference model.Theme) *Theme {
	if preference == model.ThemeDark {
		return &Theme{variant: theme.VariantDark}
	}
	return &Theme{variant: theme.VariantLight}
}

// Variant returns the pinned variant.
func (pinned *Theme) Variant() fyne.ThemeVariant {
	return pinned.variant
}

// Color ignores the system variant in favour of the pinned one.
func (pinned *Theme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	if name == theme.ColorNamePrimary {
		return blossomPink
	}
	return theme.DefaultTheme().Color(name, pinned.variant)
}

func (pinned *Theme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (pinned *Theme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (pinned *Theme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}

// Apply installs the theme for preference on app.
func Apply(app fyne.App, preference model.Theme) {
	app.Settings().SetTheme(New(preference))
}

// ToggleIcon returns the icon for the theme button: a moon offers dark mode,
// a sun offers light mode.
func ToggleIcon(preference model.Theme) fyne.Resource {
	if preference == model.ThemeDark {
		return resources.ThemedIcon(resources.Sun)
	}
	return resources.ThemedIcon(resources.Moon)
}
