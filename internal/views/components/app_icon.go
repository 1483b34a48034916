package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const DefaultAppIcon = theme.IconNameMediaStop

// appIcons maps an exact application name to the icon shown on its tile.
var appIcons = map[string]fyne.ThemeIconName{
	"VS Code": theme.IconNameFileText,
	"Chrome":  theme.IconNameComputer,
	"Zoom":    theme.IconNameMediaPlay,
	"Postman": theme.IconNameMediaStop,
}

// IconNameFor returns the icon for name, or DefaultAppIcon.
func IconNameFor(name string) fyne.ThemeIconName {
	if icon, ok := appIcons[name]; ok {
		return icon
	}
	return DefaultAppIcon
}

// IconFor resolves the icon for name against the current theme.
func IconFor(name string) fyne.Resource {
	return theme.Current().Icon(IconNameFor(name))
}
