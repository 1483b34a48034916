package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// NavBar is the header of a screen: a title and one button that moves to
// another route.
type NavBar struct {
	container *fyne.Container
	title     *widget.Label
	navButton *widget.Button

	navigateHandler func()
}

// NewNavBar creates a title bar with one navigation button
func NewNavBar(title, navLabel string, navIcon fyne.Resource) *NavBar {
	nb := &NavBar{}
	nb.createComponents(title, navLabel, navIcon)
	nb.buildLayout()
	return nb
}

func (nb *NavBar) createComponents(title, navLabel string, navIcon fyne.Resource) {
	nb.title = widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	nb.navButton = widget.NewButtonWithIcon(navLabel, navIcon, func() {
		if nb.navigateHandler != nil {
			nb.navigateHandler()
		}
	})
}

func (nb *NavBar) buildLayout() {
	nb.container = container.NewHBox(nb.title, layout.NewSpacer(), nb.navButton)
}

// SetNavigateHandler sets the callback for the navigation button
func (nb *NavBar) SetNavigateHandler(handler func()) {
	nb.navigateHandler = handler
}

// NavButton returns the navigation button
func (nb *NavBar) NavButton() *widget.Button {
	return nb.navButton
}

// GetContainer returns the navigation bar container
func (nb *NavBar) GetContainer() *fyne.Container {
	return nb.container
}
