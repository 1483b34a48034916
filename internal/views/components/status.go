package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar shows the result of the last mutating action. It is hidden
// while there is nothing to say.
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("")
	sb.statusLabel.Wrapping = fyne.TextWrapWord
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewVBox(widget.NewSeparator(), sb.statusLabel)
	sb.container.Hide()
}

// SetStatus updates the message. Empty hides the bar.
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
	if status == "" {
		sb.container.Hide()
	} else {
		sb.container.Show()
	}
}

// GetStatus returns the current message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// IsVisible reports whether a message is shown
func (sb *StatusBar) IsVisible() bool {
	return sb.container.Visible()
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

// LoadingIndicator is shown while a launch or quit request is in flight.
type LoadingIndicator struct {
	container   *fyne.Container
	progressBar *widget.ProgressBarInfinite
	label       *widget.Label
}

// NewLoadingIndicator creates a hidden loading indicator
func NewLoadingIndicator() *LoadingIndicator {
	li := &LoadingIndicator{}
	li.createComponents()
	li.buildLayout()
	return li
}

func (li *LoadingIndicator) createComponents() {
	li.progressBar = widget.NewProgressBarInfinite()
	li.progressBar.Stop()
	li.label = widget.NewLabel("Loading...")
}

func (li *LoadingIndicator) buildLayout() {
	li.container = container.NewVBox(li.label, li.progressBar)
	li.container.Hide()
}

// SetVisible shows or hides the indicator
func (li *LoadingIndicator) SetVisible(visible bool) {
	if visible == li.container.Visible() {
		return
	}
	if visible {
		li.progressBar.Start()
		li.container.Show()
	} else {
		li.progressBar.Stop()
		li.container.Hide()
	}
}

// IsVisible reports whether the indicator is shown
func (li *LoadingIndicator) IsVisible() bool {
	return li.container.Visible()
}

// GetContainer returns the indicator container
func (li *LoadingIndicator) GetContainer() *fyne.Container {
	return li.container
}
