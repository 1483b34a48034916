package views

import (
	"remote-launcher/internal/models"
	"remote-launcher/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// LauncherView renders the launcher screen: a tile per application, a quit
// button while an app is current and a loading indicator while a request is
// in flight.
type LauncherView struct {
	mainContainer *fyne.Container
	navBar        *components.NavBar
	loading       *components.LoadingIndicator
	quitButton    *widget.Button
	grid          *components.AppGrid

	appNames []string

	// Event handlers - connected to controller
	launchHandler   func(name string)
	quitHandler     func()
	navigateHandler func()
}

// NewLauncherView creates the launcher screen with no applications
func NewLauncherView() *LauncherView {
	view := &LauncherView{}
	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()
	return view
}

func (lv *LauncherView) initializeComponents() {
	lv.navBar = components.NewNavBar("Applications", "Settings", theme.SettingsIcon())
	lv.loading = components.NewLoadingIndicator()
	lv.quitButton = widget.NewButtonWithIcon("Quit App", theme.CancelIcon(), nil)
	lv.quitButton.Importance = widget.DangerImportance
	lv.quitButton.Hide()
	lv.grid = components.NewAppGrid()
}

func (lv *LauncherView) buildLayout() {
	top := container.NewVBox(
		lv.navBar.GetContainer(),
		lv.loading.GetContainer(),
		lv.quitButton,
	)
	lv.mainContainer = container.NewBorder(
		top, nil, nil, nil,
		container.NewVScroll(lv.grid.GetContainer()),
	)
}

func (lv *LauncherView) setupEventHandlers() {
	lv.grid.SetTapHandler(func(name string) {
		if lv.launchHandler != nil {
			lv.launchHandler(name)
		}
	})
	lv.quitButton.OnTapped = func() {
		if lv.quitHandler != nil {
			lv.quitHandler()
		}
	}
	lv.navBar.SetNavigateHandler(func() {
		if lv.navigateHandler != nil {
			lv.navigateHandler()
		}
	})
}

// SetLaunchHandler sets the callback for a tapped application tile
func (lv *LauncherView) SetLaunchHandler(handler func(name string)) {
	lv.launchHandler = handler
}

// SetQuitHandler sets the callback for the quit button
func (lv *LauncherView) SetQuitHandler(handler func()) {
	lv.quitHandler = handler
}

// SetNavigateHandler sets the callback for the settings button
func (lv *LauncherView) SetNavigateHandler(handler func()) {
	lv.navigateHandler = handler
}

// RenderLauncher applies state on the UI goroutine.
func (lv *LauncherView) RenderLauncher(state models.LauncherSnapshot) {
	fyne.Do(func() {
		lv.apply(state)
	})
}

func (lv *LauncherView) apply(state models.LauncherSnapshot) {
	names := models.Names(state.Applications)
	if !equalNames(names, lv.appNames) {
		lv.appNames = names
		lv.grid.SetApplications(state.Applications)
	}

	lv.loading.SetVisible(state.Loading)
	if state.HasCurrentApp() {
		lv.quitButton.Show()
	} else {
		lv.quitButton.Hide()
	}
}

// Content returns the root container
func (lv *LauncherView) Content() fyne.CanvasObject {
	return lv.mainContainer
}

// Tiles returns the application tiles in list order
func (lv *LauncherView) Tiles() []*widget.Button {
	return lv.grid.Tiles()
}

// QuitButton returns the quit button, hidden while no app is current
func (lv *LauncherView) QuitButton() *widget.Button {
	return lv.quitButton
}

// SettingsButton returns the navigation button to settings
func (lv *LauncherView) SettingsButton() *widget.Button {
	return lv.navBar.NavButton()
}

// LoadingVisible reports whether the loading indicator is shown
func (lv *LauncherView) LoadingVisible() bool {
	return lv.loading.IsVisible()
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
