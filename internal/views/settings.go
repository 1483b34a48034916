package views

import (
	"io"

	"remote-launcher/internal/models"
	"remote-launcher/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const noFileSelected = "No file selected"

// FileChooser asks the user for a file and hands the choice to onChosen. It
// does not call onChosen when the user cancels.
type FileChooser func(onChosen func(models.FileRef))

// SettingsView renders the settings screen: a file picker with an add
// button, the applications with remove buttons and the last status message.
type SettingsView struct {
	mainContainer *fyne.Container
	navBar        *components.NavBar
	chooseButton  *widget.Button
	fileLabel     *widget.Label
	addButton     *widget.Button
	appList       *components.AppRemoveList
	statusBar     *components.StatusBar

	chooser FileChooser

	fileSelectedHandler func(models.FileRef)
	addHandler          func()
	removeHandler       func(name string)
	navigateHandler     func()
}

// NewSettingsView builds the view. File dialogs are parented to window.
func NewSettingsView(window fyne.Window) *SettingsView {
	view := &SettingsView{
		chooser: DialogFileChooser(window),
	}
	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()
	return view
}

// DialogFileChooser opens the fyne file dialog on window.
func DialogFileChooser(window fyne.Window) FileChooser {
	return func(onChosen func(models.FileRef)) {
		dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil || reader == nil {
				return
			}
			uri := reader.URI()
			reader.Close()
			onChosen(models.FileRef{
				Name: uri.Name(),
				Open: func() (io.ReadCloser, error) {
					return storage.Reader(uri)
				},
			})
		}, window)
	}
}

func (sv *SettingsView) initializeComponents() {
	sv.navBar = components.NewNavBar("Settings", "Home", theme.HomeIcon())
	sv.chooseButton = widget.NewButtonWithIcon("Choose File", theme.FolderOpenIcon(), nil)
	sv.fileLabel = widget.NewLabel(noFileSelected)
	sv.addButton = widget.NewButtonWithIcon("Add Application", theme.ContentAddIcon(), nil)
	sv.addButton.Importance = widget.HighImportance
	sv.appList = components.NewAppRemoveList()
	sv.statusBar = components.NewStatusBar()
}

func (sv *SettingsView) buildLayout() {
	fileRow := container.NewHBox(sv.chooseButton, sv.fileLabel, sv.addButton)
	top := container.NewVBox(sv.navBar.GetContainer(), fileRow, widget.NewSeparator())
	sv.mainContainer = container.NewBorder(
		top,
		sv.statusBar.GetContainer(),
		nil, nil,
		container.NewVScroll(sv.appList.GetContainer()),
	)
}

func (sv *SettingsView) setupEventHandlers() {
	sv.chooseButton.OnTapped = func() {
		if sv.chooser == nil {
			return
		}
		sv.chooser(func(ref models.FileRef) {
			if sv.fileSelectedHandler != nil {
				sv.fileSelectedHandler(ref)
			}
		})
	}
	sv.addButton.OnTapped = func() {
		if sv.addHandler != nil {
			sv.addHandler()
		}
	}
	sv.appList.SetRemoveHandler(func(name string) {
		if sv.removeHandler != nil {
			sv.removeHandler(name)
		}
	})
	sv.navBar.SetNavigateHandler(func() {
		if sv.navigateHandler != nil {
			sv.navigateHandler()
		}
	})
}

// SetFileChooser replaces the dialog used by the choose button
func (sv *SettingsView) SetFileChooser(chooser FileChooser) {
	sv.chooser = chooser
}

// SetFileSelectedHandler sets the callback for a chosen file
func (sv *SettingsView) SetFileSelectedHandler(handler func(models.FileRef)) {
	sv.fileSelectedHandler = handler
}

// SetAddHandler sets the callback for the add button
func (sv *SettingsView) SetAddHandler(handler func()) {
	sv.addHandler = handler
}

// SetRemoveHandler sets the callback for a row's remove button
func (sv *SettingsView) SetRemoveHandler(handler func(name string)) {
	sv.removeHandler = handler
}

// SetNavigateHandler sets the callback for the home button
func (sv *SettingsView) SetNavigateHandler(handler func()) {
	sv.navigateHandler = handler
}

// RenderSettings applies state on the UI goroutine.
func (sv *SettingsView) RenderSettings(state models.SettingsSnapshot) {
	fyne.Do(func() {
		sv.apply(state)
	})
}

func (sv *SettingsView) apply(state models.SettingsSnapshot) {
	sv.appList.SetApplications(state.Applications)
	if state.PendingFile == "" {
		sv.fileLabel.SetText(noFileSelected)
	} else {
		sv.fileLabel.SetText(state.PendingFile)
	}
	sv.statusBar.SetStatus(state.StatusMessage)
}

// Content returns the root container
func (sv *SettingsView) Content() fyne.CanvasObject {
	return sv.mainContainer
}

// Rows returns the application rows in list order
func (sv *SettingsView) Rows() []components.AppRow {
	return sv.appList.Rows()
}

// ChooseButton returns the button that opens the file chooser
func (sv *SettingsView) ChooseButton() *widget.Button {
	return sv.chooseButton
}

// AddButton returns the upload button
func (sv *SettingsView) AddButton() *widget.Button {
	return sv.addButton
}

// HomeButton returns the navigation button to the launcher
func (sv *SettingsView) HomeButton() *widget.Button {
	return sv.navBar.NavButton()
}

// SelectedFile returns the text shown for the pending file
func (sv *SettingsView) SelectedFile() string {
	return sv.fileLabel.Text
}

// Status returns the status message on screen
func (sv *SettingsView) Status() string {
	return sv.statusBar.GetStatus()
}
