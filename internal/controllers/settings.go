package controllers

import (
	"context"
	"sync"

	"remote-launcher/internal/logger"
	"remote-launcher/internal/models"

	"github.com/google/uuid"
)

const settingsComponent = "SettingsController"

// Status messages shown on the settings screen.
const (
	MsgAddSuccess    = "Application added successfully!"
	MsgAddError      = "Error adding application."
	MsgRemoveSuccess = "Application removed successfully!"
	MsgRemoveError   = "Error removing application."
)

// SettingsController owns the state of one mounted settings screen.
type SettingsController struct {
	client  AppClient
	state   *models.SettingsState
	logger  logger.Logger
	mountID string

	mu   sync.RWMutex
	view SettingsRenderer

	// renderMu keeps frames in the order their snapshots were taken.
	renderMu sync.Mutex
}

// NewSettingsController creates a controller with empty state and a fresh mount id.
func NewSettingsController(client AppClient, log logger.Logger) *SettingsController {
	return &SettingsController{
		client:  client,
		state:   models.NewSettingsState(),
		logger:  log,
		mountID: uuid.NewString(),
	}
}

// SetView attaches view and renders the current state into it. A nil view
// detaches the screen; later state changes are kept but not drawn.
func (sc *SettingsController) SetView(view SettingsRenderer) {
	sc.mu.Lock()
	sc.view = view
	sc.mu.Unlock()
	sc.render()
}

// MountID identifies this mount in log fields.
func (sc *SettingsController) MountID() string {
	return sc.mountID
}

// State returns a copy of the current state.
func (sc *SettingsController) State() models.SettingsSnapshot {
	return sc.state.Snapshot()
}

// Mount loads the application list for this screen.
func (sc *SettingsController) Mount(ctx context.Context) {
	sc.logger.Debug(settingsComponent, "mounted", sc.fields(nil))

	apps, err := sc.client.ListApplications(ctx)
	if err != nil {
		sc.logger.Error(settingsComponent, err, sc.fields(map[string]interface{}{
			"message": "error fetching apps",
		}))
		return
	}
	sc.state.SetApplications(apps)
	sc.render()
}

// SelectFile stores the file to upload on the next AddApplication.
func (sc *SettingsController) SelectFile(ref models.FileRef) {
	sc.state.SetPendingFile(ref)
	sc.render()
}

// AddApplication uploads the selected file. Without a selection it does
// nothing.
func (sc *SettingsController) AddApplication(ctx context.Context) {
	file, ok := sc.state.PendingFile()
	if !ok {
		return
	}

	if err := sc.client.AddApplication(ctx, file); err != nil {
		sc.fail(MsgAddError, err, map[string]interface{}{
			"message": "error adding app",
			"file":    file.Name,
		})
		return
	}

	sc.state.SetStatusMessage(MsgAddSuccess)
	sc.state.ClearPendingFile()
	sc.render()

	sc.refresh(ctx, MsgAddError)
}

// RemoveApplication asks the backend to drop name and reloads the list.
func (sc *SettingsController) RemoveApplication(ctx context.Context, name string) {
	if err := sc.client.RemoveApplication(ctx, name); err != nil {
		sc.fail(MsgRemoveError, err, map[string]interface{}{
			"message": "error removing app",
			"app":     name,
		})
		return
	}

	sc.state.SetStatusMessage(MsgRemoveSuccess)
	sc.render()

	sc.refresh(ctx, MsgRemoveError)
}

// refresh reloads the list after a mutation. A failed reload reports the
// mutation's error message.
func (sc *SettingsController) refresh(ctx context.Context, failMsg string) {
	apps, err := sc.client.ListApplications(ctx)
	if err != nil {
		sc.fail(failMsg, err, map[string]interface{}{
			"message": "error refreshing apps",
		})
		return
	}
	sc.state.SetApplications(apps)
	sc.render()
}

func (sc *SettingsController) fail(status string, err error, fields map[string]interface{}) {
	sc.logger.Error(settingsComponent, err, sc.fields(fields))
	sc.state.SetStatusMessage(status)
	sc.render()
}

func (sc *SettingsController) render() {
	sc.renderMu.Lock()
	defer sc.renderMu.Unlock()

	sc.mu.RLock()
	view := sc.view
	sc.mu.RUnlock()
	if view != nil {
		view.RenderSettings(sc.state.Snapshot())
	}
}

func (sc *SettingsController) fields(extra map[string]interface{}) map[string]interface{} {
	f := map[string]interface{}{"mount_id": sc.mountID}
	for k, v := range extra {
		f[k] = v
	}
	return f
}
