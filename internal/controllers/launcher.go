package controllers

import (
	"context"
	"sync"

	"remote-launcher/internal/logger"
	"remote-launcher/internal/models"

	"github.com/google/uuid"
)

const launcherComponent = "LauncherController"

// LauncherController owns the state of one mounted launcher screen.
//
// currentApp is set as soon as a launch starts and is only cleared by a quit
// the backend accepted. A failed launch or quit leaves it in place.
type LauncherController struct {
	client  AppClient
	state   *models.LauncherState
	logger  logger.Logger
	mountID string

	mu   sync.RWMutex
	view LauncherRenderer

	// renderMu keeps frames in the order their snapshots were taken.
	renderMu sync.Mutex
}

// NewLauncherController creates a controller with empty state and a fresh mount id.
func NewLauncherController(client AppClient, log logger.Logger) *LauncherController {
	return &LauncherController{
		client:  client,
		state:   models.NewLauncherState(),
		logger:  log,
		mountID: uuid.NewString(),
	}
}

// SetView attaches view and renders the current state into it. A nil view
// detaches the screen; later state changes are kept but not drawn.
func (lc *LauncherController) SetView(view LauncherRenderer) {
	lc.mu.Lock()
	lc.view = view
	lc.mu.Unlock()
	lc.render()
}

// MountID identifies this mount in log fields.
func (lc *LauncherController) MountID() string {
	return lc.mountID
}

// State returns a copy of the current state.
func (lc *LauncherController) State() models.LauncherSnapshot {
	return lc.state.Snapshot()
}

// Mount loads the application list. A failure is logged and the list is
// left as it was.
func (lc *LauncherController) Mount(ctx context.Context) {
	lc.logger.Debug(launcherComponent, "mounted", lc.fields(nil))

	apps, err := lc.client.ListApplications(ctx)
	if err != nil {
		lc.logger.Error(launcherComponent, err, lc.fields(map[string]interface{}{
			"message": "error fetching apps",
		}))
		return
	}

	lc.state.SetApplications(apps)
	lc.render()
}

// Launch marks name as the current app and asks the backend to start it.
func (lc *LauncherController) Launch(ctx context.Context, name string) {
	lc.state.BeginLaunch(name)
	lc.render()

	err := lc.client.Launch(ctx, name)
	if err != nil {
		lc.logger.Error(launcherComponent, err, lc.fields(map[string]interface{}{
			"message": "error launching app",
			"app":     name,
		}))
	} else {
		lc.logger.Info(launcherComponent, "app launched", lc.fields(map[string]interface{}{
			"app": name,
		}))
	}

	lc.state.FinishRequest(false)
	lc.render()
}

// Quit asks the backend to stop the current app. Without a current app it
// does nothing.
func (lc *LauncherController) Quit(ctx context.Context) {
	if lc.state.CurrentApp() == "" {
		lc.logger.Debug(launcherComponent, "quit ignored, no current app", lc.fields(nil))
		return
	}

	name := lc.state.BeginQuit()
	lc.render()

	err := lc.client.Quit(ctx, name)
	if err != nil {
		lc.logger.Error(launcherComponent, err, lc.fields(map[string]interface{}{
			"message": "error quitting app",
			"app":     name,
		}))
	} else {
		lc.logger.Info(launcherComponent, "app quit", lc.fields(map[string]interface{}{
			"app": name,
		}))
	}

	lc.state.FinishRequest(err == nil)
	lc.render()
}

func (lc *LauncherController) render() {
	lc.renderMu.Lock()
	defer lc.renderMu.Unlock()

	lc.mu.RLock()
	view := lc.view
	lc.mu.RUnlock()
	if view != nil {
		view.RenderLauncher(lc.state.Snapshot())
	}
}

func (lc *LauncherController) fields(extra map[string]interface{}) map[string]interface{} {
	f := map[string]interface{}{"mount_id": lc.mountID}
	for k, v := range extra {
		f[k] = v
	}
	return f
}
