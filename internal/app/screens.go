package app

import (
	"context"

	"remote-launcher/internal/config"
	"remote-launcher/internal/controllers"
	"remote-launcher/internal/logger"
	"remote-launcher/internal/models"
	"remote-launcher/internal/router"
	"remote-launcher/internal/views"

	"fyne.io/fyne/v2"
)

// dispatcher runs controller calls off the UI goroutine on the
// application context.
type dispatcher interface {
	Go(fn func())
	Context() context.Context
}

// Screens dispatch every request on its own goroutine so the UI never waits
// on the network. Unmounting detaches the view but lets requests finish.

type launcherScreen struct {
	tasks      dispatcher
	controller *controllers.LauncherController
	view       *views.LauncherView
}

func newLauncherScreen(tasks dispatcher, client controllers.AppClient, nav router.Navigator, log logger.Logger) *launcherScreen {
	s := &launcherScreen{
		tasks:      tasks,
		controller: controllers.NewLauncherController(client, log),
		view:       views.NewLauncherView(),
	}

	s.view.SetLaunchHandler(func(name string) {
		s.tasks.Go(func() { s.controller.Launch(s.tasks.Context(), name) })
	})
	s.view.SetQuitHandler(func() {
		s.tasks.Go(func() { s.controller.Quit(s.tasks.Context()) })
	})
	s.view.SetNavigateHandler(func() {
		navigate(nav, config.SettingsRoute, log)
	})
	return s
}

func (s *launcherScreen) Content() fyne.CanvasObject {
	return s.view.Content()
}

func (s *launcherScreen) Mount() {
	s.controller.SetView(s.view)
	s.tasks.Go(func() { s.controller.Mount(s.tasks.Context()) })
}

func (s *launcherScreen) Unmount() {
	s.controller.SetView(nil)
}

type settingsScreen struct {
	tasks      dispatcher
	controller *controllers.SettingsController
	view       *views.SettingsView
}

func newSettingsScreen(tasks dispatcher, client controllers.AppClient, window fyne.Window, nav router.Navigator, log logger.Logger) *settingsScreen {
	s := &settingsScreen{
		tasks:      tasks,
		controller: controllers.NewSettingsController(client, log),
		view:       views.NewSettingsView(window),
	}

	s.view.SetFileSelectedHandler(func(ref models.FileRef) {
		s.controller.SelectFile(ref)
	})
	s.view.SetAddHandler(func() {
		s.tasks.Go(func() { s.controller.AddApplication(s.tasks.Context()) })
	})
	s.view.SetRemoveHandler(func(name string) {
		s.tasks.Go(func() { s.controller.RemoveApplication(s.tasks.Context(), name) })
	})
	s.view.SetNavigateHandler(func() {
		navigate(nav, config.DefaultRoute, log)
	})
	return s
}

func (s *settingsScreen) Content() fyne.CanvasObject {
	return s.view.Content()
}

func (s *settingsScreen) Mount() {
	s.controller.SetView(s.view)
	s.tasks.Go(func() { s.controller.Mount(s.tasks.Context()) })
}

func (s *settingsScreen) Unmount() {
	s.controller.SetView(nil)
}

func navigate(nav router.Navigator, path string, log logger.Logger) {
	if err := nav.Navigate(path); err != nil {
		log.Error("Navigation", err, map[string]interface{}{"path": path})
	}
}
