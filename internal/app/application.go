package app

import (
	"remote-launcher/internal/config"
	"remote-launcher/internal/logger"
	"remote-launcher/internal/router"
	"remote-launcher/internal/services"
	"remote-launcher/internal/shutdown"

	"fyne.io/fyne/v2"
)

const (
	AppName    = "Remote Launcher"
	AppID      = "com.remotelauncher.desktop"
	AppVersion = "1.0.0"
)

// Application wires the window, router and backend client together.
type Application struct {
	fyneApp   fyne.App
	window    fyne.Window
	router    *router.Router
	client    *services.AppService
	logger    logger.Logger
	lifecycle *Lifecycle
	config    config.Config
}

// NewApplication builds the UI on fyneApp for the backend in cfg.
func NewApplication(fyneApp fyne.App, cfg config.Config, log logger.Logger) *Application {
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()
	window.SetMaster()

	client := services.NewAppService(cfg.BaseURL(), nil, log)
	shutdownMgr := shutdown.NewManager(log)

	a := &Application{
		fyneApp:   fyneApp,
		window:    window,
		router:    router.New(window, log),
		client:    client,
		logger:    log,
		lifecycle: NewLifecycle(fyneApp, window, shutdownMgr, log),
		config:    cfg,
	}
	a.registerRoutes()

	log.Info("Application", "initialized", map[string]interface{}{
		"version":     AppVersion,
		"server_url":  client.BaseURL(),
		"start_route": cfg.StartRoute,
	})
	return a
}

func (a *Application) registerRoutes() {
	a.router.Handle(config.DefaultRoute, func(nav router.Navigator) router.Screen {
		return newLauncherScreen(a.lifecycle, a.client, nav, a.logger)
	})
	a.router.Handle(config.SettingsRoute, func(nav router.Navigator) router.Screen {
		return newSettingsScreen(a.lifecycle, a.client, a.window, nav, a.logger)
	})
}

// Start shows the start route without entering the event loop.
func (a *Application) Start() error {
	if err := a.router.Navigate(a.config.StartRoute); err != nil {
		return err
	}
	a.window.Show()
	return nil
}

// Run starts the UI and blocks until the app quits.
func (a *Application) Run() error {
	stop := a.lifecycle.Start()
	defer stop()

	if err := a.Start(); err != nil {
		return err
	}

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()
	a.lifecycle.Shutdown()
	return nil
}

func (a *Application) Router() *router.Router {
	return a.router
}

func (a *Application) Window() fyne.Window {
	return a.window
}

func (a *Application) Lifecycle() *Lifecycle {
	return a.lifecycle
}
