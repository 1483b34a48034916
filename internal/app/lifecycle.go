package app

import (
	"context"
	"sync"

	"remote-launcher/internal/logger"
	"remote-launcher/internal/shutdown"

	"fyne.io/fyne/v2"
)

// Lifecycle ties the fyne event loop to the shutdown manager. Requests run
// on its context, which outlives every screen and ends only at shutdown.
type Lifecycle struct {
	fyneApp  fyne.App
	window   fyne.Window
	shutdown *shutdown.Manager
	logger   logger.Logger

	tasks sync.WaitGroup
}

// NewLifecycle registers the fyne app and the background requests with mgr.
func NewLifecycle(fyneApp fyne.App, window fyne.Window, mgr *shutdown.Manager, log logger.Logger) *Lifecycle {
	l := &Lifecycle{
		fyneApp:  fyneApp,
		window:   window,
		shutdown: mgr,
		logger:   log,
	}

	mgr.Register("fyne app", shutdown.Func(func() {
		fyne.Do(fyneApp.Quit)
	}))
	mgr.Register("background requests", shutdown.Func(l.Wait))
	return l
}

// Start listens for OS signals and intercepts window close. The returned
// func stops signal handling.
func (l *Lifecycle) Start() (stop func()) {
	l.window.SetCloseIntercept(func() {
		l.logger.Info("Lifecycle", "window close requested", nil)
		go l.shutdown.Shutdown()
	})
	return l.shutdown.Listen()
}

// Go runs fn on a new goroutine tracked by Wait. Nothing is started once
// shutdown has begun.
func (l *Lifecycle) Go(fn func()) {
	if l.Context().Err() != nil {
		return
	}
	l.tasks.Add(1)
	go func() {
		defer l.tasks.Done()
		fn()
	}()
}

// Wait blocks until every func started with Go has returned.
func (l *Lifecycle) Wait() {
	l.tasks.Wait()
}

// Context is cancelled when shutdown starts.
func (l *Lifecycle) Context() context.Context {
	return l.shutdown.Context()
}

// Shutdown stops every registered component. Safe to call more than once.
func (l *Lifecycle) Shutdown() {
	l.shutdown.Shutdown()
}
