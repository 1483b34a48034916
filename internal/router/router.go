// Package router swaps whole screens in and out of a window by route path.
// Every navigation builds a fresh screen, so no state survives a round trip.
package router

import (
	"sort"
	"sync"

	"remote-launcher/internal/logger"

	"fyne.io/fyne/v2"
	"github.com/pkg/errors"
)

const component = "Router"

// ErrUnknownRoute is returned when navigating to a path with no screen.
var ErrUnknownRoute = errors.New("unknown route")

// Screen is one routable page.
type Screen interface {
	Content() fyne.CanvasObject
	Mount()
	Unmount()
}

// Navigator moves between routes.
type Navigator interface {
	Navigate(path string) error
}

// Factory builds a new screen for a route. nav lets the screen trigger
// navigation itself.
type Factory func(nav Navigator) Screen

// Surface is where the router puts the active screen. fyne.Window satisfies it.
type Surface interface {
	SetContent(content fyne.CanvasObject)
}

type Router struct {
	surface Surface
	logger  logger.Logger

	mu      sync.Mutex
	routes  map[string]Factory
	current Screen
	path    string
}

func New(surface Surface, log logger.Logger) *Router {
	return &Router{
		surface: surface,
		logger:  log,
		routes:  make(map[string]Factory),
	}
}

func (r *Router) Handle(path string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes[path] = factory
}

// Navigate unmounts the current screen, mounts a new one for path and shows
// it. On an unknown path the current screen stays.
func (r *Router) Navigate(path string) error {
	r.mu.Lock()
	factory, ok := r.routes[path]
	if !ok {
		r.mu.Unlock()
		r.logger.Warning(component, "unknown route", map[string]interface{}{"path": path})
		return errors.Wrapf(ErrUnknownRoute, "%q", path)
	}
	previous := r.current
	from := r.path
	r.mu.Unlock()

	if previous != nil {
		previous.Unmount()
	}

	screen := factory(r)

	r.mu.Lock()
	r.current = screen
	r.path = path
	r.mu.Unlock()

	r.surface.SetContent(screen.Content())
	screen.Mount()

	r.logger.Debug(component, "navigated", map[string]interface{}{
		"from": from,
		"to":   path,
	})
	return nil
}

// Current returns the active path, empty before the first navigation.
func (r *Router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.path
}

// CurrentScreen returns the mounted screen, nil before the first navigation.
func (r *Router) CurrentScreen() Screen {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Routes lists the registered paths in order.
func (r *Router) Routes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	paths := make([]string, 0, len(r.routes))
	for p := range r.routes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
