// Package mockbackend serves the application backend's HTTP surface from an
// httptest server and records every request it sees.
package mockbackend

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"remote-launcher/internal/models"
)

// Request is one recorded call.
type Request struct {
	Method      string
	Path        string
	AppName     string
	ContentType string
	FileName    string
	FileType    string
	FileBody    []byte
}

// Backend is a programmable stand-in for the application server.
type Backend struct {
	*httptest.Server

	mu       sync.Mutex
	apps     []models.Application
	requests []Request
	failures map[string]int
	holds    map[string]chan struct{}
}

// New starts a backend serving apps and closes it when t finishes.
func New(t testing.TB, apps ...string) *Backend {
	t.Helper()
	b := &Backend{
		failures: make(map[string]int),
		holds:    make(map[string]chan struct{}),
	}
	b.SetApps(apps...)
	b.Server = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(func() {
		b.releaseAll()
		b.Close()
	})
	return b
}

func (b *Backend) releaseAll() {
	b.mu.Lock()
	holds := b.holds
	b.holds = make(map[string]chan struct{})
	b.mu.Unlock()
	for _, ch := range holds {
		close(ch)
	}
}

func (b *Backend) SetApps(names ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.apps = make([]models.Application, len(names))
	for i, n := range names {
		b.apps[i] = models.Application{Name: n}
	}
}

// Fail makes path answer with status until cleared with status 0.
func (b *Backend) Fail(path string, status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if status == 0 {
		delete(b.failures, path)
		return
	}
	b.failures[path] = status
}

// Hold blocks requests to path until the returned release func is called.
// The request is recorded before it blocks.
func (b *Backend) Hold(path string) (release func()) {
	ch := make(chan struct{})
	b.mu.Lock()
	b.holds[path] = ch
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			pending := b.holds[path] == ch
			if pending {
				delete(b.holds, path)
			}
			b.mu.Unlock()
			if pending {
				close(ch)
			}
		})
	}
}

func (b *Backend) Requests() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Request, len(b.requests))
	copy(out, b.requests)
	return out
}

// Count returns how many requests hit method and path.
func (b *Backend) Count(method, path string) int {
	n := 0
	for _, r := range b.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

// Last returns the most recent request to path.
func (b *Backend) Last(path string) (Request, bool) {
	reqs := b.Requests()
	for i := len(reqs) - 1; i >= 0; i-- {
		if reqs[i].Path == path {
			return reqs[i], true
		}
	}
	return Request{}, false
}

func (b *Backend) serve(w http.ResponseWriter, r *http.Request) {
	rec := Request{
		Method:      r.Method,
		Path:        r.URL.Path,
		ContentType: r.Header.Get("Content-Type"),
	}

	switch r.URL.Path {
	case "/launch", "/quit", "/remove-app":
		var body struct {
			AppName string `json:"appName"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		rec.AppName = body.AppName
	case "/add-app":
		if file, header, err := r.FormFile("file"); err == nil {
			rec.FileName = header.Filename
			rec.FileType = header.Header.Get("Content-Type")
			rec.FileBody, _ = io.ReadAll(file)
			file.Close()
		}
	}

	b.mu.Lock()
	b.requests = append(b.requests, rec)
	hold := b.holds[r.URL.Path]
	status := b.failures[r.URL.Path]
	apps := make([]models.Application, len(b.apps))
	copy(apps, b.apps)
	b.mu.Unlock()

	if hold != nil {
		<-hold
	}
	if status != 0 {
		http.Error(w, http.StatusText(status), status)
		return
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/apps":
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(apps)
	case r.Method == http.MethodPost:
		w.WriteHeader(http.StatusOK)
	default:
		http.NotFound(w, r)
	}
}
