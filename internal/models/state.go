package models

import "sync"

// LauncherSnapshot is a copy of the launcher state safe to hand to a view.
type LauncherSnapshot struct {
	Applications []Application
	Loading      bool
	CurrentApp   string
}

// HasCurrentApp reports whether an app is considered running.
func (s LauncherSnapshot) HasCurrentApp() bool {
	return s.CurrentApp != ""
}

// LauncherState holds the transient state of one mounted launcher screen.
type LauncherState struct {
	mu           sync.RWMutex
	applications []Application
	loading      bool
	currentApp   string
}

// NewLauncherState creates an empty launcher state
func NewLauncherState() *LauncherState {
	return &LauncherState{applications: []Application{}}
}

// SetApplications replaces the list wholesale.
func (s *LauncherState) SetApplications(apps []Application) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applications = cloneApps(apps)
}

// BeginLaunch marks name as current and a request as in flight.
func (s *LauncherState) BeginLaunch(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.currentApp = name
}

// BeginQuit marks a request in flight and returns the app being quit.
func (s *LauncherState) BeginQuit() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	return s.currentApp
}

// FinishRequest clears loading. When clearCurrent is set the current app is
// cleared as well.
func (s *LauncherState) FinishRequest(clearCurrent bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if clearCurrent {
		s.currentApp = ""
	}
}

// CurrentApp returns the app considered running, or "" when none is
func (s *LauncherState) CurrentApp() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentApp
}

// Snapshot returns a copy of the state
func (s *LauncherState) Snapshot() LauncherSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return LauncherSnapshot{
		Applications: cloneApps(s.applications),
		Loading:      s.loading,
		CurrentApp:   s.currentApp,
	}
}

// SettingsSnapshot is a copy of the settings state safe to hand to a view.
type SettingsSnapshot struct {
	Applications  []Application
	PendingFile   string
	StatusMessage string
}

// SettingsState holds the transient state of one mounted settings screen.
type SettingsState struct {
	mu            sync.RWMutex
	applications  []Application
	pendingFile   *FileRef
	statusMessage string
}

// NewSettingsState creates an empty settings state
func NewSettingsState() *SettingsState {
	return &SettingsState{applications: []Application{}}
}

// SetApplications replaces the list wholesale.
func (s *SettingsState) SetApplications(apps []Application) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applications = cloneApps(apps)
}

// SetPendingFile stores the file to upload next
func (s *SettingsState) SetPendingFile(ref FileRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingFile = &ref
}

// PendingFile returns the selected file, if any.
func (s *SettingsState) PendingFile() (FileRef, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.pendingFile == nil {
		return FileRef{}, false
	}
	return *s.pendingFile, true
}

// ClearPendingFile drops the selected file
func (s *SettingsState) ClearPendingFile() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingFile = nil
}

// SetStatusMessage replaces the message shown to the user
func (s *SettingsState) SetStatusMessage(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statusMessage = msg
}

// Snapshot returns a copy of the state with the pending file reduced to its name
func (s *SettingsState) Snapshot() SettingsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := SettingsSnapshot{
		Applications:  cloneApps(s.applications),
		StatusMessage: s.statusMessage,
	}
	if s.pendingFile != nil {
		snap.PendingFile = s.pendingFile.Name
	}
	return snap
}

func cloneApps(apps []Application) []Application {
	out := make([]Application, len(apps))
	copy(out, apps)
	return out
}
