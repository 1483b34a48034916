package controllers

import (
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"remote-launcher/internal/logger"
	"remote-launcher/internal/models"
	"remote-launcher/internal/services"
	"remote-launcher/internal/testutil/mockbackend"
)

type launcherRecorder struct {
	mu     sync.Mutex
	frames []models.LauncherSnapshot
}

func (r *launcherRecorder) RenderLauncher(s models.LauncherSnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, s)
}

func (r *launcherRecorder) Frames() []models.LauncherSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.LauncherSnapshot(nil), r.frames...)
}

type settingsRecorder struct {
	mu     sync.Mutex
	frames []models.SettingsSnapshot
}

func (r *settingsRecorder) RenderSettings(s models.SettingsSnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, s)
}

func (r *settingsRecorder) Last() models.SettingsSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.frames) == 0 {
		return models.SettingsSnapshot{}
	}
	return r.frames[len(r.frames)-1]
}

func newClient(b *mockbackend.Backend) *services.AppService {
	return services.NewAppService(b.URL, nil, logger.NewNop())
}

func textFile(name, body string) models.FileRef {
	return models.FileRef{
		Name: name,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(body)), nil
		},
	}
}

func setupLauncher(t *testing.T, apps ...string) (*LauncherController, *launcherRecorder, *mockbackend.Backend) {
	t.Helper()
	b := mockbackend.New(t, apps...)
	lc := NewLauncherController(newClient(b), logger.NewNop())
	rec := &launcherRecorder{}
	lc.SetView(rec)
	return lc, rec, b
}

func setupSettings(t *testing.T, apps ...string) (*SettingsController, *settingsRecorder, *mockbackend.Backend) {
	t.Helper()
	b := mockbackend.New(t, apps...)
	sc := NewSettingsController(newClient(b), logger.NewNop())
	rec := &settingsRecorder{}
	sc.SetView(rec)
	return sc, rec, b
}

// stallingRecorder sleeps before recording the frame numbered stallAt.
type stallingRecorder struct {
	launcherRecorder
	stallAt int
	stall   time.Duration

	calls atomic.Int32
}

func (r *stallingRecorder) RenderLauncher(s models.LauncherSnapshot) {
	if int(r.calls.Add(1)) == r.stallAt {
		time.Sleep(r.stall)
	}
	r.launcherRecorder.RenderLauncher(s)
}

type stallingSettingsRecorder struct {
	settingsRecorder
	stallAt int
	stall   time.Duration

	calls atomic.Int32
}

func (r *stallingSettingsRecorder) RenderSettings(s models.SettingsSnapshot) {
	if int(r.calls.Add(1)) == r.stallAt {
		time.Sleep(r.stall)
	}
	r.settingsRecorder.RenderSettings(s)
}
