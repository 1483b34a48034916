package controllers

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"remote-launcher/internal/logger"
	"remote-launcher/internal/models"
	"remote-launcher/internal/services"
	"remote-launcher/internal/testutil/mockbackend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsMountFetchesApps(t *testing.T) {
	sc, rec, _ := setupSettings(t, "A", "B")

	sc.Mount(context.Background())

	assert.Equal(t, []string{"A", "B"}, models.Names(rec.Last().Applications))
}

func TestSettingsMountFailureLeavesListEmpty(t *testing.T) {
	sc, rec, b := setupSettings(t, "A")
	b.Fail(services.PathApps, http.StatusBadGateway)

	sc.Mount(context.Background())

	state := sc.State()
	assert.Empty(t, state.Applications)
	assert.Empty(t, state.StatusMessage)
	assert.Empty(t, rec.Last().Applications)
	assert.Empty(t, rec.Last().StatusMessage)
}

func TestSettingsLastFrameMatchesStateUnderOverlap(t *testing.T) {
	b := mockbackend.New(t, "A", "B")
	sc := NewSettingsController(newClient(b), logger.NewNop())
	rec := &stallingSettingsRecorder{stallAt: 2, stall: 50 * time.Millisecond}
	sc.SetView(rec)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		sc.Mount(context.Background())
	}()
	go func() {
		defer wg.Done()
		sc.SelectFile(textFile("zoom.json", "{}"))
	}()
	wg.Wait()

	last := rec.Last()
	assert.Equal(t, "zoom.json", last.PendingFile)
	assert.Equal(t, []string{"A", "B"}, models.Names(last.Applications))
}

func TestSettingsAddWithoutFileIsNoop(t *testing.T) {
	sc, _, b := setupSettings(t, "A")

	sc.AddApplication(context.Background())

	assert.Empty(t, b.Requests())
	assert.Empty(t, sc.State().StatusMessage)
}

func TestSettingsSelectFileRenders(t *testing.T) {
	sc, rec, b := setupSettings(t)

	sc.SelectFile(textFile("chrome.json", "{}"))

	assert.Equal(t, "chrome.json", rec.Last().PendingFile)
	assert.Empty(t, b.Requests())
}

func TestSettingsAddSuccessRefetches(t *testing.T) {
	sc, _, b := setupSettings(t, "A")
	sc.Mount(context.Background())
	b.SetApps("A", "Zoom")

	sc.SelectFile(textFile("zoom.json", `{"name":"Zoom"}`))
	sc.AddApplication(context.Background())

	req, ok := b.Last(services.PathAddApp)
	require.True(t, ok)
	assert.Equal(t, "zoom.json", req.FileName)
	assert.Equal(t, `{"name":"Zoom"}`, string(req.FileBody))

	state := sc.State()
	assert.Equal(t, MsgAddSuccess, state.StatusMessage)
	assert.Empty(t, state.PendingFile)
	assert.Equal(t, []string{"A", "Zoom"}, models.Names(state.Applications))
	assert.Equal(t, 2, b.Count(http.MethodGet, services.PathApps))
}

func TestSettingsAddFailureDoesNotRefetch(t *testing.T) {
	sc, _, b := setupSettings(t, "A")
	sc.Mount(context.Background())
	b.Fail(services.PathAddApp, http.StatusInternalServerError)

	sc.SelectFile(textFile("zoom.json", "{}"))
	sc.AddApplication(context.Background())

	state := sc.State()
	assert.Equal(t, MsgAddError, state.StatusMessage)
	assert.Equal(t, "zoom.json", state.PendingFile)
	assert.Equal(t, []string{"A"}, models.Names(state.Applications))
	assert.Equal(t, 1, b.Count(http.MethodGet, services.PathApps))
}

func TestSettingsAddRefetchFailureReportsError(t *testing.T) {
	sc, _, b := setupSettings(t, "A")
	sc.Mount(context.Background())
	b.Fail(services.PathApps, http.StatusInternalServerError)

	sc.SelectFile(textFile("zoom.json", "{}"))
	sc.AddApplication(context.Background())

	state := sc.State()
	assert.Equal(t, MsgAddError, state.StatusMessage)
	assert.Empty(t, state.PendingFile)
	assert.Equal(t, []string{"A"}, models.Names(state.Applications))
}

func TestSettingsRemoveSuccessRefetches(t *testing.T) {
	sc, _, b := setupSettings(t, "A", "B")
	sc.Mount(context.Background())
	b.SetApps("A")

	sc.RemoveApplication(context.Background(), "B")

	req, ok := b.Last(services.PathRemoveApp)
	require.True(t, ok)
	assert.Equal(t, "B", req.AppName)

	state := sc.State()
	assert.Equal(t, MsgRemoveSuccess, state.StatusMessage)
	assert.Equal(t, []string{"A"}, models.Names(state.Applications))
	assert.Equal(t, 2, b.Count(http.MethodGet, services.PathApps))
}

func TestSettingsRemoveFailure(t *testing.T) {
	sc, _, b := setupSettings(t, "A", "B")
	sc.Mount(context.Background())
	b.Fail(services.PathRemoveApp, http.StatusNotFound)

	sc.RemoveApplication(context.Background(), "B")

	state := sc.State()
	assert.Equal(t, MsgRemoveError, state.StatusMessage)
	assert.Equal(t, []string{"A", "B"}, models.Names(state.Applications))
	assert.Equal(t, 1, b.Count(http.MethodGet, services.PathApps))
}
