package controllers

import (
	"context"

	"remote-launcher/internal/models"
)

// AppClient is the backend surface the controllers depend on.
type AppClient interface {
	ListApplications(ctx context.Context) ([]models.Application, error)
	Launch(ctx context.Context, name string) error
	Quit(ctx context.Context, name string) error
	AddApplication(ctx context.Context, file models.FileRef) error
	RemoveApplication(ctx context.Context, name string) error
}

// LauncherRenderer receives every launcher state change.
type LauncherRenderer interface {
	RenderLauncher(state models.LauncherSnapshot)
}

// SettingsRenderer receives every settings state change.
type SettingsRenderer interface {
	RenderSettings(state models.SettingsSnapshot)
}
