package models

import (
	"io"
	"os"
	"path/filepath"
)

// Application is the record exchanged with the backend. Name is its identity.
type Application struct {
	Name string `json:"name" yaml:"name"`
}

// Names returns the application names in order.
func Names(apps []Application) []string {
	names := make([]string, len(apps))
	for i, app := range apps {
		names[i] = app.Name
	}
	return names
}

// FileRef points at a locally selected file that has not been uploaded yet.
type FileRef struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// LocalFile builds a FileRef for a path on disk.
func LocalFile(path string) FileRef {
	return FileRef{
		Name: filepath.Base(path),
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}
}
