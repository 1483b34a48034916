package services

import "github.com/pkg/errors"

// ErrRequestFailed is the only failure kind the backend client reports. It
// covers transport errors and any non-2xx response.
var ErrRequestFailed = errors.New("request failed")

func requestFailed(method, path string, cause error) error {
	return errors.Wrapf(ErrRequestFailed, "%s %s: %v", method, path, cause)
}

func statusFailed(method, path string, status int) error {
	return errors.Wrapf(ErrRequestFailed, "%s %s: status %d", method, path, status)
}
