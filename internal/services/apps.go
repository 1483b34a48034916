package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"remote-launcher/internal/logger"
	"remote-launcher/internal/models"
)

const (
	PathApps      = "/apps"
	PathLaunch    = "/launch"
	PathQuit      = "/quit"
	PathAddApp    = "/add-app"
	PathRemoveApp = "/remove-app"

	uploadField = "file"
)

// AppService talks to the application backend.
type AppService struct {
	baseURL string
	client  *http.Client
	logger  logger.Logger
}

type appNameRequest struct {
	AppName string `json:"appName"`
}

// NewAppService creates a client for the backend at baseURL. A nil client
// means http.DefaultClient.
func NewAppService(baseURL string, client *http.Client, log logger.Logger) *AppService {
	if client == nil {
		client = http.DefaultClient
	}
	return &AppService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  log,
	}
}

func (s *AppService) BaseURL() string {
	return s.baseURL
}

// ListApplications fetches the current application set in server order.
func (s *AppService) ListApplications(ctx context.Context) ([]models.Application, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+PathApps, nil)
	if err != nil {
		return nil, requestFailed(http.MethodGet, PathApps, err)
	}

	body, err := s.do(req, PathApps)
	if err != nil {
		return nil, err
	}

	apps := []models.Application{}
	if err := json.Unmarshal(body, &apps); err != nil {
		return nil, requestFailed(http.MethodGet, PathApps, err)
	}

	s.logger.Debug("AppService", "applications fetched", map[string]interface{}{
		"count": len(apps),
	})
	return apps, nil
}

func (s *AppService) Launch(ctx context.Context, name string) error {
	return s.postName(ctx, PathLaunch, name)
}

func (s *AppService) Quit(ctx context.Context, name string) error {
	return s.postName(ctx, PathQuit, name)
}

func (s *AppService) RemoveApplication(ctx context.Context, name string) error {
	return s.postName(ctx, PathRemoveApp, name)
}

func (s *AppService) postName(ctx context.Context, path, name string) error {
	payload, err := json.Marshal(appNameRequest{AppName: name})
	if err != nil {
		return requestFailed(http.MethodPost, path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return requestFailed(http.MethodPost, path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	_, err = s.do(req, path)
	return err
}

// do sends req and returns the response body for 2xx responses.
func (s *AppService) do(req *http.Request, path string) ([]byte, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, requestFailed(req.Method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, requestFailed(req.Method, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusFailed(req.Method, path, resp.StatusCode)
	}
	return body, nil
}
