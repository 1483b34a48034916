package cli

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"remote-launcher/internal/services"
	"remote-launcher/internal/testutil/mockbackend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func emptyConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: error\n"), 0o644))
	return path
}

func run(t *testing.T, b *mockbackend.Backend, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--config", emptyConfig(t), "--server", b.URL))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := NewRootCommand()
	apps, _, err := root.Find([]string{"apps"})
	require.NoError(t, err)

	found := map[string]bool{}
	for _, c := range apps.Commands() {
		found[c.Name()] = true
	}
	for _, name := range []string{"list", "launch", "quit", "add", "remove"} {
		assert.True(t, found[name], name)
	}
	assert.NotEmpty(t, root.Version)
}

func TestAppsList(t *testing.T) {
	b := mockbackend.New(t, "VS Code", "Chrome")

	out, err := run(t, b, "apps", "list")
	require.NoError(t, err)

	var res listResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, b.URL, res.Server)
	require.Len(t, res.Applications, 2)
	assert.Equal(t, "Chrome", res.Applications[1].Name)
}

func TestAppsNameCommands(t *testing.T) {
	b := mockbackend.New(t)

	cases := map[string]string{
		"launch": services.PathLaunch,
		"quit":   services.PathQuit,
		"remove": services.PathRemoveApp,
	}
	for action, path := range cases {
		t.Run(action, func(t *testing.T) {
			out, err := run(t, b, "apps", action, "Zoom")
			require.NoError(t, err)

			var res actionResult
			require.NoError(t, yaml.Unmarshal([]byte(out), &res))
			assert.True(t, res.OK)
			assert.Equal(t, action, res.Action)

			req, ok := b.Last(path)
			require.True(t, ok)
			assert.Equal(t, "Zoom", req.AppName)
		})
	}
}

func TestAppsAdd(t *testing.T) {
	b := mockbackend.New(t)
	file := filepath.Join(t.TempDir(), "postman.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"name":"Postman"}`), 0o644))

	out, err := run(t, b, "apps", "add", file)
	require.NoError(t, err)

	var res actionResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, "postman.json", res.File)
	assert.Equal(t, "18 B", res.Size)

	req, ok := b.Last(services.PathAddApp)
	require.True(t, ok)
	assert.Equal(t, `{"name":"Postman"}`, string(req.FileBody))
}

func TestAppsFailureReturnsError(t *testing.T) {
	b := mockbackend.New(t)
	b.Fail(services.PathLaunch, http.StatusInternalServerError)

	_, err := run(t, b, "apps", "launch", "Zoom")
	assert.ErrorIs(t, err, services.ErrRequestFailed)
}

func TestInvalidServerFlag(t *testing.T) {
	root := NewRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"apps", "list", "--config", emptyConfig(t), "--server", "ftp://nowhere"})

	err := root.Execute()
	assert.ErrorContains(t, err, "scheme")
}
