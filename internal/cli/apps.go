package cli

import (
	"io"

	"remote-launcher/internal/models"
	"remote-launcher/internal/services"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// actionResult is the YAML printed after a mutating apps subcommand.
type actionResult struct {
	OK     bool   `yaml:"ok"`
	Action string `yaml:"action"`
	App    string `yaml:"app,omitempty"`
	File   string `yaml:"file,omitempty"`
	Size   string `yaml:"size,omitempty"`
}

type listResult struct {
	Server       string               `yaml:"server"`
	Applications []models.Application `yaml:"applications"`
}

func newAppsCommand(opts *options) *cobra.Command {
	apps := &cobra.Command{
		Use:   "apps",
		Short: "Manage applications without opening the UI",
	}

	apps.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List applications known to the server",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, err := newService(cmd, opts)
				if err != nil {
					return err
				}
				list, err := svc.ListApplications(cmd.Context())
				if err != nil {
					return err
				}
				return printYAML(cmd.OutOrStdout(), listResult{Server: svc.BaseURL(), Applications: list})
			},
		},
		nameCommand(opts, "launch", "Ask the server to start an application",
			func(cmd *cobra.Command, svc *services.AppService, name string) error {
				return svc.Launch(cmd.Context(), name)
			}),
		nameCommand(opts, "quit", "Ask the server to stop an application",
			func(cmd *cobra.Command, svc *services.AppService, name string) error {
				return svc.Quit(cmd.Context(), name)
			}),
		nameCommand(opts, "remove", "Remove an application entry from the server",
			func(cmd *cobra.Command, svc *services.AppService, name string) error {
				return svc.RemoveApplication(cmd.Context(), name)
			}),
		&cobra.Command{
			Use:   "add FILE",
			Short: "Upload a file that registers a new application",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, err := newService(cmd, opts)
				if err != nil {
					return err
				}
				ref := models.LocalFile(args[0])
				size, err := fileSize(ref)
				if err != nil {
					return errors.Wrapf(err, "read %s", args[0])
				}
				if err := svc.AddApplication(cmd.Context(), ref); err != nil {
					return err
				}
				return printYAML(cmd.OutOrStdout(), actionResult{
					OK:     true,
					Action: "add",
					File:   ref.Name,
					Size:   humanize.Bytes(size),
				})
			},
		},
	)
	return apps
}

func nameCommand(opts *options, action, short string, run func(*cobra.Command, *services.AppService, string) error) *cobra.Command {
	return &cobra.Command{
		Use:   action + " NAME",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd, opts)
			if err != nil {
				return err
			}
			if err := run(cmd, svc, args[0]); err != nil {
				return err
			}
			return printYAML(cmd.OutOrStdout(), actionResult{OK: true, Action: action, App: args[0]})
		},
	}
}

func newService(cmd *cobra.Command, opts *options) (*services.AppService, error) {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return nil, err
	}
	return services.NewAppService(cfg.BaseURL(), nil, newLogger(cfg)), nil
}

func fileSize(ref models.FileRef) (uint64, error) {
	rc, err := ref.Open()
	if err != nil {
		return 0, err
	}
	defer rc.Close()
	n, err := io.Copy(io.Discard, rc)
	return uint64(n), err
}

func printYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "yaml encode")
	}
	return enc.Close()
}
