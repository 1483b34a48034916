// Package cli holds the cobra command tree. The root command runs the
// desktop UI; the apps subcommands drive the same backend headlessly.
package cli

import (
	"context"
	"fmt"
	"os"

	"remote-launcher/internal/app"
	"remote-launcher/internal/config"
	"remote-launcher/internal/logger"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	serverURL  string
	logLevel   string
	logFormat  string
	route      string
}

// NewRootCommand builds the full command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "remote-launcher",
		Short:         "Launch and manage applications on a remote host",
		Long:          "A desktop front end that lists the applications a launcher server knows about, starts and stops them, and uploads or removes application entries.",
		Version:       app.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default "+config.DefaultPath()+")")
	flags.StringVar(&opts.serverURL, "server", "", "Launcher server base URL")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", "", "Log format: console or json")
	root.Flags().StringVar(&opts.route, "route", "", "Screen to open first: / or /settings")

	root.AddCommand(newAppsCommand(opts))
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig resolves defaults, file, environment and flags, in that order.
func loadConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	path, explicit := opts.configPath, opts.configPath != ""
	if !explicit {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path, explicit)
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("server") {
		cfg.ServerURL = opts.serverURL
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = logger.Format(opts.logFormat)
	}
	if f := cmd.Flags().Lookup("route"); f != nil && f.Changed {
		cfg.StartRoute = opts.route
	}

	return cfg, cfg.Validate()
}

func newLogger(cfg config.Config) logger.Logger {
	level, _ := logger.ParseLevel(cfg.Log.Level)
	return logger.New(cfg.Log.Format, level)
}

func runGUI(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	fyneApp := fyneapp.NewWithID(app.AppID)
	return app.NewApplication(fyneApp, cfg, log).Run()
}
