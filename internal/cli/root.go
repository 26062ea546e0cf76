// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/jeranaias/spamdetector/internal/classify"
	"github.com/jeranaias/spamdetector/internal/config"
	"github.com/jeranaias/spamdetector/internal/logging"
)

// =============================================================================
// GLOBAL OPTIONS
// =============================================================================

// globalOptions holds the persistent flags and the state derived from them.
type globalOptions struct {
	configPath string
	backend    string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
	closer io.Closer
}

// resolvedConfigPath returns --config or the default location.
func (o *globalOptions) resolvedConfigPath() (string, error) {
	if o.configPath != "" {
		return o.configPath, nil
	}
	return config.ConfigPath()
}

// setup loads the configuration, applies flag overrides, validates the
// result and opens the log.
// Commands that talk to the backend call it first and defer teardown.
func (o *globalOptions) setup() error {
	path, err := o.resolvedConfigPath()
	if err != nil {
		return err
	}

	cfg, err := config.ReadFromPath(path)
	if err != nil {
		return err
	}
	if o.backend != "" {
		cfg.Backend.URL = o.backend
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", path, err)
	}
	o.cfg = cfg

	logPath, err := cfg.LogPath()
	if err != nil {
		return err
	}
	logger, closer, err := logging.OpenFile(logPath, cfg.Log.Level)
	if err != nil {
		// Logging is diagnostics only; run without it.
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		logger, closer = logging.Discard(), nil
	}
	o.logger = logger
	o.closer = closer

	if !ColorsEnabled() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return nil
}

// teardown closes the log file.
func (o *globalOptions) teardown() {
	if o.closer != nil {
		_ = o.closer.Close()
		o.closer = nil
	}
}

// newClient builds a classification client from the loaded configuration.
func (o *globalOptions) newClient() *classify.Client {
	return classify.NewClientWithConfig(&classify.ClientConfig{
		BaseURL:     o.cfg.Backend.URL,
		PredictPath: o.cfg.Backend.PredictPath,
		HealthPath:  o.cfg.Backend.HealthPath,
		Timeout:     o.cfg.Backend.Timeout(),
		Logger:      o.logger,
	})
}

// =============================================================================
// ROOT COMMAND
// =============================================================================

// ExitError carries a specific process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func newRootCmd(opts *globalOptions) *cobra.Command {
	root := &cobra.Command{
		Use:   "spamdetector",
		Short: "Check whether an email message is spam",
		Long: `spamdetector sends a message to a classification backend and shows
whether it is spam, and how certain the model is.

Without a command it opens the interactive detector screen.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default ~/.spamdetector/config.toml)")
	flags.StringVar(&opts.backend, "backend", "", "classification backend base URL")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	return root
}

// NewSpamDetectorCLI builds the complete command tree and returns the root.
func NewSpamDetectorCLI() *cobra.Command {
	opts := &globalOptions{}

	root := newRootCmd(opts)
	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newCheckCmd(opts))
	root.AddCommand(newREPLCmd(opts))
	root.AddCommand(newHealthCmd(opts))
	root.AddCommand(newConfigCmd(opts))
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the CLI and exits with the command's status.
func Execute() {
	if err := NewSpamDetectorCLI().Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
