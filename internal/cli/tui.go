// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jeranaias/spamdetector/internal/config"
	"github.com/jeranaias/spamdetector/internal/ui/detector"
	"github.com/jeranaias/spamdetector/internal/ui/styles"
)

func newTUICmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive detector screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}
}

func runTUI(cmd *cobra.Command, opts *globalOptions) error {
	cmd.SilenceUsage = true

	if !IsTTY() || !IsStdoutTTY() {
		return fmt.Errorf("the detector screen needs a terminal; use 'spamdetector check' for pipes")
	}

	if err := opts.setup(); err != nil {
		return err
	}
	defer opts.teardown()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	modelOpts := []detector.Option{
		detector.WithContext(ctx),
		detector.WithLogger(opts.logger),
		detector.WithTheme(styles.NewTheme(opts.cfg.UI.Theme)),
		detector.WithHelp(opts.cfg.UI.ShowHelp),
	}

	// A --backend flag pins the address, so file edits must not move it.
	if opts.backend == "" {
		if path, err := opts.resolvedConfigPath(); err == nil {
			reloads, err := config.Watch(ctx, path)
			if err != nil {
				opts.logger.Warn("config hot reload disabled", "error", err)
			} else {
				modelOpts = append(modelOpts, detector.WithReloads(reloads))
			}
		}
	}

	opts.logger.Info("starting detector screen", "backend", opts.cfg.Backend.URL)

	model := detector.New(opts.newClient(), modelOpts...)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("detector screen failed: %w", err)
	}
	return nil
}
