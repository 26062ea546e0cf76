// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package detector

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jeranaias/spamdetector/internal/config"
)

// healthTimeout bounds a health check so a hung backend does not leave the
// status bar in "checking..." forever.
const healthTimeout = 5 * time.Second

// predictCmd classifies message in the background. A panicking backend
// still produces a PredictionMsg so the controller always leaves Loading.
func predictCmd(ctx context.Context, backend Backend, message string) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = PredictionMsg{Message: message, Err: fmt.Errorf("classifier panicked: %v", r)}
			}
		}()

		result, err := backend.Predict(ctx, message)
		return PredictionMsg{Message: message, Result: result, Err: err}
	}
}

// healthCmd checks whether the backend is up and has a model loaded.
func healthCmd(ctx context.Context, backend Backend) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, healthTimeout)
		defer cancel()

		status, err := backend.Health(ctx)
		return HealthMsg{BaseURL: backend.BaseURL(), Status: status, Err: err}
	}
}

// waitForReload blocks until the watcher delivers a change. It returns nil
// once the channel is closed, which ends the listen loop.
func waitForReload(reloads <-chan config.Reload) tea.Cmd {
	if reloads == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-reloads
		if !ok {
			return nil
		}
		return ConfigReloadMsg{Reload: r}
	}
}
