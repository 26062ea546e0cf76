// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package detector

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/spamdetector/internal/controller"
	"github.com/jeranaias/spamdetector/internal/ui/components"
	"github.com/jeranaias/spamdetector/internal/util"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case PredictionMsg:
		return m.handlePrediction(msg)

	case HealthMsg:
		return m.handleHealth(msg)

	case ConfigReloadMsg:
		return m.handleReload(msg)

	case spinner.TickMsg:
		// Let the tick chain die once the request is done.
		if !m.ctrl.Snapshot().Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// KEYS
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.Recheck):
		return m, m.checkHealth()

	case key.Matches(msg, m.keys.Clear):
		m.input.Reset()
		m.ctrl.UpdateMessage("")
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		if m.help.ShowAll {
			m.showHelp = true
		}
		return m, nil
	}

	// Everything else edits the message, in any phase.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.ctrl.UpdateMessage(m.input.Value())
	return m, cmd
}

// submit starts a classification. It does nothing while one is in flight.
func (m Model) submit() (tea.Model, tea.Cmd) {
	m.ctrl.UpdateMessage(m.input.Value())

	message, err := m.ctrl.Begin()
	switch {
	case errors.Is(err, controller.ErrBusy):
		return m, nil
	case err != nil:
		// Empty input: the controller already holds the error text.
		return m, nil
	}

	m.logger.Debug("submitting message",
		"chars", util.RuneLen(message),
		"preview", util.TruncateRunes(util.SingleLine(message), 40),
	)
	return m, tea.Batch(m.spinner.Tick, predictCmd(m.ctx, m.backend, message))
}

// =============================================================================
// BACKEND RESULTS
// =============================================================================

func (m Model) handlePrediction(msg PredictionMsg) (tea.Model, tea.Cmd) {
	if !m.ctrl.Complete(msg.Result, msg.Err) {
		m.logger.Warn("dropping prediction with no request in flight")
		return m, nil
	}

	state := m.ctrl.Snapshot()
	if state.Phase == controller.PhaseFailed {
		// A failed request usually means the backend went away.
		return m, m.checkHealth()
	}
	return m, nil
}

func (m Model) handleHealth(msg HealthMsg) (tea.Model, tea.Cmd) {
	// A check against an address we have since moved away from is stale.
	if msg.BaseURL != "" && msg.BaseURL != m.backend.BaseURL() {
		return m, nil
	}

	switch {
	case msg.Err != nil:
		m.logger.Debug("health check failed", "error", msg.Err)
		m.status.SetStatus(components.BackendDown)
	case msg.Status == nil || !msg.Status.Ready():
		m.status.SetStatus(components.BackendNoModel)
	default:
		m.status.SetStatus(components.BackendReady)
	}
	return m, nil
}

func (m Model) handleReload(msg ConfigReloadMsg) (tea.Model, tea.Cmd) {
	next := waitForReload(m.reloads)

	if msg.Err != nil {
		m.logger.Warn("config reload failed", "error", msg.Err)
		m.status.SetNotice("config error: " + msg.Err.Error())
		return m, next
	}

	cfg := msg.Config
	m.showHelp = cfg.UI.ShowHelp

	url := strings.TrimRight(cfg.Backend.URL, "/")
	if url == m.backend.BaseURL() {
		m.status.SetNotice("config reloaded")
		return m, next
	}

	m.backend.SetBaseURL(url)
	m.status.SetBackend(m.backend.BaseURL())
	m.status.SetNotice("config reloaded, backend changed")
	m.logger.Info("config reloaded", "backend", m.backend.BaseURL())

	return m, tea.Batch(next, m.checkHealth())
}
