// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package detector

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/spamdetector/internal/ui/components"
)

// View renders the screen from the current controller snapshot.
func (m Model) View() string {
	state := m.ctrl.Snapshot()
	t := m.theme
	width := m.contentWidth()

	sections := []string{m.header.View()}

	// Input with caption and live counter
	inputStyle := t.Input
	if m.input.Focused() {
		inputStyle = t.InputFocused
	}
	sections = append(sections,
		components.Label(t),
		inputStyle.Render(m.input.View()),
		lipgloss.PlaceHorizontal(width, lipgloss.Right, components.CharCounter(t, state.CharCount())),
	)

	// Submit control
	frame := ""
	if state.Loading() {
		frame = m.spinner.View()
	}
	sections = append(sections, components.SubmitButton(t, state.Loading(), frame))

	// Outcome
	if banner := components.ErrorBanner(t, state.Error, width); banner != "" {
		sections = append(sections, "", banner)
	}
	if panel := m.result.Render(state.Result); panel != "" {
		sections = append(sections, "", panel)
	}

	// Footer
	if m.showHelp {
		sections = append(sections, "", m.help.View(m.keys))
	}
	sections = append(sections, "", components.Footer(t, width), m.status.View())

	return t.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
