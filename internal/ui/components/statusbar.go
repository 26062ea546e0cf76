// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/jeranaias/spamdetector/internal/ui/styles"
	"github.com/jeranaias/spamdetector/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// BackendStatus is what the last health check found.
type BackendStatus int

const (
	BackendUnknown BackendStatus = iota
	BackendChecking
	BackendReady
	BackendNoModel
	BackendDown
)

// String returns the display string for the status.
func (s BackendStatus) String() string {
	switch s {
	case BackendChecking:
		return "checking..."
	case BackendReady:
		return "ready"
	case BackendNoModel:
		return "model not loaded"
	case BackendDown:
		return "unreachable"
	default:
		return "unknown"
	}
}

// Icon returns the ASCII marker for the status.
func (s BackendStatus) Icon() string {
	switch s {
	case BackendReady:
		return styles.StatusIndicators.Success
	case BackendNoModel:
		return styles.StatusIndicators.Warning
	case BackendDown:
		return styles.StatusIndicators.Error
	default:
		return styles.StatusIndicators.Pending
	}
}

// StatusBar shows the backend address and health plus a transient notice.
type StatusBar struct {
	Backend string
	Status  BackendStatus
	Notice  string
	Width   int
	theme   *styles.Theme
}

// NewStatusBar creates a status bar for the given backend.
func NewStatusBar(theme *styles.Theme, backend string) *StatusBar {
	return &StatusBar{
		Backend: backend,
		Width:   80,
		theme:   theme,
	}
}

// SetWidth updates the status bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// SetStatus records the latest health check outcome.
func (s *StatusBar) SetStatus(status BackendStatus) {
	s.Status = status
}

// SetBackend changes the displayed backend address.
func (s *StatusBar) SetBackend(backend string) {
	s.Backend = backend
}

// SetNotice shows a one-line notice until cleared with "".
func (s *StatusBar) SetNotice(notice string) {
	s.Notice = util.SingleLine(notice)
}

// View renders the status bar.
func (s *StatusBar) View() string {
	width := s.Width
	if width <= 0 {
		width = 80
	}
	t := s.theme

	status := s.statusStyle().Render(s.Status.Icon() + " " + s.Status.String())
	left := status + t.Muted.Render("  "+s.Backend)

	var right string
	if s.Notice != "" {
		right = t.StatusWarn.Render(s.Notice)
	}

	inner := width - t.StatusBar.GetHorizontalFrameSize()
	space := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if space < 1 && right != "" {
		// Notice loses to the backend status when space runs out.
		room := inner - lipgloss.Width(left) - 1
		if room > 3 {
			right = t.StatusWarn.Render(util.TruncateWidth(s.Notice, room))
		} else {
			right = ""
		}
		space = inner - lipgloss.Width(left) - lipgloss.Width(right)
	}
	if space < 1 {
		space = 1
	}

	line := left + lipgloss.NewStyle().Width(space).Render("") + right
	return t.StatusBar.Width(width).MaxWidth(width).Render(line)
}

func (s *StatusBar) statusStyle() lipgloss.Style {
	switch s.Status {
	case BackendReady:
		return s.theme.StatusOK
	case BackendNoModel:
		return s.theme.StatusWarn
	case BackendDown:
		return s.theme.StatusDown
	default:
		return s.theme.Muted
	}
}
