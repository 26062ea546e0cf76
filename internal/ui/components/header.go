// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/jeranaias/spamdetector/internal/ui/styles"
	"github.com/jeranaias/spamdetector/internal/util"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

const (
	DefaultTitle   = "Spam Detector"
	DefaultTagline = "Instantly identify suspicious emails and messages using machine learning."
	FooterText     = "Powered by Scikit-Learn • Multinomial NB"
)

// Header is the title block at the top of the screen.
type Header struct {
	Title   string
	Tagline string
	Width   int
	theme   *styles.Theme
}

// NewHeader creates a header with the default title and tagline.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title:   DefaultTitle,
		Tagline: DefaultTagline,
		Width:   80,
		theme:   theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// View renders the header. Text wider than the terminal is truncated.
func (h *Header) View() string {
	width := h.Width
	if width <= 0 {
		width = 80
	}

	title := h.theme.HeaderBrand.Render(util.TruncateWidth(h.Title, width-2))
	lines := []string{title}
	if h.Tagline != "" {
		lines = append(lines, h.theme.HeaderTagline.Render(util.TruncateWidth(h.Tagline, width)))
	}

	return h.theme.Header.Width(width).Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// Footer renders the centered credit line under the form.
func Footer(theme *styles.Theme, width int) string {
	if width <= 0 {
		width = 80
	}
	text := theme.Muted.Render(util.TruncateWidth(FooterText, width))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
