// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// ACCENT COLORS
// =============================================================================

// Brand - header accent, focus ring, enabled submit control
var Brand = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#3B82F6"}

// BrandDeep - darker brand for button backgrounds
var BrandDeep = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#2563EB"}

// Indigo - secondary accent for the tagline badge
var Indigo = lipgloss.AdaptiveColor{Light: "#4F46E5", Dark: "#818CF8"}

// =============================================================================
// VERDICT COLORS
// =============================================================================

// Spam - spam label, bar fill and panel border
var Spam = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}

// SpamDim - faint border for the spam panel
var SpamDim = lipgloss.AdaptiveColor{Light: "#FCA5A5", Dark: "#7F1D1D"}

// Ham - not-spam label, bar fill and panel border
var Ham = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"}

// HamDim - faint border for the not-spam panel
var HamDim = lipgloss.AdaptiveColor{Light: "#6EE7B7", Dark: "#064E3B"}

// =============================================================================
// SEMANTIC COLORS
// =============================================================================

// Rose - error banner
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// RoseDeep - error banner border
var RoseDeep = lipgloss.AdaptiveColor{Light: "#BE123C", Dark: "#881337"}

// Amber - warnings, reload notices
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// =============================================================================
// SURFACE AND TEXT COLORS
// =============================================================================

// SurfaceDim - status bar background
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#181825"}

// Overlay - borders, separators, bar track
var Overlay = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#313244"}

// TextPrimary - main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#CDD6F4"}

// TextSecondary - labels
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A6ADC8"}

// TextMuted - captions, counters, disabled text
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}

// TextInverse - text on colored backgrounds
var TextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}

// =============================================================================
// ACCESSIBILITY
// =============================================================================

// StatusIndicatorSet contains text markers shown next to colored states.
type StatusIndicatorSet struct {
	Success string
	Error   string
	Warning string
	Pending string
}

// StatusIndicators are ASCII-only so they survive any terminal font.
var StatusIndicators = StatusIndicatorSet{
	Success: "[OK]",
	Error:   "[X]",
	Warning: "[!]",
	Pending: "[ ]",
}

// VerdictColor returns the accent for a verdict.
func VerdictColor(isSpam bool) lipgloss.AdaptiveColor {
	if isSpam {
		return Spam
	}
	return Ham
}

// VerdictMarker returns the text marker for a verdict.
func VerdictMarker(isSpam bool) string {
	if isSpam {
		return StatusIndicators.Warning
	}
	return StatusIndicators.Success
}

// RenderSuccess renders a message with the success marker in green.
func RenderSuccess(message string) string {
	return lipgloss.NewStyle().Foreground(Ham).Bold(true).
		Render(StatusIndicators.Success + " " + message)
}

// RenderError renders a message with the error marker in red.
func RenderError(message string) string {
	return lipgloss.NewStyle().Foreground(Rose).Bold(true).
		Render(StatusIndicators.Error + " " + message)
}

// RenderWarning renders a message with the warning marker in amber.
func RenderWarning(message string) string {
	return lipgloss.NewStyle().Foreground(Amber).Bold(true).
		Render(StatusIndicators.Warning + " " + message)
}
