// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme modes accepted by NewTheme.
const (
	ModeAuto  = "auto"
	ModeDark  = "dark"
	ModeLight = "light"
)

// Theme holds all the styled components for the detector screen.
type Theme struct {
	// Terminal capabilities
	Mode         string
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// LAYOUT
	// ==========================================================================

	App  lipgloss.Style
	Card lipgloss.Style

	// ==========================================================================
	// HEADER
	// ==========================================================================

	Header        lipgloss.Style
	HeaderBrand   lipgloss.Style
	HeaderTitle   lipgloss.Style
	HeaderTagline lipgloss.Style

	// ==========================================================================
	// INPUT
	// ==========================================================================

	Label        lipgloss.Style
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	CharCount    lipgloss.Style

	// ==========================================================================
	// SUBMIT CONTROL
	// ==========================================================================

	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Spinner        lipgloss.Style

	// ==========================================================================
	// OUTCOME
	// ==========================================================================

	ErrorBanner lipgloss.Style
	ResultSpam  lipgloss.Style
	ResultHam   lipgloss.Style
	ResultLabel lipgloss.Style
	ResultValue lipgloss.Style
	VerdictSpam lipgloss.Style
	VerdictHam  lipgloss.Style

	// ==========================================================================
	// STATUS BAR
	// ==========================================================================

	StatusBar  lipgloss.Style
	StatusOK   lipgloss.Style
	StatusDown lipgloss.Style
	StatusWarn lipgloss.Style
	Muted      lipgloss.Style
}

// NewTheme creates a theme for the given mode. Unknown modes behave like
// ModeAuto, which asks the terminal for its background.
func NewTheme(mode string) *Theme {
	mode = strings.ToLower(strings.TrimSpace(mode))

	colorProfile := termenv.ColorProfile()
	t := &Theme{
		Mode:         mode,
		ColorProfile: colorProfile,
		HasTrueColor: colorProfile == termenv.TrueColor,
	}

	switch mode {
	case ModeDark:
		t.IsDark = true
		lipgloss.SetHasDarkBackground(true)
	case ModeLight:
		t.IsDark = false
		lipgloss.SetHasDarkBackground(false)
	default:
		t.Mode = ModeAuto
		t.IsDark = termenv.HasDarkBackground()
	}

	t.initStyles()
	return t
}

// DefaultTheme returns an auto-detected theme.
func DefaultTheme() *Theme {
	return NewTheme(ModeAuto)
}

func (t *Theme) initStyles() {
	t.App = lipgloss.NewStyle().Padding(1, 2)

	t.Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(1, 2)

	// Header
	t.Header = lipgloss.NewStyle().
		Align(lipgloss.Center).
		MarginBottom(1)

	t.HeaderBrand = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(Brand).
		Padding(0, 1)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.HeaderTagline = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Input
	t.Label = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextSecondary)

	t.Input = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Overlay)

	t.InputFocused = t.Input.
		BorderForeground(Brand)

	t.CharCount = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Submit control
	t.Button = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(BrandDeep).
		Padding(0, 3)

	t.ButtonDisabled = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(Overlay).
		Padding(0, 3)

	t.Spinner = lipgloss.NewStyle().
		Foreground(Brand)

	// Outcome
	t.ErrorBanner = lipgloss.NewStyle().
		Foreground(Rose).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(RoseDeep).
		BorderLeft(true).
		PaddingLeft(1)

	t.ResultSpam = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(SpamDim).
		Padding(0, 2)

	t.ResultHam = t.ResultSpam.
		BorderForeground(HamDim)

	t.ResultLabel = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.ResultValue = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.VerdictSpam = lipgloss.NewStyle().
		Bold(true).
		Foreground(Spam)

	t.VerdictHam = lipgloss.NewStyle().
		Bold(true).
		Foreground(Ham)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(SurfaceDim).
		Padding(0, 1)

	t.StatusOK = lipgloss.NewStyle().Foreground(Ham)
	t.StatusDown = lipgloss.NewStyle().Foreground(Rose)
	t.StatusWarn = lipgloss.NewStyle().Foreground(Amber)

	t.Muted = lipgloss.NewStyle().Foreground(TextMuted)
}

// Verdict returns the label style for a verdict.
func (t *Theme) Verdict(isSpam bool) lipgloss.Style {
	if isSpam {
		return t.VerdictSpam
	}
	return t.VerdictHam
}

// ResultPanel returns the panel style for a verdict.
func (t *Theme) ResultPanel(isSpam bool) lipgloss.Style {
	if isSpam {
		return t.ResultSpam
	}
	return t.ResultHam
}
