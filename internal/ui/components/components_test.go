// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/jeranaias/spamdetector/internal/classify"
	"github.com/jeranaias/spamdetector/internal/ui/styles"
	"github.com/stretchr/testify/assert"
)

func testTheme() *styles.Theme {
	return styles.NewTheme(styles.ModeDark)
}

// =============================================================================
// HEADER TESTS
// =============================================================================

func TestHeader_View(t *testing.T) {
	h := NewHeader(testTheme())
	h.SetWidth(60)

	view := h.View()
	assert.Contains(t, view, "Spam Detector")
	assert.Contains(t, view, DefaultTagline)
}

func TestHeader_NarrowTerminal(t *testing.T) {
	h := NewHeader(testTheme())
	h.SetWidth(12)

	for _, line := range strings.Split(h.View(), "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 12, "line %q", line)
	}
}

func TestFooter(t *testing.T) {
	assert.Contains(t, Footer(testTheme(), 60), FooterText)

	for _, line := range strings.Split(Footer(testTheme(), 12), "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 12, "line %q", line)
	}
}

func TestLabel(t *testing.T) {
	assert.Contains(t, Label(testTheme()), "Message Content")
}

// =============================================================================
// INPUT TESTS
// =============================================================================

func TestFormatCharCount(t *testing.T) {
	assert.Equal(t, "0 characters", FormatCharCount(0))
	assert.Equal(t, "1 characters", FormatCharCount(1))
	assert.Equal(t, "1500 characters", FormatCharCount(1500))
	assert.Contains(t, CharCounter(testTheme(), 18), "18 characters")
}

// =============================================================================
// SUBMIT BUTTON TESTS
// =============================================================================

func TestSubmitButton(t *testing.T) {
	theme := testTheme()

	idle := SubmitButton(theme, false, "")
	assert.Contains(t, idle, SubmitText)
	assert.NotContains(t, idle, LoadingText)

	busy := SubmitButton(theme, true, "*")
	assert.Contains(t, busy, "* "+LoadingText)
	assert.NotContains(t, busy, SubmitText)
}

// =============================================================================
// ERROR BANNER TESTS
// =============================================================================

func TestErrorBanner(t *testing.T) {
	theme := testTheme()

	assert.Empty(t, ErrorBanner(theme, "", 80))
	assert.Contains(t, ErrorBanner(theme, "Please enter a message to analyze.", 80), "Please enter a message to analyze.")
}

// =============================================================================
// RESULT PANEL TESTS
// =============================================================================

func TestResultPanel_Empty(t *testing.T) {
	p := NewResultPanel(testTheme())
	assert.Empty(t, p.View())
}

func TestResultPanel_Spam(t *testing.T) {
	p := NewResultPanel(testTheme())
	p.SetWidth(70)
	p.SetResult(&classify.Result{Prediction: "Spam", Probability: 97, IsSpam: true})

	view := p.View()
	assert.Contains(t, view, PredictionCaption)
	assert.Contains(t, view, CertaintyCaption)
	assert.Contains(t, view, "Spam")
	assert.Contains(t, view, "97%")
	assert.Contains(t, view, "[!]")
}

func TestResultPanel_NotSpam(t *testing.T) {
	p := NewResultPanel(testTheme())
	p.SetResult(&classify.Result{Prediction: "Not Spam", Probability: 82.5, IsSpam: false})

	view := p.View()
	assert.Contains(t, view, "Not Spam")
	assert.Contains(t, view, "82.5%")
	assert.Contains(t, view, "[OK]")
}

func TestResultPanel_RenderDoesNotStore(t *testing.T) {
	p := NewResultPanel(testTheme())
	r := &classify.Result{Prediction: "Spam", Probability: 97, IsSpam: true}

	assert.Contains(t, p.Render(r), "97%")
	assert.Nil(t, p.Result)
	assert.Empty(t, p.View())
	assert.Empty(t, p.Render(nil))
}

func TestResultPanel_BarTracksProbability(t *testing.T) {
	p := NewResultPanel(testTheme())
	full := p.bar(&classify.Result{Prediction: "Spam", Probability: 100, IsSpam: true}, 20)
	empty := p.bar(&classify.Result{Prediction: "Spam", Probability: 0, IsSpam: true}, 20)

	assert.Equal(t, 20, lipgloss.Width(full))
	assert.Equal(t, 20, lipgloss.Width(empty))
	assert.NotEqual(t, full, empty)
}

// =============================================================================
// STATUS BAR TESTS
// =============================================================================

func TestBackendStatus_String(t *testing.T) {
	tests := []struct {
		status BackendStatus
		want   string
		icon   string
	}{
		{BackendUnknown, "unknown", "[ ]"},
		{BackendChecking, "checking...", "[ ]"},
		{BackendReady, "ready", "[OK]"},
		{BackendNoModel, "model not loaded", "[!]"},
		{BackendDown, "unreachable", "[X]"},
		{BackendStatus(42), "unknown", "[ ]"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.status.String())
		assert.Equal(t, tc.icon, tc.status.Icon())
	}
}

func TestStatusBar_View(t *testing.T) {
	s := NewStatusBar(testTheme(), "http://localhost:5000")
	s.SetWidth(100)
	s.SetStatus(BackendReady)
	s.SetNotice("config reloaded\nbackend now http://x")

	view := s.View()
	assert.Contains(t, view, "[OK] ready")
	assert.Contains(t, view, "http://localhost:5000")
	assert.Contains(t, view, "config reloaded backend now http://x")
	assert.Equal(t, 100, lipgloss.Width(view))
}

func TestStatusBar_NarrowDropsNotice(t *testing.T) {
	s := NewStatusBar(testTheme(), "http://localhost:5000")
	s.SetWidth(40)
	s.SetStatus(BackendDown)
	s.SetNotice("a rather long notice that cannot possibly fit")

	view := s.View()
	assert.Contains(t, view, "[X] unreachable")
	assert.LessOrEqual(t, lipgloss.Width(view), 40)
}
