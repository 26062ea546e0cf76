// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/jeranaias/spamdetector/internal/classify"
	"github.com/jeranaias/spamdetector/internal/ui/styles"
)

// =============================================================================
// RESULT PANEL
// =============================================================================

const (
	PredictionCaption = "Prediction"
	CertaintyCaption  = "Certainty"

	minBarWidth = 10
	maxBarWidth = 60
)

// ResultPanel renders a verdict with its certainty bar.
type ResultPanel struct {
	Result *classify.Result
	Width  int
	theme  *styles.Theme
}

// NewResultPanel creates an empty result panel.
func NewResultPanel(theme *styles.Theme) *ResultPanel {
	return &ResultPanel{Width: 80, theme: theme}
}

// SetResult replaces the displayed verdict. Nil hides the panel.
func (p *ResultPanel) SetResult(r *classify.Result) {
	p.Result = r
}

// SetWidth updates the panel width.
func (p *ResultPanel) SetWidth(width int) {
	p.Width = width
}

// View renders the stored result, or nothing when there is none.
func (p *ResultPanel) View() string {
	return p.Render(p.Result)
}

// Render draws r at the panel width without storing it. Nil renders nothing.
func (p *ResultPanel) Render(r *classify.Result) string {
	if r == nil {
		return ""
	}
	t := p.theme

	verdict := t.Verdict(r.IsSpam).Render(styles.VerdictMarker(r.IsSpam) + " " + r.Prediction)
	left := lipgloss.JoinVertical(lipgloss.Left,
		t.ResultLabel.Render(PredictionCaption),
		verdict,
	)
	right := lipgloss.JoinVertical(lipgloss.Right,
		t.ResultLabel.Render(CertaintyCaption),
		t.ResultValue.Render(r.Percent()),
	)

	inner := p.innerWidth()
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, lipgloss.NewStyle().Width(gap).Render(""), right)

	body := lipgloss.JoinVertical(lipgloss.Left, row, "", p.bar(r, inner))
	return t.ResultPanel(r.IsSpam).Render(body)
}

// bar renders the certainty bar filled to the probability.
func (p *ResultPanel) bar(r *classify.Result, width int) string {
	color := styles.VerdictColor(r.IsSpam)
	track := styles.Overlay

	fill, empty := color.Light, track.Light
	if p.theme.IsDark {
		fill, empty = color.Dark, track.Dark
	}

	bar := progress.New(progress.WithSolidFill(fill), progress.WithoutPercentage())
	bar.EmptyColor = empty
	bar.Width = width
	return bar.ViewAs(r.Fraction())
}

// innerWidth is the content width inside the panel border and padding.
func (p *ResultPanel) innerWidth() int {
	w := p.Width - p.theme.ResultSpam.GetHorizontalFrameSize()
	if w > maxBarWidth {
		w = maxBarWidth
	}
	if w < minBarWidth {
		w = minBarWidth
	}
	return w
}
