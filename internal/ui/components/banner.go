// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/jeranaias/spamdetector/internal/ui/styles"
)

// ErrorBanner renders the failure text. Empty text renders nothing.
func ErrorBanner(theme *styles.Theme, text string, width int) string {
	if text == "" {
		return ""
	}
	style := theme.ErrorBanner
	if width > 4 {
		style = style.Width(width - 2)
	}
	return style.Render(styles.StatusIndicators.Error + " " + text)
}
