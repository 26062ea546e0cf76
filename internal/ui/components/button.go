// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import "github.com/jeranaias/spamdetector/internal/ui/styles"

// =============================================================================
// SUBMIT CONTROL
// =============================================================================

const (
	SubmitText  = "Check for Spam"
	LoadingText = "Analyzing..."
)

// SubmitButton renders the submit control. While loading it shows the
// spinner frame and the disabled style.
func SubmitButton(theme *styles.Theme, loading bool, spinnerFrame string) string {
	if loading {
		label := LoadingText
		if spinnerFrame != "" {
			label = spinnerFrame + " " + label
		}
		return theme.ButtonDisabled.Render(label)
	}
	return theme.Button.Render(SubmitText)
}
