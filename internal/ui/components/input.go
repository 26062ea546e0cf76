// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"

	"github.com/jeranaias/spamdetector/internal/ui/styles"
)

// =============================================================================
// INPUT DECORATIONS
// =============================================================================

// MessageLabel is the caption above the message input.
const MessageLabel = "Message Content"

// FormatCharCount returns the counter text, for example "42 characters".
func FormatCharCount(n int) string {
	return strconv.Itoa(n) + " characters"
}

// CharCounter renders the live character counter.
func CharCounter(theme *styles.Theme, n int) string {
	return theme.CharCount.Render(FormatCharCount(n))
}

// Label renders the input caption.
func Label(theme *styles.Theme) string {
	return theme.Label.Render(MessageLabel)
}
