// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the spamdetector TUI.

All colors are Lip Gloss AdaptiveColors so the same palette works on dark
and light terminals.

# Color System (colors.go)

  - Brand (blue) - header accent, focused input, enabled submit control
  - Spam (red) - spam verdict label, bar and panel border
  - Ham (green) - not-spam verdict label, bar and panel border
  - Rose - error banner
  - Amber - warnings in the status bar

Verdict colors are paired with text markers ([!] / [OK]) for colorblind users.

# Theme (theme.go)

NewTheme builds every lipgloss.Style used by the view. The mode is "auto"
(detect with termenv), "dark" or "light".

	theme := styles.NewTheme("auto")
	fmt.Println(theme.ErrorBanner.Render("Server connection failed."))
*/
package styles
