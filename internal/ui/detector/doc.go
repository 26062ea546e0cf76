// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package detector provides the interactive spam detector screen.
//
// The Model follows the Bubble Tea architecture. Request state lives in a
// controller.Controller; the HTTP call runs inside a tea.Cmd and its outcome
// comes back as a PredictionMsg which completes the controller. The view is
// rebuilt from a controller snapshot on every render.
//
// Files:
//   - keys.go: key bindings and help
//   - messages.go: Bubble Tea message types
//   - commands.go: tea.Cmd constructors for backend calls and config reloads
//   - model.go: Model construction and Init
//   - update.go: event handling
//   - view.go: rendering
package detector
