// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the render helpers for the detector screen.
//
// Components hold no application state. The detector model copies what they
// need from a controller snapshot and calls View.
package components
