// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the spamdetector packages.
//
// # Key Functions
//
// String Utilities:
//   - TruncateRunes: UTF-8 safe truncation with ellipsis, used for log previews
//   - TruncateWidth: display-width truncation for terminal cells
//   - RuneLen: character count of a message
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync
//
// # Usage
//
//	preview := util.TruncateRunes(message, 40)
//	err := util.AtomicWriteFile(path, data, 0600)
package util
