// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for spamdetector.
//
// Configuration is read from a TOML file, filled with defaults, overridden by
// environment variables and validated. The default location is
// ~/.spamdetector/config.toml; a missing file is not an error.
//
// # Environment Overrides
//
//   - SPAMDETECTOR_BACKEND_URL:   backend base URL
//   - SPAMDETECTOR_TIMEOUT_SECS:  request timeout in seconds (0 = none)
//   - SPAMDETECTOR_THEME:         auto, dark or light
//   - SPAMDETECTOR_LOG_LEVEL:     debug, info, warn or error
//   - SPAMDETECTOR_LOG_PATH:      log file path
//
// # Hot Reload
//
// Watch follows the config file with fsnotify and delivers each successfully
// reloaded Config on a channel. Invalid edits are reported and skipped so a
// running TUI keeps its last good configuration.
package config
