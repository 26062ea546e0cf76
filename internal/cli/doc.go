// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the spamdetector command line.
//
// Commands:
//
//	spamdetector [tui]            Interactive detector screen (default)
//	spamdetector check [msg...]   Classify one message from args or stdin
//	spamdetector repl             Line-oriented prompt with history
//	spamdetector health           Query the backend's readiness endpoint
//	spamdetector config show      Print the effective configuration
//	spamdetector config path      Print the config file location
//	spamdetector config init      Write a default config file
//	spamdetector version          Print build information
//
// Global flags --config, --backend and --log-level apply to every command.
// check and health accept --json for machine-readable output.
package cli
