// spamdetector - a terminal client for an email spam classification service.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import "github.com/jeranaias/spamdetector/internal/cli"

func main() {
	cli.Execute()
}
