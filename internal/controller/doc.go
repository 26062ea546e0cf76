// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package controller owns the request lifecycle of the spam detector.
//
// A Controller holds the message being edited, the current Phase, the last
// verdict and the user-facing error text. It moves through
//
//	Idle -> Loading -> Succeeded | Failed
//
// and back to Loading on the next submission. An empty message short-circuits
// to Failed without touching the network, and a submission while Loading is
// rejected with ErrBusy.
//
// Callers that can block use Submit. Event loops (Bubble Tea) split it into
// Begin, which validates and enters Loading synchronously, and Complete,
// which applies the outcome once the classifier call returns.
package controller
