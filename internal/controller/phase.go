// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package controller

import (
	"github.com/jeranaias/spamdetector/internal/classify"
	"github.com/jeranaias/spamdetector/internal/util"
)

// Phase is one of the mutually exclusive request states.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSucceeded
	PhaseFailed
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is a point-in-time copy of the controller's fields, safe to hand to
// a view.
type State struct {
	Message string
	Phase   Phase
	Result  *classify.Result
	Error   string
}

// Loading reports whether a request is in flight.
func (s State) Loading() bool {
	return s.Phase == PhaseLoading
}

// CharCount is the number of characters in the message.
func (s State) CharCount() int {
	return util.RuneLen(s.Message)
}
