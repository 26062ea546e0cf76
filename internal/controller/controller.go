// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package controller

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/jeranaias/spamdetector/internal/classify"
	"github.com/jeranaias/spamdetector/internal/util"
)

// User-facing error texts.
const (
	EmptyMessageText = "Please enter a message to analyze."
	ConnectivityText = "Server connection failed. Is the Flask backend running?"
)

var (
	// ErrEmptyMessage is returned when the message is empty or whitespace.
	ErrEmptyMessage = errors.New("message is empty")

	// ErrBusy is returned when a submission arrives while one is in flight.
	ErrBusy = errors.New("a request is already in flight")

	// errAborted marks a classifier call that never returned normally.
	errAborted = errors.New("classifier call aborted")
)

// Classifier produces a verdict for a message.
type Classifier interface {
	Predict(ctx context.Context, message string) (*classify.Result, error)
}

// Controller owns the message, phase, result and error of one view.
// All methods are safe for concurrent use.
type Controller struct {
	classifier Classifier
	logger     *slog.Logger

	mu       sync.Mutex
	message  string
	phase    Phase
	result   *classify.Result
	errText  string
	inflight string // message sent by the current request
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger that receives failure diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Controller in the Idle phase.
func New(classifier Classifier, opts ...Option) *Controller {
	c := &Controller{
		classifier: classifier,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := State{
		Message: c.message,
		Phase:   c.phase,
		Error:   c.errText,
	}
	if c.result != nil {
		r := *c.result
		s.Result = &r
	}
	return s
}

// UpdateMessage replaces the message. It never validates and is allowed in
// every phase, including while a request is in flight.
func (c *Controller) UpdateMessage(text string) {
	c.mu.Lock()
	c.message = text
	c.mu.Unlock()
}

// Begin validates the message and, if it is usable, enters Loading.
//
// It returns the text to classify. ErrBusy leaves state untouched.
// ErrEmptyMessage moves to Failed with the validation text and keeps any
// previous result.
func (c *Controller) Begin() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase == PhaseLoading {
		return "", ErrBusy
	}

	if strings.TrimSpace(c.message) == "" {
		c.phase = PhaseFailed
		c.errText = EmptyMessageText
		return "", ErrEmptyMessage
	}

	c.phase = PhaseLoading
	c.errText = ""
	c.result = nil
	c.inflight = c.message
	return c.message, nil
}

// Complete applies the outcome of the request started by Begin. It reports
// false, and changes nothing, when no request is in flight.
func (c *Controller) Complete(result *classify.Result, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseLoading {
		return false
	}

	if err == nil && result == nil {
		err = errAborted
	}

	if err != nil {
		c.logFailure(err)
		c.phase = PhaseFailed
		c.errText = ConnectivityText
		c.result = nil
	} else {
		r := *result
		c.phase = PhaseSucceeded
		c.result = &r
		c.errText = ""
		c.logger.Info("message classified",
			"prediction", r.Prediction,
			"probability", r.Probability,
			"is_spam", r.IsSpam,
		)
	}
	c.inflight = ""
	return true
}

// Submit runs one full round trip: Begin, the classifier call, Complete.
//
// The controller leaves Loading on every path, including a panic inside the
// classifier. The returned error is for Go callers; the view reads the
// user-facing text from Snapshot.
func (c *Controller) Submit(ctx context.Context) error {
	message, err := c.Begin()
	if err != nil {
		return err
	}

	var result *classify.Result
	callErr := errAborted
	defer func() {
		c.Complete(result, callErr)
	}()

	result, callErr = c.classifier.Predict(ctx, message)
	return callErr
}

// logFailure records the real cause behind the generic connectivity text.
// Caller holds c.mu.
func (c *Controller) logFailure(err error) {
	attrs := []any{
		"error", err,
		"message_preview", util.TruncateRunes(util.SingleLine(c.inflight), 40),
	}

	var ce *classify.ClientError
	if errors.As(err, &ce) {
		attrs = append(attrs,
			"type", ce.Type.String(),
			"status", ce.StatusCode,
			"request_id", ce.RequestID,
		)
	}

	c.logger.Warn("classification failed", attrs...)
}
