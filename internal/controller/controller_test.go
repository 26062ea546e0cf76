// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package controller

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/spamdetector/internal/classify"
)

// fakeClassifier returns canned answers and records calls.
type fakeClassifier struct {
	calls  atomic.Int32
	result *classify.Result
	err    error

	// started, when set, receives once the call begins; the call then
	// blocks until release is closed.
	started chan struct{}
	release chan struct{}

	onCall func(message string)
}

func (f *fakeClassifier) Predict(ctx context.Context, message string) (*classify.Result, error) {
	f.calls.Add(1)
	if f.onCall != nil {
		f.onCall(message)
	}
	if f.started != nil {
		f.started <- struct{}{}
		<-f.release
	}
	return f.result, f.err
}

// backend starts a test classification backend. respond writes the reply.
func backend(t *testing.T, respond func(w http.ResponseWriter, r *http.Request)) (*classify.Client, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		respond(w, r)
	}))
	t.Cleanup(srv.Close)
	return classify.NewClientWithConfig(&classify.ClientConfig{BaseURL: srv.URL}), &hits
}

// =============================================================================
// INITIAL STATE
// =============================================================================

func TestNew_IdleState(t *testing.T) {
	c := New(&fakeClassifier{})
	s := c.Snapshot()

	assert.Equal(t, PhaseIdle, s.Phase)
	assert.Empty(t, s.Message)
	assert.Nil(t, s.Result)
	assert.Empty(t, s.Error)
	assert.False(t, s.Loading())
}

func TestUpdateMessage(t *testing.T) {
	c := New(&fakeClassifier{})
	c.UpdateMessage("héllo")

	s := c.Snapshot()
	assert.Equal(t, "héllo", s.Message)
	assert.Equal(t, 5, s.CharCount())
	assert.Equal(t, PhaseIdle, s.Phase, "editing must not change phase")
}

// =============================================================================
// VALIDATION GUARD
// =============================================================================

func TestSubmit_EmptyInput(t *testing.T) {
	inputs := []string{"", " ", "\t", "\n\n", "   \r\n  "}

	for _, in := range inputs {
		fc := &fakeClassifier{}
		c := New(fc)
		c.UpdateMessage(in)

		err := c.Submit(context.Background())

		assert.ErrorIs(t, err, ErrEmptyMessage)
		s := c.Snapshot()
		assert.Equal(t, PhaseFailed, s.Phase)
		assert.Equal(t, EmptyMessageText, s.Error)
		assert.False(t, s.Loading())
		assert.Zero(t, fc.calls.Load(), "no request for %q", in)
	}
}

func TestSubmit_EmptyInputKeepsPreviousResult(t *testing.T) {
	fc := &fakeClassifier{result: &classify.Result{Prediction: "Spam", Probability: 97, IsSpam: true}}
	c := New(fc)

	c.UpdateMessage("WIN FREE MONEY NOW")
	require.NoError(t, c.Submit(context.Background()))

	c.UpdateMessage("   ")
	assert.ErrorIs(t, c.Submit(context.Background()), ErrEmptyMessage)

	s := c.Snapshot()
	assert.Equal(t, PhaseFailed, s.Phase)
	assert.Equal(t, EmptyMessageText, s.Error)
	require.NotNil(t, s.Result)
	assert.Equal(t, "Spam", s.Result.Prediction)
	assert.Equal(t, int32(1), fc.calls.Load())
}

// =============================================================================
// LIFECYCLE
// =============================================================================

func TestSubmit_LoadingDuringCall(t *testing.T) {
	fc := &fakeClassifier{
		result:  &classify.Result{Prediction: "Not Spam", Probability: 82, IsSpam: false},
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	c := New(fc)
	c.UpdateMessage("Meeting at 3pm")

	done := make(chan error, 1)
	go func() { done <- c.Submit(context.Background()) }()

	<-fc.started
	s := c.Snapshot()
	assert.Equal(t, PhaseLoading, s.Phase)
	assert.True(t, s.Loading())
	assert.Nil(t, s.Result)
	assert.Empty(t, s.Error)

	// Editing while loading is allowed
	c.UpdateMessage("Meeting at 4pm")

	close(fc.release)
	require.NoError(t, <-done)

	s = c.Snapshot()
	assert.Equal(t, PhaseSucceeded, s.Phase)
	assert.False(t, s.Loading())
	assert.Equal(t, "Meeting at 4pm", s.Message)
}

func TestSubmit_BusyWhileLoading(t *testing.T) {
	fc := &fakeClassifier{
		result:  &classify.Result{Prediction: "Spam", Probability: 90, IsSpam: true},
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	c := New(fc)
	c.UpdateMessage("WIN FREE MONEY NOW")

	done := make(chan error, 1)
	go func() { done <- c.Submit(context.Background()) }()
	<-fc.started

	assert.ErrorIs(t, c.Submit(context.Background()), ErrBusy)
	_, err := c.Begin()
	assert.ErrorIs(t, err, ErrBusy)

	// Busy rejection leaves the loading state alone, even for empty input
	c.UpdateMessage("")
	assert.ErrorIs(t, c.Submit(context.Background()), ErrBusy)
	assert.Equal(t, PhaseLoading, c.Snapshot().Phase)

	close(fc.release)
	require.NoError(t, <-done)
	assert.Equal(t, int32(1), fc.calls.Load())
}

func TestSubmit_ClearsPreviousStateBeforeRequest(t *testing.T) {
	fc := &fakeClassifier{err: errors.New("boom")}
	c := New(fc)
	c.UpdateMessage("first")
	require.Error(t, c.Submit(context.Background()))
	require.Equal(t, ConnectivityText, c.Snapshot().Error)

	fc.err = nil
	fc.result = &classify.Result{Prediction: "Not Spam", Probability: 60, IsSpam: false}
	fc.onCall = func(string) {
		s := c.Snapshot()
		assert.Equal(t, PhaseLoading, s.Phase)
		assert.Empty(t, s.Error, "error cleared when the request starts")
		assert.Nil(t, s.Result)
	}

	require.NoError(t, c.Submit(context.Background()))
	assert.Equal(t, PhaseSucceeded, c.Snapshot().Phase)
}

func TestSubmit_PanicLeavesLoading(t *testing.T) {
	c := New(panicClassifier{})
	c.UpdateMessage("hello")

	assert.Panics(t, func() { _ = c.Submit(context.Background()) })

	s := c.Snapshot()
	assert.Equal(t, PhaseFailed, s.Phase)
	assert.Equal(t, ConnectivityText, s.Error)
	assert.False(t, s.Loading())
}

type panicClassifier struct{}

func (panicClassifier) Predict(context.Context, string) (*classify.Result, error) {
	panic("classifier exploded")
}

func TestComplete_WithoutBeginIsIgnored(t *testing.T) {
	c := New(&fakeClassifier{})
	applied := c.Complete(&classify.Result{Prediction: "Spam", Probability: 1, IsSpam: true}, nil)

	assert.False(t, applied)
	assert.Equal(t, PhaseIdle, c.Snapshot().Phase)
}

func TestComplete_NilResultIsFailure(t *testing.T) {
	c := New(&fakeClassifier{})
	c.UpdateMessage("hello")
	_, err := c.Begin()
	require.NoError(t, err)

	assert.True(t, c.Complete(nil, nil))
	assert.Equal(t, PhaseFailed, c.Snapshot().Phase)
}

func TestSnapshot_ResultIsCopy(t *testing.T) {
	fc := &fakeClassifier{result: &classify.Result{Prediction: "Spam", Probability: 97, IsSpam: true}}
	c := New(fc)
	c.UpdateMessage("x")
	require.NoError(t, c.Submit(context.Background()))

	s := c.Snapshot()
	s.Result.Prediction = "tampered"
	fc.result.Prediction = "also tampered"

	assert.Equal(t, "Spam", c.Snapshot().Result.Prediction)
}

// =============================================================================
// END-TO-END SCENARIOS AGAINST AN HTTP BACKEND
// =============================================================================

func TestScenario_Spam(t *testing.T) {
	client, hits := backend(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"prediction":"Spam","probability":97,"is_spam":true}`))
	})
	c := New(client)
	c.UpdateMessage("WIN FREE MONEY NOW")

	require.NoError(t, c.Submit(context.Background()))

	s := c.Snapshot()
	assert.Equal(t, PhaseSucceeded, s.Phase)
	assert.Equal(t, &classify.Result{Prediction: "Spam", Probability: 97, IsSpam: true}, s.Result)
	assert.Empty(t, s.Error)
	assert.Equal(t, int32(1), hits.Load())
}

func TestScenario_NotSpam(t *testing.T) {
	client, _ := backend(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"prediction":"Not Spam","probability":82,"is_spam":false}`))
	})
	c := New(client)
	c.UpdateMessage("Meeting at 3pm")

	require.NoError(t, c.Submit(context.Background()))

	s := c.Snapshot()
	require.NotNil(t, s.Result)
	assert.Equal(t, "Not Spam", s.Result.Prediction)
	assert.Equal(t, 82.0, s.Result.Probability)
	assert.False(t, s.Result.IsSpam)
}

func TestScenario_StatusCodesCollapse(t *testing.T) {
	for _, status := range []int{400, 404, 500, 503} {
		client, _ := backend(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})
		c := New(client)
		c.UpdateMessage("hello")

		err := c.Submit(context.Background())
		require.Error(t, err)
		assert.True(t, classify.IsConnectivity(err))

		s := c.Snapshot()
		assert.Equal(t, PhaseFailed, s.Phase)
		assert.Equal(t, ConnectivityText, s.Error, "status %d", status)
		assert.Nil(t, s.Result)
		assert.False(t, s.Loading())
	}
}

func TestScenario_MalformedResponse(t *testing.T) {
	client, _ := backend(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"label":"spam"}`))
	})
	c := New(client)
	c.UpdateMessage("hello")

	assert.Error(t, c.Submit(context.Background()))
	assert.Equal(t, ConnectivityText, c.Snapshot().Error)
}

func TestScenario_BackendUnreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	url := "http://" + ln.Addr().String()
	require.NoError(t, ln.Close())

	c := New(classify.NewClientWithConfig(&classify.ClientConfig{BaseURL: url}))
	c.UpdateMessage("hello")

	assert.Error(t, c.Submit(context.Background()))

	s := c.Snapshot()
	assert.Equal(t, PhaseFailed, s.Phase)
	assert.Equal(t, ConnectivityText, s.Error)
	assert.False(t, s.Loading())
}

func TestScenario_TwoSubmissionsReflectSecond(t *testing.T) {
	var n atomic.Int32
	client, hits := backend(t, func(w http.ResponseWriter, r *http.Request) {
		if n.Add(1) == 1 {
			_, _ = w.Write([]byte(`{"prediction":"Spam","probability":51,"is_spam":true}`))
			return
		}
		_, _ = w.Write([]byte(`{"prediction":"Not Spam","probability":64.5,"is_spam":false}`))
	})
	c := New(client)
	c.UpdateMessage("same message")

	require.NoError(t, c.Submit(context.Background()))
	require.NoError(t, c.Submit(context.Background()))

	s := c.Snapshot()
	assert.Equal(t, int32(2), hits.Load())
	assert.Equal(t, "Not Spam", s.Result.Prediction)
	assert.Equal(t, 64.5, s.Result.Probability)
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "loading", PhaseLoading.String())
	assert.Equal(t, "succeeded", PhaseSucceeded.String())
	assert.Equal(t, "failed", PhaseFailed.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
