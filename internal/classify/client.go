// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the classification client.
type ClientError struct {
	Type       ErrorType
	Message    string
	StatusCode int    // HTTP status, 0 when no response was received
	RequestID  string // X-Request-ID sent with the request
	Cause      error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// Is matches sentinel errors by type so errors.Is(err, ErrTimeout) works
// for any timeout regardless of message or request ID.
func (e *ClientError) Is(target error) bool {
	t, ok := target.(*ClientError)
	if !ok {
		return false
	}
	return t.Message == "" && t.Type == e.Type
}

// ErrorType categorizes client errors for handling and logging.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeConnection
	ErrTypeTimeout
	ErrTypeStatus
	ErrTypeInvalidResponse
)

// String returns a short name for logs.
func (t ErrorType) String() string {
	switch t {
	case ErrTypeConnection:
		return "connection"
	case ErrTypeTimeout:
		return "timeout"
	case ErrTypeStatus:
		return "status"
	case ErrTypeInvalidResponse:
		return "invalid_response"
	default:
		return "unknown"
	}
}

// Sentinel errors for errors.Is checks. They match on type only.
var (
	ErrConnection      = &ClientError{Type: ErrTypeConnection}
	ErrTimeout         = &ClientError{Type: ErrTypeTimeout}
	ErrStatus          = &ClientError{Type: ErrTypeStatus}
	ErrInvalidResponse = &ClientError{Type: ErrTypeInvalidResponse}
)

// IsConnectivity reports whether err came from talking to the backend.
// Every ClientError qualifies: unreachable servers, error statuses and
// unusable responses all collapse into one category for the user.
func IsConnectivity(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce)
}

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

const (
	DefaultBaseURL     = "http://localhost:5000"
	DefaultPredictPath = "/predict"
	DefaultHealthPath  = "/health"

	// maxErrorBody caps how much of an error response is read for logging.
	maxErrorBody = 4 << 10
)

// ClientConfig holds configuration options for the classification client.
type ClientConfig struct {
	// BaseURL is the backend base URL (default: http://localhost:5000)
	BaseURL string

	// PredictPath is the classification endpoint (default: /predict)
	PredictPath string

	// HealthPath is the readiness endpoint (default: /health)
	HealthPath string

	// Timeout for a whole request. Zero leaves requests unbounded, which is
	// the net/http default.
	Timeout time.Duration

	// Logger receives request/response debug records. Nil discards them.
	Logger *slog.Logger
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL:     DefaultBaseURL,
		PredictPath: DefaultPredictPath,
		HealthPath:  DefaultHealthPath,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client talks to the classification backend.
//
// The Client is safe for concurrent use; SetBaseURL may be called while
// requests are in flight and only affects requests started afterwards.
type Client struct {
	mu         sync.RWMutex
	config     ClientConfig
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a client with the default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a client with custom configuration.
// Zero-valued fields fall back to their defaults.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	cfg := *config

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.PredictPath == "" {
		cfg.PredictPath = DefaultPredictPath
	}
	if cfg.HealthPath == "" {
		cfg.HealthPath = DefaultHealthPath
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		config:     cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// BaseURL returns the backend base URL currently in use.
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config.BaseURL
}

// SetBaseURL points subsequent requests at a different backend.
func (c *Client) SetBaseURL(baseURL string) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c.mu.Lock()
	c.config.BaseURL = strings.TrimRight(baseURL, "/")
	c.mu.Unlock()
}

// PredictURL returns the full URL of the classification endpoint.
func (c *Client) PredictURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config.BaseURL + c.config.PredictPath
}

// HealthURL returns the full URL of the readiness endpoint.
func (c *Client) HealthURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config.BaseURL + c.config.HealthPath
}

// =============================================================================
// PREDICT
// =============================================================================

// Predict sends message to the backend and returns its verdict.
//
// Exactly one POST is issued. Any status outside 2xx, transport failure,
// undecodable body or body that fails validation yields a *ClientError.
func (c *Client) Predict(ctx context.Context, message string) (*Result, error) {
	requestID := uuid.NewString()

	body, err := json.Marshal(PredictRequest{Message: message})
	if err != nil {
		return nil, &ClientError{Type: ErrTypeUnknown, Message: "failed to marshal request", RequestID: requestID, Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.PredictURL(), bytes.NewReader(body))
	if err != nil {
		return nil, &ClientError{Type: ErrTypeConnection, Message: "failed to create request", RequestID: requestID, Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.do(req, requestID)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, requestID); err != nil {
		return nil, err
	}

	var raw predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &ClientError{
			Type:       ErrTypeInvalidResponse,
			Message:    "failed to decode response",
			StatusCode: resp.StatusCode,
			RequestID:  requestID,
			Cause:      err,
		}
	}

	result, err := raw.toResult()
	if err != nil {
		return nil, &ClientError{
			Type:       ErrTypeInvalidResponse,
			Message:    "unexpected response shape",
			StatusCode: resp.StatusCode,
			RequestID:  requestID,
			Cause:      err,
		}
	}

	return result, nil
}

// =============================================================================
// HEALTH CHECK
// =============================================================================

// Health queries the backend's readiness endpoint.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	requestID := uuid.NewString()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.HealthURL(), nil)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeConnection, Message: "failed to create request", RequestID: requestID, Cause: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.do(req, requestID)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, requestID); err != nil {
		return nil, err
	}

	var status HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, &ClientError{
			Type:       ErrTypeInvalidResponse,
			Message:    "failed to decode health response",
			StatusCode: resp.StatusCode,
			RequestID:  requestID,
			Cause:      err,
		}
	}
	return &status, nil
}

// =============================================================================
// HELPERS
// =============================================================================

// do executes req and maps transport failures to ClientErrors.
func (c *Client) do(req *http.Request, requestID string) (*http.Response, error) {
	start := time.Now()
	c.logger.Debug("backend request",
		"method", req.Method,
		"url", req.URL.String(),
		"request_id", requestID,
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		ce := &ClientError{Type: ErrTypeConnection, Message: "backend unreachable", RequestID: requestID, Cause: err}
		if isTimeout(err) {
			ce.Type = ErrTypeTimeout
			ce.Message = "request timed out"
		}
		return nil, ce
	}

	c.logger.Debug("backend response",
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"request_id", requestID,
	)
	return resp, nil
}

// checkStatus turns a non-2xx response into a ClientError. The backend's
// {"error": "..."} text is kept in the message for diagnostics.
func checkStatus(resp *http.Response, requestID string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	msg := "backend returned " + strconv.Itoa(resp.StatusCode)
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var body errorResponse
	if json.Unmarshal(data, &body) == nil && body.Error != "" {
		msg += ": " + body.Error
	}

	return &ClientError{
		Type:       ErrTypeStatus,
		Message:    msg,
		StatusCode: resp.StatusCode,
		RequestID:  requestID,
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}
