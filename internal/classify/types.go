// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package classify

import (
	"fmt"
	"math"
	"strings"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// PredictRequest is the body of POST /predict.
type PredictRequest struct {
	Message string `json:"message"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// Result is the verdict for one message.
type Result struct {
	// Prediction is the backend's label, e.g. "Spam" or "Not Spam".
	Prediction string `json:"prediction"`

	// Probability is the certainty of Prediction as a percentage (0-100).
	Probability float64 `json:"probability"`

	// IsSpam is true when the message was classified as spam.
	IsSpam bool `json:"is_spam"`
}

// Percent returns the probability formatted the way the result panel shows
// it: no trailing zeros, at most two decimals.
func (r *Result) Percent() string {
	s := fmt.Sprintf("%.2f", r.Probability)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s + "%"
}

// Fraction returns the probability scaled to 0-1 for progress bars.
func (r *Result) Fraction() float64 {
	return math.Max(0, math.Min(1, r.Probability/100))
}

// predictResponse mirrors the wire format with pointer fields so missing
// keys can be told apart from zero values.
type predictResponse struct {
	Prediction  *string  `json:"prediction"`
	Probability *float64 `json:"probability"`
	IsSpam      *bool    `json:"is_spam"`
}

// toResult validates the decoded body and converts it to a Result.
func (p *predictResponse) toResult() (*Result, error) {
	var missing []string
	if p.Prediction == nil || strings.TrimSpace(*p.Prediction) == "" {
		missing = append(missing, "prediction")
	}
	if p.Probability == nil {
		missing = append(missing, "probability")
	}
	if p.IsSpam == nil {
		missing = append(missing, "is_spam")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("response missing %s", strings.Join(missing, ", "))
	}

	prob := *p.Probability
	if math.IsNaN(prob) || prob < 0 || prob > 100 {
		return nil, fmt.Errorf("probability %v outside 0-100", prob)
	}

	return &Result{
		Prediction:  *p.Prediction,
		Probability: prob,
		IsSpam:      *p.IsSpam,
	}, nil
}

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
}

// Ready reports whether the backend can serve predictions.
func (h *HealthStatus) Ready() bool {
	return h.Status == "healthy" && h.ModelLoaded
}

// errorResponse is what the backend sends alongside 4xx/5xx statuses.
type errorResponse struct {
	Error string `json:"error"`
}
