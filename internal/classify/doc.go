// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package classify provides the HTTP client for the spam classification backend.
//
// The backend is an opaque service exposing two endpoints:
//
//	POST /predict  {"message": "..."} -> {"prediction": "Spam", "probability": 97.5, "is_spam": true}
//	GET  /health                      -> {"status": "healthy", "model_loaded": true}
//
// # Key Types
//
//   - Client: HTTP client for the backend, safe for concurrent use
//   - Result: a validated verdict returned by /predict
//   - HealthStatus: backend readiness reported by /health
//   - ClientError: typed error carrying the failure category and request ID
//
// # Usage
//
//	client := classify.NewClient()
//	res, err := client.Predict(ctx, "WIN FREE MONEY NOW")
//	if err != nil {
//	    // every failure is a connectivity failure from the caller's view
//	}
//	fmt.Println(res.Prediction, res.Percent())
//
// Responses are validated before they are returned: a body that decodes but
// is missing fields, or carries a probability outside 0-100, is reported as
// ErrTypeInvalidResponse rather than handed to the view.
package classify
