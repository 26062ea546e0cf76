// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package detector

import (
	"github.com/jeranaias/spamdetector/internal/classify"
	"github.com/jeranaias/spamdetector/internal/config"
)

// PredictionMsg carries the outcome of a classification request.
type PredictionMsg struct {
	Message string
	Result  *classify.Result
	Err     error
}

// HealthMsg carries the outcome of a backend health check.
type HealthMsg struct {
	BaseURL string
	Status  *classify.HealthStatus
	Err     error
}

// ConfigReloadMsg is sent after the config file changed on disk.
type ConfigReloadMsg struct {
	config.Reload
}
