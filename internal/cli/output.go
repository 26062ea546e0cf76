// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
)

// =============================================================================
// JSON ENVELOPE
// =============================================================================

// JSONResponse is the envelope printed by commands run with --json.
type JSONResponse struct {
	// Success indicates whether the command completed successfully
	Success bool `json:"success"`

	// Data contains the command-specific response data
	Data interface{} `json:"data"`

	// Error contains the error message if Success is false, null otherwise
	Error *string `json:"error"`

	// Timestamp is the RFC 3339 UTC time the response was generated
	Timestamp string `json:"timestamp"`

	// Command is the command that was executed
	Command string `json:"command,omitempty"`
}

// NewJSONResponse creates a successful JSON response.
func NewJSONResponse(command string, data interface{}) *JSONResponse {
	return &JSONResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
	}
}

// NewJSONErrorResponse creates a failed JSON response. data may be nil.
func NewJSONErrorResponse(command, errMsg string, data interface{}) *JSONResponse {
	return &JSONResponse{
		Success:   false,
		Data:      data,
		Error:     &errMsg,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
	}
}

// Write prints the response as indented JSON, highlighted when w is a
// color-capable terminal.
func (r *JSONResponse) Write(w io.Writer) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	return writeHighlighted(w, string(data)+"\n", "json")
}

// CheckData is the payload of check --json.
type CheckData struct {
	Backend     string  `json:"backend"`
	Characters  int     `json:"characters"`
	Prediction  string  `json:"prediction"`
	Probability float64 `json:"probability"`
	IsSpam      bool    `json:"is_spam"`
}

// HealthData is the payload of health --json.
type HealthData struct {
	Backend     string `json:"backend"`
	Status      string `json:"status,omitempty"`
	ModelLoaded bool   `json:"model_loaded"`
	Ready       bool   `json:"ready"`
}

// =============================================================================
// SYNTAX HIGHLIGHTING
// =============================================================================

// writeHighlighted writes code to w, applying chroma highlighting for
// language when w is a terminal with colors enabled.
func writeHighlighted(w io.Writer, code, language string) error {
	if colorsFor(w) {
		code = highlightCode(code, language)
	}
	_, err := io.WriteString(w, code)
	return err
}

// highlightCode applies terminal syntax highlighting. The input is returned
// unchanged if tokenizing or formatting fails.
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromaStyles.Get("monokai")
	if style == nil {
		style = chromaStyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	return buf.String()
}
