// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/jeranaias/spamdetector/internal/classify"
	"github.com/jeranaias/spamdetector/internal/ui/styles"
)

// healthTimeout bounds the readiness probe.
const healthTimeout = 5 * time.Second

var errModelNotLoaded = errors.New("backend is up but no model is loaded")

func newHealthCmd(opts *globalOptions) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check that the classification backend is ready",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			if err := opts.setup(); err != nil {
				return err
			}
			defer opts.teardown()

			return runHealth(cmd.Context(), cmd.OutOrStdout(), opts.newClient(), jsonOut)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print a JSON envelope instead of text")
	return cmd
}

// backendHealth is the part of the client runHealth needs.
type backendHealth interface {
	Health(ctx context.Context) (*classify.HealthStatus, error)
	BaseURL() string
}

func runHealth(ctx context.Context, out io.Writer, client backendHealth, jsonOut bool) error {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	data := HealthData{Backend: client.BaseURL()}
	status, err := client.Health(ctx)
	if err == nil {
		data.Status = status.Status
		data.ModelLoaded = status.ModelLoaded
		data.Ready = status.Ready()
		if !data.Ready {
			err = errModelNotLoaded
		}
	} else {
		err = fmt.Errorf("backend unreachable at %s: %w", data.Backend, err)
	}

	if jsonOut {
		resp := NewJSONResponse("health", data)
		if err != nil {
			resp = NewJSONErrorResponse("health", err.Error(), data)
		}
		if werr := resp.Write(out); werr != nil {
			return werr
		}
		return err
	}

	if err != nil {
		return err
	}
	fmt.Fprintln(out, styles.RenderSuccess("backend ready at "+data.Backend))
	return nil
}
