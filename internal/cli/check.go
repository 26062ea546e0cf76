// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jeranaias/spamdetector/internal/classify"
	"github.com/jeranaias/spamdetector/internal/controller"
	"github.com/jeranaias/spamdetector/internal/ui/styles"
)

// ExitCodeSpam is returned by check --fail-on-spam for a spam verdict.
const ExitCodeSpam = 2

// maxStdinMessage caps how much piped input is read.
const maxStdinMessage = 1 << 20

// errSpam is wrapped in an ExitError when --fail-on-spam trips.
var errSpam = errors.New("message classified as spam")

type checkOptions struct {
	json       bool
	failOnSpam bool
}

func newCheckCmd(opts *globalOptions) *cobra.Command {
	var copts checkOptions

	cmd := &cobra.Command{
		Use:   "check [message...]",
		Short: "Classify one message",
		Long: `Classify a single message and print the verdict.

The message is taken from the arguments, joined with spaces. Without
arguments it is read from standard input, so an email can be piped in:

  spamdetector check < email.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			message, err := readMessage(cmd, args)
			if err != nil {
				return err
			}

			if err := opts.setup(); err != nil {
				return err
			}
			defer opts.teardown()

			return runCheck(cmd, opts, copts, message)
		},
	}

	cmd.Flags().BoolVar(&copts.json, "json", false, "print a JSON envelope instead of text")
	cmd.Flags().BoolVar(&copts.failOnSpam, "fail-on-spam", false, "exit with status 2 when the message is spam")

	return cmd
}

// readMessage returns the joined arguments, or stdin when there are none.
func readMessage(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	in := cmd.InOrStdin()
	if isTerminal(in) {
		return "", errors.New("no message given: pass it as arguments or pipe it on stdin")
	}

	data, err := io.ReadAll(io.LimitReader(in, maxStdinMessage))
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func runCheck(cmd *cobra.Command, opts *globalOptions, copts checkOptions, message string) error {
	client := opts.newClient()
	ctrl := controller.New(client, controller.WithLogger(opts.logger))
	ctrl.UpdateMessage(message)

	submitErr := ctrl.Submit(cmd.Context())
	state := ctrl.Snapshot()
	out := cmd.OutOrStdout()

	if submitErr != nil || state.Phase != controller.PhaseSucceeded {
		if copts.json {
			if err := NewJSONErrorResponse("check", state.Error, nil).Write(out); err != nil {
				return err
			}
		}
		return errors.New(state.Error)
	}

	result := state.Result
	if copts.json {
		data := CheckData{
			Backend:     client.BaseURL(),
			Characters:  state.CharCount(),
			Prediction:  result.Prediction,
			Probability: result.Probability,
			IsSpam:      result.IsSpam,
		}
		if err := NewJSONResponse("check", data).Write(out); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(out, formatVerdict(result))
	}

	if copts.failOnSpam && result.IsSpam {
		return &ExitError{Code: ExitCodeSpam, Err: errSpam}
	}
	return nil
}

// formatVerdict renders one line such as "[!] Spam (97% certainty)".
func formatVerdict(r *classify.Result) string {
	label := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.VerdictColor(r.IsSpam)).
		Render(styles.VerdictMarker(r.IsSpam) + " " + r.Prediction)
	return label + " (" + r.Percent() + " certainty)"
}
