// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/jeranaias/spamdetector/internal/config"
	"github.com/jeranaias/spamdetector/internal/controller"
	"github.com/jeranaias/spamdetector/internal/ui/styles"
)

const replPrompt = "spam> "

const replHelp = `# spamdetector

Type or paste a message and press **Enter** to classify it.
Each line is sent as one message.

| Command | Action |
|---------|--------|
| ` + "`/help`" + ` | Show this help |
| ` + "`/health`" + ` | Check the backend |
| ` + "`/quit`" + ` | Leave (also Ctrl+D) |

Arrow keys walk through earlier messages.
`

// =============================================================================
// LINE EDITING
// =============================================================================

// lineReader provides input history and line editing for the prompt.
type lineReader struct {
	line        *liner.State
	historyFile string
}

func newLineReader() *lineReader {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}

	r := &lineReader{
		line:        line,
		historyFile: filepath.Join(configDir, "repl_history"),
	}
	r.loadHistory()
	return r
}

func (r *lineReader) loadHistory() {
	if f, err := os.Open(r.historyFile); err == nil {
		_, _ = r.line.ReadHistory(f)
		f.Close()
	}
}

// ReadLine reads one line. Non-blank lines are added to history.
func (r *lineReader) ReadLine(prompt string) (string, error) {
	input, err := r.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		r.line.AppendHistory(input)
	}
	return input, nil
}

// saveHistory persists history with owner-only permissions.
func (r *lineReader) saveHistory() {
	if err := os.MkdirAll(filepath.Dir(r.historyFile), 0700); err != nil {
		return
	}
	f, err := os.OpenFile(r.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = r.line.WriteHistory(f)
}

// Close saves history and restores the terminal.
func (r *lineReader) Close() {
	r.saveHistory()
	r.line.Close()
}

// =============================================================================
// SESSION
// =============================================================================

// replSession handles the lines of one prompt session.
type replSession struct {
	ctrl    *controller.Controller
	backend backendHealth
	out     io.Writer
	errOut  io.Writer
}

// handleLine processes one input line and reports whether to keep going.
func (s *replSession) handleLine(ctx context.Context, input string) bool {
	if input == "" {
		return true
	}
	if cmd := strings.TrimSpace(input); strings.HasPrefix(cmd, "/") {
		return s.handleCommand(ctx, cmd)
	}

	// The line goes to the controller as typed; it owns the emptiness check.
	s.ctrl.UpdateMessage(input)
	_ = s.ctrl.Submit(ctx)

	state := s.ctrl.Snapshot()
	if state.Phase == controller.PhaseSucceeded {
		fmt.Fprintln(s.out, formatVerdict(state.Result))
	} else {
		fmt.Fprintln(s.errOut, styles.RenderError(state.Error))
	}
	return true
}

func (s *replSession) handleCommand(ctx context.Context, input string) bool {
	name := strings.ToLower(strings.Fields(input)[0])

	switch name {
	case "/quit", "/exit", "/q":
		return false
	case "/help", "/?":
		fmt.Fprint(s.out, renderMarkdown(replHelp))
	case "/health":
		if err := runHealth(ctx, s.out, s.backend, false); err != nil {
			fmt.Fprintln(s.errOut, styles.RenderError(err.Error()))
		}
	default:
		fmt.Fprintln(s.errOut, styles.RenderWarning("unknown command "+name+" (try /help)"))
	}
	return true
}

// renderMarkdown renders markdown for the terminal. The source is returned
// unchanged if the renderer cannot be built.
func renderMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(GetTerminalWidth()-4),
	)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// =============================================================================
// COMMAND
// =============================================================================

func newREPLCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Classify messages line by line at a prompt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			if !IsTTY() {
				return errors.New("repl needs a terminal; use 'spamdetector check' for pipes")
			}

			if err := opts.setup(); err != nil {
				return err
			}
			defer opts.teardown()

			client := opts.newClient()
			session := &replSession{
				ctrl:    controller.New(client, controller.WithLogger(opts.logger)),
				backend: client,
				out:     cmd.OutOrStdout(),
				errOut:  cmd.ErrOrStderr(),
			}

			reader := newLineReader()
			defer reader.Close()

			fmt.Fprintln(session.out, lipgloss.NewStyle().Bold(true).Foreground(styles.Brand).
				Render("spamdetector")+" "+client.BaseURL()+"  (/help for commands)")

			ctx := cmd.Context()
			for {
				input, err := reader.ReadLine(replPrompt)
				if err != nil {
					// Ctrl+C, Ctrl+D and closed input all end the session.
					fmt.Fprintln(session.out)
					return nil
				}
				if !session.handleLine(ctx, input) {
					return nil
				}
			}
		},
	}
}
