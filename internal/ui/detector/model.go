// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package detector

import (
	"context"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/spamdetector/internal/classify"
	"github.com/jeranaias/spamdetector/internal/config"
	"github.com/jeranaias/spamdetector/internal/controller"
	"github.com/jeranaias/spamdetector/internal/ui/components"
	"github.com/jeranaias/spamdetector/internal/ui/styles"
)

// Placeholder is shown in the empty message input.
const Placeholder = "Paste your email here..."

const (
	defaultWidth  = 80
	maxWidth      = 100
	minInputRows  = 3
	maxInputRows  = 12
	reservedLines = 18 // header, captions, button, result panel, help, footer, status
)

// =============================================================================
// BACKEND
// =============================================================================

// Backend is the classification service the screen talks to.
// *classify.Client satisfies it.
type Backend interface {
	controller.Classifier
	Health(ctx context.Context) (*classify.HealthStatus, error)
	BaseURL() string
	SetBaseURL(baseURL string)
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the detector screen.
type Model struct {
	ctx     context.Context
	backend Backend
	ctrl    *controller.Controller
	logger  *slog.Logger
	reloads <-chan config.Reload

	theme   *styles.Theme
	keys    KeyMap
	help    help.Model
	input   textarea.Model
	spinner spinner.Model

	header *components.Header
	result *components.ResultPanel
	status *components.StatusBar

	showHelp bool
	width    int
	height   int
}

// Option configures a Model.
type Option func(*Model)

// WithTheme sets the theme. The default is auto-detected.
func WithTheme(theme *styles.Theme) Option {
	return func(m *Model) {
		if theme != nil {
			m.theme = theme
		}
	}
}

// WithLogger sets the logger for request and reload diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithReloads subscribes the screen to config file changes.
func WithReloads(reloads <-chan config.Reload) Option {
	return func(m *Model) {
		m.reloads = reloads
	}
}

// WithHelp controls whether the key help line is shown.
func WithHelp(show bool) Option {
	return func(m *Model) {
		m.showHelp = show
	}
}

// WithContext sets the context passed to backend calls. It should be
// cancelled when the program exits.
func WithContext(ctx context.Context) Option {
	return func(m *Model) {
		if ctx != nil {
			m.ctx = ctx
		}
	}
}

// New creates the detector screen for backend.
func New(backend Backend, opts ...Option) Model {
	m := Model{
		ctx:      context.Background(),
		backend:  backend,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		keys:     DefaultKeyMap(),
		showHelp: true,
		width:    defaultWidth,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.theme == nil {
		m.theme = styles.DefaultTheme()
	}

	m.ctrl = controller.New(backend, controller.WithLogger(m.logger))

	ta := textarea.New()
	ta.Placeholder = Placeholder
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.Focus()
	m.input = ta

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = m.theme.Spinner
	m.spinner = sp

	m.help = help.New()

	m.header = components.NewHeader(m.theme)
	m.result = components.NewResultPanel(m.theme)
	m.status = components.NewStatusBar(m.theme, backend.BaseURL())

	m.resize(defaultWidth, 0)
	return m
}

// Init starts the cursor blink, the first health check and the config
// reload listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.checkHealth(),
		waitForReload(m.reloads),
	)
}

// Controller exposes the request controller backing the screen.
func (m Model) Controller() *controller.Controller {
	return m.ctrl
}

// State returns a snapshot of the request state.
func (m Model) State() controller.State {
	return m.ctrl.Snapshot()
}

// checkHealth marks the backend as being checked and returns the command
// that performs the check.
func (m *Model) checkHealth() tea.Cmd {
	m.status.SetStatus(components.BackendChecking)
	return healthCmd(m.ctx, m.backend)
}

// resize lays the components out for a terminal of the given size.
// A zero height keeps the input at its minimum.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	content := m.contentWidth()
	m.header.SetWidth(content)
	m.result.SetWidth(content)
	m.status.SetWidth(content)
	m.help.Width = content

	m.input.SetWidth(content - m.theme.Input.GetHorizontalFrameSize())

	rows := minInputRows
	if height > 0 {
		rows = height - reservedLines
	}
	if rows < minInputRows {
		rows = minInputRows
	}
	if rows > maxInputRows {
		rows = maxInputRows
	}
	m.input.SetHeight(rows)
}

func (m Model) contentWidth() int {
	w := m.width - m.theme.App.GetHorizontalFrameSize()
	if w > maxWidth {
		w = maxWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}
