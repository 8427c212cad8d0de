// Package tui provides the Bubble Tea front end for the spiral grid, on the
// local terminal or over SSH.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockspiral/internal/core"
	"github.com/vovakirdan/blockspiral/internal/placement"
)

// Messages carrying the outcome of a store request.
type (
	blocksLoadedMsg  struct{ err error }
	blockPlacedMsg   struct{ err error }
	blocksClearedMsg struct{ err error }
)

// GridModel is the Bubble Tea model for the spiral grid.
//
// Store requests run as commands through the controller. The model copies the
// controller's grid only when a result message arrives, and ignores
// place/clear/reload keys while a request is outstanding.
type GridModel struct {
	ctx    context.Context
	ctrl   *placement.Controller
	config core.RuntimeConfig
	theme  Theme
	keys   GridKeyMap
	help   help.Model
	table  table.Model
	screen *core.Screen

	grid      placement.Grid
	pending   core.Action // request in flight, ActionNone when idle
	err       error
	showTable bool
	quitting  bool
}

// NewGridModel creates the grid view. ctx bounds every store request; r is
// the lipgloss renderer to style with (nil for the local terminal).
func NewGridModel(ctx context.Context, ctrl *placement.Controller, cfg core.RuntimeConfig, r *lipgloss.Renderer) GridModel {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg.CellW = max(cfg.CellW, 1)
	cfg.CellH = max(cfg.CellH, 1)

	theme := NewTheme(r)
	h := help.New()
	h.ShowAll = false

	m := GridModel{
		ctx:     ctx,
		ctrl:    ctrl,
		config:  cfg,
		theme:   theme,
		keys:    DefaultGridKeyMap(),
		help:    h,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		grid:    ctrl.Snapshot(),
		pending: core.ActionReload, // Init loads
	}
	m.layout()
	return m
}

// Init loads the blocks from the store.
func (m GridModel) Init() tea.Cmd {
	return m.loadCmd()
}

// Update handles messages and updates the model state.
func (m GridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case blocksLoadedMsg:
		return m.finish(msg.err), nil

	case blockPlacedMsg:
		return m.finish(msg.err), nil

	case blocksClearedMsg:
		return m.finish(msg.err), nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GridModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil

	case core.ActionTable:
		m.showTable = !m.showTable
		m.layout()
		return m, nil

	case core.ActionNone:
		if m.showTable {
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if action.Mutates() && m.Busy() {
		return m, nil
	}

	m.pending = action
	switch action {
	case core.ActionPlace:
		return m, m.placeCmd()
	case core.ActionClear:
		return m, m.clearCmd()
	default:
		return m, m.loadCmd()
	}
}

// finish adopts the controller's grid after a request completed.
func (m GridModel) finish(err error) GridModel {
	m.pending = core.ActionNone
	m.err = err
	m.grid = m.ctrl.Snapshot()
	m.table.SetRows(blockRows(m.grid.Blocks))
	m.table.GotoBottom()
	return m
}

// Busy reports whether a store request is outstanding.
func (m GridModel) Busy() bool {
	return m.pending != core.ActionNone || m.ctrl.Busy()
}

// Grid returns the grid the model currently shows.
func (m GridModel) Grid() placement.Grid {
	return m.grid
}

// Err returns the failure shown on the error line, if any.
func (m GridModel) Err() error {
	return m.err
}

func (m GridModel) loadCmd() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return blocksLoadedMsg{err: ctrl.Load(ctx)}
	}
}

func (m GridModel) placeCmd() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		_, err := ctrl.Place(ctx)
		return blockPlacedMsg{err: err}
	}
}

func (m GridModel) clearCmd() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return blocksClearedMsg{err: ctrl.Clear(ctx)}
	}
}

// footerHeight is the number of rows below the grid: status, error and help.
func (m GridModel) footerHeight() int {
	return 2 + lipgloss.Height(m.help.View(m.keys))
}

// gridWidth is the number of columns left for the grid.
func (m GridModel) gridWidth() int {
	w := m.config.ScreenW
	if m.showTable {
		w -= tableWidth + 1
	}
	return max(w, 0)
}

// layout resizes the screen buffer and table to the current window.
func (m *GridModel) layout() {
	h := max(m.config.ScreenH-m.footerHeight(), 0)
	m.screen.Resize(m.gridWidth(), h)

	// Table border and header take four rows
	m.table = newBlockTable(m.theme, h-4)
	m.table.SetRows(blockRows(m.grid.Blocks))
	m.table.GotoBottom()
}

// View renders the current state to a string for display.
func (m GridModel) View() string {
	if m.quitting {
		return ""
	}

	var ghost *core.Position
	if m.config.ShowCursor {
		if next := m.grid.Preview(1); len(next) == 1 {
			ghost = &next[0]
		}
	}
	drawGrid(m.screen, m.grid.Blocks, ghost, m.config.CellW, m.config.CellH)

	body := RenderScreen(m.theme, m.screen)
	if m.showTable {
		panel := m.theme.TableBorder.Render(m.table.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", panel)
	}

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.errorLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// statusLine shows the block count, the cursor and the last color.
func (m GridModel) statusLine() string {
	t := m.theme
	sep := t.StatusSep.Render(" │ ")

	parts := []string{
		t.StatusLabel.Render("blocks ") + t.StatusValue.Render(fmt.Sprintf("%d", m.grid.Len())),
		t.StatusLabel.Render("cursor ") + t.StatusValue.Render(m.grid.Cursor.String()),
	}
	if last, ok := core.Last(m.grid.Blocks); ok {
		parts = append(parts,
			t.StatusLabel.Render("last ")+t.Swatch(last.Color.String()).Render("  ")+" "+t.StatusValue.Render(last.String()))
	}
	if m.pending != core.ActionNone {
		parts = append(parts, t.Busy.Render(pendingLabel(m.pending)))
	}
	return strings.Join(parts, sep)
}

// errorLine renders the most recent failure, or an empty line.
func (m GridModel) errorLine() string {
	if m.err == nil || errors.Is(m.err, placement.ErrBusy) {
		return ""
	}
	return m.theme.Error.Render(placement.UserMessage(m.err))
}

func pendingLabel(a core.Action) string {
	switch a {
	case core.ActionPlace:
		return "adding…"
	case core.ActionClear:
		return "clearing…"
	default:
		return "loading…"
	}
}

// Run starts the Bubble Tea program on the local terminal.
func Run(ctx context.Context, ctrl *placement.Controller, cfg core.RuntimeConfig) error {
	model := NewGridModel(ctx, ctrl, cfg, nil)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
