// Package tui is the interactive minipress editor: paste or load code on the
// left, minify it, and read the result and its size summary on the right.
package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"minipress/internal/minifier"
	"minipress/internal/session"
	"minipress/internal/ui"
)

// Deps is everything the editor needs from the outside.
type Deps struct {
	Session *session.Session
	Theme   ui.Theme
	// File is loaded on start when set.
	File string
	// SaveTheme persists a theme choice. Optional.
	SaveTheme func(name string) (string, error)
	// Copy writes text to the clipboard. Defaults to the system clipboard.
	Copy   func(text string) error
	Logger *slog.Logger
}

type model struct {
	theme ui.Theme
	deps  Deps

	input  textarea.Model
	output viewport.Model

	result *minifier.Result
	busy   bool
	status string
	failed bool

	width  int
	height int
}

// Run starts the editor and blocks until the user quits.
func Run(ctx context.Context, deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func newModel(deps Deps) model {
	if deps.Copy == nil {
		deps.Copy = clipboard.WriteAll
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	in := textarea.New()
	in.Placeholder = "Paste HTML, CSS or JavaScript…"
	in.ShowLineNumbers = false
	in.CharLimit = 0
	in.Focus()

	m := model{
		theme:  deps.Theme,
		deps:   deps,
		input:  in,
		output: viewport.New(0, 0),
	}
	m.resize(80, 24)
	return m
}

func (m model) Init() tea.Cmd {
	if m.deps.File != "" {
		return tea.Batch(textarea.Blink, cmdLoad(m.deps.Session, m.deps.File))
	}
	return textarea.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			m.deps.Session.Close()
			return m, tea.Quit

		case "ctrl+r":
			m.busy = true
			m.setStatus("Minifying…", false)
			return m, cmdMinify(m.deps.Session, m.input.Value())

		case "ctrl+t":
			m.theme = ui.NextTheme(m.theme)
			m.setStatus("Theme: "+m.theme.Name, false)
			return m, cmdSaveTheme(m.deps.SaveTheme, m.theme.Name)

		case "ctrl+y":
			if m.result == nil || m.result.Output == "" {
				m.setStatus("Nothing to copy", true)
				return m, nil
			}
			return m, cmdCopy(m.deps.Copy, m.result.Output)

		case "ctrl+l":
			m.input.Reset()
			m.result = nil
			m.output.SetContent("")
			m.setStatus("", false)
			return m, nil
		}

	case minifiedMsg:
		return m.handleMinified(msg), nil

	case loadedMsg:
		if errors.Is(msg.err, session.ErrSuperseded) {
			return m, nil
		}
		m.input.SetValue(msg.text)
		return m.handleMinified(minifiedMsg{res: msg.res, err: msg.err}), nil

	case themeSavedMsg:
		if msg.err != nil {
			m.deps.Logger.Warn("theme.save_failed", "theme", msg.name, "error", msg.err)
			m.setStatus("Theme not saved: "+msg.err.Error(), true)
		} else if msg.path != "" {
			m.setStatus("Theme "+msg.name+" saved to "+msg.path, false)
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.setStatus("Copy failed: "+msg.err.Error(), true)
		} else {
			m.setStatus("Copied to clipboard", false)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) handleMinified(msg minifiedMsg) model {
	if errors.Is(msg.err, session.ErrSuperseded) {
		return m
	}
	m.busy = false

	switch {
	case errors.Is(msg.err, minifier.ErrEmptyInput):
		m.result = nil
		m.output.SetContent("")
		m.setStatus("", false)
	case msg.err != nil:
		m.deps.Logger.Error("tui.minify_failed", "error", msg.err)
		m.result = nil
		m.output.SetContent(minifier.UserMessage(msg.err))
		m.output.GotoTop()
		m.setStatus("Minification failed", true)
	default:
		m.result = msg.res
		if msg.res.Output == "" {
			m.output.SetContent("No output generated")
		} else {
			m.output.SetContent(msg.res.Output)
		}
		m.output.GotoTop()
		m.setStatus("Minified as "+msg.res.Type.String(), false)
	}
	return m
}

func (m *model) setStatus(text string, failed bool) {
	m.status = text
	m.failed = failed
}

func (m *model) resize(w, h int) {
	m.width, m.height = w, h

	paneWidth := (w - 4) / 2
	if paneWidth < 10 {
		paneWidth = 10
	}
	paneHeight := h - 8
	if paneHeight < 3 {
		paneHeight = 3
	}

	m.input.SetWidth(paneWidth - 2)
	m.input.SetHeight(paneHeight)
	m.output.Width = paneWidth - 2
	m.output.Height = paneHeight
}

func (m model) View() string {
	header := m.theme.Title.Render("minipress") + "  " +
		m.theme.Muted.Render("HTML · CSS · JavaScript")

	left := m.theme.Focused.Render(m.input.View())
	right := m.theme.Card.Render(m.output.View())
	panes := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	stats := ""
	if m.result != nil {
		stats = m.theme.Stats.Render(m.result.Summary())
	}

	status := m.theme.Muted.Render(m.status)
	if m.failed {
		status = m.theme.Error.Render(m.status)
	}

	help := m.theme.Muted.Render("ctrl+r minify • ctrl+t theme • ctrl+y copy • ctrl+l clear • esc quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, panes, stats, status, help)
}
