package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"minipress/internal/minifier"
	"minipress/internal/session"
)

type minifiedMsg struct {
	res *minifier.Result
	err error
}

type loadedMsg struct {
	text string
	res  *minifier.Result
	err  error
}

type themeSavedMsg struct {
	name string
	path string
	err  error
}

type copiedMsg struct {
	err error
}

func cmdMinify(s *session.Session, text string) tea.Cmd {
	return func() tea.Msg {
		res, err := s.Submit(context.Background(), text)
		return minifiedMsg{res: res, err: err}
	}
}

func cmdLoad(s *session.Session, path string) tea.Cmd {
	return func() tea.Msg {
		res, err := s.Load(context.Background(), path)
		return loadedMsg{text: s.Input(), res: res, err: err}
	}
}

func cmdSaveTheme(save func(string) (string, error), name string) tea.Cmd {
	if save == nil {
		return nil
	}
	return func() tea.Msg {
		path, err := save(name)
		return themeSavedMsg{name: name, path: path, err: err}
	}
}

func cmdCopy(copyFn func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: copyFn(text)}
	}
}
