package tui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minipress/internal/detect"
	"minipress/internal/minifier"
	"minipress/internal/session"
	"minipress/internal/ui"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) write(text string) error {
	f.text = text
	return f.err
}

func newTestModel(t *testing.T) (model, *fakeClipboard, *[]string) {
	t.Helper()
	engine := minifier.New(minifier.WithCSS(minifier.BasicCSS{}), minifier.WithJS(minifier.BasicJS{}))
	sess := session.New(engine, minifier.Options{CSS: minifier.CSSOptions{Restructure: true}}, nil)
	t.Cleanup(sess.Close)

	clip := &fakeClipboard{}
	var saved []string
	m := newModel(Deps{
		Session: sess,
		Theme:   ui.DefaultTheme(),
		Copy:    clip.write,
		SaveTheme: func(name string) (string, error) {
			saved = append(saved, name)
			return "/tmp/minipress.yaml", nil
		},
	})
	return m, clip, &saved
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// resized gives the panes a size so the viewport renders its content.
func resized(m model) model {
	next, _ := m.Update(tea.WindowSizeMsg{Width: 200, Height: 40})
	return next.(model)
}

// press sends k and feeds the resulting command's message back into the model.
func press(t *testing.T, m model, k tea.KeyType) model {
	t.Helper()
	next, cmd := m.Update(key(k))
	m = next.(model)
	if cmd != nil {
		next, _ = m.Update(cmd())
		m = next.(model)
	}
	return m
}

func TestMinifyKey(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.input.SetValue(".a {\n  color: red;\n}")

	m = press(t, m, tea.KeyCtrlR)

	require.NotNil(t, m.result)
	assert.Equal(t, ".a{color:red}", m.result.Output)
	assert.False(t, m.busy)
	assert.False(t, m.failed)
	assert.Equal(t, "Minified as css", m.status)
	assert.Contains(t, m.View(), "Original:")
}

func TestMinifyEmptyInputIsSilent(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.input.SetValue("   ")

	m = press(t, m, tea.KeyCtrlR)

	assert.Nil(t, m.result)
	assert.False(t, m.failed)
	assert.Empty(t, m.status)
}

func TestMinifyFailureShowsMessage(t *testing.T) {
	engine := minifier.New()
	sess := session.New(engine, minifier.Options{}, nil)
	defer sess.Close()
	m := resized(newModel(Deps{Session: sess, Theme: ui.DefaultTheme()}))
	m.input.SetValue("var x = 1;")

	m = press(t, m, tea.KeyCtrlR)

	assert.True(t, m.failed)
	assert.Equal(t, "Minification failed", m.status)
	assert.Contains(t, m.output.View(), "JS minifier not available")
	assert.Nil(t, m.result)
}

func TestFailureReplacesPreviousResult(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = resized(m)

	next, _ := m.Update(minifiedMsg{res: &minifier.Result{Type: detect.CSS, Output: ".a{b:c}", OriginalSize: 12, MinifiedSize: 7}})
	m = next.(model)
	require.NotNil(t, m.result)

	next, _ = m.Update(minifiedMsg{err: &minifier.CollaboratorExecutionError{Tool: minifier.ToolCSS, Err: errors.New("bad token")}})
	m = next.(model)

	assert.Nil(t, m.result)
	assert.True(t, m.failed)
	out := m.output.View()
	assert.NotContains(t, out, ".a{b:c}")
	assert.Contains(t, out, "bad token")
	assert.NotContains(t, m.View(), "Original:")

	m = press(t, m, tea.KeyCtrlY)
	assert.Equal(t, "Nothing to copy", m.status)
}

func TestEmptyOutputShowsNotice(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = resized(m)

	next, _ := m.Update(minifiedMsg{res: &minifier.Result{Type: detect.HTML, OriginalSize: 9}})
	m = next.(model)

	assert.Contains(t, m.output.View(), "No output generated")
	m = press(t, m, tea.KeyCtrlY)
	assert.Equal(t, "Nothing to copy", m.status)
}

func TestSupersededResultIsDropped(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.status = "before"

	next, _ := m.Update(minifiedMsg{err: session.ErrSuperseded})
	m = next.(model)

	assert.Equal(t, "before", m.status)
}

func TestThemeKeyCyclesAndSaves(t *testing.T) {
	m, _, saved := newTestModel(t)

	m = press(t, m, tea.KeyCtrlT)
	assert.Equal(t, "dark", m.theme.Name)
	m = press(t, m, tea.KeyCtrlT)
	assert.Equal(t, "mono", m.theme.Name)

	assert.Equal(t, []string{"dark", "mono"}, *saved)
	assert.Contains(t, m.status, "saved to /tmp/minipress.yaml")
}

func TestThemeSaveFailure(t *testing.T) {
	m, _, _ := newTestModel(t)
	next, _ := m.Update(themeSavedMsg{name: "dark", err: errors.New("read-only")})
	m = next.(model)
	assert.True(t, m.failed)
	assert.Contains(t, m.status, "read-only")
}

func TestCopyKey(t *testing.T) {
	m, clip, _ := newTestModel(t)

	m = press(t, m, tea.KeyCtrlY)
	assert.Equal(t, "Nothing to copy", m.status)
	assert.Empty(t, clip.text)

	m.input.SetValue("<html>\n  <p>x</p>\n</html>")
	m = press(t, m, tea.KeyCtrlR)
	m = press(t, m, tea.KeyCtrlY)

	assert.Equal(t, "<html><p>x</p></html>", clip.text)
	assert.Equal(t, "Copied to clipboard", m.status)
}

func TestClearKey(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.input.SetValue(".a { color: red; }")
	m = press(t, m, tea.KeyCtrlR)
	require.NotNil(t, m.result)

	m = press(t, m, tea.KeyCtrlL)

	assert.Empty(t, m.input.Value())
	assert.Nil(t, m.result)
	assert.Empty(t, m.status)
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m, _, _ := newTestModel(t)
		_, cmd := m.Update(key(k))
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestInitLoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.css")
	require.NoError(t, os.WriteFile(path, []byte(".a {\n  color: red;\n}"), 0o644))

	m, _, _ := newTestModel(t)
	m.deps.File = path

	msg := cmdLoad(m.deps.Session, path)()
	next, _ := m.Update(msg)
	m = next.(model)

	assert.Equal(t, ".a {\n  color: red;\n}", m.input.Value())
	require.NotNil(t, m.result)
	assert.Equal(t, ".a{color:red}", m.result.Output)
}

func TestWindowResize(t *testing.T) {
	m, _, _ := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(model)
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 56, m.output.Width)
	assert.Equal(t, 32, m.output.Height)
}

func TestSafeModelRecoversPanics(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.deps.Session = nil
	s := wrapSafe(m, nil)

	next, cmd := s.Update(key(tea.KeyEsc))
	assert.Nil(t, cmd)
	sm := next.(safeModel)
	assert.Equal(t, "Unexpected error (see logs)", sm.m.status)
}
