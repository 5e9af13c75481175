package tui

import (
	"context"
	"os"
	"testing"
	"unicode/utf8"

	"github.com/bassamadnan/gmailfetch/gmail"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

type fakeSource struct {
	ids     []string
	records map[string]*gmail.EmailRecord
	listMax int
	fetched []string
}

func (f *fakeSource) ListMessageIDs(ctx context.Context, max int) []string {
	f.listMax = max
	return f.ids
}

func (f *fakeSource) FetchMessage(ctx context.Context, id string) *gmail.EmailRecord {
	f.fetched = append(f.fetched, id)
	return f.records[id]
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// step applies msg and returns the updated model and command.
func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func loaded(t *testing.T, src *fakeSource) Model {
	m := NewModel(context.Background(), src, 3)
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	cmd := m.Init()
	require.NotNil(t, cmd)
	m, _ = step(t, m, cmd())
	return m
}

func TestBrowserLoadsIDs(t *testing.T) {
	src := &fakeSource{ids: []string{"a", "b", "c"}}
	m := loaded(t, src)

	assert.Equal(t, 3, src.listMax)
	assert.Equal(t, viewList, m.currentView)
	view := m.View()
	assert.Contains(t, view, "Messages")
	assert.Contains(t, view, selectedMarker+" a")
	assert.Contains(t, view, "3 message(s)")
}

func TestBrowserEmptyList(t *testing.T) {
	m := loaded(t, &fakeSource{})
	assert.Contains(t, m.View(), "No messages found.")

	m, cmd := step(t, m, key("enter"))
	assert.Nil(t, cmd)
	assert.False(t, m.fetching)
}

func TestBrowserNavigateAndOpen(t *testing.T) {
	src := &fakeSource{
		ids: []string{"a", "b"},
		records: map[string]*gmail.EmailRecord{
			"b": {ID: "b", ThreadID: "tb", Subject: "Second", Body: "body b"},
		},
	}
	m := loaded(t, src)

	m, _ = step(t, m, key("down"))
	assert.Equal(t, 1, m.selectedIdx)
	m, _ = step(t, m, key("j"))
	assert.Equal(t, 1, m.selectedIdx, "cursor stays on last item")

	m, cmd := step(t, m, key("enter"))
	require.NotNil(t, cmd)
	assert.True(t, m.fetching)
	assert.Contains(t, m.statusBarText, "Fetching email with ID: b")

	// A second enter while fetching does not start another call.
	m, again := step(t, m, key("enter"))
	assert.Nil(t, again)

	m, _ = step(t, m, cmd())
	assert.Equal(t, []string{"b"}, src.fetched)
	assert.Equal(t, viewRecord, m.currentView)
	assert.False(t, m.fetching)
	view := m.View()
	assert.Contains(t, view, "Message ID: b")
	assert.Contains(t, view, "Subject: Second")
	assert.Contains(t, view, "body b")

	m, _ = step(t, m, key("j"))
	assert.Equal(t, 1, m.scrollPos)
	m, _ = step(t, m, key("k"))
	assert.Equal(t, 0, m.scrollPos)

	m, _ = step(t, m, key("esc"))
	assert.Equal(t, viewList, m.currentView)
	assert.Nil(t, m.record)
	assert.Equal(t, 1, m.selectedIdx)
}

func TestBrowserFetchFailure(t *testing.T) {
	src := &fakeSource{ids: []string{"a"}}
	m := loaded(t, src)

	m, cmd := step(t, m, key("enter"))
	require.NotNil(t, cmd)
	m, clearCmd := step(t, m, cmd())

	assert.Equal(t, viewList, m.currentView)
	assert.True(t, m.statusIsError)
	assert.Contains(t, m.View(), "Failed to retrieve email.")
	require.NotNil(t, clearCmd)

	m, _ = step(t, m, clearTempStatusMsg{})
	assert.False(t, m.statusIsTemp)
	assert.NotContains(t, m.statusBarText, "Failed")
}

func TestBrowserQuit(t *testing.T) {
	m := loaded(t, &fakeSource{ids: []string{"a"}})

	_, cmd := step(t, m, key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestBrowserScrollsList(t *testing.T) {
	ids := make([]string, 40)
	for i := range ids {
		ids[i] = string(rune('A' + i%26))
	}
	m := loaded(t, &fakeSource{ids: ids})
	for i := 0; i < 35; i++ {
		m, _ = step(t, m, key("down"))
	}
	assert.Equal(t, 35, m.selectedIdx)
	assert.Greater(t, m.viewportTopLine, 0)
	assert.LessOrEqual(t, m.selectedIdx, m.viewportTopLine+m.listHeight()-1)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab...", truncate("abcdefgh", 5))
	assert.Equal(t, "ab", truncate("abcdefgh", 2))
	assert.Equal(t, "", truncate("abc", 0))

	status := "[↑↓/jk]:Nav"
	assert.Equal(t, "[↑↓/...", truncate(status, 7))
	assert.Equal(t, "[↑", truncate(status, 2))
	assert.True(t, utf8.ValidString(truncate(status, 2)))
}

func TestWindow(t *testing.T) {
	text := "1\n2\n3\n4"
	assert.Equal(t, "2\n3", window(text, 1, 2))
	assert.Equal(t, "4", window(text, 3, 10))
	assert.Equal(t, "", window(text, 10, 2))
}
