// Package tui implements an interactive browser over message IDs and records.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bassamadnan/gmailfetch/display"
	"github.com/bassamadnan/gmailfetch/gmail"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
)

type viewState int

const (
	viewLoading viewState = iota
	viewList
	viewRecord
)

const statusBarHeight = 1

type Model struct {
	ctx        context.Context
	src        Source
	maxResults int

	ids             []string
	selectedIdx     int
	viewportTopLine int

	record    *gmail.EmailRecord
	scrollPos int
	fetching  bool

	currentView viewState

	width, height int
	statusBarText string
	statusIsError bool
	statusIsTemp  bool
}

// NewModel creates the browser model. At most one fetch is in flight at a time.
func NewModel(ctx context.Context, src Source, maxResults int) Model {
	return Model{
		ctx:           ctx,
		src:           src,
		maxResults:    maxResults,
		currentView:   viewLoading,
		statusBarText: "Loading message IDs...",
	}
}

// Run starts the browser and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, src Source, maxResults int) error {
	p := tea.NewProgram(NewModel(ctx, src, maxResults), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	log.Debug().Str("module", "tui").Int("max", m.maxResults).Msg("Browser starting")
	return listIDsCmd(m.ctx, m.src, m.maxResults)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureSelectedVisible()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}
		switch m.currentView {
		case viewList:
			switch msg.String() {
			case "up", "k":
				if m.selectedIdx > 0 {
					m.selectedIdx--
					m.ensureSelectedVisible()
				}
			case "down", "j":
				if m.selectedIdx < len(m.ids)-1 {
					m.selectedIdx++
					m.ensureSelectedVisible()
				}
			case "enter":
				if len(m.ids) > 0 && !m.fetching {
					id := m.ids[m.selectedIdx]
					m.fetching = true
					m.updateStatusBar(fmt.Sprintf("Fetching email with ID: %s", id))
					cmds = append(cmds, fetchRecordCmd(m.ctx, m.src, id))
				}
			}
		case viewRecord:
			switch msg.String() {
			case "esc", "backspace":
				m.currentView = viewList
				m.record = nil
				m.setStandardStatus()
			case "up", "k":
				if m.scrollPos > 0 {
					m.scrollPos--
				}
			case "down", "j":
				if m.record != nil {
					lines := strings.Count(display.FormatRecord(m.record), "\n")
					if m.scrollPos < lines-1 {
						m.scrollPos++
					}
				}
			}
		}

	case idsLoadedMsg:
		m.ids = msg.ids
		m.selectedIdx = 0
		m.viewportTopLine = 0
		m.currentView = viewList
		m.setStandardStatus()

	case recordLoadedMsg:
		m.fetching = false
		if msg.rec == nil {
			m.showTemporaryStatus("Failed to retrieve email.", 4*time.Second, true, &cmds)
			break
		}
		m.record = msg.rec
		m.scrollPos = 0
		m.currentView = viewRecord
		m.setStandardStatus()

	case clearTempStatusMsg:
		if m.statusIsTemp {
			m.statusIsTemp = false
			m.setStandardStatus()
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) showTemporaryStatus(text string, duration time.Duration, isError bool, cmds *[]tea.Cmd) {
	m.statusBarText = text
	m.statusIsError = isError
	m.statusIsTemp = true
	*cmds = append(*cmds, tea.Tick(duration, func(t time.Time) tea.Msg {
		return clearTempStatusMsg{}
	}))
}

func (m *Model) updateStatusBar(text string) {
	m.statusBarText = text
	m.statusIsError = false
	m.statusIsTemp = false
}

func (m *Model) setStandardStatus() {
	if m.statusIsTemp {
		return
	}
	keyHints := "[q]:Quit"
	switch m.currentView {
	case viewList:
		keyHints += " | [↑↓/jk]:Nav | [Enter]:Open"
	case viewRecord:
		keyHints += " | [↑↓/jk]:Scroll | [Esc]:Back"
	}
	m.updateStatusBar(fmt.Sprintf("%d message(s) | %s", len(m.ids), keyHints))
}

func (m Model) contentHeight() int {
	h := m.height - statusBarHeight
	if h < 0 {
		h = 0
	}
	return h
}

func (m Model) listHeight() int {
	h := m.contentHeight() - lipgloss.Height(ListTitleStyle.Render(" "))
	if h < 0 {
		h = 0
	}
	return h
}

func (m *Model) ensureSelectedVisible() {
	if len(m.ids) == 0 {
		m.viewportTopLine = 0
		return
	}
	itemsThatFit := m.listHeight()
	if itemsThatFit <= 0 {
		m.viewportTopLine = m.selectedIdx
		return
	}
	if m.selectedIdx < m.viewportTopLine {
		m.viewportTopLine = m.selectedIdx
	} else if m.selectedIdx >= m.viewportTopLine+itemsThatFit {
		m.viewportTopLine = m.selectedIdx - itemsThatFit + 1
	}
	if m.viewportTopLine < 0 {
		m.viewportTopLine = 0
	}
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing terminal size..."
	}

	var main string
	switch m.currentView {
	case viewLoading:
		main = lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, m.statusBarText)
	case viewList:
		main = m.renderList()
	case viewRecord:
		main = window(display.FormatRecord(m.record), m.scrollPos, m.contentHeight())
	}

	statusStyle := StatusBarNormalStyle
	if m.statusIsError {
		statusStyle = StatusBarErrorStyle
	}
	status := statusStyle.Width(m.width).Render(truncate(m.statusBarText, m.width-2))
	return lipgloss.JoinVertical(lipgloss.Left, main, status)
}

func (m Model) renderList() string {
	var b strings.Builder
	b.WriteString(ListTitleStyle.Render("Messages"))
	b.WriteString("\n")
	if len(m.ids) == 0 {
		b.WriteString(SecondaryTextStyle.Render("  No messages found."))
		return b.String()
	}
	end := m.viewportTopLine + m.listHeight()
	if end > len(m.ids) {
		end = len(m.ids)
	}
	rows := make([]string, 0, end-m.viewportTopLine)
	for i := m.viewportTopLine; i < end; i++ {
		id := truncate(m.ids[i], m.width-3)
		if i == m.selectedIdx {
			rows = append(rows, SelectedMarkerStyle.Render(selectedMarker)+SelectedItemStyle.Render(id))
		} else {
			rows = append(rows, NormalItemStyle.Render(id))
		}
	}
	b.WriteString(strings.Join(rows, "\n"))
	return b.String()
}
