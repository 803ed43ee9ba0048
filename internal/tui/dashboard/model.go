// Package dashboard is the terminal home view: pinned notes, recently opened
// notes and an incremental file name search.
package dashboard

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/home/internal/config"
	"github.com/Paintersrp/home/internal/editor"
	"github.com/Paintersrp/home/internal/pathutil"
	"github.com/Paintersrp/home/internal/pin"
	"github.com/Paintersrp/home/internal/refs"
	"github.com/Paintersrp/home/internal/search"
)

// Service is the part of home.Service the dashboard drives.
type Service interface {
	Pinned() []refs.NoteRef
	Recent() []refs.NoteRef
	TogglePin(ref refs.NoteRef) (bool, error)
	Reorder(ref, beforeRef refs.NoteRef)
	MoveToEnd(ref refs.NoteRef)
	PruneRecent() bool
	Search(query string) ([]search.Entry, error)
	Settings() config.Settings
}

// Launcher prepares the editor for a note and records the open.
type Launcher func(ref refs.NoteRef) (*editor.Launch, error)

type section int

const (
	sectionPinned section = iota
	sectionRecent
	sectionResults
)

func (s section) title() string {
	switch s {
	case sectionPinned:
		return "Pinned"
	case sectionRecent:
		return "Recent"
	default:
		return "Results"
	}
}

type (
	pinnedChangedMsg struct{}
	recentChangedMsg struct{}

	searchTickMsg struct {
		token int
		at    time.Time
	}

	searchResultsMsg struct {
		query   string
		results []search.Entry
		err     error
	}

	editorFinishedMsg struct{ err error }
)

type Model struct {
	svc      Service
	launch   Launcher
	keys     *keyMap
	help     help.Model
	input    textinput.Model
	debounce *search.Debouncer
	clock    func() time.Time
	copy     func(string) error

	pinned  []refs.NoteRef
	recent  []refs.NoteRef
	results []search.Entry

	focus  section
	cursor int
	status string
	width  int
}

func NewModel(svc Service, launch Launcher) Model {
	settings := svc.Settings()

	ti := textinput.New()
	ti.Placeholder = settings.SearchPlaceholder
	ti.Prompt = "› "
	ti.CharLimit = 256

	return Model{
		svc:      svc,
		launch:   launch,
		keys:     newKeyMap(),
		help:     help.New(),
		input:    ti,
		debounce: search.NewDebouncer(search.DefaultDebounce),
		clock:    time.Now,
		copy:     clipboard.WriteAll,
		pinned:   svc.Pinned(),
		recent:   svc.Recent(),
	}
}

func (m Model) Init() tea.Cmd {
	return m.pruneRecent()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, _ := appStyle.GetFrameSize()
		m.width = msg.Width - h
		m.help.Width = m.width
		m.input.Width = m.width - lipgloss.Width(m.input.Prompt) - 1
		return m, nil

	case pinnedChangedMsg:
		// Snapshots may be delivered out of order, the service is authoritative.
		m.pinned = m.svc.Pinned()
		m.clampCursor()
		return m, nil

	case recentChangedMsg:
		m.recent = m.svc.Recent()
		m.clampCursor()
		return m, nil

	case searchTickMsg:
		if m.debounce.Expire(msg.token, msg.at) {
			return m, m.runSearch(m.input.Value())
		}
		return m, nil

	case searchResultsMsg:
		if msg.query != m.input.Value() {
			return m, nil
		}
		if msg.err != nil {
			m.status = errorMessageStyle(fmt.Sprintf("search failed: %v", msg.err))
			return m, nil
		}
		m.results = msg.results
		if m.focus == sectionResults {
			m.clampCursor()
		}
		return m, nil

	case editorFinishedMsg:
		if msg.err != nil {
			m.status = errorMessageStyle(fmt.Sprintf("editor exited: %v", msg.err))
		}
		return m, m.pruneRecent()

	case tea.KeyMsg:
		if m.input.Focused() {
			return m.handleSearchKey(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.exitSearch):
		m.input.Blur()
		return m, nil
	case msg.Type == tea.KeyEnter:
		m.input.Blur()
		if len(m.results) > 0 {
			m.focus = sectionResults
			m.cursor = 0
		}
		return m, nil
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, cmd
	}

	searchCmd := m.queryChanged()
	return m, tea.Batch(cmd, searchCmd)
}

// queryChanged runs the search on the leading edge of a typing burst and
// schedules the trailing run for the rest.
func (m *Model) queryChanged() tea.Cmd {
	query := m.input.Value()
	if strings.TrimSpace(query) == "" {
		m.debounce.Reset()
		m.results = nil
		if m.focus == sectionResults {
			m.focus = sectionPinned
			m.cursor = 0
		}
		return nil
	}

	fire, token := m.debounce.Submit(m.clock())
	if fire {
		return m.runSearch(query)
	}
	return tea.Tick(m.debounce.Window(), func(t time.Time) tea.Msg {
		return searchTickMsg{token: token, at: t}
	})
}

func (m Model) runSearch(query string) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		results, err := svc.Search(query)
		return searchResultsMsg{query: query, results: results, err: err}
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.focusSearch):
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.toggleHelp):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.nextSection):
		m.cycleFocus(1)

	case key.Matches(msg, m.keys.prevSection):
		m.cycleFocus(-1)

	case key.Matches(msg, m.keys.up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.down):
		if m.cursor < m.sectionLen(m.focus)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.openNote):
		cmd := m.openSelected()
		return m, cmd

	case key.Matches(msg, m.keys.togglePin):
		m.togglePin()

	case key.Matches(msg, m.keys.moveUp):
		m.movePinned(-1)

	case key.Matches(msg, m.keys.moveDown):
		m.movePinned(1)

	case key.Matches(msg, m.keys.copyPath):
		m.copySelectedPath()
	}

	return m, nil
}

func (m *Model) cycleFocus(step int) {
	sections := []section{sectionPinned, sectionRecent}
	if len(m.results) > 0 {
		sections = append(sections, sectionResults)
	}

	idx := 0
	for i, s := range sections {
		if s == m.focus {
			idx = i
		}
	}
	idx = (idx + step + len(sections)) % len(sections)
	m.focus = sections[idx]
	m.cursor = 0
}

func (m Model) sectionLen(s section) int {
	switch s {
	case sectionPinned:
		return len(m.pinned)
	case sectionRecent:
		return len(m.recent)
	default:
		return len(m.results)
	}
}

func (m *Model) clampCursor() {
	n := m.sectionLen(m.focus)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) selected() (refs.NoteRef, bool) {
	switch m.focus {
	case sectionPinned:
		if m.cursor < len(m.pinned) {
			return m.pinned[m.cursor], true
		}
	case sectionRecent:
		if m.cursor < len(m.recent) {
			return m.recent[m.cursor], true
		}
	case sectionResults:
		if m.cursor < len(m.results) {
			return m.results[m.cursor].Ref, true
		}
	}
	return "", false
}

func (m *Model) openSelected() tea.Cmd {
	ref, ok := m.selected()
	if !ok || m.launch == nil {
		return nil
	}

	l, err := m.launch(ref)
	if err != nil {
		m.status = errorMessageStyle(err.Error())
		return nil
	}

	if l.Wait {
		return tea.ExecProcess(l.Cmd, func(err error) tea.Msg {
			return editorFinishedMsg{err: err}
		})
	}

	return func() tea.Msg {
		return editorFinishedMsg{err: l.Run()}
	}
}

func (m *Model) togglePin() {
	ref, ok := m.selected()
	if !ok {
		return
	}

	pinned, err := m.svc.TogglePin(ref)
	switch {
	case errors.Is(err, pin.ErrAtCapacity):
		m.status = errorMessageStyle(fmt.Sprintf(
			"Pinned list is full (%d). Unpin a note or raise max_pinned_notes.",
			m.svc.Settings().MaxPinnedNotes,
		))
		return
	case err != nil:
		m.status = errorMessageStyle(err.Error())
		return
	case pinned:
		m.status = statusMessageStyle("Pinned " + pathutil.DisplayName(ref.String()))
	default:
		m.status = statusMessageStyle("Unpinned " + pathutil.DisplayName(ref.String()))
	}

	m.pinned = m.svc.Pinned()
	m.clampCursor()
}

// movePinned shifts the selected pinned note by one slot, expressed as a
// move before another pinned note or to the end.
func (m *Model) movePinned(step int) {
	if m.focus != sectionPinned || m.cursor >= len(m.pinned) {
		return
	}
	ref := m.pinned[m.cursor]

	switch {
	case step < 0 && m.cursor > 0:
		m.svc.Reorder(ref, m.pinned[m.cursor-1])
		m.cursor--
	case step > 0 && m.cursor == len(m.pinned)-2:
		m.svc.MoveToEnd(ref)
		m.cursor++
	case step > 0 && m.cursor < len(m.pinned)-2:
		m.svc.Reorder(ref, m.pinned[m.cursor+2])
		m.cursor++
	default:
		return
	}

	m.pinned = m.svc.Pinned()
	m.clampCursor()
}

func (m *Model) copySelectedPath() {
	ref, ok := m.selected()
	if !ok {
		return
	}

	path := pathutil.Absolute(m.svc.Settings().VaultDir, ref.String())
	if err := m.copy(path); err != nil {
		m.status = errorMessageStyle(fmt.Sprintf("copy failed: %v", err))
		return
	}
	m.status = statusMessageStyle("Copied " + path)
}

func (m Model) pruneRecent() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		if svc.PruneRecent() {
			return recentChangedMsg{}
		}
		return nil
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Home"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if strings.TrimSpace(m.input.Value()) != "" {
		entries := make([]string, len(m.results))
		for i, r := range m.results {
			entries[i] = r.DisplayName
		}
		b.WriteString(m.renderSection(sectionResults, entries, "No matching notes"))
	}

	b.WriteString(m.renderSection(sectionPinned, names(m.pinned), "Nothing pinned yet"))
	b.WriteString(m.renderSection(sectionRecent, names(m.recent), "No recent notes"))

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return appStyle.Render(b.String())
}

func (m Model) renderSection(s section, entries []string, empty string) string {
	var b strings.Builder

	header := headerStyle
	if m.focus == s && !m.input.Focused() {
		header = activeHeaderStyle
	}
	b.WriteString(header.Render(fmt.Sprintf("%s (%d)", s.title(), len(entries))))
	b.WriteString("\n")

	if len(entries) == 0 {
		b.WriteString(dimStyle.Render(empty))
		b.WriteString("\n")
		return b.String()
	}

	for i, e := range entries {
		if m.focus == s && i == m.cursor && !m.input.Focused() {
			b.WriteString(selectedItemStyle.Render("› " + e))
		} else {
			b.WriteString(itemStyle.Render(e))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func names(list []refs.NoteRef) []string {
	out := make([]string, len(list))
	for i, r := range list {
		out[i] = pathutil.DisplayName(r.String())
	}
	return out
}
