// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/zitype/internal/model"
	"github.com/verte-zerg/zitype/internal/session"
	"github.com/verte-zerg/zitype/internal/texts"
	"github.com/verte-zerg/zitype/internal/translit"
	"github.com/verte-zerg/zitype/internal/typing"
)

type screen int

const (
	screenPractice screen = iota
	screenResults
)

var (
	pausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 3)
	resultsStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A")).
			Padding(1, 3)
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// Model implements the Bubble Tea typing UI.
type Model struct {
	source  texts.Source
	session *session.Session
	ticker  *loopTicker
	focus   *focusSignal

	input textinput.Model
	view  viewport.Model
	help  help.Model
	keys  keyMap

	width  int
	height int

	screen    screen
	lastValue string
	lastRow   int
	results   *typing.Results
	err       error
}

// NewModel constructs a typing TUI model and starts the first session.
func NewModel(cfg model.Config, source texts.Source, tr translit.Transliterator) *Model {
	m := &Model{
		source:  source,
		ticker:  newLoopTicker(),
		focus:   newFocusSignal(),
		input:   textinput.New(),
		view:    viewport.New(0, 0),
		help:    help.New(),
		keys:    defaultKeyMap(),
		lastRow: -1,
	}
	m.input.Prompt = ""
	m.input.CharLimit = 0
	m.session = session.New(session.Options{
		Transliterator: tr,
		Ticker:         m.ticker,
		Visibility:     m.focus,
		IdleThreshold:  cfg.IdleThreshold,
		CheckInterval:  cfg.CheckInterval,
		Hooks: session.Hooks{
			OnPause:    func() { m.input.Blur() },
			OnResume:   func() { m.input.Focus() },
			OnComplete: m.showResults,
		},
	})
	m.startSession()
	return m
}

// LastResults returns the results of the most recent completed session.
func (m *Model) LastResults() (typing.Results, bool) {
	if m.results == nil {
		return typing.Results{}, false
	}
	return *m.results, true
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.ticker.wait())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.refreshView()
		return m, nil
	case callbackMsg:
		msg()
		m.refreshView()
		return m, m.ticker.wait()
	case tea.FocusMsg:
		m.focus.emit(true)
		return m, nil
	case tea.BlurMsg:
		m.focus.emit(false)
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.session.Dispose()
			return m, tea.Quit
		}
		if m.screen == screenResults {
			return m.updateResults(msg)
		}
		return m.updatePractice(msg)
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m *Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Retry):
		m.session.Restart()
		m.startSession()
		return m, nil
	case key.Matches(msg, m.keys.Leave):
		m.session.Dispose()
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) updatePractice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	paused := m.session.Phase() == session.Paused
	switch {
	case key.Matches(msg, m.keys.Restart):
		m.session.Restart()
		m.startSession()
		return m, nil
	case paused && key.Matches(msg, m.keys.Continue):
		m.session.Continue()
		m.refreshView()
		return m, nil
	}
	if paused {
		// Typing resumes a paused session, so the buffer must accept the key.
		m.input.Focus()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.handleInput()
	return m, cmd
}

// handleInput feeds a changed buffer to the session and applies its rewrite.
func (m *Model) handleInput() {
	value := m.input.Value()
	if value == m.lastValue {
		return
	}
	upd := m.session.Input(value, m.input.Position())
	if upd.Rewritten {
		m.input.SetValue(upd.Buffer)
		m.input.SetCursor(upd.Cursor)
	}
	m.lastValue = m.input.Value()
	m.refreshView()
}

func (m *Model) startSession() {
	m.screen = screenPractice
	m.results = nil
	m.lastRow = -1
	m.lastValue = ""
	m.input.Reset()
	m.input.Focus()
	m.view.SetYOffset(0)

	text, err := m.source()
	if err != nil {
		m.err = fmt.Errorf("failed to load text: %w", err)
		return
	}
	m.err = nil
	m.session.Start(text)
	m.refreshView()
}

func (m *Model) showResults(res typing.Results) {
	m.results = &res
	m.screen = screenResults
	m.input.Blur()
}

func (m *Model) contentWidth() int {
	w := int(float64(m.width) * 0.70)
	if w < 1 {
		w = 1
	}
	return w
}

func (m *Model) refreshView() {
	if m.width == 0 || m.height == 0 {
		return
	}
	rows := wrapBlocks(buildBlocks(m.session.Units()), m.contentWidth())
	m.view.Width = m.contentWidth()
	m.view.Height = max(1, m.height-2)
	m.view.SetContent(renderRows(rows))
	row := rowOf(rows, m.session.ActiveUnit())
	if offset, last, changed := scrollOffset(row, m.lastRow); changed {
		m.view.SetYOffset(offset)
		m.lastRow = last
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.err != nil {
		return errorStyle.Render(m.err.Error()) + "\n"
	}
	if m.screen == screenResults && m.results != nil {
		return m.place(m.renderResults())
	}
	if m.width == 0 || m.height == 0 {
		return renderRows(wrapBlocks(buildBlocks(m.session.Units()), 0))
	}
	if m.session.Phase() == session.Paused {
		return m.place(m.renderPaused())
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, m.view.View())
	footer := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, m.renderFooter())
	return body + "\n" + footer
}

func (m *Model) place(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderFooter() string {
	progress := 0
	if expected := m.session.ExpectedLen(); expected > 0 {
		typed := len([]rune(m.input.Value()))
		progress = min(100, typed*100/expected)
	}
	segments := []string{
		fmt.Sprintf("Progress %d%%", progress),
		fmt.Sprintf("%.1fs", m.session.Elapsed().Seconds()),
		m.help.View(practiceKeys(m.keys)),
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}

func (m *Model) renderPaused() string {
	lines := []string{
		titleStyle.Render("已暂停 Paused"),
		"",
		"Type to resume or press enter to continue.",
	}
	return pausedStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderResults() string {
	res := m.results
	lines := []string{
		titleStyle.Render("完成！"),
		"",
		fmt.Sprintf("时间 Time      %.1fs", res.ElapsedSeconds()),
		fmt.Sprintf("速度 Speed     %d WPM", res.Speed),
		fmt.Sprintf("准确率 Accuracy %s%%", res.AccuracyText()),
		"",
		m.help.View(resultKeys(m.keys)),
	}
	return resultsStyle.Render(strings.Join(lines, "\n"))
}
