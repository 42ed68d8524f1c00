package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"wemtool/internal/adapters/tui/styles"
)

// maxLogLines bounds the log pane; older lines scroll away
const maxLogLines = 2000

// RunKeyMap defines key bindings for the run view
type RunKeyMap struct {
	Back     key.Binding
	Cancel   key.Binding
	ErrorLog key.Binding
	Scroll   key.Binding
}

var RunKeys = RunKeyMap{
	Back: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc", "back"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	),
	ErrorLog: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "open error log"),
	),
	Scroll: key.NewBinding(
		key.WithKeys("up", "down", "pgup", "pgdown"),
		key.WithHelp("↑/↓", "scroll log"),
	),
}

// RunModel shows a running operation's log and its summary
type RunModel struct {
	ViewState
	op      Operation
	running bool
	started time.Time
	spinner spinner.Model
	log     viewport.Model
	lines   []string
	result  *RunFinishedMsg
}

// NewRunModel creates a new run view model
func NewRunModel() *RunModel {
	return &RunModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		log:     viewport.New(80, 12),
	}
}

// Start resets the view for a new run of op
func (m *RunModel) Start(op Operation) tea.Cmd {
	m.op = op
	m.running = true
	m.started = time.Now()
	m.lines = nil
	m.result = nil
	m.ClearMessage()
	m.log.SetContent("")
	return m.spinner.Tick
}

// Running reports whether an operation is in progress
func (m *RunModel) Running() bool {
	return m.running
}

// Result returns the last finished run, or nil
func (m *RunModel) Result() *RunFinishedMsg {
	return m.result
}

// Lines returns the log lines collected for the current run
func (m *RunModel) Lines() []string {
	return m.lines
}

// Init initializes the run view
func (m *RunModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the run view
func (m *RunModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LogLinesMsg:
		m.appendLines(msg.Lines)
		return m, nil

	case RunFinishedMsg:
		m.running = false
		m.result = &msg
		if msg.Err != nil {
			m.SetMessage(msg.Err.Error(), true)
		} else {
			m.SetMessage(msg.Message, false)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case m.running && key.Matches(msg, RunKeys.Cancel):
			return m, func() tea.Msg { return CancelRunMsg{} }
		case !m.running && key.Matches(msg, RunKeys.Back):
			return m, func() tea.Msg { return SwitchToMenuMsg{} }
		case !m.running && key.Matches(msg, RunKeys.ErrorLog):
			if m.result != nil && m.result.ErrorLog != "" {
				path := m.result.ErrorLog
				return m, func() tea.Msg { return OpenEditorMsg{Path: path} }
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.log, cmd = m.log.Update(msg)
	return m, cmd
}

func (m *RunModel) appendLines(lines []string) {
	if len(lines) == 0 {
		return
	}
	m.lines = append(m.lines, lines...)
	if over := len(m.lines) - maxLogLines; over > 0 {
		m.lines = append([]string(nil), m.lines[over:]...)
	}

	rendered := make([]string, len(m.lines))
	for i, l := range m.lines {
		rendered[i] = renderLogLine(l)
	}
	m.log.SetContent(strings.Join(rendered, "\n"))
	m.log.GotoBottom()
}

func renderLogLine(line string) string {
	switch {
	case strings.HasPrefix(line, "ERROR"):
		return styles.LogError.Render(line)
	case strings.HasPrefix(line, "WARN"):
		return styles.LogWarn.Render(line)
	default:
		return line
	}
}

// View renders the run view
func (m *RunModel) View() string {
	v := NewViewBuilder().Title(m.op.Title())
	switch m.op {
	case OpUnobfuscate:
		v.Line(styles.DirectionBadge("unobfuscate")).BlankLine()
	case OpObfuscate:
		v.Line(styles.DirectionBadge("obfuscate")).BlankLine()
	}

	if m.running {
		elapsed := time.Since(m.started).Round(time.Second)
		v.Line(fmt.Sprintf("%s Running... %s", m.spinner.View(), RenderMuted(elapsed.String())))
	} else if m.result != nil {
		v.Message(m.Message, m.MessageErr)
		for _, d := range m.result.Details {
			v.Muted("  " + d)
		}
	}
	v.BlankLine().
		Line(styles.LogPane.Render(m.log.View())).
		BlankLine()

	switch {
	case m.running:
		v.Help(RunKeys.Scroll, RunKeys.Cancel)
	case m.result != nil && m.result.ErrorLog != "":
		v.Help(RunKeys.Scroll, RunKeys.ErrorLog, RunKeys.Back)
	default:
		v.Help(RunKeys.Scroll, RunKeys.Back)
	}
	return v.String()
}

// SetSize updates the view dimensions and the log pane
func (m *RunModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.log.Width = max(width-8, 20)
	m.log.Height = max(height-14, 5)
}
