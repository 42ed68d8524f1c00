package views

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"wemtool/internal/adapters/tui/styles"
	"wemtool/internal/application"
	"wemtool/internal/application/commands"
	"wemtool/internal/ports"
)

const lookupPageSize = 10

// LookupKeyMap defines key bindings for the lookup view
type LookupKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	CopyID   key.Binding
	CopyName key.Binding
	Cancel   key.Binding
}

var LookupKeys = LookupKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "previous page"),
	),
	CopyID: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "copy ID"),
	),
	CopyName: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy debug name"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

// LookupModel searches the mapping index as the user types
type LookupModel struct {
	ViewState
	index   ports.MappingIndex
	input   textinput.Model
	results []commands.LookupResult
	pager   *Paginator
	limit   int

	// copy is swapped out in tests
	copy func(string) error
}

// NewLookupModel creates a new lookup view model
func NewLookupModel(index ports.MappingIndex) *LookupModel {
	input := textinput.New()
	input.Placeholder = "Media ID or debug name..."
	input.Focus()

	return &LookupModel{
		index: index,
		input: input,
		pager: NewPaginator(lookupPageSize),
		limit: 100,
		copy:  clipboard.WriteAll,
	}
}

// Init initializes the lookup view
func (m *LookupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Reset clears the query and results
func (m *LookupModel) Reset() {
	m.input.SetValue("")
	m.results = nil
	m.pager.Reset()
	m.ClearMessage()
	m.input.Focus()
}

// Update handles messages for the lookup view
func (m *LookupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case lookupResultsMsg:
		// Drop answers to queries the user has already typed past
		if msg.query != m.input.Value() {
			return m, nil
		}
		m.results = msg.results
		m.pager.Reset()
		m.pager.SetTotal(len(msg.results))
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
		} else {
			m.ClearMessage()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, LookupKeys.Cancel):
			return m, func() tea.Msg { return SwitchToMenuMsg{} }
		case key.Matches(msg, LookupKeys.Up):
			m.pager.CursorUp()
			return m, nil
		case key.Matches(msg, LookupKeys.Down):
			m.pager.CursorDown()
			return m, nil
		case key.Matches(msg, LookupKeys.NextPage):
			m.pager.NextPage()
			return m, nil
		case key.Matches(msg, LookupKeys.PrevPage):
			m.pager.PrevPage()
			return m, nil
		case key.Matches(msg, LookupKeys.CopyID):
			m.copySelected(func(r commands.LookupResult) string { return r.ID })
			return m, nil
		case key.Matches(msg, LookupKeys.CopyName):
			m.copySelected(func(r commands.LookupResult) string { return r.DebugName })
			return m, nil
		}
	}

	previous := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	query := m.input.Value()
	if query == previous {
		return m, cmd
	}
	if len(query) == 0 {
		m.results = nil
		m.pager.Reset()
		return m, cmd
	}
	return m, tea.Batch(cmd, m.lookup(query))
}

func (m *LookupModel) copySelected(field func(commands.LookupResult) string) {
	r, ok := m.Selected()
	if !ok {
		return
	}
	text := field(r)
	if err := m.copy(text); err != nil {
		m.SetMessage(fmt.Sprintf("clipboard: %v", err), true)
		return
	}
	m.SetMessage("Copied "+text, false)
}

// Selected returns the result under the cursor
func (m *LookupModel) Selected() (commands.LookupResult, bool) {
	i := m.pager.Cursor()
	if i < 0 || i >= len(m.results) {
		return commands.LookupResult{}, false
	}
	return m.results[i], true
}

func (m *LookupModel) lookup(query string) tea.Cmd {
	index, limit := m.index, m.limit
	return func() tea.Msg {
		results, err := commands.NewLookupCommand(index, query, limit).Execute(context.Background())
		if errors.Is(err, application.ErrIndexEmpty) {
			err = fmt.Errorf("%w: rebuild it from the menu first", err)
		}
		return lookupResultsMsg{query: query, results: results, err: err}
	}
}

type lookupResultsMsg struct {
	query   string
	results []commands.LookupResult
	err     error
}

// View renders the lookup view
func (m *LookupModel) View() string {
	v := NewViewBuilder().
		Title("Lookup").
		Line(styles.InputFocused.Render(m.input.View())).
		BlankLine()

	switch {
	case len(m.results) > 0:
		v.Subtitle(fmt.Sprintf("%d results (page %d/%d)",
			len(m.results), m.pager.CurrentPage(), m.pager.TotalPages()))
		start, end := m.pager.VisibleRange()
		for i := start; i < end; i++ {
			v.Line(m.renderResult(m.results[i], i == m.pager.Cursor()))
		}
	case len(m.input.Value()) >= 2 && m.Message == "":
		v.Muted("No results found")
	case m.Message == "":
		v.Muted("Type an ID or at least 2 characters of a debug name")
	}

	v.BlankLine().
		Message(m.Message, m.MessageErr).
		Help(LookupKeys.Up, LookupKeys.Down, LookupKeys.CopyID, LookupKeys.CopyName, LookupKeys.Cancel)

	return v.String()
}

func (m *LookupModel) renderResult(r commands.LookupResult, selected bool) string {
	text := fmt.Sprintf("%s  %s", r.ID, r.DebugName)
	if selected {
		return styles.ResultSelected.Render(text)
	}
	return styles.ResultID.Render(r.ID) + "  " + r.DebugName
}
