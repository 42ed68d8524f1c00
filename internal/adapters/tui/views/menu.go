package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"wemtool/internal/adapters/tui/styles"
)

// MenuKeyMap defines key bindings for the menu
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var MenuKeys = MenuKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// MenuModel lists the operations
type MenuModel struct {
	ViewState
	cursor      int
	mappingPath string
}

// NewMenuModel creates a new menu
func NewMenuModel(mappingPath string) *MenuModel {
	return &MenuModel{mappingPath: mappingPath}
}

// Init initializes the menu
func (m *MenuModel) Init() tea.Cmd {
	return nil
}

// Selected returns the highlighted operation
func (m *MenuModel) Selected() Operation {
	return MenuOrder[m.cursor]
}

// Update handles messages for the menu
func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, MenuKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, MenuKeys.Down):
		if m.cursor < len(MenuOrder)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, MenuKeys.Select):
		op := m.Selected()
		m.ClearMessage()
		return m, func() tea.Msg { return SelectOperationMsg{Op: op} }
	case key.Matches(keyMsg, MenuKeys.Help):
		return m, func() tea.Msg { return SwitchToHelpMsg{} }
	case key.Matches(keyMsg, MenuKeys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu
func (m *MenuModel) View() string {
	v := NewViewBuilder().
		Title("wemtool").
		Subtitle("Mapping: " + m.mappingPath)

	for i, op := range MenuOrder {
		if i == m.cursor {
			v.Line(styles.MenuSelected.Render("> " + op.Title()))
		} else {
			v.Line(styles.MenuItem.Render("  " + op.Title()))
		}
	}
	v.BlankLine().
		Line(styles.MenuDescription.Render(strings.TrimSpace(m.Selected().Description()))).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Help(MenuKeys.Up, MenuKeys.Down, MenuKeys.Select, MenuKeys.Help, MenuKeys.Quit)

	return v.String()
}
