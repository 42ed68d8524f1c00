package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// FormModel asks for the directories an operation runs on
type FormModel struct {
	ViewState
	op   Operation
	form *PathForm

	// previous values per operation, so a re-run starts prefilled
	remembered map[Operation][]string
}

// NewFormModel creates a new form view model
func NewFormModel() *FormModel {
	return &FormModel{remembered: make(map[Operation][]string)}
}

// SetOperation rebuilds the form for op
func (m *FormModel) SetOperation(op Operation) {
	m.op = op
	m.ClearMessage()

	previous := m.remembered[op]
	labels := op.Fields()
	fields := make([]PathField, len(labels))
	for i, label := range labels {
		var value string
		if i < len(previous) {
			value = previous[i]
		}
		fields[i] = NewPathField(label, value)
	}
	m.form = NewPathForm(fields...)
}

// Operation returns the operation the form is for
func (m *FormModel) Operation() Operation {
	return m.op
}

// Init initializes the form view
func (m *FormModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the form view
func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.form.Keys.Cancel):
			return m, func() tea.Msg { return SwitchToMenuMsg{} }

		case key.Matches(keyMsg, m.form.Keys.Submit):
			return m, m.submit()
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

func (m *FormModel) submit() tea.Cmd {
	if i := m.form.FirstEmpty(); i >= 0 {
		m.form.SetFocus(i)
		m.SetMessage(fmt.Sprintf("%s is required", m.form.Fields[i].Label), true)
		return nil
	}

	values := m.form.Values()
	m.remembered[m.op] = values
	m.ClearMessage()
	op := m.op
	return func() tea.Msg {
		return StartRunMsg{Op: op, Values: values}
	}
}

// View renders the form view
func (m *FormModel) View() string {
	v := NewViewBuilder().
		Title(m.op.Title()).
		Subtitle(m.op.Description())

	for i := range m.form.Fields {
		v.Line(m.form.RenderField(i))
	}
	v.BlankLine().
		Message(m.Message, m.MessageErr).
		Help(m.form.HelpBindings()...)

	return v.String()
}
