package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"wemtool/internal/adapters/tui/styles"
)

// PathFormKeyMap defines key bindings for the directory form
type PathFormKeyMap struct {
	Submit  key.Binding
	Cancel  key.Binding
	Tab     key.Binding
	BackTab key.Binding
}

// DefaultPathFormKeys are the bindings used by operation forms
var DefaultPathFormKeys = PathFormKeyMap{
	Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
	Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Tab:     key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	BackTab: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
}

// PathField is one labelled directory input
type PathField struct {
	Label string
	Input textinput.Model
}

// NewPathField creates a directory input prefilled with value
func NewPathField(label, value string) PathField {
	in := textinput.New()
	in.Placeholder = "path/to/directory"
	in.CharLimit = 4096
	in.SetValue(value)
	return PathField{Label: label, Input: in}
}

// PathForm is a stack of directory inputs with one focused at a time
type PathForm struct {
	Fields  []PathField
	Focused int
	Keys    PathFormKeyMap
}

// NewPathForm creates a form focused on its first field
func NewPathForm(fields ...PathField) *PathForm {
	f := &PathForm{Fields: fields, Keys: DefaultPathFormKeys}
	if len(fields) > 0 {
		f.Fields[0].Input.Focus()
	}
	return f
}

// Init starts the cursor blink
func (f *PathForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update moves focus on tab/shift+tab and forwards everything else to the
// focused input. handled reports whether the key was consumed by the form.
func (f *PathForm) Update(msg tea.Msg) (handled bool, cmd tea.Cmd) {
	n := len(f.Fields)
	if n == 0 {
		return false, nil
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(k, f.Keys.Tab) {
			f.SetFocus((f.Focused + 1) % n)
			return true, nil
		}
		if key.Matches(k, f.Keys.BackTab) {
			f.SetFocus((f.Focused + n - 1) % n)
			return true, nil
		}
	}

	field := &f.Fields[f.Focused]
	field.Input, cmd = field.Input.Update(msg)
	return false, cmd
}

// SetFocus moves focus to field i; out of range indexes are ignored
func (f *PathForm) SetFocus(i int) {
	if i < 0 || i >= len(f.Fields) {
		return
	}
	f.Fields[f.Focused].Input.Blur()
	f.Focused = i
	f.Fields[i].Input.Focus()
}

// Values returns every field's trimmed value in order
func (f *PathForm) Values() []string {
	out := make([]string, 0, len(f.Fields))
	for _, field := range f.Fields {
		out = append(out, strings.TrimSpace(field.Input.Value()))
	}
	return out
}

// FirstEmpty returns the index of the first blank field, or -1
func (f *PathForm) FirstEmpty() int {
	for i, v := range f.Values() {
		if v == "" {
			return i
		}
	}
	return -1
}

// RenderField renders field i with its label, highlighting the focused one
func (f *PathForm) RenderField(i int) string {
	if i < 0 || i >= len(f.Fields) {
		return ""
	}
	field := f.Fields[i]
	box := styles.InputField
	if i == f.Focused {
		box = styles.InputFocused
	}
	return styles.InputLabel.Render(field.Label) + "\n" + box.Render(field.Input.View())
}

// HelpBindings returns the bindings shown under the form
func (f *PathForm) HelpBindings() []key.Binding {
	if len(f.Fields) > 1 {
		return []key.Binding{f.Keys.Tab, f.Keys.Submit, f.Keys.Cancel}
	}
	return []key.Binding{f.Keys.Submit, f.Keys.Cancel}
}
