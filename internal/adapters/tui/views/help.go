package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"wemtool/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
	configPath  string
	mappingPath string
	indexPath   string
}

// NewHelpModel creates a new help view model
func NewHelpModel(configPath, mappingPath, indexPath string) *HelpModel {
	return &HelpModel{
		configPath:  configPath,
		mappingPath: mappingPath,
		indexPath:   indexPath,
	}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, HelpKeys.Close) {
		return m, func() tea.Msg {
			return SwitchToMenuMsg{}
		}
	}
	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("wemtool Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Rename game audio between media IDs and debug names"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Workflow"))
	b.WriteString("\n")
	b.WriteString(helpLine("1. Scan metadata", "Build the mapping from exported event JSON"))
	b.WriteString(helpLine("2. Unobfuscate", "Copy Media/<id>.wem files to their debug names"))
	b.WriteString(helpLine("3. Obfuscate", "Copy edited files back to their media IDs"))
	b.WriteString(helpLine("Rebuild index", "Needed before Lookup after every scan"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Keys"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("Enter", "Select / run / copy ID"))
	b.WriteString(helpLine("Tab", "Next field"))
	b.WriteString(helpLine("e", "Open the error log after a run"))
	b.WriteString(helpLine("Esc", "Back / cancel a run"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Files"))
	b.WriteString("\n")
	b.WriteString("  " + RenderLabelValue("Config", m.configPath) + "\n")
	b.WriteString("  " + RenderLabelValue("Mapping", m.mappingPath) + "\n")
	b.WriteString("  " + RenderLabelValue("Index", m.indexPath) + "\n")
	b.WriteString("\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
