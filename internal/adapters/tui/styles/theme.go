package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	// Direction colors
	ForwardColor = lipgloss.Color("#60A5FA") // Blue
	ReverseColor = lipgloss.Color("#F97316") // Orange

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Menu styles
	MenuItem = lipgloss.NewStyle()

	MenuSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	MenuDescription = lipgloss.NewStyle().
			Foreground(Muted).
			PaddingLeft(4)

	// Log pane
	LogPane = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(0, 1)

	LogWarn = lipgloss.NewStyle().
		Foreground(Warning)

	LogError = lipgloss.NewStyle().
			Foreground(Error)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Lookup
	ResultID = lipgloss.NewStyle().
			Foreground(ForwardColor)

	ResultSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// DirectionBadge renders a relocation direction name on its accent color
func DirectionBadge(direction string) string {
	color := Primary
	switch direction {
	case "unobfuscate":
		color = ForwardColor
	case "obfuscate":
		color = ReverseColor
	}
	return lipgloss.NewStyle().
		Background(color).
		Foreground(White).
		Padding(0, 1).
		Render(direction)
}
