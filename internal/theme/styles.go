package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	HelpLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// File tree styles
var (
	CursorStyle = lipgloss.NewStyle().
			Foreground(ColorHintKey).
			Bold(true)

	DirectoryStyle = lipgloss.NewStyle().
			Foreground(ColorDirectory).
			Bold(true)

	OrigPathStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)
)

// Branch styles
var (
	AheadStyle = lipgloss.NewStyle().
			Foreground(ColorAhead)

	BehindStyle = lipgloss.NewStyle().
			Foreground(ColorBehind)
)

// Header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)
)

// Tip styles
var (
	TipKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	TipTextStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)
)

// Spinner style
var SpinnerStyle = lipgloss.NewStyle().
	Foreground(ColorSpinner)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// StatusStyle returns a style for a given status color string
func StatusStyle(color string) lipgloss.Style {
	if color == "" {
		return NormalStyle
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
