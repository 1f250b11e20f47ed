package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles, current directory
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorDirectory Color = "75"  // Blue
	ColorHelpGroup Color = "141" // Purple
	ColorHintKey   Color = "226" // Yellow
	ColorSpinner   Color = "205" // Pink
)

// Branch divergence colors
const (
	ColorAhead  Color = "2" // Green
	ColorBehind Color = "1" // Red
)
