package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the shell
const (
	ColorAccent    = "86"  // Cyan/green - OS name, titles
	ColorHighlight = "205" // Magenta - selected tiles, today, panel borders
	ColorMuted     = "241" // Gray - hints, status items
	ColorText      = "252" // Light gray - normal text
	ColorDim       = "243" // Darker gray - placeholders
)

// Styles contains shared style definitions used across the shell's surfaces.
var Styles = struct {
	OSName     lipgloss.Style // Bold accent OS name
	StatusItem lipgloss.Style // WiFi / Battery / Sound
	Time       lipgloss.Style // Clock time
	Date       lipgloss.Style // Clock date
	Trigger    lipgloss.Style // Trigger controls (calendar button, launcher glyph)
	TriggerOn  lipgloss.Style // Trigger whose overlay is shown

	Panel lipgloss.Style // Overlay panel box

	Title    lipgloss.Style // Panel titles
	NavBtn   lipgloss.Style // Calendar month navigation
	DayName  lipgloss.Style // Weekday header
	Day      lipgloss.Style // Regular day
	Today    lipgloss.Style // Today's cell
	Tile     lipgloss.Style // App tile
	Selected lipgloss.Style // Selected app tile
	Muted    lipgloss.Style // Hints, placeholder text
	Empty    lipgloss.Style // Empty state text
	Desktop  lipgloss.Style // Desktop labels
}{
	OSName: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	StatusItem: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Time: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Date: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Trigger: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	TriggerOn: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Panel: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	NavBtn: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	DayName: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Day: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Today: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Reverse(true),
	Tile: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)).
		Italic(true),
	Desktop: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}
