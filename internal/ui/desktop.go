package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"galion/internal/overlay"
)

// Launcher glyph position on screen: two columns in, one row below the bar.
const (
	glyphX = 2
	glyphY = 2
)

var glyphLines = []string{
	"╭───╮",
	"│ G │",
	"╰───╯",
	" Apps",
}

// DesktopView is the surface below the bar. It carries the launcher glyph.
type DesktopView struct {
	Width        int
	Height       int // rows available to the desktop
	LauncherOpen bool
}

// Ensure DesktopView implements View.
var _ View = (*DesktopView)(nil)

// Init implements View.
func (d *DesktopView) Init() tea.Cmd { return nil }

// Update implements View.
func (d *DesktopView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		d.Width = msg.Width
		d.Height = max(0, msg.Height-2) // bar and footer
	}
	return d, nil
}

// GlyphRect returns the launcher trigger's cells.
func (d *DesktopView) GlyphRect() overlay.Rect {
	return overlay.Rect{X: glyphX, Y: glyphY, W: 5, H: len(glyphLines)}
}

// View implements View.
func (d *DesktopView) View() string {
	width, height := d.Width, d.Height
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 22
	}

	style := Styles.Trigger
	if d.LauncherOpen {
		style = Styles.TriggerOn
	}

	blank := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = blank
		// Desktop rows start below the bar.
		g := i + 1 - glyphY
		if g >= 0 && g < len(glyphLines) && width >= glyphX+5 {
			lines[i] = strings.Repeat(" ", glyphX) + style.Render(glyphLines[g]) + strings.Repeat(" ", width-glyphX-5)
		}
	}
	return strings.Join(lines, "\n")
}
