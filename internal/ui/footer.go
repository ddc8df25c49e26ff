package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"galion/internal/ui/textutil"
)

// idleHint is shown in the footer when no leader sequence is pending.
const idleHint = "Press [SPC] for commands  ·  click " + CalendarTriggerLabel + " or the G glyph"

// RenderFooter produces the one-line footer. While a leader sequence is
// pending it lists the next keys for the current mode via bubbles/help.
func RenderFooter(keyHandler *KeyHandler, mode Mode, width int) string {
	if keyHandler == nil || !keyHandler.LeaderWaiting {
		return Styles.Muted.Render(textutil.PadRightVisual(idleHint, width))
	}

	helpModel := help.New()
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	helpModel.Styles.ShortDesc = Styles.Muted
	helpModel.Styles.ShortSeparator = Styles.Muted
	helpModel.Width = width - len(keyHandler.Buffer)*4

	prefix := Styles.Muted.Render(strings.Join(keyHandler.Buffer, " "))
	line := prefix + " " + helpModel.ShortHelpView(NewKeyMap(keyHandler, mode).ShortHelp())
	if pad := width - textutil.VisualWidthStyled(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return line
}
