package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"galion/internal/clock"
	"galion/internal/overlay"
	"galion/internal/ui/textutil"
)

// CalendarTriggerLabel is the bar's calendar button.
const CalendarTriggerLabel = "[Cal]"

// BarView is the top status bar: OS name, status items, clock and the
// calendar trigger, which always sits one column from the right edge.
type BarView struct {
	OSName       string
	StatusItems  []string
	Reading      clock.Reading
	CalendarOpen bool
	Width        int
}

// Ensure BarView implements View.
var _ View = (*BarView)(nil)

// Init implements View.
func (b *BarView) Init() tea.Cmd { return nil }

// Update implements View.
func (b *BarView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		b.Width = msg.Width
	}
	return b, nil
}

func (b *BarView) width() int {
	if b.Width == 0 {
		return 80
	}
	return b.Width
}

// TriggerRect returns the calendar button's cells.
func (b *BarView) TriggerRect() overlay.Rect {
	w := textutil.VisualWidth(CalendarTriggerLabel)
	return overlay.Rect{X: b.width() - w - 1, Y: 0, W: w, H: 1}
}

// View implements View.
func (b *BarView) View() string {
	width := b.width()
	trig := CalendarTriggerLabel
	// Everything left of " [Cal] ".
	avail := width - textutil.VisualWidth(trig) - 2
	if avail < 0 {
		avail = 0
	}

	left := " " + b.OSName
	center := strings.Join(b.StatusItems, "  ")
	timeText, dateText := b.Reading.Time, b.Reading.Date
	vw := textutil.VisualWidth
	right := func() int {
		if dateText == "" {
			return vw(timeText)
		}
		return vw(timeText) + 2 + vw(dateText)
	}

	// Drop what does not fit: status items first, then the date.
	if vw(left)+vw(center)+right()+4 > avail {
		center = ""
	}
	if vw(left)+right()+1 > avail {
		dateText = ""
	}
	// The trigger must stay where TriggerRect says it is.
	if right() > avail {
		timeText = ""
	}
	if vw(left)+right()+1 > avail {
		left = textutil.Truncate(left, max(0, avail-right()-1))
	}

	gap := avail - vw(left) - vw(center) - right()
	if gap < 0 {
		gap = 0
	}
	leftGap, rightGap := gap, 0
	if center != "" {
		leftGap = gap / 2
		rightGap = gap - leftGap
	}

	var sb strings.Builder
	sb.WriteString(Styles.OSName.Render(left))
	sb.WriteString(strings.Repeat(" ", leftGap))
	if center != "" {
		sb.WriteString(Styles.StatusItem.Render(center))
		sb.WriteString(strings.Repeat(" ", rightGap))
	}
	sb.WriteString(Styles.Time.Render(timeText))
	if dateText != "" {
		sb.WriteString("  ")
		sb.WriteString(Styles.Date.Render(dateText))
	}
	sb.WriteString(" ")
	if b.CalendarOpen {
		sb.WriteString(Styles.TriggerOn.Render(trig))
	} else {
		sb.WriteString(Styles.Trigger.Render(trig))
	}
	sb.WriteString(" ")
	return sb.String()
}
