package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	lru "github.com/hashicorp/golang-lru/v2"

	"galion/internal/calendar"
	"galion/internal/overlay"
	"galion/internal/ui/textutil"
)

const (
	calendarCellWidth  = 4
	calendarInnerWidth = 7 * calendarCellWidth
	// Border and horizontal padding around the grid.
	panelChromeWidth  = 4
	panelChromeHeight = 2
	navButtonWidth    = 3
)

// gridKey identifies a rendered month grid. TodayDay is 0 when today is not
// in the month.
type gridKey struct {
	Year, Month, TodayDay int
}

// CalendarView renders the calendar panel for a cursor. Month navigation is
// owned by the overlay controller; the view only draws.
type CalendarView struct {
	Cursor calendar.Cursor
	Today  time.Time

	grids *lru.Cache[gridKey, []string]
}

// Ensure CalendarView implements View.
var _ View = (*CalendarView)(nil)

// NewCalendarView keeps up to cacheSize rendered month grids.
func NewCalendarView(cacheSize int) *CalendarView {
	if cacheSize <= 0 {
		cacheSize = 1
	}
	grids, _ := lru.New[gridKey, []string](cacheSize) // only fails for size <= 0
	return &CalendarView{grids: grids}
}

// Init implements View.
func (c *CalendarView) Init() tea.Cmd { return nil }

// Update implements View.
func (c *CalendarView) Update(msg tea.Msg) (View, tea.Cmd) { return c, nil }

// rows returns the number of week rows the cursor's month needs.
func (c *CalendarView) rows() int {
	n := calendar.FirstWeekday(c.Cursor.Year, c.Cursor.Month) + calendar.DaysInMonth(c.Cursor.Year, c.Cursor.Month)
	return (n + 6) / 7
}

// Size returns the panel's outer width and height.
func (c *CalendarView) Size() (w, h int) {
	return calendarInnerWidth + panelChromeWidth, 2 + c.rows() + panelChromeHeight
}

// PrevRect returns the previous-month button for a panel at origin.
func (c *CalendarView) PrevRect(origin overlay.Rect) overlay.Rect {
	return overlay.Rect{X: origin.X + 2, Y: origin.Y + 1, W: navButtonWidth, H: 1}
}

// NextRect returns the next-month button for a panel at origin.
func (c *CalendarView) NextRect(origin overlay.Rect) overlay.Rect {
	return overlay.Rect{X: origin.X + 2 + calendarInnerWidth - navButtonWidth, Y: origin.Y + 1, W: navButtonWidth, H: 1}
}

func (c *CalendarView) key() gridKey {
	k := gridKey{Year: c.Cursor.Year, Month: c.Cursor.Month}
	if calendar.CursorFor(c.Today) == c.Cursor {
		k.TodayDay = c.Today.Day()
	}
	return k
}

// grid returns the week rows, rendering them on a cache miss.
func (c *CalendarView) grid() []string {
	k := c.key()
	if rows, ok := c.grids.Get(k); ok {
		return rows
	}

	var rows []string
	var sb strings.Builder
	col := 0
	for cell := range c.Cursor.Cells(c.Today) {
		text := strings.Repeat(" ", calendarCellWidth)
		switch {
		case cell.Placeholder():
		case cell.Today:
			text = " " + Styles.Today.Render(fmt.Sprintf("%3d", cell.Day))
		default:
			text = Styles.Day.Render(textutil.PadLeftVisual(fmt.Sprint(cell.Day), calendarCellWidth))
		}
		sb.WriteString(text)
		col++
		if col == 7 {
			rows = append(rows, sb.String())
			sb.Reset()
			col = 0
		}
	}
	if col > 0 {
		sb.WriteString(strings.Repeat(" ", (7-col)*calendarCellWidth))
		rows = append(rows, sb.String())
	}

	c.grids.Add(k, rows)
	return rows
}

// View implements View.
func (c *CalendarView) View() string {
	titleWidth := calendarInnerWidth - 2*navButtonWidth
	header := Styles.NavBtn.Render(" < ") +
		Styles.Title.Render(textutil.Center(c.Cursor.Title(), titleWidth)) +
		Styles.NavBtn.Render(" > ")

	var names strings.Builder
	for _, d := range calendar.DayNames {
		names.WriteString(textutil.PadLeftVisual(d, calendarCellWidth))
	}

	lines := []string{header, Styles.DayName.Render(names.String())}
	lines = append(lines, c.grid()...)
	return Styles.Panel.Render(strings.Join(lines, "\n"))
}
