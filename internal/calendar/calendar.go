// Package calendar provides month arithmetic for the calendar overlay.
//
// Months are 0-based (0 = January) and out-of-range months normalize into
// neighbouring years, so month 12 of 2024 is January 2025 and month -1 of
// 2024 is December 2023.
package calendar

import (
	"fmt"
	"iter"
	"time"
)

// MonthNames are indexed by 0-based month.
var MonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// DayNames is the weekday header, starting on Sunday.
var DayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// firstOf returns midnight UTC on the first day of the (normalized) month.
func firstOf(year, month int) time.Time {
	return time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
}

// DaysInMonth returns the number of days in the given 0-based month.
func DaysInMonth(year, month int) int {
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of the 1st of the month, 0 = Sunday.
func FirstWeekday(year, month int) int {
	return int(firstOf(year, month).Weekday())
}

// Cursor is the month currently displayed by the calendar.
type Cursor struct {
	Year  int
	Month int // 0-11
}

// NewCursor returns a normalized cursor, so NewCursor(2024, 12) is (2025, 0).
func NewCursor(year, month int) Cursor {
	t := firstOf(year, month)
	return Cursor{Year: t.Year(), Month: int(t.Month()) - 1}
}

// CursorFor returns the cursor for the month containing t.
func CursorFor(t time.Time) Cursor {
	return Cursor{Year: t.Year(), Month: int(t.Month()) - 1}
}

// Previous returns the cursor one month earlier.
func (c Cursor) Previous() Cursor {
	return NewCursor(c.Year, c.Month-1)
}

// Next returns the cursor one month later.
func (c Cursor) Next() Cursor {
	return NewCursor(c.Year, c.Month+1)
}

// Title renders the header label, e.g. "January 2024".
func (c Cursor) Title() string {
	n := NewCursor(c.Year, c.Month)
	return fmt.Sprintf("%s %d", MonthNames[n.Month], n.Year)
}

// Cell is one slot of the month grid. Placeholders have Day == 0.
type Cell struct {
	Day   int
	Today bool
}

// Placeholder reports whether the cell pads the grid before the 1st.
func (c Cell) Placeholder() bool { return c.Day == 0 }

// Cells yields the month grid: leading placeholders up to the first weekday,
// then one cell per day. The sequence can be ranged over any number of times.
func (c Cursor) Cells(today time.Time) iter.Seq[Cell] {
	n := NewCursor(c.Year, c.Month)
	lead := FirstWeekday(n.Year, n.Month)
	days := DaysInMonth(n.Year, n.Month)
	thisMonth := today.Year() == n.Year && int(today.Month())-1 == n.Month
	return func(yield func(Cell) bool) {
		for range lead {
			if !yield(Cell{}) {
				return
			}
		}
		for d := 1; d <= days; d++ {
			if !yield(Cell{Day: d, Today: thisMonth && today.Day() == d}) {
				return
			}
		}
	}
}
