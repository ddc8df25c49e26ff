// Package overlay decides when the shell's overlays are shown.
//
// Each overlay is a two-state machine (hidden, shown) flipped by its trigger.
// A single pointer-down evaluation hides every shown overlay whose
// trigger-and-panel region does not contain the pressed cell. Overlays are
// evaluated independently, so one press can dismiss several.
package overlay

import (
	"time"

	"galion/internal/calendar"
)

// Name identifies an overlay in the registry.
type Name string

const (
	Calendar Name = "calendar"
	Launcher Name = "launcher"
)

// Cause records why an overlay changed visibility.
type Cause string

const (
	CauseToggle  Cause = "toggle"
	CauseOutside Cause = "outside"
	CauseClose   Cause = "close"
)

// Transition is one visibility change.
type Transition struct {
	Overlay Name
	Visible bool
	Cause   Cause
}

// Observer is told about every transition, in order.
type Observer interface {
	Transition(Transition)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Transition)

// Transition implements Observer.
func (f ObserverFunc) Transition(t Transition) { f(t) }

// State is the pair of visibility flags the shell renders from.
type State struct {
	CalendarVisible bool
	LauncherVisible bool
}

type entry struct {
	name    Name
	visible bool
	region  Region
}

// Controller owns overlay visibility and the calendar cursor. It is not safe
// for concurrent use; the shell drives it from a single event loop.
type Controller struct {
	entries  []*entry
	cursor   calendar.Cursor
	now      func() time.Time
	observer Observer
}

// NewController registers the calendar and launcher overlays with their
// trigger-and-panel regions. Both start hidden.
func NewController(calendarRegion, launcherRegion Region) *Controller {
	c := &Controller{now: time.Now}
	c.Register(Calendar, calendarRegion)
	c.Register(Launcher, launcherRegion)
	c.cursor = calendar.CursorFor(c.now())
	return c
}

// SetClock replaces the source used to re-derive the calendar cursor.
func (c *Controller) SetClock(now func() time.Time) {
	if now != nil {
		c.now = now
	}
}

// SetObserver installs the transition observer. nil removes it.
func (c *Controller) SetObserver(o Observer) {
	c.observer = o
}

// Register adds an overlay to the dismissal registry, hidden. Registering an
// existing name replaces its region and keeps its visibility.
func (c *Controller) Register(name Name, region Region) {
	if e := c.lookup(name); e != nil {
		e.region = region
		return
	}
	c.entries = append(c.entries, &entry{name: name, region: region})
}

func (c *Controller) lookup(name Name) *entry {
	for _, e := range c.entries {
		if e.name == name {
			return e
		}
	}
	return nil
}

// Visible reports whether the named overlay is shown.
func (c *Controller) Visible(name Name) bool {
	e := c.lookup(name)
	return e != nil && e.visible
}

// State returns the current visibility flags.
func (c *Controller) State() State {
	return State{
		CalendarVisible: c.Visible(Calendar),
		LauncherVisible: c.Visible(Launcher),
	}
}

// Toggle flips the named overlay. Unknown names are ignored.
func (c *Controller) Toggle(name Name) {
	e := c.lookup(name)
	if e == nil {
		return
	}
	c.set(e, !e.visible, CauseToggle)
}

// ToggleCalendar flips the calendar overlay.
func (c *Controller) ToggleCalendar() { c.Toggle(Calendar) }

// ToggleLauncher flips the launcher overlay.
func (c *Controller) ToggleLauncher() { c.Toggle(Launcher) }

// Close hides the named overlay if it is shown.
func (c *Controller) Close(name Name) {
	if e := c.lookup(name); e != nil && e.visible {
		c.set(e, false, CauseClose)
	}
}

// CloseAll hides every shown overlay. It reports whether anything changed.
func (c *Controller) CloseAll() bool {
	changed := false
	for _, e := range c.entries {
		if e.visible {
			c.set(e, false, CauseClose)
			changed = true
		}
	}
	return changed
}

// OnPointerDown evaluates one press against every registered overlay and
// returns the overlays it dismissed. Hidden overlays are skipped.
func (c *Controller) OnPointerDown(target Point) []Name {
	var dismissed []Name
	for _, e := range c.entries {
		if !e.visible {
			continue
		}
		if e.region != nil && e.region.Contains(target) {
			continue
		}
		c.set(e, false, CauseOutside)
		dismissed = append(dismissed, e.name)
	}
	return dismissed
}

func (c *Controller) set(e *entry, visible bool, cause Cause) {
	e.visible = visible
	if visible && e.name == Calendar {
		// The panel remounts on every show and starts at the current month.
		c.cursor = calendar.CursorFor(c.now())
	}
	if c.observer != nil {
		c.observer.Transition(Transition{Overlay: e.name, Visible: visible, Cause: cause})
	}
}

// Cursor returns the month the calendar displays.
func (c *Controller) Cursor() calendar.Cursor { return c.cursor }

// PreviousMonth moves the calendar one month back.
func (c *Controller) PreviousMonth() { c.cursor = c.cursor.Previous() }

// NextMonth moves the calendar one month forward.
func (c *Controller) NextMonth() { c.cursor = c.cursor.Next() }

// SetCursor moves the calendar to an arbitrary month.
func (c *Controller) SetCursor(cur calendar.Cursor) {
	c.cursor = calendar.NewCursor(cur.Year, cur.Month)
}
