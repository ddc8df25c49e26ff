// Package clock produces the bar's time and date strings on a 1 Hz cadence.
package clock

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	// DefaultTimeLayout renders two-digit hours, minutes and seconds.
	DefaultTimeLayout = "15:04:05"
	// DefaultDateLayout renders e.g. "Monday, January 2, 2006".
	DefaultDateLayout = "Monday, January 2, 2006"
	// Interval is the refresh cadence.
	Interval = time.Second
)

// Clock is the time source. Tests substitute a virtual clock.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock.
type System struct{}

// Now implements Clock.
func (System) Now() time.Time { return time.Now() }

// Reading is one pair of display strings.
type Reading struct {
	Time string
	Date string
}

// Service formats the current instant.
type Service struct {
	Clock      Clock
	TimeLayout string
	DateLayout string

	last Reading
}

// NewService returns a service with the default layouts.
func NewService(c Clock) *Service {
	return &Service{Clock: c, TimeLayout: DefaultTimeLayout, DateLayout: DefaultDateLayout}
}

// Tick formats the current instant and remembers it. With no clock source the
// previous reading is returned unchanged.
func (s *Service) Tick() Reading {
	if s.Clock == nil {
		return s.last
	}
	now := s.Clock.Now()
	s.last = Reading{
		Time: now.Format(layoutOr(s.TimeLayout, DefaultTimeLayout)),
		Date: now.Format(layoutOr(s.DateLayout, DefaultDateLayout)),
	}
	return s.last
}

// Last returns the most recent reading.
func (s *Service) Last() Reading { return s.last }

// Now returns the current instant, or the zero time without a clock source.
func (s *Service) Now() time.Time {
	if s.Clock == nil {
		return time.Time{}
	}
	return s.Clock.Now()
}

func layoutOr(layout, fallback string) string {
	if layout == "" {
		return fallback
	}
	return layout
}

// TickMsg is delivered once per interval while the ticker runs.
type TickMsg struct {
	Time time.Time
	gen  int
}

// Ticker is the scoped 1 Hz timer. Start arms it, Stop disarms it; a TickMsg
// from a stopped or superseded run is dropped by Update and schedules nothing.
type Ticker struct {
	Interval time.Duration

	gen     int
	running bool
}

// NewTicker returns a stopped ticker with the default interval.
func NewTicker() *Ticker {
	return &Ticker{Interval: Interval}
}

// Start arms the ticker and returns a command delivering the first tick
// immediately.
func (t *Ticker) Start() tea.Cmd {
	t.gen++
	t.running = true
	gen := t.gen
	return func() tea.Msg {
		return TickMsg{Time: time.Now(), gen: gen}
	}
}

// Stop disarms the ticker. Pending ticks become no-ops.
func (t *Ticker) Stop() {
	t.gen++
	t.running = false
}

// Running reports whether the ticker is armed.
func (t *Ticker) Running() bool { return t.running }

// Update accepts a tick. It reports whether the tick belongs to the current
// run and, if so, returns the command scheduling the next one.
func (t *Ticker) Update(msg TickMsg) (bool, tea.Cmd) {
	if !t.running || msg.gen != t.gen {
		return false, nil
	}
	gen := t.gen
	interval := t.Interval
	if interval <= 0 {
		interval = Interval
	}
	return true, tea.Tick(interval, func(now time.Time) tea.Msg {
		return TickMsg{Time: now, gen: gen}
	})
}
