package ui

import "galion/internal/overlay"

// shellLayout holds the screen rectangles of every pressable control for the
// current terminal size. laidOut is false until the first WindowSizeMsg.
type shellLayout struct {
	laidOut bool

	calendarTrigger overlay.Rect
	calendarPanel   overlay.Rect
	prevMonth       overlay.Rect
	nextMonth       overlay.Rect

	launcherTrigger overlay.Rect
	launcherPanel   overlay.Rect
	tiles           []overlay.Rect
}

// layout measures the shell as it would be drawn right now. Panel rects are
// computed whether or not the panel is shown.
func (s *Shell) layout() shellLayout {
	if s.width <= 0 || s.height <= 0 {
		return shellLayout{}
	}
	s.Calendar.Cursor = s.Controller.Cursor()

	cw, ch := s.Calendar.Size()
	cal := overlay.Rect{X: max(0, s.width-cw-1), Y: 1, W: cw, H: ch}

	lw, lh := s.Launcher.Size()
	launcher := overlay.Rect{X: launcherX, Y: launcherY, W: lw, H: lh}

	return shellLayout{
		laidOut:         true,
		calendarTrigger: s.Bar.TriggerRect(),
		calendarPanel:   cal,
		prevMonth:       s.Calendar.PrevRect(cal),
		nextMonth:       s.Calendar.NextRect(cal),
		launcherTrigger: s.Desktop.GlyphRect(),
		launcherPanel:   launcher,
		tiles:           s.Launcher.TileRects(launcher),
	}
}

// Panels implements Layout. Panels are listed bottom to top; the calendar
// is drawn above the launcher.
func (s *Shell) Panels() []Panel {
	l := s.layout()
	return []Panel{
		{
			ID:     "bar",
			View:   s.Bar,
			Bounds: func(w, h int) overlay.Rect { return overlay.Rect{W: w, H: 1} },
		},
		{
			ID:     FocusDesktop,
			View:   s.Desktop,
			Bounds: func(w, h int) overlay.Rect { return overlay.Rect{Y: 1, W: w, H: max(0, h-2)} },
		},
		{
			ID:     FocusLauncher,
			View:   s.Launcher,
			Bounds: func(int, int) overlay.Rect { return l.launcherPanel },
			Shown:  func() bool { return s.Controller.Visible(overlay.Launcher) },
		},
		{
			ID:     FocusCalendar,
			View:   s.Calendar,
			Bounds: func(int, int) overlay.Rect { return l.calendarPanel },
			Shown:  func() bool { return s.Controller.Visible(overlay.Calendar) },
		},
	}
}

// FocusOrder implements Layout: the desktop, then each shown overlay.
func (s *Shell) FocusOrder() []string {
	order := []string{FocusDesktop}
	if s.Controller.Visible(overlay.Launcher) {
		order = append(order, FocusLauncher)
	}
	if s.Controller.Visible(overlay.Calendar) {
		order = append(order, FocusCalendar)
	}
	return order
}

// View paints every mounted panel and the footer.
func (s *Shell) View() string {
	if s.width <= 0 || s.height <= 0 {
		return ""
	}
	s.Bar.CalendarOpen = s.Controller.Visible(overlay.Calendar)
	s.Desktop.LauncherOpen = s.Controller.Visible(overlay.Launcher)
	s.Calendar.Today = s.Clock.Now()

	canvas := NewCanvas(s.width, s.height)
	for _, p := range s.Panels() {
		if !p.Mounted() {
			continue
		}
		canvas.Paint(p.Bounds(s.width, s.height), p.View.View())
	}
	canvas.Paint(
		overlay.Rect{Y: s.height - 1, W: s.width, H: 1},
		RenderFooter(s.KeyHandler, s.Mode(), s.width),
	)
	return canvas.String()
}
