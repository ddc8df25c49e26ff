// Package ui is the Galion desktop shell built on Bubble Tea.
//
// Surfaces:
//   - BarView: OS name, status items, clock and the calendar trigger
//   - DesktopView: the desktop with the launcher glyph
//   - CalendarView / LauncherView: the two overlay panels
//   - Shell: root model; routes presses through the overlay controller
//     before any control sees them
//
// Panels are painted bottom to top onto a Canvas; the calendar sits above
// the launcher.
package ui
