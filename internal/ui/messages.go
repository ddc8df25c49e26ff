package ui

import "galion/internal/apps"

// ToggleCalendarMsg is sent by the calendar trigger keybinds (c, SPC c).
type ToggleCalendarMsg struct{}

// ToggleLauncherMsg is sent by the launcher trigger keybinds (a, SPC a).
type ToggleLauncherMsg struct{}

// PreviousMonthMsg moves the calendar back a month ([, SPC m p).
type PreviousMonthMsg struct{}

// NextMonthMsg moves the calendar forward a month (], SPC m n).
type NextMonthMsg struct{}

// CloseOverlaysMsg hides every shown overlay (esc).
type CloseOverlaysMsg struct{}

// LaunchAppMsg is sent when an app tile is double-pressed or enter is hit on
// the selected tile.
type LaunchAppMsg struct {
	App apps.App
}

// ShutdownMsg releases the shell's resources and quits (q, SPC q, ctrl+c).
type ShutdownMsg struct{}
