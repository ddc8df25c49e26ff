package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"galion/internal/overlay"
)

// View is one surface of the shell: bar, desktop, calendar panel, launcher
// panel or footer. Implements Bubble Tea's Init/Update/View.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// BoundsFunc returns the surface's rectangle given terminal dimensions.
type BoundsFunc func(width, height int) overlay.Rect

// Panel places a View on screen. Shown reports whether the panel is
// currently mounted; nil means always.
type Panel struct {
	ID     string
	View   View
	Bounds BoundsFunc
	Shown  func() bool
}

// Mounted reports whether the panel is on screen.
func (p Panel) Mounted() bool {
	return p.Shown == nil || p.Shown()
}

// Layout arranges panels bottom to top and defines focus order.
type Layout interface {
	Panels() []Panel
	FocusOrder() []string
}
