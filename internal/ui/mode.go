package ui

// Mode is the surface that receives keyboard input. It follows keyboard
// focus and filters which keybind hints the footer shows.
type Mode int

const (
	ModeDesktop Mode = iota
	ModeCalendar
	ModeLauncher
)

func (m Mode) String() string {
	switch m {
	case ModeDesktop:
		return "Desktop"
	case ModeCalendar:
		return "Calendar"
	case ModeLauncher:
		return "Launcher"
	default:
		return "Unknown"
	}
}
