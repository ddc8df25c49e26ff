package ui

// Focus IDs of the shell's surfaces.
const (
	FocusDesktop  = "desktop"
	FocusCalendar = "calendar"
	FocusLauncher = "launcher"
)

// FocusManager tracks which surface receives keyboard input and rotates
// focus across the surfaces that are currently on screen.
type FocusManager struct {
	Current  string   // ID of the focused surface
	Order    []string // Tab order, rebuilt whenever an overlay opens or closes
	OnChange func(from, to string)
}

// NewFocusManager focuses the desktop.
func NewFocusManager() *FocusManager {
	return &FocusManager{Current: FocusDesktop, Order: []string{FocusDesktop}}
}

// SetOrder replaces the tab order. Focus stays where it is if that surface is
// still in the order, otherwise it falls back to the first entry.
func (f *FocusManager) SetOrder(order []string) {
	f.Order = order
	for _, id := range order {
		if id == f.Current {
			return
		}
	}
	if len(order) == 0 {
		f.change("")
		return
	}
	f.change(order[0])
}

// Next advances focus to the next surface in order.
// Returns the new current focus ID.
func (f *FocusManager) Next() string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := f.index()
	f.change(f.Order[(idx+1)%len(f.Order)])
	return f.Current
}

// Prev moves focus to the previous surface in order.
func (f *FocusManager) Prev() string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := f.index() - 1
	if idx < 0 {
		idx = len(f.Order) - 1
	}
	f.change(f.Order[idx])
	return f.Current
}

// SetFocus focuses the given surface.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id string) bool {
	for _, o := range f.Order {
		if o == id {
			f.change(id)
			return true
		}
	}
	return false
}

func (f *FocusManager) index() int {
	for i, id := range f.Order {
		if id == f.Current {
			return i
		}
	}
	return -1
}

func (f *FocusManager) change(to string) {
	from := f.Current
	f.Current = to
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
}
