package ui

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/attribute"

	"galion/internal/apps"
	"galion/internal/clock"
	"galion/internal/overlay"
	"galion/internal/trace"
)

// DefaultDoubleClick is the window in which two presses on the same app tile
// count as a double press.
const DefaultDoubleClick = 500 * time.Millisecond

// Options configures a Shell. Zero values fall back to defaults.
type Options struct {
	OSName            string
	StatusItems       []string
	Clock             clock.Clock
	TimeLayout        string
	DateLayout        string
	Catalog           *apps.Catalog
	CalendarCacheSize int
	DoubleClick       time.Duration
	Tracer            *trace.Tracer
}

// Shell is the root model: bar, desktop, both overlays and the footer.
// All state changes happen inside Update, one message at a time.
type Shell struct {
	Controller *overlay.Controller
	Clock      *clock.Service
	Ticker     *clock.Ticker
	Focus      *FocusManager
	KeyHandler *KeyHandler
	Tracer     *trace.Tracer

	Bar      *BarView
	Desktop  *DesktopView
	Calendar *CalendarView
	Launcher *LauncherView

	DoubleClick time.Duration

	width, height int
	lastPress     tilePress
	tornDown      bool
	// Commands raised by observers during the current Update.
	pending []tea.Cmd
}

// tilePress remembers the previous press on an app tile.
type tilePress struct {
	app apps.App
	at  time.Time
	ok  bool
}

// Ensure the adapter can be used as tea.Model.
var _ tea.Model = (*shellModelAdapter)(nil)

// shellModelAdapter wraps Shell to implement tea.Model.
type shellModelAdapter struct {
	*Shell
}

// Init implements tea.Model.
func (a *shellModelAdapter) Init() tea.Cmd { return a.Shell.Init() }

// Update implements tea.Model.
func (a *shellModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, a.Shell.Update(msg)
}

// View implements tea.Model.
func (a *shellModelAdapter) View() string { return a.Shell.View() }

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (s *Shell) AsTeaModel() tea.Model {
	return &shellModelAdapter{Shell: s}
}

// NewShell wires the overlay controller to the shell's live layout.
func NewShell(opts Options) *Shell {
	if opts.OSName == "" {
		opts.OSName = "Galion OS"
	}
	if opts.StatusItems == nil {
		opts.StatusItems = []string{"WiFi", "Battery", "Sound"}
	}
	if opts.Clock == nil {
		opts.Clock = clock.System{}
	}
	if opts.Catalog == nil {
		opts.Catalog = apps.NewCatalog(nil)
	}
	if opts.DoubleClick <= 0 {
		opts.DoubleClick = DefaultDoubleClick
	}
	if opts.Tracer == nil {
		opts.Tracer = trace.NewNoopTracer()
	}

	svc := clock.NewService(opts.Clock)
	if opts.TimeLayout != "" {
		svc.TimeLayout = opts.TimeLayout
	}
	if opts.DateLayout != "" {
		svc.DateLayout = opts.DateLayout
	}

	s := &Shell{
		Clock:       svc,
		Ticker:      clock.NewTicker(),
		Focus:       NewFocusManager(),
		KeyHandler:  NewKeyHandler(newKeybindRegistry()),
		Tracer:      opts.Tracer,
		Bar:         &BarView{OSName: opts.OSName, StatusItems: opts.StatusItems},
		Desktop:     &DesktopView{},
		Calendar:    NewCalendarView(opts.CalendarCacheSize),
		Launcher:    NewLauncherView(opts.Catalog),
		DoubleClick: opts.DoubleClick,
	}

	calendarPanel := overlay.RegionFunc(func() ([]overlay.Rect, bool) {
		l := s.layout()
		if !l.laidOut || !s.Controller.Visible(overlay.Calendar) {
			return nil, l.laidOut
		}
		return []overlay.Rect{l.calendarPanel}, true
	})
	calendarRegion := overlay.RegionFunc(func() ([]overlay.Rect, bool) {
		l := s.layout()
		if !l.laidOut {
			return nil, false
		}
		rects := []overlay.Rect{l.calendarTrigger}
		if s.Controller.Visible(overlay.Calendar) {
			rects = append(rects, l.calendarPanel)
		}
		return rects, true
	})
	launcherRegion := overlay.RegionFunc(func() ([]overlay.Rect, bool) {
		l := s.layout()
		if !l.laidOut {
			return nil, false
		}
		rects := []overlay.Rect{l.launcherTrigger}
		if s.Controller.Visible(overlay.Launcher) {
			rects = append(rects, l.launcherPanel)
		}
		return rects, true
	})

	// The calendar panel is drawn above the launcher panel.
	s.Controller = overlay.NewController(calendarRegion, overlay.Occluded(launcherRegion, calendarPanel))
	s.Controller.SetClock(svc.Now)
	s.Controller.SetObserver(overlay.ObserverFunc(s.onTransition))
	s.Focus.OnChange = s.onFocusChange
	return s
}

// newKeybindRegistry binds the shell's keys. Single keys act directly; the
// SPC leader shows the same actions in the footer.
func newKeybindRegistry() *KeybindRegistry {
	send := func(msg tea.Msg) tea.Cmd { return func() tea.Msg { return msg } }
	reg := NewKeybindRegistry()
	reg.Bind("q", send(ShutdownMsg{}))
	reg.Bind("c", send(ToggleCalendarMsg{}))
	reg.Bind("a", send(ToggleLauncherMsg{}))
	reg.Bind("[", send(PreviousMonthMsg{}))
	reg.Bind("]", send(NextMonthMsg{}))
	reg.BindWithDesc("SPC q", send(ShutdownMsg{}), "Quit")
	reg.BindWithDesc("SPC c", send(ToggleCalendarMsg{}), "Calendar")
	reg.BindWithDesc("SPC a", send(ToggleLauncherMsg{}), "Apps")
	reg.BindWithDescForMode("SPC m p", send(PreviousMonthMsg{}), "Previous month", []Mode{ModeCalendar})
	reg.BindWithDescForMode("SPC m n", send(NextMonthMsg{}), "Next month", []Mode{ModeCalendar})
	return reg
}

// Mode returns the surface receiving keyboard input.
func (s *Shell) Mode() Mode {
	switch s.Focus.Current {
	case FocusCalendar:
		return ModeCalendar
	case FocusLauncher:
		return ModeLauncher
	default:
		return ModeDesktop
	}
}

// State returns the overlay visibility flags.
func (s *Shell) State() overlay.State { return s.Controller.State() }

// Init mounts the shell: starts the clock and enables mouse reporting.
func (s *Shell) Init() tea.Cmd {
	s.tornDown = false
	log.Printf("clock: ticker started")
	return tea.Batch(s.Ticker.Start(), tea.EnableMouseCellMotion)
}

// Teardown releases the clock timer. Safe to call more than once.
func (s *Shell) Teardown() {
	if s.tornDown {
		return
	}
	s.tornDown = true
	s.Ticker.Stop()
	log.Printf("clock: ticker stopped")
}

// Update handles one message.
func (s *Shell) Update(msg tea.Msg) tea.Cmd {
	cmd := s.update(msg)
	if len(s.pending) == 0 {
		return cmd
	}
	cmds := append(s.pending, cmd)
	s.pending = nil
	return tea.Batch(cmds...)
}

func (s *Shell) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width, s.height = msg.Width, msg.Height
		s.Bar.Update(msg)
		s.Desktop.Update(msg)
		s.Launcher.SetWidth(msg.Width)
		return nil
	case clock.TickMsg:
		ok, next := s.Ticker.Update(msg)
		if ok {
			s.Bar.Reading = s.Clock.Tick()
			s.Calendar.Today = s.Clock.Now()
		}
		return next
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || tea.MouseEvent(msg).IsWheel() {
			return nil
		}
		return s.handlePointerDown(overlay.Point{X: msg.X, Y: msg.Y})
	case tea.KeyMsg:
		return s.handleKey(msg)
	case ToggleCalendarMsg:
		defer s.Tracer.BeginEvent("shell.toggle_calendar")()
		s.Controller.ToggleCalendar()
	case ToggleLauncherMsg:
		defer s.Tracer.BeginEvent("shell.toggle_launcher")()
		s.Controller.ToggleLauncher()
	case PreviousMonthMsg:
		if s.Controller.Visible(overlay.Calendar) {
			s.Controller.PreviousMonth()
		}
	case NextMonthMsg:
		if s.Controller.Visible(overlay.Calendar) {
			s.Controller.NextMonth()
		}
	case CloseOverlaysMsg:
		defer s.Tracer.BeginEvent("shell.close_overlays")()
		s.Controller.CloseAll()
	case LaunchAppMsg:
		apps.Launch(msg.App)
	case ShutdownMsg:
		s.Teardown()
		return tea.Sequence(tea.DisableMouse, tea.Quit)
	default:
		if s.Mode() == ModeLauncher {
			// Cursor blink for the filter input.
			_, cmd := s.Launcher.Update(msg)
			return cmd
		}
	}
	return nil
}

// handlePointerDown runs the global outside-press check first, then lets the
// press act on whatever control it landed on.
func (s *Shell) handlePointerDown(p overlay.Point) tea.Cmd {
	defer s.Tracer.BeginEvent("shell.pointer_down",
		attribute.Int("galion.pointer.x", p.X),
		attribute.Int("galion.pointer.y", p.Y),
	)()

	s.Controller.OnPointerDown(p)

	l := s.layout()
	if !l.laidOut {
		return nil
	}
	calendarShown := s.Controller.Visible(overlay.Calendar)
	launcherShown := s.Controller.Visible(overlay.Launcher)
	inCalendar := calendarShown && l.calendarPanel.Contains(p)

	switch {
	case l.calendarTrigger.Contains(p):
		s.Controller.ToggleCalendar()
	case l.launcherTrigger.Contains(p) && !inCalendar:
		s.Controller.ToggleLauncher()
	case inCalendar:
		s.Focus.SetFocus(FocusCalendar)
		if l.prevMonth.Contains(p) {
			s.Controller.PreviousMonth()
		} else if l.nextMonth.Contains(p) {
			s.Controller.NextMonth()
		}
	case launcherShown && l.launcherPanel.Contains(p):
		s.Focus.SetFocus(FocusLauncher)
		return s.pressTile(l, p)
	}
	return nil
}

// pressTile selects the tile under p; a second press on the same app within
// the double-click window launches it.
func (s *Shell) pressTile(l shellLayout, p overlay.Point) tea.Cmd {
	for i, r := range l.tiles {
		if !r.Contains(p) {
			continue
		}
		s.Launcher.Selected = i
		app := s.Launcher.Apps[i]
		now := s.Clock.Now()
		prev := s.lastPress
		s.lastPress = tilePress{app: app, at: now, ok: true}
		if prev.ok && prev.app.ID == app.ID && now.Sub(prev.at) <= s.DoubleClick {
			s.lastPress = tilePress{}
			return func() tea.Msg { return LaunchAppMsg{App: app} }
		}
		return nil
	}
	return nil
}

func (s *Shell) handleKey(msg tea.KeyMsg) tea.Cmd {
	k := msg.String()
	if k == "ctrl+c" {
		return func() tea.Msg { return ShutdownMsg{} }
	}

	// The launcher filter owns the keyboard while focused.
	if s.Mode() == ModeLauncher {
		switch k {
		case "esc":
			s.Controller.Close(overlay.Launcher)
			return nil
		case "tab":
			s.Focus.Next()
			return nil
		}
		_, cmd := s.Launcher.Update(msg)
		return cmd
	}

	if consumed, cmd := s.KeyHandler.Handle(msg); consumed {
		return cmd
	}
	switch k {
	case "esc":
		return func() tea.Msg { return CloseOverlaysMsg{} }
	case "tab":
		s.Focus.Next()
	case "shift+tab":
		s.Focus.Prev()
	}
	return nil
}

// onTransition keeps focus and the panels in step with the controller.
func (s *Shell) onTransition(tr overlay.Transition) {
	log.Printf("overlay: %s visible=%v (%s)", tr.Overlay, tr.Visible, tr.Cause)
	if tr.Overlay == overlay.Launcher && tr.Visible {
		s.Launcher.Reset()
		s.lastPress = tilePress{}
	}

	s.Focus.SetOrder(s.FocusOrder())
	if tr.Visible {
		s.Focus.SetFocus(string(tr.Overlay))
	}
	s.Tracer.Transition(tr)
}

func (s *Shell) onFocusChange(from, to string) {
	if to == FocusLauncher {
		if cmd := s.Launcher.Focus(); cmd != nil {
			s.pending = append(s.pending, cmd)
		}
	} else if from == FocusLauncher {
		s.Launcher.Blur()
	}
}
