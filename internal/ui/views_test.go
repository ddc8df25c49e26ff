package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"galion/internal/apps"
	"galion/internal/calendar"
	"galion/internal/clock"
	"galion/internal/overlay"
)

func TestCanvas_PaintCoversAndClips(t *testing.T) {
	c := NewCanvas(10, 3)
	c.Paint(overlay.Rect{X: 0, Y: 0, W: 10, H: 3}, "aaaaaaaaaa\naaaaaaaaaa\naaaaaaaaaa")
	c.Paint(overlay.Rect{X: 6, Y: 1, W: 6, H: 5}, "bbbbbb\nb")

	got := strings.Split(ansi.Strip(c.String()), "\n")
	want := []string{"aaaaaaaaaa", "aaaaaabbbb", "aaaaaab   "}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCanvas_PaintOffscreenIsIgnored(t *testing.T) {
	c := NewCanvas(4, 1)
	c.Paint(overlay.Rect{X: 4, Y: 0, W: 2, H: 1}, "zz")
	c.Paint(overlay.Rect{X: 0, Y: 3, W: 2, H: 1}, "zz")
	if got := ansi.Strip(c.String()); got != "    " {
		t.Errorf("canvas = %q", got)
	}
}

func TestBarView_TriggerIsOneColumnFromRightEdge(t *testing.T) {
	b := &BarView{OSName: "Galion OS", StatusItems: []string{"WiFi"}}
	b.Update(tea.WindowSizeMsg{Width: 60, Height: 20})

	r := b.TriggerRect()
	if r.X != 60-len(CalendarTriggerLabel)-1 || r.Y != 0 {
		t.Errorf("trigger rect = %+v", r)
	}
	line := ansi.Strip(b.View())
	if !strings.HasSuffix(line, CalendarTriggerLabel+" ") {
		t.Errorf("bar %q should end with trigger and one space", line)
	}
}

func TestBarView_NarrowDropsStatusThenDate(t *testing.T) {
	b := &BarView{
		OSName:      "Galion OS",
		StatusItems: []string{"WiFi", "Battery", "Sound"},
		Reading:     clock.Reading{Time: "10:30:00", Date: "Wednesday, February 14, 2024"},
		Width:       60,
	}
	line := ansi.Strip(b.View())
	if strings.Contains(line, "WiFi") {
		t.Errorf("status items should be dropped: %q", line)
	}
	if !strings.Contains(line, "February") {
		t.Errorf("date should still fit: %q", line)
	}
	if w := ansi.StringWidth(line); w != 60 {
		t.Errorf("width = %d, want 60", w)
	}

	b.Width = 30
	line = ansi.Strip(b.View())
	if strings.Contains(line, "February") || !strings.Contains(line, "10:30:00") {
		t.Errorf("narrow bar = %q", line)
	}
}

func TestCalendarView_Layout(t *testing.T) {
	v := NewCalendarView(4)
	v.Cursor = calendar.Cursor{Year: 2024, Month: 1}
	v.Today = time.Date(2024, time.February, 14, 0, 0, 0, 0, time.UTC)

	w, h := v.Size()
	if w != 32 || h != 9 {
		t.Errorf("size = %dx%d, want 32x9", w, h)
	}
	lines := strings.Split(ansi.Strip(v.View()), "\n")
	if len(lines) != h {
		t.Fatalf("view has %d lines, want %d", len(lines), h)
	}
	if !strings.Contains(lines[1], "<") || !strings.Contains(lines[1], "February 2024") || !strings.Contains(lines[1], ">") {
		t.Errorf("header = %q", lines[1])
	}
	if !strings.Contains(lines[2], "Sun") || !strings.Contains(lines[2], "Sat") {
		t.Errorf("day names = %q", lines[2])
	}
	// Feb 1 2024 is a Thursday: four blank cells, then 1.
	if !strings.HasSuffix(strings.TrimRight(lines[3], " │"), "1   2   3") {
		t.Errorf("first week = %q", lines[3])
	}

	origin := overlay.Rect{X: 10, Y: 1, W: w, H: h}
	if got := v.PrevRect(origin); got != (overlay.Rect{X: 12, Y: 2, W: 3, H: 1}) {
		t.Errorf("prev rect = %+v", got)
	}
	if got := v.NextRect(origin); got != (overlay.Rect{X: 37, Y: 2, W: 3, H: 1}) {
		t.Errorf("next rect = %+v", got)
	}
}

func TestCalendarView_SixWeekMonth(t *testing.T) {
	v := NewCalendarView(4)
	v.Cursor = calendar.Cursor{Year: 2024, Month: 2} // March 2024 starts on a Friday
	if _, h := v.Size(); h != 10 {
		t.Errorf("height = %d, want 10", h)
	}
}

func TestCalendarView_GridIsCached(t *testing.T) {
	v := NewCalendarView(2)
	v.Cursor = calendar.Cursor{Year: 2024, Month: 1}
	first := v.View()
	if v.grids.Len() != 1 {
		t.Fatalf("cache len = %d, want 1", v.grids.Len())
	}
	if v.View() != first {
		t.Error("cached render differs")
	}

	v.Today = time.Date(2024, time.February, 3, 0, 0, 0, 0, time.UTC)
	v.View()
	if v.grids.Len() != 2 {
		t.Errorf("today change should render a new grid, cache len = %d", v.grids.Len())
	}
}

func TestLauncherView_GridAndTiles(t *testing.T) {
	l := NewLauncherView(apps.NewCatalog(nil))
	l.SetWidth(100)

	w, h := l.Size()
	if w != launcherMaxWidth || h != 12 {
		t.Errorf("size = %dx%d, want %dx12", w, h, launcherMaxWidth)
	}
	rects := l.TileRects(overlay.Rect{X: 9, Y: 2})
	if len(rects) != len(apps.Placeholders) {
		t.Fatalf("tiles = %d", len(rects))
	}
	if rects[0] != (overlay.Rect{X: 11, Y: 5, W: tileWidth, H: 1}) {
		t.Errorf("tile 0 = %+v", rects[0])
	}
	if rects[3] != (overlay.Rect{X: 11, Y: 6, W: tileWidth, H: 1}) {
		t.Errorf("tile 3 = %+v", rects[3])
	}

	lines := strings.Split(ansi.Strip(l.View()), "\n")
	if len(lines) != h {
		t.Fatalf("view has %d lines, want %d", len(lines), h)
	}
	for i, line := range lines {
		if got := ansi.StringWidth(line); got != w {
			t.Errorf("line %d width = %d, want %d", i, got, w)
		}
	}
	if !strings.Contains(lines[3], "File Manager") || !strings.Contains(lines[4], "Text Editor") {
		t.Errorf("grid rows = %q / %q", lines[3], lines[4])
	}
}

func TestLauncherView_NarrowScreen(t *testing.T) {
	l := NewLauncherView(apps.NewCatalog(nil))
	l.SetWidth(20)
	if l.Width != launcherMinWidth {
		t.Errorf("width = %d, want %d", l.Width, launcherMinWidth)
	}
	if l.cols() != 1 {
		t.Errorf("cols = %d, want 1", l.cols())
	}
}

func TestLauncherView_ArrowsMoveSelection(t *testing.T) {
	l := NewLauncherView(apps.NewCatalog(nil))
	l.SetWidth(100)

	l.Update(tea.KeyMsg{Type: tea.KeyRight})
	l.Update(tea.KeyMsg{Type: tea.KeyDown})
	if l.Selected != 4 {
		t.Errorf("selected = %d, want 4", l.Selected)
	}
	l.Update(tea.KeyMsg{Type: tea.KeyDown})
	if l.Selected != 5 {
		t.Errorf("selected = %d, want clamp to 5", l.Selected)
	}
}

func TestLauncherView_NoMatches(t *testing.T) {
	l := NewLauncherView(apps.NewCatalog(nil))
	l.Focus()
	for _, r := range "zzz" {
		l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if len(l.Apps) != 0 {
		t.Fatalf("apps = %+v, want none", l.Apps)
	}
	if _, ok := l.SelectedApp(); ok {
		t.Error("nothing should be selected")
	}
	if !strings.Contains(ansi.Strip(l.View()), "No matching apps") {
		t.Error("missing empty state")
	}
}

func TestFocusManager(t *testing.T) {
	var changes []string
	f := NewFocusManager()
	f.OnChange = func(from, to string) { changes = append(changes, from+">"+to) }

	f.SetOrder([]string{FocusDesktop, FocusLauncher, FocusCalendar})
	if !f.SetFocus(FocusCalendar) {
		t.Fatal("calendar should be focusable")
	}
	if f.Next() != FocusDesktop || f.Prev() != FocusCalendar {
		t.Error("focus should wrap around")
	}

	f.SetOrder([]string{FocusDesktop})
	if f.Current != FocusDesktop {
		t.Errorf("current = %q, want fallback to desktop", f.Current)
	}
	if f.SetFocus(FocusLauncher) {
		t.Error("launcher is not in order")
	}

	want := "desktop>calendar,calendar>desktop,desktop>calendar,calendar>desktop"
	if got := strings.Join(changes, ","); got != want {
		t.Errorf("changes = %s, want %s", got, want)
	}
}

func TestDesktopView_Glyph(t *testing.T) {
	d := &DesktopView{}
	d.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	lines := strings.Split(ansi.Strip(d.View()), "\n")
	if len(lines) != 8 {
		t.Fatalf("lines = %d, want 8", len(lines))
	}
	// Desktop row 0 is screen row 1.
	top := d.GlyphRect().Y - 1
	if !strings.Contains(lines[top+1], "G") {
		t.Errorf("glyph row = %q", lines[top+1])
	}
	if !strings.Contains(lines[top+3], "Apps") {
		t.Errorf("label row = %q", lines[top+3])
	}
}

func TestMode_String(t *testing.T) {
	for m, want := range map[Mode]string{ModeDesktop: "Desktop", ModeCalendar: "Calendar", ModeLauncher: "Launcher", Mode(9): "Unknown"} {
		if m.String() != want {
			t.Errorf("%d.String() = %q, want %q", m, m.String(), want)
		}
	}
}

func TestBarView_TriggerMatchesRenderAtAnyWidth(t *testing.T) {
	b := &BarView{
		OSName:      "Galion OS",
		StatusItems: []string{"WiFi", "Battery", "Sound"},
		Reading:     clock.Reading{Time: "10:30:00", Date: "Wednesday, February 14, 2024"},
	}
	for w := 7; w <= 90; w++ {
		b.Width = w
		line := ansi.Strip(b.View())
		if got := ansi.StringWidth(line); got != w {
			t.Errorf("width %d: rendered %d columns: %q", w, got, line)
			continue
		}
		idx := strings.Index(line, CalendarTriggerLabel)
		if idx < 0 {
			t.Errorf("width %d: trigger missing: %q", w, line)
			continue
		}
		if x := ansi.StringWidth(line[:idx]); x != b.TriggerRect().X {
			t.Errorf("width %d: trigger drawn at %d, rect at %d", w, x, b.TriggerRect().X)
		}
	}
}
