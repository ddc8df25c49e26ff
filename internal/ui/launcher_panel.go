package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"galion/internal/apps"
	"galion/internal/overlay"
	"galion/internal/ui/textutil"
)

// Launcher panel geometry. The panel opens to the right of the glyph.
const (
	launcherX        = glyphX + 5 + 2
	launcherY        = glyphY
	launcherMaxWidth = 64
	launcherMinWidth = 24
	tileWidth        = 18
	// Filter line and blank line above the grid.
	gridOffset = 2
	// Blank line plus the five app-window lines below the grid.
	windowLines = 6
)

// LauncherView renders the app launcher panel: filter input, app grid and
// the app window placeholder.
type LauncherView struct {
	Filter   textinput.Model
	Apps     []apps.App // catalog filtered by the input
	Selected int
	Width    int // outer width

	catalog *apps.Catalog
}

// Ensure LauncherView implements View.
var _ View = (*LauncherView)(nil)

// NewLauncherView creates a launcher over catalog.
func NewLauncherView(catalog *apps.Catalog) *LauncherView {
	ti := textinput.New()
	ti.Prompt = "Search: "
	ti.Placeholder = "type to filter"
	ti.CharLimit = 32
	return &LauncherView{
		Filter:  ti,
		Apps:    catalog.All(),
		Width:   launcherMaxWidth,
		catalog: catalog,
	}
}

// Reset clears the filter and selection; the panel remounts on every show.
func (l *LauncherView) Reset() {
	l.Filter.Reset()
	l.Apps = l.catalog.All()
	l.Selected = 0
}

// Focus routes typing into the filter.
func (l *LauncherView) Focus() tea.Cmd { return l.Filter.Focus() }

// Blur stops routing typing into the filter.
func (l *LauncherView) Blur() { l.Filter.Blur() }

// Init implements View.
func (l *LauncherView) Init() tea.Cmd { return textinput.Blink }

// Update implements View. Arrows move the selection, enter launches the
// selected app, anything else edits the filter.
func (l *LauncherView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		cols := l.cols()
		switch msg.String() {
		case "left":
			l.move(-1)
			return l, nil
		case "right":
			l.move(1)
			return l, nil
		case "up":
			l.move(-cols)
			return l, nil
		case "down":
			l.move(cols)
			return l, nil
		case "enter":
			if app, ok := l.SelectedApp(); ok {
				return l, func() tea.Msg { return LaunchAppMsg{App: app} }
			}
			return l, nil
		}
	}

	before := l.Filter.Value()
	var cmd tea.Cmd
	l.Filter, cmd = l.Filter.Update(msg)
	if l.Filter.Value() != before {
		l.Apps = l.catalog.Filter(l.Filter.Value())
		l.Selected = 0
	}
	return l, cmd
}

func (l *LauncherView) move(delta int) {
	if len(l.Apps) == 0 {
		return
	}
	l.Selected = min(max(l.Selected+delta, 0), len(l.Apps)-1)
}

// SelectedApp returns the highlighted app.
func (l *LauncherView) SelectedApp() (apps.App, bool) {
	if l.Selected < 0 || l.Selected >= len(l.Apps) {
		return apps.App{}, false
	}
	return l.Apps[l.Selected], true
}

// SetWidth fits the panel into the space right of the glyph.
func (l *LauncherView) SetWidth(screenWidth int) {
	l.Width = min(max(screenWidth-launcherX-1, launcherMinWidth), launcherMaxWidth)
	l.Filter.Width = l.innerWidth() - textutil.VisualWidth(l.Filter.Prompt) - 1
}

func (l *LauncherView) innerWidth() int { return l.Width - panelChromeWidth }

func (l *LauncherView) cols() int { return max(1, l.innerWidth()/tileWidth) }

func (l *LauncherView) gridRows() int {
	if len(l.Apps) == 0 {
		return 1 // "No matching apps"
	}
	return (len(l.Apps) + l.cols() - 1) / l.cols()
}

// Size returns the panel's outer width and height.
func (l *LauncherView) Size() (w, h int) {
	return l.Width, gridOffset + l.gridRows() + windowLines + panelChromeHeight
}

// TileRects returns one rectangle per visible app for a panel at origin.
func (l *LauncherView) TileRects(origin overlay.Rect) []overlay.Rect {
	cols := l.cols()
	rects := make([]overlay.Rect, len(l.Apps))
	for i := range l.Apps {
		rects[i] = overlay.Rect{
			X: origin.X + 2 + (i%cols)*tileWidth,
			Y: origin.Y + 1 + gridOffset + i/cols,
			W: tileWidth,
			H: 1,
		}
	}
	return rects
}

func (l *LauncherView) tile(i int) string {
	a := l.Apps[i]
	text := textutil.PadRightVisual(" "+a.Icon+" "+a.Name, tileWidth)
	if i == l.Selected {
		return Styles.Selected.Render(text)
	}
	return Styles.Tile.Render(text)
}

// View implements View.
func (l *LauncherView) View() string {
	inner := l.innerWidth()
	cols := l.cols()

	lines := []string{
		ansi.Truncate(l.Filter.View(), inner, ""),
		"",
	}
	if len(l.Apps) == 0 {
		lines = append(lines, Styles.Empty.Render("No matching apps"))
	}
	for start := 0; start < len(l.Apps); start += cols {
		var row strings.Builder
		for i := start; i < min(start+cols, len(l.Apps)); i++ {
			row.WriteString(l.tile(i))
		}
		lines = append(lines, row.String())
	}

	lines = append(lines,
		"",
		Styles.Title.Render("App Container"),
		Styles.Muted.Render(textutil.Truncate("Future applications will open here", inner)),
		"",
		Styles.Empty.Render(textutil.Truncate("No application running", inner)),
		Styles.Muted.Render(textutil.Truncate("Double-click an app icon to launch it here", inner)),
	)
	return Styles.Panel.Width(inner + 2).Render(strings.Join(lines, "\n"))
}
