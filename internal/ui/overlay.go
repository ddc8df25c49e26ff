package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"galion/internal/overlay"
)

// Canvas is a fixed-size grid of styled lines that panels are painted onto,
// bottom to top. Later paints cover earlier ones cell for cell.
type Canvas struct {
	Width int
	Lines []string
}

// NewCanvas returns a blank width x height canvas.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	blank := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = blank
	}
	return &Canvas{Width: width, Lines: lines}
}

// Paint draws block with its top-left corner at r's origin, clipped to r and
// to the canvas. Short lines are padded so the block fully covers r.
func (c *Canvas) Paint(r overlay.Rect, block string) {
	if r.X < 0 || r.Y < 0 || r.X >= c.Width {
		return
	}
	w := min(r.W, c.Width-r.X)
	if w <= 0 {
		return
	}
	lines := strings.Split(block, "\n")
	for i := 0; i < r.H && r.Y+i < len(c.Lines); i++ {
		fg := ""
		if i < len(lines) {
			fg = lines[i]
		}
		if n := ansi.StringWidth(fg); n < w {
			fg += strings.Repeat(" ", w-n)
		} else if n > w {
			fg = ansi.Cut(fg, 0, w)
		}

		bg := c.Lines[r.Y+i]
		left := ansi.Cut(bg, 0, r.X)
		right := ansi.Cut(bg, r.X+w, c.Width)
		c.Lines[r.Y+i] = left + ansi.ResetStyle + fg + ansi.ResetStyle + right
	}
}

// String joins the canvas lines.
func (c *Canvas) String() string {
	return strings.Join(c.Lines, "\n")
}
