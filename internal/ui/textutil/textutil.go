// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// VisualWidthStyled returns the width of a styled string, ignoring ANSI codes.
func VisualWidthStyled(s string) int {
	return lipgloss.Width(s)
}

// Truncate shortens s to at most maxWidth columns, ending in … when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	if maxWidth < VisualWidth(TruncateEllipsis) {
		return ""
	}
	return runewidth.Truncate(s, maxWidth, TruncateEllipsis)
}

// PadRightVisual pads or truncates s to exactly targetWidth columns.
func PadRightVisual(s string, targetWidth int) string {
	s = Truncate(s, targetWidth)
	return runewidth.FillRight(s, targetWidth)
}

// PadLeftVisual right-aligns s within targetWidth columns.
func PadLeftVisual(s string, targetWidth int) string {
	s = Truncate(s, targetWidth)
	return runewidth.FillLeft(s, targetWidth)
}

// Center centers s within targetWidth columns; extra space goes right.
func Center(s string, targetWidth int) string {
	s = Truncate(s, targetWidth)
	gap := targetWidth - VisualWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return runewidth.FillRight(runewidth.FillLeft(s, VisualWidth(s)+left), targetWidth)
}
