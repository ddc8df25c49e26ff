package textutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"Terminal", 20, "Terminal"},
		{"Media Player", 6, "Media…"},
		{"abc", 0, ""},
		{"abc", 3, "abc"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
		if w := VisualWidth(Truncate(tt.in, tt.max)); w > tt.max {
			t.Errorf("Truncate(%q, %d) is %d columns wide", tt.in, tt.max, w)
		}
	}
}

func TestPadding(t *testing.T) {
	if got := PadRightVisual("14", 4); got != "14  " {
		t.Errorf("PadRightVisual = %q", got)
	}
	if got := PadLeftVisual("14", 4); got != "  14" {
		t.Errorf("PadLeftVisual = %q", got)
	}
	if got := PadRightVisual("File Manager", 6); VisualWidth(got) != 6 {
		t.Errorf("PadRightVisual over width = %q (%d cols)", got, VisualWidth(got))
	}
}

func TestPaddingWideRunes(t *testing.T) {
	got := PadRightVisual("📁 Files", 12)
	if w := VisualWidth(got); w != 12 {
		t.Errorf("wide rune padding: got %d columns (%q)", w, got)
	}
}

func TestCenter(t *testing.T) {
	if got := Center("May", 9); got != "   May   " {
		t.Errorf("Center odd gap = %q", got)
	}
	if got := Center("June", 9); got != "  June   " {
		t.Errorf("Center uneven gap = %q", got)
	}
	if got := Center("January 2024", 5); VisualWidth(got) != 5 {
		t.Errorf("Center over width = %q", got)
	}
}
