package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("SPC q", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("q") == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("SPC q") == nil {
		t.Error("expected SPC q to be bound")
	}
	if reg.Lookup("unknown") != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	// Press space -> leader waiting (Bubble Tea reports space as " ")
	consumed, cmd := h.Handle(keyMsg(" "))
	if !consumed || cmd != nil {
		t.Errorf("space: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader waiting after space")
	}

	// Press x -> execute SPC x
	consumed, cmd = h.Handle(keyMsg("x"))
	if !consumed {
		t.Errorf("x: expected consumed")
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	if cmd != nil {
		cmd()
		if !executed {
			t.Error("expected command to execute")
		}
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	if !h.LeaderWaiting {
		t.Fatal("expected leader waiting")
	}

	consumed, cmd := h.Handle(keyMsg("esc"))
	if !consumed || cmd != nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}
}

func TestKeyHandler_SingleKey(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("q"))
	if !consumed || cmd == nil {
		t.Errorf("q: consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg("j"))
	if consumed {
		t.Error("unbound j should not be consumed")
	}
}

func TestKeybindRegistry_LeaderHintsByMode(t *testing.T) {
	reg := newKeybindRegistry()

	hints := reg.LeaderHints("", ModeDesktop)
	if hints["c"] != "Calendar" || hints["a"] != "Apps" || hints["q"] != "Quit" {
		t.Errorf("desktop hints = %v", hints)
	}
	if _, ok := hints["m"]; ok {
		t.Error("month submenu should be hidden outside the calendar")
	}

	hints = reg.LeaderHints("", ModeCalendar)
	if hints["m"] != "Month" {
		t.Errorf("calendar hints m = %q, want Month", hints["m"])
	}
	sub := reg.LeaderHints("SPC m", ModeCalendar)
	if sub["p"] != "Previous month" || sub["n"] != "Next month" {
		t.Errorf("month hints = %v", sub)
	}
}

func TestKeyHandler_SubmenuWaitsForLongerSequence(t *testing.T) {
	h := NewKeyHandler(newKeybindRegistry())

	h.Handle(keyMsg(" "))
	consumed, cmd := h.Handle(keyMsg("m"))
	if !consumed || cmd != nil || !h.LeaderWaiting {
		t.Fatalf("SPC m: consumed=%v cmd=%v waiting=%v", consumed, cmd != nil, h.LeaderWaiting)
	}
	consumed, cmd = h.Handle(keyMsg("n"))
	if !consumed || cmd == nil {
		t.Fatal("SPC m n should resolve")
	}
	if _, ok := cmd().(NextMonthMsg); !ok {
		t.Error("SPC m n should produce NextMonthMsg")
	}
}

func TestKeyMap_ShortHelpSorted(t *testing.T) {
	h := NewKeyHandler(newKeybindRegistry())
	h.Handle(keyMsg(" "))

	bindings := NewKeyMap(h, ModeDesktop).ShortHelp()
	var got []string
	for _, b := range bindings {
		got = append(got, b.Help().Key)
	}
	want := []string{"a", "c", "q", "esc"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("short help keys = %v, want %v", got, want)
	}
}

func TestRenderFooter(t *testing.T) {
	h := NewKeyHandler(newKeybindRegistry())

	idle := ansi.Strip(RenderFooter(h, ModeDesktop, 80))
	if !strings.HasPrefix(idle, "Press [SPC]") || ansi.StringWidth(idle) != 80 {
		t.Errorf("idle footer = %q", idle)
	}

	h.Handle(keyMsg(" "))
	pending := ansi.Strip(RenderFooter(h, ModeDesktop, 80))
	for _, want := range []string{"SPC", "Calendar", "Apps"} {
		if !strings.Contains(pending, want) {
			t.Errorf("pending footer %q missing %q", pending, want)
		}
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "q":
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	case "x":
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}
	case "j":
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
