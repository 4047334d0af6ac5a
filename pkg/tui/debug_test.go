package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestDebugViewEventCap(t *testing.T) {
	dv := NewDebugView(true)
	for i := 0; i < 10; i++ {
		dv.AddEvent(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	}
	if len(dv.events) != dv.maxEvents {
		t.Errorf("event ring holds %d entries, expected cap of %d", len(dv.events), dv.maxEvents)
	}
	// The newest entries survive.
	if !strings.Contains(dv.events[len(dv.events)-1], "0010") {
		t.Errorf("last entry = %q, expected the newest event", dv.events[len(dv.events)-1])
	}
}

func TestDebugViewInvisible(t *testing.T) {
	dv := NewDebugView(false)
	dv.AddEvent(tea.KeyMsg{Type: tea.KeyEnter})
	dv.Logf("line")
	if dv.View() != "" {
		t.Error("invisible debug view rendered output")
	}
}

func TestDebugViewLogLines(t *testing.T) {
	dv := NewDebugView(true)
	for i := 0; i < 8; i++ {
		dv.Logf("entry %d", i)
	}
	if len(dv.lines) != dv.maxLines {
		t.Errorf("log ring holds %d lines, expected cap of %d", len(dv.lines), dv.maxLines)
	}
	if !strings.Contains(dv.View(), "entry 7") {
		t.Error("rendered view missing the newest log line")
	}
}
