package tui

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DebugEnv is the environment variable that forces debug mode on
const DebugEnv = "PRAXLY_DEBUG"

// DebugEnabled reports whether debug mode is forced by the environment
func DebugEnabled() bool {
	return os.Getenv(DebugEnv) == "1"
}

// DebugView renders a capped ring of recent messages and log lines at the
// bottom of the screen. It exists purely for debugging the playground and
// never gates normal behavior.
type DebugView struct {
	Visible bool

	events       []string
	eventCounter int
	maxEvents    int
	ignored      map[string]bool
	lines        []string
	maxLines     int
	width        int
}

// NewDebugView creates a debug view, visible when debug mode is on
func NewDebugView(visible bool) *DebugView {
	return &DebugView{
		Visible:   visible,
		maxEvents: 5,
		maxLines:  5,
		width:     80,
		ignored: map[string]bool{
			"cursor.BlinkMsg":        true,
			"cursor.initialBlinkMsg": true,
			"tea.sequenceMsg":        true,
		},
	}
}

// AddEvent records a message type, respecting filtering and capping
func (dv *DebugView) AddEvent(msg tea.Msg) {
	if !dv.Visible || msg == nil {
		return
	}
	name := reflect.TypeOf(msg).String()
	if dv.ignored[name] {
		return
	}
	if i := strings.LastIndex(name, "."); i != -1 {
		name = name[i+1:]
	}
	dv.eventCounter++
	dv.events = append(dv.events, fmt.Sprintf("%04d:%s", dv.eventCounter, name))
	if len(dv.events) > dv.maxEvents {
		dv.events = dv.events[len(dv.events)-dv.maxEvents:]
	}
}

// Logf appends a formatted log line
func (dv *DebugView) Logf(format string, args ...any) {
	if !dv.Visible {
		return
	}
	dv.lines = append(dv.lines, fmt.Sprintf(format, args...))
	if len(dv.lines) > dv.maxLines {
		dv.lines = dv.lines[len(dv.lines)-dv.maxLines:]
	}
}

// SetWidth updates the rendering width
func (dv *DebugView) SetWidth(width int) {
	if width > 0 {
		dv.width = width
	}
}

// View renders the debug panel, empty when invisible
func (dv *DebugView) View() string {
	if !dv.Visible || (len(dv.events) == 0 && len(dv.lines) == 0) {
		return ""
	}
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238")).
		Width(dv.width - 2).
		Padding(0, 1)

	var b strings.Builder
	if len(dv.events) > 0 {
		b.WriteString("events: " + strings.Join(dv.events, " "))
	}
	if len(dv.lines) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.Join(dv.lines, "\n"))
	}
	return style.Render(b.String())
}
