package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/praxly/praxly-cli/pkg/editor"
)

// TextareaWidget adapts bubbles/textarea to the editor.Widget capability.
//
// The textarea has no native selection, but a freshly focused widget over
// non-empty content comes up in a full-selection state, matching how
// embedded editors behave right after taking over a field. The sync
// controller's first-interaction handling collapses it; without that, the
// first printable key would replace the whole buffer (see Apply).
type TextareaWidget struct {
	ta         textarea.Model
	handlers   map[editor.EventType][]editor.Handler
	options    map[string]any
	selectAll  bool
	everFocus  bool
	pendingKey *tea.KeyMsg
	width      int
	height     int
	frame      lipgloss.Style
}

// NewTextareaWidget constructs a widget configured per cfg
func NewTextareaWidget(cfg editor.Config) *TextareaWidget {
	ta := textarea.New()
	ta.ShowLineNumbers = true
	ta.Prompt = "  "
	ta.CharLimit = 0
	ta.SetWidth(cfg.Width)
	ta.SetHeight(cfg.Sizing.MinHeight)

	w := &TextareaWidget{
		ta:       ta,
		handlers: make(map[editor.EventType][]editor.Handler),
		options: map[string]any{
			editor.OptionMode:        cfg.Mode,
			editor.OptionTheme:       cfg.Theme,
			editor.OptionIndentWidth: cfg.IndentWidth,
			editor.OptionLineWrap:    !cfg.NoWrap,
		},
		width:  cfg.Width,
		height: cfg.Sizing.MinHeight,
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1),
	}
	for name, value := range cfg.Extra {
		w.options[name] = value
	}
	return w
}

// --- editor.Widget ---

func (w *TextareaWidget) Value() string { return w.ta.Value() }

func (w *TextareaWidget) SetValue(s string) {
	if w.ta.Value() == s {
		return
	}
	w.ta.SetValue(s)
	w.emit(editor.Event{Type: editor.EventChange})
}

func (w *TextareaWidget) LineCount() int { return w.ta.LineCount() }

func (w *TextareaWidget) SetRenderedSize(width, height int) {
	w.width, w.height = width, height
	w.ta.SetWidth(width)
	w.ta.SetHeight(height)
}

func (w *TextareaWidget) HasSelection() bool { return w.selectAll }

func (w *TextareaWidget) SelectionText() string {
	if w.selectAll {
		return w.ta.Value()
	}
	return ""
}

func (w *TextareaWidget) Cursor() (int, int) {
	return w.ta.Line(), w.ta.LineInfo().ColumnOffset
}

func (w *TextareaWidget) SetCursor(line, col int) {
	w.selectAll = false
	for i := 0; w.ta.Line() > line && i < w.ta.LineCount(); i++ {
		w.ta.CursorUp()
	}
	for i := 0; w.ta.Line() < line && i < w.ta.LineCount(); i++ {
		before := w.ta.Line()
		w.ta.CursorDown()
		if w.ta.Line() == before {
			break
		}
	}
	w.ta.SetCursor(col)
}

func (w *TextareaWidget) Focused() bool { return w.ta.Focused() }

func (w *TextareaWidget) Subscribe(t editor.EventType, h editor.Handler) {
	w.handlers[t] = append(w.handlers[t], h)
}

func (w *TextareaWidget) Option(name string) (any, bool) {
	if name == editor.OptionRenderedStyle {
		// Full frame render; markedly more expensive than the other reads,
		// which is why the controller batches it separately.
		rendered := w.frame.Render(w.ta.View())
		return fmt.Sprintf("%dx%d", lipgloss.Width(rendered), lipgloss.Height(rendered)), true
	}
	v, ok := w.options[name]
	return v, ok
}

func (w *TextareaWidget) SetOption(name string, value any) error {
	switch name {
	case editor.OptionMode, editor.OptionTheme, editor.OptionIndentWidth,
		editor.OptionLineWrap, editor.OptionPassiveScroll:
		w.options[name] = value
	default:
		// Unrecognized options are ignored.
	}
	return nil
}

// --- host integration ---

// Focus gives the textarea input focus. The first focus over non-empty
// content arms the full-selection state.
func (w *TextareaWidget) Focus() tea.Cmd {
	if !w.everFocus && w.ta.Value() != "" {
		w.selectAll = true
	}
	w.everFocus = true
	cmd := w.ta.Focus()
	w.emit(editor.Event{Type: editor.EventFocus})
	return cmd
}

// Blur removes input focus
func (w *TextareaWidget) Blur() { w.ta.Blur() }

// HandleKey emits the keydown notification and stashes the key. The edit is
// not applied until Apply runs, giving subscribers (and their deferred
// checks) a chance to run first.
func (w *TextareaWidget) HandleKey(msg tea.KeyMsg) {
	w.pendingKey = &msg
	w.emit(editor.Event{Type: editor.EventKeyDown, Key: msg.String()})
}

// HandleMouse emits the pointer notifications for a mouse message
func (w *TextareaWidget) HandleMouse(msg tea.MouseMsg) {
	w.emit(editor.Event{Type: editor.EventMouseDown})
}

// Apply feeds the stashed key to the textarea. If the full-selection state
// is still armed when a printable key lands, the edit replaces the entire
// buffer, which is exactly the behavior the sync controller's deferred
// first-interaction check exists to prevent.
func (w *TextareaWidget) Apply() tea.Cmd {
	if w.pendingKey == nil {
		return nil
	}
	msg := *w.pendingKey
	w.pendingKey = nil

	if w.selectAll && msg.Type == tea.KeyRunes {
		w.selectAll = false
		w.ta.SetValue("")
	}

	before := w.ta.Value()
	var cmd tea.Cmd
	w.ta, cmd = w.ta.Update(msg)
	if w.ta.Value() != before {
		w.emit(editor.Event{Type: editor.EventChange})
	}
	return cmd
}

// Update forwards non-key messages (blink ticks and the like)
func (w *TextareaWidget) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	w.ta, cmd = w.ta.Update(msg)
	return cmd
}

// InsertString inserts text at the cursor and reports the change
func (w *TextareaWidget) InsertString(s string) {
	if s == "" {
		return
	}
	w.selectAll = false
	w.ta.InsertString(s)
	w.emit(editor.Event{Type: editor.EventChange})
}

// View renders the framed editing surface
func (w *TextareaWidget) View() string {
	return w.frame.Render(w.ta.View())
}

// Height returns the widget's current rendered height
func (w *TextareaWidget) Height() int { return w.height }

func (w *TextareaWidget) emit(e editor.Event) {
	for _, h := range w.handlers[e.Type] {
		h(e)
	}
}

var _ editor.Widget = (*TextareaWidget)(nil)
