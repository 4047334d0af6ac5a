package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/praxly/praxly-cli/pkg/editor"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTextareaWidgetValueAndChange(t *testing.T) {
	w := NewTextareaWidget(editor.DefaultConfig())

	changes := 0
	w.Subscribe(editor.EventChange, func(editor.Event) { changes++ })

	w.SetValue("hello")
	if w.Value() != "hello" {
		t.Errorf("Value() = %q", w.Value())
	}
	if changes != 1 {
		t.Errorf("change events = %d, expected 1", changes)
	}

	// Setting the same value again is not a change.
	w.SetValue("hello")
	if changes != 1 {
		t.Errorf("change events after no-op set = %d, expected 1", changes)
	}

	if w.LineCount() != 1 {
		t.Errorf("LineCount() = %d, expected 1", w.LineCount())
	}
	w.SetValue("a\nb\nc")
	if w.LineCount() != 3 {
		t.Errorf("LineCount() = %d, expected 3", w.LineCount())
	}
}

func TestTextareaWidgetCursor(t *testing.T) {
	w := NewTextareaWidget(editor.DefaultConfig())
	w.SetValue("first\nsecond\nthird")

	w.SetCursor(1, 3)
	line, col := w.Cursor()
	if line != 1 || col != 3 {
		t.Errorf("Cursor() = %d:%d, expected 1:3", line, col)
	}

	w.SetCursor(0, 0)
	line, col = w.Cursor()
	if line != 0 || col != 0 {
		t.Errorf("Cursor() = %d:%d, expected 0:0", line, col)
	}
}

func TestTextareaWidgetFirstFocusArmsSelection(t *testing.T) {
	w := NewTextareaWidget(editor.DefaultConfig())
	w.SetValue("seeded content")

	if w.HasSelection() {
		t.Fatal("selection armed before focus")
	}
	w.Focus()
	if !w.HasSelection() {
		t.Fatal("first focus over non-empty content did not arm full selection")
	}
	if w.SelectionText() != "seeded content" {
		t.Errorf("SelectionText() = %q", w.SelectionText())
	}

	// Second focus never re-arms.
	w.SetCursor(0, 0)
	w.Blur()
	w.Focus()
	if w.HasSelection() {
		t.Error("selection re-armed on a later focus")
	}
}

func TestTextareaWidgetFocusOverEmptyContent(t *testing.T) {
	w := NewTextareaWidget(editor.DefaultConfig())
	w.Focus()
	if w.HasSelection() {
		t.Error("selection armed over empty content")
	}
}

// Without the sync controller, the armed selection makes the first printable
// key replace the entire buffer. This is the failure mode the controller's
// first-interaction handling exists to prevent.
func TestTextareaWidgetUnprotectedFirstKeystroke(t *testing.T) {
	w := NewTextareaWidget(editor.DefaultConfig())
	w.SetValue("precious content")
	w.Focus()

	w.HandleKey(keyRunes("x"))
	w.Apply()

	if w.Value() != "x" {
		t.Errorf("unprotected first keystroke produced %q, expected content loss", w.Value())
	}
}

func TestTextareaWidgetProtectedFirstKeystroke(t *testing.T) {
	const initial = "line one\nline two"

	lesson := lessonFixture("hello", initial)
	doc := NewDocument(lesson, nil, false, false)
	c := editor.New(doc, widgetFactory{})
	c.BindAll(editor.DefaultConfig())
	c.Scheduler().Flush() // seed

	b, ok := c.Get(editor.FieldID("hello"))
	if !ok {
		t.Fatal("exercise field not bound")
	}
	w := b.Widget.(*TextareaWidget)
	w.Focus()
	if !w.HasSelection() {
		t.Fatal("full selection not armed on first focus")
	}

	// Keydown observers run, then the deferred check, then the edit.
	w.HandleKey(keyRunes("x"))
	c.Scheduler().Flush()
	w.Apply()

	if got, want := w.Value(), initial+"x"; got != want {
		t.Errorf("protected first keystroke produced %q, expected %q", got, want)
	}
}

func TestTextareaWidgetOptions(t *testing.T) {
	cfg := editor.DefaultConfig()
	cfg.Extra = map[string]any{"vimMode": true}
	w := NewTextareaWidget(cfg)

	if v, ok := w.Option(editor.OptionIndentWidth); !ok || v != 4 {
		t.Errorf("Option(indentWidth) = (%v, %v)", v, ok)
	}
	if v, ok := w.Option("vimMode"); !ok || v != true {
		t.Errorf("Option(vimMode) = (%v, %v), expected passthrough of extras", v, ok)
	}

	if err := w.SetOption(editor.OptionPassiveScroll, true); err != nil {
		t.Errorf("SetOption(passiveScroll) error = %v", err)
	}
	if v, _ := w.Option(editor.OptionPassiveScroll); v != true {
		t.Error("passive scroll option not stored")
	}

	// Unrecognized writes are ignored without error.
	if err := w.SetOption("unknownOption", 42); err != nil {
		t.Errorf("SetOption(unknown) error = %v", err)
	}
	if _, ok := w.Option("unknownOption"); ok {
		t.Error("unrecognized option was stored")
	}
}

func TestTextareaWidgetRenderedStyleRead(t *testing.T) {
	w := NewTextareaWidget(editor.DefaultConfig())
	w.SetValue("x")

	v, ok := w.Option(editor.OptionRenderedStyle)
	if !ok {
		t.Fatal("rendered style read unavailable")
	}
	if s, isString := v.(string); !isString || s == "" {
		t.Errorf("rendered style = %v, expected a non-empty descriptor", v)
	}
}

func TestTextareaWidgetResize(t *testing.T) {
	w := NewTextareaWidget(editor.DefaultConfig())
	w.SetRenderedSize(60, 12)
	if w.Height() != 12 {
		t.Errorf("Height() = %d, expected 12", w.Height())
	}
}

func TestTextareaWidgetInsertString(t *testing.T) {
	w := NewTextareaWidget(editor.DefaultConfig())
	w.SetValue("ab")
	w.Focus()
	w.SetCursor(0, 2)

	changes := 0
	w.Subscribe(editor.EventChange, func(editor.Event) { changes++ })

	w.InsertString("cd")
	if w.Value() != "abcd" {
		t.Errorf("Value() after insert = %q", w.Value())
	}
	if changes != 1 {
		t.Errorf("change events = %d, expected 1", changes)
	}
	if w.HasSelection() {
		t.Error("insert left the selection armed")
	}
}
