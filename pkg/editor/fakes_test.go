package editor

import (
	"fmt"
	"strings"
)

// fakeWidget implements Widget without a rendering surface. Edits triggered
// by Type land on the scheduler's next flush, after event handlers have run,
// which mirrors how the host environment sequences input around rendering
// opportunities. Geometry accesses are counted so tests can assert the
// read/write batching contract.
type fakeWidget struct {
	value     string
	selectAll bool
	curLine   int
	curCol    int
	focused   bool
	width     int
	height    int
	handlers  map[EventType][]Handler
	options   map[string]any
	sched     *Scheduler

	lineCountReads int
	sizeWrites     int
	setOptionErr   error
	panicOnOption  bool
	panicOnRead    bool
}

func newFakeWidget(sched *Scheduler) *fakeWidget {
	return &fakeWidget{
		handlers: make(map[EventType][]Handler),
		options:  map[string]any{OptionRenderedStyle: "plain/default"},
		sched:    sched,
		focused:  true,
	}
}

func (w *fakeWidget) Value() string { return w.value }

func (w *fakeWidget) SetValue(s string) {
	w.value = s
	w.emit(Event{Type: EventChange})
}

func (w *fakeWidget) LineCount() int {
	w.lineCountReads++
	return strings.Count(w.value, "\n") + 1
}

func (w *fakeWidget) SetRenderedSize(width, height int) {
	w.sizeWrites++
	w.width, w.height = width, height
}

func (w *fakeWidget) HasSelection() bool { return w.selectAll }

func (w *fakeWidget) SelectionText() string {
	if w.selectAll {
		return w.value
	}
	return ""
}

func (w *fakeWidget) Cursor() (int, int) { return w.curLine, w.curCol }

func (w *fakeWidget) SetCursor(line, col int) {
	w.selectAll = false
	w.curLine, w.curCol = line, col
}

func (w *fakeWidget) Focused() bool { return w.focused }

func (w *fakeWidget) Subscribe(t EventType, h Handler) {
	w.handlers[t] = append(w.handlers[t], h)
}

func (w *fakeWidget) Option(name string) (any, bool) {
	if w.panicOnRead {
		panic("option read failed")
	}
	v, ok := w.options[name]
	return v, ok
}

func (w *fakeWidget) SetOption(name string, value any) error {
	if w.panicOnOption {
		panic("option write failed")
	}
	if w.setOptionErr != nil {
		return w.setOptionErr
	}
	w.options[name] = value
	return nil
}

func (w *fakeWidget) emit(e Event) {
	for _, h := range w.handlers[e.Type] {
		h(e)
	}
}

// Type simulates a printable key press: the keydown notification fires
// synchronously, the edit itself lands on the next flush. While the
// full-selection quirk is active the edit replaces the whole buffer.
func (w *fakeWidget) Type(r rune) {
	w.emit(Event{Type: EventKeyDown, Key: string(r)})
	w.sched.Defer(func() {
		if w.selectAll {
			w.selectAll = false
			w.value = string(r)
			w.curLine, w.curCol = 0, 1
		} else {
			w.insertAtCursor(r)
		}
		w.emit(Event{Type: EventChange})
	})
}

func (w *fakeWidget) insertAtCursor(r rune) {
	lines := strings.Split(w.value, "\n")
	if w.curLine >= len(lines) {
		w.curLine = len(lines) - 1
	}
	runes := []rune(lines[w.curLine])
	col := clamp(w.curCol, 0, len(runes))
	lines[w.curLine] = string(runes[:col]) + string(r) + string(runes[col:])
	w.curCol = col + 1
	w.value = strings.Join(lines, "\n")
}

type fakeFactory struct {
	sched   *Scheduler
	err     error
	prep    func(*fakeWidget)
	created []*fakeWidget
}

func (f *fakeFactory) New(cfg Config) (Widget, error) {
	if f.err != nil {
		return nil, f.err
	}
	w := newFakeWidget(f.sched)
	if f.prep != nil {
		f.prep(w)
	}
	f.created = append(f.created, w)
	return w, nil
}

func (f *fakeFactory) last() *fakeWidget {
	if len(f.created) == 0 {
		return nil
	}
	return f.created[len(f.created)-1]
}

type fakeField struct {
	value      string
	initial    string
	hasInitial bool
	hidden     bool
}

func (f *fakeField) Value() string     { return f.value }
func (f *fakeField) SetValue(s string) { f.value = s }
func (f *fakeField) Hide()             { f.hidden = true }

func (f *fakeField) InitialContent() (string, bool) {
	return f.initial, f.hasInitial
}

type fakeTrigger struct {
	fired int
}

func (t *fakeTrigger) Fire() { t.fired++ }

type fakePanel struct {
	hidden bool
}

func (p *fakePanel) Hide() { p.hidden = true }

type fakeHost struct {
	fields   map[string]*fakeField
	order    []string
	triggers map[string]*fakeTrigger
	outputs  map[string]*fakePanel
	debug    bool
	tuning   bool
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		fields:   make(map[string]*fakeField),
		triggers: make(map[string]*fakeTrigger),
		outputs:  make(map[string]*fakePanel),
	}
}

func (h *fakeHost) addField(id string, f *fakeField) *fakeField {
	h.fields[id] = f
	h.order = append(h.order, id)
	return f
}

func (h *fakeHost) Field(id string) (Field, bool) {
	f, ok := h.fields[id]
	return f, ok
}

func (h *fakeHost) FieldIDs() []string { return h.order }

func (h *fakeHost) Trigger(id string) (Trigger, bool) {
	t, ok := h.triggers[id]
	return t, ok
}

func (h *fakeHost) Output(id string) (Panel, bool) {
	p, ok := h.outputs[id]
	return p, ok
}

func (h *fakeHost) DebugEnabled() bool  { return h.debug }
func (h *fakeHost) TuningEnabled() bool { return h.tuning }

// recordLogger captures log lines per level for assertions
type recordLogger struct {
	debugs []string
	warns  []string
	errors []string
}

func (l *recordLogger) Debugf(format string, args ...any) {
	l.debugs = append(l.debugs, fmt.Sprintf(format, args...))
}

func (l *recordLogger) Warnf(format string, args ...any) {
	l.warns = append(l.warns, fmt.Sprintf(format, args...))
}

func (l *recordLogger) Errorf(format string, args ...any) {
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

// settle flushes the scheduler until no work remains
func settle(s *Scheduler) {
	for i := 0; i < 10 && s.Pending() > 0; i++ {
		s.Flush()
	}
}
