// Package editor keeps embedded text-editing widgets in sync with their
// backing fields: initial content seeding, debounced resize-on-change,
// first-interaction selection handling and best-effort event tuning. All
// layout-sensitive work goes through a cooperative Scheduler the host
// flushes once per rendering opportunity.
package editor

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFieldNotFound reports a bind request against a missing backing field
var ErrFieldNotFound = errors.New("backing field not found")

// Controller owns the widget lifecycle for one host document
type Controller struct {
	host     Host
	factory  WidgetFactory
	registry *Registry
	sched    *Scheduler
	log      Logger
}

// New creates a controller for a host. A nil factory means the widget
// capability is unavailable and every bind runs in degraded mode.
func New(host Host, factory WidgetFactory) *Controller {
	return &Controller{
		host:     host,
		factory:  factory,
		registry: NewRegistry(),
		sched:    NewScheduler(),
		log:      NopLogger(),
	}
}

// SetLogger replaces the controller's logger
func (c *Controller) SetLogger(l Logger) {
	if l != nil {
		c.log = l
	}
}

// Scheduler exposes the controller's task queue so the host can flush it on
// every rendering opportunity.
func (c *Controller) Scheduler() *Scheduler {
	return c.sched
}

// Registry exposes the session's bindings
func (c *Controller) Registry() *Registry {
	return c.registry
}

// Bind captures the backing field's content, constructs a widget over the
// field and registers the change/pointer/key observers. Binding an
// already-bound field id returns the existing binding unchanged.
//
// Re-application of the captured text and end-of-text cursor placement are
// deferred to the next rendering opportunity so widget construction never
// forces a synchronous layout pass.
func (c *Controller) Bind(fieldID string, cfg Config) (*Binding, error) {
	if b, ok := c.registry.Get(fieldID); ok {
		return b, nil
	}

	field, ok := c.host.Field(fieldID)
	if !ok {
		c.log.Errorf("bind %s: %v", fieldID, ErrFieldNotFound)
		return nil, fmt.Errorf("bind %s: %w", fieldID, ErrFieldNotFound)
	}
	cfg = cfg.normalized()

	// Captured before the widget takes ownership of the field's content.
	initial := field.Value()
	if initial == "" {
		if declared, ok := field.InitialContent(); ok {
			initial = DecodeInitial(declared)
		}
	}

	b := &Binding{
		FieldID:          fieldID,
		Field:            field,
		cfg:              cfg,
		initialText:      initial,
		firstInteraction: true,
	}

	if c.factory == nil {
		return c.bindDegraded(b, "widget capability unavailable"), nil
	}
	w, err := c.factory.New(cfg)
	if err != nil {
		return c.bindDegraded(b, err.Error()), nil
	}
	b.Widget = w
	field.Hide()

	c.sched.Defer(func() {
		w.SetValue(b.initialText)
		line, col := endOfText(b.initialText)
		w.SetCursor(line, col)
	})

	w.Subscribe(EventChange, func(Event) { c.onContentChanged(b) })
	w.Subscribe(EventMouseDown, func(e Event) { c.onFirstInteraction(b, e) })
	w.Subscribe(EventKeyDown, func(e Event) { c.onFirstInteraction(b, e) })

	if c.host.TuningEnabled() {
		c.tuneEventHandling(b)
	}
	if c.host.DebugEnabled() {
		c.runDiagnostics(b)
	}

	c.registry.Put(b)
	return b, nil
}

// bindDegraded registers a widgetless binding whose editing surface stays
// the raw backing field, with tab indentation and the run-trigger key as the
// only added behavior.
func (c *Controller) bindDegraded(b *Binding, reason string) *Binding {
	b.degraded = true
	b.fallback = newFallback(b.Field, c.runTrigger(b.FieldID), b.cfg.IndentWidth)
	c.registry.Put(b)
	c.log.Warnf("bind %s: %s, running degraded", b.FieldID, reason)
	return b
}

// BindAll binds every eligible backing field in the host exactly once and
// returns the bindings that succeeded. Individual failures are logged and
// skipped.
func (c *Controller) BindAll(cfg Config) []*Binding {
	var bound []*Binding
	for _, id := range c.host.FieldIDs() {
		b, err := c.Bind(id, cfg)
		if err != nil {
			continue
		}
		bound = append(bound, b)
	}
	return bound
}

// Get returns the binding for a backing-field id
func (c *Controller) Get(fieldID string) (*Binding, bool) {
	return c.registry.Get(fieldID)
}

// Value returns the widget's current text if the field is bound to one, the
// raw backing-field value if the field exists, and "" otherwise.
func (c *Controller) Value(fieldID string) string {
	if b, ok := c.registry.Get(fieldID); ok && b.Widget != nil {
		return b.Widget.Value()
	}
	if f, ok := c.host.Field(fieldID); ok {
		return f.Value()
	}
	return ""
}

// SetValue writes through to the widget when bound, else directly to the
// backing field. Unknown field ids are ignored.
func (c *Controller) SetValue(fieldID, text string) {
	if b, ok := c.registry.Get(fieldID); ok && b.Widget != nil {
		b.Widget.SetValue(text)
		return
	}
	if f, ok := c.host.Field(fieldID); ok {
		f.SetValue(text)
	}
}

// Reset re-applies an exercise's declared initial content (decoding escaped
// newlines) and hides its output panel. A missing field or missing declared
// content makes it a no-op.
func (c *Controller) Reset(exerciseID string) {
	fieldID := FieldID(exerciseID)
	field, ok := c.host.Field(fieldID)
	if !ok {
		return
	}
	declared, ok := field.InitialContent()
	if !ok {
		return
	}
	text := DecodeInitial(declared)
	if b, ok := c.registry.Get(fieldID); ok && b.Widget != nil {
		b.Widget.SetValue(text)
	} else {
		field.SetValue(text)
	}
	if out, ok := c.host.Output(OutputID(exerciseID)); ok {
		out.Hide()
	}
}

// onContentChanged debounces resize work: the pending task for this binding,
// if any, is cancelled and a fresh one is scheduled, so rapid successive
// edits collapse into a single recomputation using the latest state.
//
// Inside the task, the field copy is a pure data operation; the line-count
// read and the size write are the binding's one geometry read and one
// geometry write for that flush, kept adjacent so nothing can force a layout
// pass between them.
func (c *Controller) onContentChanged(b *Binding) {
	if b.pendingResize != nil {
		b.pendingResize.Cancel()
	}
	b.pendingResize = c.sched.Defer(func() {
		b.pendingResize = nil
		b.Field.SetValue(b.Widget.Value())

		lines := b.Widget.LineCount()
		height := b.cfg.Sizing.HeightFor(lines)
		b.Widget.SetRenderedSize(b.cfg.Width, height)
	})
}

// onFirstInteraction neutralizes the widget's freshly-bound full-selection
// state: left alone, the user's first keystroke would replace the entire
// initial content. The flag is consumed synchronously so a second
// interaction arriving before the deferred check still sees it as spent; the
// check itself only ever repositions the cursor.
func (c *Controller) onFirstInteraction(b *Binding, _ Event) {
	if !b.firstInteraction {
		return
	}
	b.firstInteraction = false
	c.sched.Defer(func() {
		if !b.Widget.HasSelection() {
			return
		}
		if b.Widget.SelectionText() != b.Widget.Value() {
			return
		}
		line, col := endOfText(b.Widget.Value())
		b.Widget.SetCursor(line, col)
	})
}

// tuneEventHandling asks the widget for passive scroll handling. Strictly
// best-effort: any failure is logged at debug level and otherwise ignored.
func (c *Controller) tuneEventHandling(b *Binding) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Debugf("event tuning %s: %v", b.FieldID, r)
		}
	}()
	if err := b.Widget.SetOption(OptionPassiveScroll, true); err != nil {
		c.log.Debugf("event tuning %s: %v", b.FieldID, err)
	}
}

// runTrigger resolves the run trigger associated with a backing field
func (c *Controller) runTrigger(fieldID string) Trigger {
	exerciseID, ok := ExerciseID(fieldID)
	if !ok {
		return nil
	}
	t, ok := c.host.Trigger(TriggerID(exerciseID))
	if !ok {
		return nil
	}
	return t
}

// endOfText returns the cursor position after the last character
func endOfText(s string) (line, col int) {
	lines := strings.Split(s, "\n")
	last := lines[len(lines)-1]
	return len(lines) - 1, len([]rune(last))
}
