package tui

import (
	"github.com/praxly/praxly-cli/pkg/editor"
	"github.com/praxly/praxly-cli/pkg/models"
)

// BackingField is the plain-text store behind one exercise's widget. Its
// live value is the learner's saved progress; the declared initial content
// carries the lesson's starter code, newline-escaped.
type BackingField struct {
	value   string
	initial string
	hidden  bool
}

func (f *BackingField) Value() string     { return f.value }
func (f *BackingField) SetValue(s string) { f.value = s }
func (f *BackingField) Hide()             { f.hidden = true }

func (f *BackingField) InitialContent() (string, bool) {
	if f.initial == "" {
		return "", false
	}
	return f.initial, true
}

// Hidden reports whether a widget has taken over the field's rendering
func (f *BackingField) Hidden() bool { return f.hidden }

// RunTrigger records run requests for one exercise
type RunTrigger struct {
	fired  int
	onFire func()
}

// Fire registers a run request
func (t *RunTrigger) Fire() {
	t.fired++
	if t.onFire != nil {
		t.onFire()
	}
}

// Fired returns how many run requests have been made
func (t *RunTrigger) Fired() int { return t.fired }

// OnFire installs a callback invoked on every run request
func (t *RunTrigger) OnFire(fn func()) { t.onFire = fn }

// OutputPanel is the hideable run-output display for one exercise
type OutputPanel struct {
	visible bool
	content string
}

// Show makes the panel visible with the given content
func (p *OutputPanel) Show(content string) {
	p.visible = true
	p.content = content
}

// Hide clears and hides the panel
func (p *OutputPanel) Hide() {
	p.visible = false
	p.content = ""
}

// Visible reports whether the panel is showing
func (p *OutputPanel) Visible() bool { return p.visible }

// Content returns the panel's current text
func (p *OutputPanel) Content() string { return p.content }

// Document implements editor.Host over one lesson: a backing field, run
// trigger and output panel per exercise, plus the session flags.
type Document struct {
	lesson   *models.Lesson
	fields   map[string]*BackingField
	order    []string
	triggers map[string]*RunTrigger
	outputs  map[string]*OutputPanel
	debug    bool
	tuning   bool
}

// NewDocument builds the host document for a lesson. progress maps exercise
// ids to saved code and seeds the backing fields' live values.
func NewDocument(lesson *models.Lesson, progress map[string]string, debug, tuning bool) *Document {
	d := &Document{
		lesson:   lesson,
		fields:   make(map[string]*BackingField),
		triggers: make(map[string]*RunTrigger),
		outputs:  make(map[string]*OutputPanel),
		debug:    debug,
		tuning:   tuning,
	}
	for _, ex := range lesson.Exercises {
		fieldID := editor.FieldID(ex.ID)
		d.fields[fieldID] = &BackingField{
			value:   progress[ex.ID],
			initial: editor.EncodeInitial(ex.InitialCode),
		}
		d.order = append(d.order, fieldID)
		d.triggers[editor.TriggerID(ex.ID)] = &RunTrigger{}
		d.outputs[editor.OutputID(ex.ID)] = &OutputPanel{}
	}
	return d
}

// Lesson returns the lesson this document hosts
func (d *Document) Lesson() *models.Lesson { return d.lesson }

func (d *Document) Field(id string) (editor.Field, bool) {
	f, ok := d.fields[id]
	if !ok {
		return nil, false
	}
	return f, true
}

func (d *Document) FieldIDs() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

func (d *Document) Trigger(id string) (editor.Trigger, bool) {
	t, ok := d.triggers[id]
	if !ok {
		return nil, false
	}
	return t, true
}

func (d *Document) Output(id string) (editor.Panel, bool) {
	p, ok := d.outputs[id]
	if !ok {
		return nil, false
	}
	return p, true
}

func (d *Document) DebugEnabled() bool  { return d.debug }
func (d *Document) TuningEnabled() bool { return d.tuning }

// RunTriggerFor returns the concrete trigger for an exercise
func (d *Document) RunTriggerFor(exerciseID string) *RunTrigger {
	return d.triggers[editor.TriggerID(exerciseID)]
}

// OutputFor returns the concrete output panel for an exercise
func (d *Document) OutputFor(exerciseID string) *OutputPanel {
	return d.outputs[editor.OutputID(exerciseID)]
}

// FieldFor returns the concrete backing field for an exercise
func (d *Document) FieldFor(exerciseID string) *BackingField {
	return d.fields[editor.FieldID(exerciseID)]
}

var _ editor.Host = (*Document)(nil)
