package editor

// EventType identifies a widget notification the controller can subscribe to.
type EventType int

const (
	// EventChange fires whenever the widget's text content changes
	EventChange EventType = iota
	// EventMouseDown fires on a pointer press inside the widget
	EventMouseDown
	// EventKeyDown fires on a key press while the widget has focus
	EventKeyDown
	// EventFocus fires when the widget gains focus
	EventFocus
	// EventDoubleClick fires on a double pointer press
	EventDoubleClick
)

// Event carries a widget notification to a subscribed handler
type Event struct {
	Type EventType
	Key  string // key name for EventKeyDown, empty otherwise
}

// Handler receives widget events. Handlers run synchronously on the UI
// goroutine, before the widget applies whatever edit the event describes.
type Handler func(Event)

// Widget is the embedded text-editing surface, treated as an opaque
// capability. Value, SetValue, SelectionText, Cursor and SetCursor are pure
// data operations; LineCount and SetRenderedSize are geometry-dependent and
// the controller batches them so one flush never performs more than one
// geometry read and one geometry write per binding.
//
// SetCursor collapses any active selection.
type Widget interface {
	Value() string
	SetValue(s string)
	LineCount() int
	SetRenderedSize(width, height int)
	HasSelection() bool
	SelectionText() string
	Cursor() (line, col int)
	SetCursor(line, col int)
	Focused() bool
	Subscribe(t EventType, h Handler)
	Option(name string) (value any, ok bool)
	SetOption(name string, value any) error
}

// WidgetFactory constructs widget instances. A nil factory puts the
// controller in degraded mode (see Fallback).
type WidgetFactory interface {
	New(cfg Config) (Widget, error)
}

// Option names recognized by widget implementations. SetOption ignores names
// it does not recognize; Option reports ok=false for them.
const (
	OptionMode          = "mode"
	OptionTheme         = "theme"
	OptionIndentWidth   = "indentWidth"
	OptionLineWrap      = "lineWrap"
	OptionPassiveScroll = "passiveScroll"
	OptionRenderedStyle = "renderedStyle"
)
