package editor

// Host is the document the controller operates in: backing fields, run
// triggers and output panels located by identifier, plus the session-level
// debug and tuning flags.
type Host interface {
	// Field looks up a backing field by id
	Field(id string) (Field, bool)
	// FieldIDs lists every eligible backing field, in document order
	FieldIDs() []string
	// Trigger looks up a run trigger by derived id
	Trigger(id string) (Trigger, bool)
	// Output looks up an output panel by derived id
	Output(id string) (Panel, bool)
	// DebugEnabled reports the session's debug flag
	DebugEnabled() bool
	// TuningEnabled reports the opt-in flag for best-effort event tuning
	TuningEnabled() bool
}

// Field is a backing plain-text field. After a bind the field stays the
// synchronization target but its visible representation is the widget's.
type Field interface {
	Value() string
	SetValue(s string)
	// InitialContent returns the field's declared initial-content attribute
	// (newline-escaped, see DecodeInitial) if one is present.
	InitialContent() (string, bool)
	// Hide removes the field's own visible representation
	Hide()
}

// Trigger is a "run" control associated with an exercise
type Trigger interface {
	Fire()
}

// Panel is a hideable output display element
type Panel interface {
	Hide()
}
