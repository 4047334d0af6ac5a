package editor

// Binding associates one backing field with one widget instance. Bindings
// are created by Controller.Bind, live in the session's Registry and are
// never explicitly destroyed.
type Binding struct {
	FieldID string
	Widget  Widget
	Field   Field

	cfg              Config
	initialText      string
	firstInteraction bool
	pendingResize    *Task
	degraded         bool
	fallback         *Fallback
}

// Config returns the normalized configuration the binding was created with
func (b *Binding) Config() Config {
	return b.cfg
}

// InitialText returns the text captured at bind time, before the widget
// took ownership of the backing field's content.
func (b *Binding) InitialText() string {
	return b.initialText
}

// AwaitingFirstInteraction reports whether the first pointer or key
// interaction has not happened yet.
func (b *Binding) AwaitingFirstInteraction() bool {
	return b.firstInteraction
}

// Degraded reports whether the binding runs without a widget
func (b *Binding) Degraded() bool {
	return b.degraded
}

// Fallback returns the degraded-mode key handler, nil unless Degraded
func (b *Binding) Fallback() *Fallback {
	return b.fallback
}
