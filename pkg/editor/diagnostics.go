package editor

// runDiagnostics logs a snapshot of the widget's state. All cheap reads go
// into one deferred task. The rendered-style read is markedly more expensive
// and gets a task of its own so it never rides along with the cheap batch.
// Diagnostics run only in debug mode and never gate non-diagnostic behavior.
func (c *Controller) runDiagnostics(b *Binding) {
	if !c.host.DebugEnabled() {
		return
	}
	c.sched.Defer(func() {
		defer c.recoverDiagnostics(b)
		w := b.Widget
		lines := w.LineCount()
		line, col := w.Cursor()
		c.log.Debugf("editor %s: lines=%d height=%d selected=%v cursor=%d:%d focused=%v",
			b.FieldID, lines, b.cfg.Sizing.HeightFor(lines), w.HasSelection(), line, col, w.Focused())
	})
	c.sched.Defer(func() {
		defer c.recoverDiagnostics(b)
		if style, ok := b.Widget.Option(OptionRenderedStyle); ok {
			c.log.Debugf("editor %s: rendered style %v", b.FieldID, style)
		}
	})
}

func (c *Controller) recoverDiagnostics(b *Binding) {
	if r := recover(); r != nil {
		c.log.Errorf("diagnostics %s: %v", b.FieldID, r)
	}
}
