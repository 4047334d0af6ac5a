package editor

import "strings"

// Fallback is the degraded editing mode used when the widget capability is
// unavailable: indentation on tab and the run-trigger key, on the raw
// backing field. Nothing else.
type Fallback struct {
	field   Field
	trigger Trigger
	indent  int
}

func newFallback(field Field, trigger Trigger, indent int) *Fallback {
	if indent <= 0 {
		indent = DefaultConfig().IndentWidth
	}
	return &Fallback{field: field, trigger: trigger, indent: indent}
}

// HandleKey processes a key press in degraded mode. pos is the caret's rune
// offset within the field's value. It returns the new caret position and
// whether the key was consumed.
func (f *Fallback) HandleKey(key string, pos int) (int, bool) {
	switch key {
	case "tab":
		return f.insertIndent(pos), true
	case "ctrl+enter":
		if f.trigger != nil {
			f.trigger.Fire()
		}
		return pos, true
	}
	return pos, false
}

func (f *Fallback) insertIndent(pos int) int {
	runes := []rune(f.field.Value())
	pos = clamp(pos, 0, len(runes))
	pad := strings.Repeat(" ", f.indent)
	f.field.SetValue(string(runes[:pos]) + pad + string(runes[pos:]))
	return pos + f.indent
}
