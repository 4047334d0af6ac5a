package editor

// Registry holds the bindings for one session, keyed by backing-field id.
// It is insertion-only: bindings live until the session is torn down with
// the registry itself. All access happens on the UI goroutine, so there is
// no locking.
type Registry struct {
	bindings map[string]*Binding
	order    []string
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{bindings: make(map[string]*Binding)}
}

// Get returns the binding for a backing-field id
func (r *Registry) Get(fieldID string) (*Binding, bool) {
	b, ok := r.bindings[fieldID]
	return b, ok
}

// Put stores a binding. Storing a second binding for the same field id is a
// programming error upstream; the first one wins.
func (r *Registry) Put(b *Binding) {
	if _, exists := r.bindings[b.FieldID]; exists {
		return
	}
	r.bindings[b.FieldID] = b
	r.order = append(r.order, b.FieldID)
}

// Len reports the number of bindings
func (r *Registry) Len() int {
	return len(r.bindings)
}

// IDs returns the bound field ids in insertion order
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
