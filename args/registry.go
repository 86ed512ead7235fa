package args

// Registry builds marshalers by marker and keeps exactly one instance per
// flag identifier. A Registry belongs to a single parse session.
type Registry struct {
	instances map[rune]Marshaler
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{instances: make(map[rune]Marshaler, 8)}
}

// HasMarker reports whether marker names a known marshaler variant.
func (r *Registry) HasMarker(marker string) bool {
	return Marker(marker).Valid()
}

// Marshaler returns the instance for id, creating it for marker on first use.
// Instances are keyed by identifier alone: once id has a marshaler, later
// calls return it regardless of marker.
func (r *Registry) Marshaler(marker Marker, id rune) (Marshaler, error) {
	if !marker.Valid() {
		return nil, &ParseError{Type: ErrorTypeInvalidTypeMarker, Identifier: id, Parameter: string(marker)}
	}
	if m, ok := r.instances[id]; ok {
		return m, nil
	}
	m := newMarshaler(marker)
	r.instances[id] = m
	return m, nil
}

// lookup returns the cached instance for id without creating one
func (r *Registry) lookup(id rune) (Marshaler, bool) {
	m, ok := r.instances[id]
	return m, ok
}

// Len returns the number of instantiated marshalers
func (r *Registry) Len() int {
	return len(r.instances)
}

func (r *Registry) reset() {
	clear(r.instances)
}
