package bench

// Registry maps canonical function names to evaluation adapters for
// one backend: a single (library, calling convention, element width,
// element type) combination. Registries never share adapters; the same
// name may appear in many registries independently.
type Registry[T Value] struct {
	// Prefix identifies the backend in result labels ("std_dx1", ...).
	Prefix string

	funcs map[string]Adapter[T]
}

// NewRegistry returns an empty registry with the given label prefix.
func NewRegistry[T Value](prefix string) *Registry[T] {
	return &Registry[T]{
		Prefix: prefix,
		funcs:  make(map[string]Adapter[T]),
	}
}

// Register binds a canonical name to an adapter. Invalid (zero)
// adapters are ignored: an unresolved capability must stay absent
// rather than become a callable entry.
func (r *Registry[T]) Register(name string, a Adapter[T]) {
	if !a.valid() {
		return
	}

	r.funcs[name] = a
}

// Lookup returns the adapter for name. Absence is not an error; it
// signals "this backend does not implement the function".
func (r *Registry[T]) Lookup(name string) (Adapter[T], bool) {
	a, ok := r.funcs[name]
	return a, ok
}

// Len returns the number of registered functions.
func (r *Registry[T]) Len() int { return len(r.funcs) }

// Names returns the registered canonical names in map order; callers
// that need determinism sort the union themselves.
func (r *Registry[T]) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}

	return names
}
