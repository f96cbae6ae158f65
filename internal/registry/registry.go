// Package registry collects generated fragments for callers that stage
// output from several producers before assembly. The collection is
// caller-owned and explicit; nothing registers itself at init time, so
// what goes into a unit is always visible at the call site.
package registry

import (
	"strings"
	"sync"
)

// Fragment is one named piece of generated code.
type Fragment struct {
	Name string
	JS   string
}

// Registry is an ordered fragment collection. Add order is emission
// order. Safe for concurrent use; parallel build workers may append.
type Registry struct {
	mu    sync.Mutex
	frags []Fragment
}

func New() *Registry {
	return &Registry{}
}

// Add appends a fragment. Duplicate names are allowed; the registry
// does not deduplicate or reorder.
func (r *Registry) Add(name, js string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frags = append(r.frags, Fragment{Name: name, JS: js})
}

// Len returns the number of registered fragments.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frags)
}

// Fragments returns a snapshot in registration order.
func (r *Registry) Fragments() []Fragment {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Fragment, len(r.frags))
	copy(out, r.frags)
	return out
}

// JS concatenates every fragment in registration order, one blank line
// between fragments.
func (r *Registry) JS() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	parts := make([]string, len(r.frags))
	for i, f := range r.frags {
		parts[i] = f.JS
	}
	return strings.Join(parts, "\n\n")
}
