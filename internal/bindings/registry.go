package bindings

import "strings"

// Binding maps a single letter key to an application-title fragment.
type Binding struct {
	Key string
	App string
}

// Registry is the filtered, ordered set of key bindings. It is immutable
// after Load and safe to share for the process lifetime.
type Registry struct {
	entries []Binding
	index   map[string]string
}

// Load filters and normalizes raw bindings into a Registry.
//
// Entries whose key or app fragment is empty after trimming are dropped.
// Keys are normalized to uppercase; when the same key appears more than
// once the first occurrence wins. Source order of the surviving entries is
// preserved for display.
func Load(raw []Binding) *Registry {
	r := &Registry{
		index: make(map[string]string),
	}
	for _, b := range raw {
		key := strings.ToUpper(strings.TrimSpace(b.Key))
		app := strings.TrimSpace(b.App)
		if key == "" || app == "" {
			continue
		}
		if _, exists := r.index[key]; exists {
			continue
		}
		r.entries = append(r.entries, Binding{Key: key, App: app})
		r.index[key] = app
	}
	return r
}

// Lookup returns the app fragment bound to key. The key is matched
// case-insensitively.
func (r *Registry) Lookup(key string) (string, bool) {
	app, ok := r.index[strings.ToUpper(strings.TrimSpace(key))]
	return app, ok
}

// Entries returns the bindings in source order. The returned slice is a
// copy; callers cannot mutate the registry through it.
func (r *Registry) Entries() []Binding {
	out := make([]Binding, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of bindings in the registry.
func (r *Registry) Len() int {
	return len(r.entries)
}
