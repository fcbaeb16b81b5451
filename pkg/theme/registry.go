package theme

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// Registry holds themes by name and flattens extends chains.
// It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	themes map[string]*Theme
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{themes: make(map[string]*Theme)}
}

// Add registers t, replacing any theme with the same name.
func (r *Registry) Add(t *Theme) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.themes[t.name] = t
}

// Names returns the registered theme names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.themes))
}

// Get returns the named theme with its extends chain applied: each
// selector holds the ancestors' declarations merged under its own.
func (r *Registry) Get(name string) (*Theme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var chain []*Theme
	seen := make(map[string]bool)
	for cur := name; cur != ""; {
		if seen[cur] {
			path := make([]string, 0, len(chain)+1)
			for _, t := range chain {
				path = append(path, t.name)
			}
			path = append(path, cur)
			return nil, &Error{Theme: name, Err: fmt.Errorf("%w: %s", ErrExtendsCycle, strings.Join(path, " -> "))}
		}
		seen[cur] = true

		t, ok := r.themes[cur]
		if !ok {
			return nil, &Error{Theme: name, Err: fmt.Errorf("%w %q", ErrUnknownTheme, cur)}
		}
		chain = append(chain, t)
		cur = t.extends
	}

	// chain runs child to root; fold from the root down.
	flat := chain[len(chain)-1]
	for i := len(chain) - 2; i >= 0; i-- {
		flat = chain[i].inheritFrom(flat)
	}
	return flat, nil
}
