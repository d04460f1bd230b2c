package screen

import (
	"fmt"
	"sort"
	"sync"

	"github.com/navrail/navrail/internal/routeid"
)

// Registry maps screen names to their descriptors. It is the shared
// record consulted by the navigation gateway; it is owned by whoever
// bootstraps the app and passed by reference to everything that needs it.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	screens map[string]*Descriptor
	routes  map[string]string // route -> screen name
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		screens: make(map[string]*Descriptor),
		routes:  make(map[string]string),
	}
}

// Register adds a descriptor under its screen name. The descriptor must
// carry a valid route, the route must be unique across the registry, and
// its bar template must validate.
func (r *Registry) Register(d *Descriptor) error {
	if d == nil {
		return fmt.Errorf("descriptor must not be nil")
	}
	if d.Name() == "" {
		return fmt.Errorf("screen name must not be empty")
	}
	if err := routeid.ValidateRoute(d.Route()); err != nil {
		return fmt.Errorf("screen %q: %w", d.Name(), err)
	}
	if err := d.Template().Validate(); err != nil {
		return fmt.Errorf("screen %q: %w", d.Name(), err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.screens[d.Name()]; exists {
		return fmt.Errorf("screen %q already registered", d.Name())
	}
	if owner, taken := r.routes[d.Route()]; taken {
		return fmt.Errorf("route %q already registered by screen %q", d.Route(), owner)
	}

	r.screens[d.Name()] = d
	r.routes[d.Route()] = d.Name()
	return nil
}

// Get returns the descriptor registered under the given screen name.
func (r *Registry) Get(name string) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.screens[name]
	return d, ok
}

// Len returns the number of registered screens.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.screens)
}

// Names returns the registered screen names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.screens))
	for name := range r.screens {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
