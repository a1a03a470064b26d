package display

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/sarchlab/dsidisplay/dsi"
)

// Registry keeps the displays of a system by name.
type Registry struct {
	lock     sync.RWMutex
	displays map[string]*Display
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{displays: make(map[string]*Display)}
}

// Add registers a display. Names must be unique.
func (r *Registry) Add(d *Display) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.displays[d.Name()]; ok {
		return errors.Wrapf(dsi.ErrInvalidConfig,
			"display %s already registered", d.Name())
	}

	r.displays[d.Name()] = d

	return nil
}

// Get returns the display with the given name.
func (r *Registry) Get(name string) (*Display, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	d, ok := r.displays[name]
	if !ok {
		return nil, errors.Wrapf(dsi.ErrNotFound, "display %s", name)
	}

	return d, nil
}

// Names returns the sorted names of all displays.
func (r *Registry) Names() []string {
	r.lock.RLock()
	defer r.lock.RUnlock()

	names := make([]string, 0, len(r.displays))
	for n := range r.displays {
		names = append(names, n)
	}

	sort.Strings(names)

	return names
}

// All returns every display, sorted by name.
func (r *Registry) All() []*Display {
	names := r.Names()

	r.lock.RLock()
	defer r.lock.RUnlock()

	out := make([]*Display, 0, len(names))
	for _, n := range names {
		if d, ok := r.displays[n]; ok {
			out = append(out, d)
		}
	}

	return out
}
