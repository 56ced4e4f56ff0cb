package solid

import (
	"sort"
	"sync"

	"github.com/tdixon97/legend-pygeom-hpges/errors"
	"github.com/tdixon97/legend-pygeom-hpges/pkg/hpge/geometry"
)

// Registry owns materialized solids, keyed by name. Detectors keep only
// the name and a registry pointer, never the solid itself.
type Registry struct {
	mutex  sync.RWMutex
	solids map[string]*Solid
}

// NewRegistry constructor.
func NewRegistry() *Registry {
	return &Registry{solids: map[string]*Solid{}}
}

// Materialize revolves the profile and stores the solid under name,
// replacing any previous solid with the same name.
func (r *Registry) Materialize(name string, profile geometry.Profile) (*Solid, error) {
	solid, err := Revolve(name, profile)
	if err != nil {
		return nil, err
	}
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.solids[name] = solid
	return solid, nil
}

// Lookup returns the solid registered under name.
func (r *Registry) Lookup(name string) (*Solid, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	solid, ok := r.solids[name]
	if !ok {
		return nil, errors.Configuration("no solid registered under %q", name)
	}
	return solid, nil
}

// Names lists the registered solid names in stable order.
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	names := make([]string, 0, len(r.solids))
	for name := range r.solids {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
