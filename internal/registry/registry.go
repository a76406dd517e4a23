// Package registry provides a process-lifetime cache of symbolic type
// descriptors keyed by type id. Descriptors are built at most once per id,
// published immutable, and never evicted.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/singleflight"

	"bitsym/internal/symbolic"
)

// Registry caches descriptors by type id. Lookup is lock-cheap; concurrent
// first use of the same id performs a single construction (singleflight).
// The zero value is not usable; call New.
type Registry struct {
	mu    sync.RWMutex
	byID  map[string]*symbolic.Descriptor
	group singleflight.Group
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{byID: make(map[string]*symbolic.Descriptor, 16)}
}

// Lookup returns the cached descriptor for a type id.
func (r *Registry) Lookup(typeID string) (*symbolic.Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byID[typeID]
	return d, ok
}

// Register stores a pre-built descriptor. Registering the same id twice is
// an error; the first registration wins and stays visible.
func (r *Registry) Register(desc *symbolic.Descriptor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := desc.TypeID()
	if _, exists := r.byID[id]; exists {
		return fmt.Errorf("symbolic type %q already registered", id)
	}
	r.byID[id] = desc
	return nil
}

// GetOrBuild returns the cached descriptor for the id, constructing it with
// build on first use. Concurrent callers for the same id share one build;
// a failed build is not cached, so a later call may retry.
func (r *Registry) GetOrBuild(typeID string, build func() (*symbolic.Descriptor, error)) (*symbolic.Descriptor, error) {
	if d, ok := r.Lookup(typeID); ok {
		return d, nil
	}
	v, err, _ := r.group.Do(typeID, func() (any, error) {
		if d, ok := r.Lookup(typeID); ok {
			return d, nil
		}
		d, err := build()
		if err != nil {
			return nil, err
		}
		if d.TypeID() != typeID {
			return nil, fmt.Errorf("descriptor id %q does not match requested id %q", d.TypeID(), typeID)
		}
		r.mu.Lock()
		r.byID[typeID] = d
		r.mu.Unlock()
		return d, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*symbolic.Descriptor), nil
}

// TypeIDs returns the registered ids in sorted order.
func (r *Registry) TypeIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
