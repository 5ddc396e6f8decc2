package deploy

import (
	"fmt"
	"sync"
)

// Registry holds deploy functions in registration order.
type Registry struct {
	mu        sync.RWMutex
	functions []*DeployFunction
	byID      map[string]*DeployFunction
}

// DefaultRegistry holds the built-in deployment steps.
var DefaultRegistry = NewRegistry() //nolint:gochecknoglobals // discovery point for the runner

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]*DeployFunction)}
}

// Register adds fn. Ids are unique within a registry.
func (r *Registry) Register(fn *DeployFunction) error {
	if fn == nil || fn.ID == "" || fn.ContractName == "" {
		return fmt.Errorf("%w: id and contract name are required", ErrInvalidDescriptor)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[fn.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, fn.ID)
	}
	stored := fn.Clone()
	r.functions = append(r.functions, stored)
	r.byID[stored.ID] = stored
	return nil
}

// MustRegister is Register for package initialisation; it panics on error.
func (r *Registry) MustRegister(fn *DeployFunction) {
	if err := r.Register(fn); err != nil {
		panic(err)
	}
}

// Functions returns copies of all registered functions in registration order.
func (r *Registry) Functions() []*DeployFunction {
	return r.Filter(nil)
}

// Filter returns copies of the functions carrying any of tags, in registration order.
func (r *Registry) Filter(tags []string) []*DeployFunction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*DeployFunction, 0, len(r.functions))
	for _, fn := range r.functions {
		if fn.HasAnyTag(tags) {
			out = append(out, fn.Clone())
		}
	}
	return out
}

// Get returns a copy of the function registered under id.
func (r *Registry) Get(id string) (*DeployFunction, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	return fn.Clone(), true
}
