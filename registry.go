package hxassets

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"unicode/utf8"
)

// ErrInvalidIdentifier is returned for identifiers that are not valid UTF-8.
// They could not survive the JSON encoding of the registry headers.
var ErrInvalidIdentifier = errors.New("invalid identifier")

// Registry tracks the style and dependency identifiers a client has already
// loaded. The zero value is ready to use.
type Registry struct {
	mu           sync.RWMutex
	styles       map[string]struct{}
	dependencies map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		styles:       make(map[string]struct{}),
		dependencies: make(map[string]struct{}),
	}
}

// AddStyles adds the valid ids to the styles set. Invalid ids are skipped
// and reported in the returned error.
func (r *Registry) AddStyles(ids ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.styles == nil {
		r.styles = make(map[string]struct{}, len(ids))
	}
	return add(r.styles, ids)
}

// AddDependencies adds the valid ids to the dependencies set. Invalid ids
// are skipped and reported in the returned error.
func (r *Registry) AddDependencies(ids ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.dependencies == nil {
		r.dependencies = make(map[string]struct{}, len(ids))
	}
	return add(r.dependencies, ids)
}

func add(set map[string]struct{}, ids []string) error {
	var errs []error
	for _, id := range ids {
		if !utf8.ValidString(id) {
			errs = append(errs, fmt.Errorf("%w: %q is not valid UTF-8", ErrInvalidIdentifier, id))
			continue
		}
		set[id] = struct{}{}
	}
	return errors.Join(errs...)
}

// Styles returns a sorted snapshot of the styles set. It is never nil.
func (r *Registry) Styles() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return snapshot(r.styles)
}

// Dependencies returns a sorted snapshot of the dependencies set. It is never nil.
func (r *Registry) Dependencies() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return snapshot(r.dependencies)
}

func (r *Registry) HasStyle(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.styles[id]
	return ok
}

func (r *Registry) HasDependency(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.dependencies[id]
	return ok
}

func (r *Registry) Len() (styles, dependencies int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.styles), len(r.dependencies)
}

// Reset empties both sets.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.styles)
	clear(r.dependencies)
}

// contents snapshots both sets under a single lock so they describe the same instant.
func (r *Registry) contents() (styles, dependencies []string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return snapshot(r.styles), snapshot(r.dependencies)
}

func snapshot(set map[string]struct{}) []string {
	ids := slices.Sorted(maps.Keys(set))
	if ids == nil {
		ids = []string{}
	}
	return ids
}
