// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transform

import (
	"sort"
	"sync"

	"github.com/yuvalerdreich/Modular-Pipeline-System"
)

// Factory builds a fresh Transformer instance. Factories are
// zero-argument so the registry never needs to know a transformation's
// construction parameters — a transformation that needs configuration
// (typewriter's inter-character delay, logger's output writer) gets its
// defaults from its factory and exposes them as exported struct fields
// (Typewriter.Delay, Logger.Writer) for callers that need something
// other than the default.
type Factory func() pipeline.Transformer

// Registry is a name → Factory lookup backing stage-name resolution.
// The zero value is ready to use.
type Registry struct {
	mu    sync.RWMutex
	names map[string]Factory
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{names: make(map[string]Factory)}
}

// Register associates name with factory. Re-registering an existing
// name overwrites it — last write wins, which lets tests substitute a
// fake under a built-in name without a parallel test-only registry.
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.names == nil {
		r.names = make(map[string]Factory)
	}
	r.names[name] = factory
}

// Lookup returns the factory registered under name, and whether it was
// found. ok == false is the LoadError condition: the name is unknown.
func (r *Registry) Lookup(name string) (factory Factory, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	factory, ok = r.names[name]
	return factory, ok
}

// New resolves name and constructs a fresh Transformer, or reports
// !ok if the name is unregistered.
func (r *Registry) New(name string) (t pipeline.Transformer, ok bool) {
	factory, ok := r.Lookup(name)
	if !ok {
		return nil, false
	}
	return factory(), true
}

// Names returns every registered name, sorted, for usage/help text.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.names))
	for name := range r.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Default is the package-level registry the built-in transformations
// register themselves with.
var Default = NewRegistry()
