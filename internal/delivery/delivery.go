// Package delivery hands composed messages to chat platforms (Slack,
// Discord). Adapters are send-only: no listening, no scheduling.
package delivery

import (
	"context"
	"fmt"
	"sort"
)

// Outbound is one message to deliver. Channel may be empty to use the
// adapter's configured default.
type Outbound struct {
	Channel string
	Text    string
}

// Adapter is the interface platform-specific implementations satisfy.
type Adapter interface {
	// Send delivers one message to the platform.
	Send(ctx context.Context, msg Outbound) error

	// Close releases any platform connection.
	Close() error
}

// Registry holds the configured delivery targets by name.
type Registry struct {
	adapters map[string]Adapter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{adapters: make(map[string]Adapter)}
}

// Register adds an adapter under a target name (e.g. "slack").
func (r *Registry) Register(name string, a Adapter) {
	r.adapters[name] = a
}

// Get returns the adapter for a target name.
func (r *Registry) Get(name string) (Adapter, error) {
	a, ok := r.adapters[name]
	if !ok {
		return nil, fmt.Errorf("delivery: target %q is not configured", name)
	}
	return a, nil
}

// Targets lists the configured target names, sorted.
func (r *Registry) Targets() []string {
	names := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close closes every registered adapter, returning the first error.
func (r *Registry) Close() error {
	var first error
	for _, a := range r.adapters {
		if err := a.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
