package platform

import (
	"strings"
	"sync"

	"github.com/thoreinstein/teamforge/internal/errors"
)

// Sentinel errors for registry operations.
var (
	// ErrProviderAlreadyRegistered is returned when attempting to register
	// a provider with an id that is already in use.
	ErrProviderAlreadyRegistered = errors.New("provider already registered")

	// ErrInvalidProviderID is returned when a provider's id is empty or
	// contains whitespace.
	ErrInvalidProviderID = errors.New("invalid provider id")

	// ErrNilProvider is returned when registering a nil provider.
	ErrNilProvider = errors.New("provider is nil")
)

// Registry maps target ids to providers, remembering registration order.
// It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
	order     []string
}

// NewRegistry creates a new empty provider registry.
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[string]Provider),
	}
}

// Register adds a provider under its ID.
func (r *Registry) Register(p Provider) error {
	if p == nil {
		return ErrNilProvider
	}

	id := p.ID()
	if id == "" || strings.ContainsFunc(id, func(c rune) bool { return c == ' ' || c == '\t' || c == '\n' }) {
		return errors.Wrapf(ErrInvalidProviderID, "%q", id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[id]; exists {
		return errors.Wrapf(ErrProviderAlreadyRegistered, "%s", id)
	}

	r.providers[id] = p
	r.order = append(r.order, id)
	return nil
}

// Get returns the provider registered under id, or nil.
func (r *Registry) Get(id string) Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.providers[id]
}

// Capabilities returns the capabilities of the provider registered under id.
func (r *Registry) Capabilities(id string) (Capabilities, bool) {
	p := r.Get(id)
	if p == nil {
		return Capabilities{}, false
	}
	return p.Capabilities(), true
}

// All returns all registered providers in registration order.
// Returns nil when empty.
func (r *Registry) All() []Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.order) == 0 {
		return nil
	}

	out := make([]Provider, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.providers[id])
	}
	return out
}

// IDs returns all registered ids in registration order.
// Returns nil when empty.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.order) == 0 {
		return nil
	}

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
