package channel

import (
	"sort"
	"sync"

	"jobcast/internal/core/port"
)

// Registry maps channel ids to their adapters.
type Registry struct {
	mu       sync.RWMutex
	adapters map[string]port.ChannelAdapter
}

func NewRegistry(adapters ...port.ChannelAdapter) *Registry {
	r := &Registry{adapters: make(map[string]port.ChannelAdapter, len(adapters))}
	for _, a := range adapters {
		r.Register(a)
	}
	return r
}

// Register adds a, replacing any adapter already registered under its id.
func (r *Registry) Register(a port.ChannelAdapter) {
	r.mu.Lock()
	r.adapters[a.ChannelID()] = a
	r.mu.Unlock()
}

func (r *Registry) Adapter(channelID string) (port.ChannelAdapter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.adapters[channelID]
	return a, ok
}

// IDs lists the registered channel ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.adapters))
	for id := range r.adapters {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
