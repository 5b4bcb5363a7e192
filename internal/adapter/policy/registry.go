package policy

import (
	"log/slog"
	"sort"
	"sync"

	"jobcast/internal/core/domain"
)

// Registry is the in-memory channel policy provider. Policies are loaded at
// startup and change only through Register. Readers always get a copy, so a
// check keeps a stable view even if a policy is re-registered meanwhile.
type Registry struct {
	mu       sync.RWMutex
	policies map[string]domain.ChannelPolicy
	logger   *slog.Logger
}

// NewRegistry returns an empty registry. Unregistered channels resolve to
// domain.DefaultChannelPolicy.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		policies: make(map[string]domain.ChannelPolicy),
		logger:   logger.With(slog.String("mod", "policy")),
	}
}

// Get returns the policy for channelID, falling back to the default.
func (r *Registry) Get(channelID string) domain.ChannelPolicy {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if p, ok := r.policies[channelID]; ok {
		return p
	}
	return domain.DefaultChannelPolicy(channelID)
}

// Register merges spec over the default policy and stores the result. A
// second registration for the same channel replaces the first one.
func (r *Registry) Register(channelID string, spec domain.PolicySpec) domain.ChannelPolicy {
	p := spec.MergeOver(domain.DefaultChannelPolicy(channelID))

	r.mu.Lock()
	r.policies[channelID] = p
	r.mu.Unlock()

	r.logger.Info("channel policy registered",
		slog.String("channel", channelID),
		slog.Bool("budget", p.EnforceBudgetLimits),
		slog.Bool("date", p.EnforceDateLimits),
		slog.Bool("cpc", p.EnforceCPCLimits),
		slog.Bool("auto_actions", p.AutoActions),
	)
	return p
}

// Channels lists the explicitly registered channel ids in sorted order.
func (r *Registry) Channels() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.policies))
	for id := range r.policies {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
