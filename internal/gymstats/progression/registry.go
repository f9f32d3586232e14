package progression

import (
	"fmt"
	"strings"
	"sync"
)

// Registry maps exercise categories to strategies. Categories without an
// entry get the fallback.
type Registry struct {
	mu         sync.RWMutex
	fallback   Strategy
	byCategory map[string]Strategy
}

func NewRegistry(fallback Strategy) *Registry {
	if fallback == nil {
		fallback = NewLinear()
	}
	return &Registry{
		fallback:   fallback,
		byCategory: make(map[string]Strategy),
	}
}

// RegistryFromConfig builds a registry out of strategy names: the fallback
// name and a category -> name map.
func RegistryFromConfig(fallback string, categories map[string]string, linear Linear, double Double) (*Registry, error) {
	if fallback == "" {
		fallback = StrategyLinear
	}
	fallbackStrategy, err := NewStrategy(fallback, linear, double)
	if err != nil {
		return nil, fmt.Errorf("fallback strategy: %w", err)
	}

	r := NewRegistry(fallbackStrategy)
	for category, name := range categories {
		s, err := NewStrategy(name, linear, double)
		if err != nil {
			return nil, fmt.Errorf("strategy for category [%s]: %w", category, err)
		}
		r.Register(category, s)
	}
	return r, nil
}

func (r *Registry) Register(category string, s Strategy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byCategory[normalizeCategory(category)] = s
}

func (r *Registry) Resolve(category string) Strategy {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.byCategory[normalizeCategory(category)]; ok {
		return s
	}
	return r.fallback
}

func normalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}
