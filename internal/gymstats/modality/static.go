package modality

import (
	"context"
)

// Static resolves capabilities from a fixed map, falling back to Default for
// exercises it does not know. Used by tools and tests that run without the
// exercise catalog.
type Static struct {
	Default    Capability
	ByExercise map[string]Capability
}

func NewStatic(def Capability) *Static {
	return &Static{
		Default:    def,
		ByExercise: make(map[string]Capability),
	}
}

// With registers a capability for one exercise and returns the provider.
func (s *Static) With(exerciseID string, capability Capability) *Static {
	s.ByExercise[exerciseID] = capability
	return s
}

func (s *Static) CapabilityFor(_ context.Context, exerciseID string) (Capability, error) {
	if c, ok := s.ByExercise[exerciseID]; ok {
		return c, nil
	}
	if s.Default == nil {
		return For(KindFreeWeight, nil)
	}
	return s.Default, nil
}
