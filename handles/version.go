package handles

import (
	"slices"
	"sync"

	"go.uber.org/zap"
)

// MaxVersion is the largest version a Generation hands out before wrapping
// back to zero.
const MaxVersion = 255

// Generation owns the version stamped into the handles one allocator
// creates. Resetting it makes handles created earlier distinguishable from
// new ones with the same index and type.
type Generation struct {
	Name string

	mu      sync.Mutex
	version int16
}

// NewGeneration returns a Generation at version 0.
func NewGeneration(name string) *Generation {
	return &Generation{Name: name}
}

// Version returns the current version.
func (g *Generation) Version() int16 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.version
}

// Reset advances the version, wrapping from MaxVersion to 0.
func (g *Generation) Reset() {
	g.mu.Lock()
	g.version++
	if g.version > MaxVersion {
		g.version = 0
	}
	v := g.version
	g.mu.Unlock()
	Logger().Debug("handle generation reset", zap.String("name", g.Name), zap.Int16("version", v))
}

// Create encodes a handle for index and t at the current version. It
// returns Invalid under the same rules as CreateHandle.
func (g *Generation) Create(index int16, t Type) Handle {
	return CreateHandle(index, uint8(t), g.Version())
}

// Generations is a set of generations reset together, e.g. when the
// robot program restarts and every outstanding handle must go stale.
type Generations struct {
	mu      sync.Mutex
	members []*Generation
}

// DefaultGenerations is the process-wide set. It holds one generation per
// named handle type (see GenerationOf).
var DefaultGenerations = &Generations{}

var typeGenerations [len(typeNames)]*Generation

func init() {
	for _, t := range Types() {
		if t == TypeUndefined {
			continue
		}
		g := NewGeneration(t.String())
		typeGenerations[t] = g
		DefaultGenerations.Register(g)
	}
}

// GenerationOf returns the default generation for t, or nil when t is
// TypeUndefined or has no name.
func GenerationOf(t Type) *Generation {
	if int(t) < len(typeGenerations) {
		return typeGenerations[t]
	}
	return nil
}

// CreateVersioned encodes a handle stamped with the current version of t's
// default generation. Types without one use version 0.
func CreateVersioned(index int16, t Type) Handle {
	if g := GenerationOf(t); g != nil {
		return g.Create(index, t)
	}
	return CreateHandle(index, uint8(t), 0)
}

// Register adds g to the set. Registering the same generation twice is a
// no-op.
func (s *Generations) Register(g *Generation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if slices.Contains(s.members, g) {
		return
	}
	s.members = append(s.members, g)
}

// Unregister removes g from the set.
func (s *Generations) Unregister(g *Generation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := slices.Index(s.members, g); i >= 0 {
		s.members = slices.Delete(s.members, i, i+1)
	}
}

// Len returns the number of registered generations.
func (s *Generations) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.members)
}

// ResetAll resets every registered generation. The set lock is not held
// while a member resets.
func (s *Generations) ResetAll() {
	s.mu.Lock()
	members := slices.Clone(s.members)
	s.mu.Unlock()

	for _, g := range members {
		g.Reset()
	}
	Logger().Info("handle generations reset", zap.Int("count", len(members)))
}
