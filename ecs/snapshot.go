package ecs

import (
	"sort"

	"github.com/milk9111/gunship/combat"
	"github.com/milk9111/gunship/common"
)

// Committed is the read-only view of one combatant at the end of a tick.
type Committed struct {
	Position  common.Vec3
	Faction   combat.Faction
	Alive     bool
	Health    int
	MaxHealth int
}

// Snapshot holds every combatant's committed state from the previous tick.
// Systems read other entities only through it, so no update observes a
// partial update of the same tick.
type Snapshot struct {
	entries map[Entity]Committed
	index   *SpatialIndex
}

func NewSnapshot() *Snapshot {
	return &Snapshot{entries: make(map[Entity]Committed)}
}

// NewIndexedSnapshot answers radius queries through idx, which must hold the
// same entities at the same positions.
func NewIndexedSnapshot(idx *SpatialIndex) *Snapshot {
	s := NewSnapshot()
	s.index = idx
	return s
}

func (s *Snapshot) Put(e Entity, c Committed) {
	if s == nil {
		return
	}
	s.entries[e] = c
}

func (s *Snapshot) Get(e Entity) (Committed, bool) {
	if s == nil {
		return Committed{}, false
	}
	c, ok := s.entries[e]
	return c, ok
}

func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Entities returns the committed entities in ascending order.
func (s *Snapshot) Entities() []Entity {
	if s == nil {
		return nil
	}
	out := make([]Entity, 0, len(s.entries))
	for e := range s.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Nearest implements combat.TargetFinder over committed state.
func (s *Snapshot) Nearest(origin common.Vec3, radius float64, want combat.Faction) (combat.Candidate, bool) {
	if s == nil {
		return combat.Candidate{}, false
	}
	var ents []Entity
	if s.index != nil {
		ents = s.index.Query(origin, radius)
	} else {
		ents = s.Entities()
	}
	candidates := make([]combat.Candidate, 0, len(ents))
	for _, e := range ents {
		c, ok := s.entries[e]
		if !ok {
			continue
		}
		candidates = append(candidates, combat.Candidate{
			ID:       e.Ref(),
			Position: c.Position,
			Faction:  c.Faction,
			Alive:    c.Alive,
		})
	}
	return combat.Nearest(origin, radius, want, candidates)
}
