package system

import (
	"github.com/milk9111/gunship/ecs"
	"github.com/milk9111/gunship/ecs/component"
)

// targetRadius is the footprint of a combatant in the targeting index.
// Queries apply their own exact radius test, so it only needs to be nonzero.
const targetRadius = 0.01

// CommitSystem runs last. It publishes every combatant's end-of-tick state
// as the snapshot the next tick reads from.
type CommitSystem struct {
	index *ecs.SpatialIndex
}

func NewCommitSystem(index *ecs.SpatialIndex) *CommitSystem {
	if index == nil {
		index = ecs.NewSpatialIndex()
	}
	return &CommitSystem{index: index}
}

func (s *CommitSystem) Index() *ecs.SpatialIndex {
	return s.index
}

func (s *CommitSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	snap := ecs.NewIndexedSnapshot(s.index)
	ecs.ForEach2(w, component.CombatantComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, c *component.Combatant, t *component.Transform) {
		snap.Put(e, ecs.Committed{
			Position:  t.Position,
			Faction:   c.Faction,
			Alive:     c.Health.Alive(),
			Health:    c.Health.Current,
			MaxHealth: c.Health.Max,
		})
		s.index.Upsert(e, t.Position, targetRadius)
	})

	for _, e := range s.index.Entities() {
		if _, ok := snap.Get(e); !ok {
			s.index.Remove(e)
		}
	}

	w.Commit(snap)
}
