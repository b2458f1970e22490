package system

import (
	"github.com/milk9111/gunship/combat"
	"github.com/milk9111/gunship/ecs"
	"github.com/milk9111/gunship/ecs/component"
)

// DespawnSystem removes expired projectiles and markers, dead combatants
// whose grace period is over, and anything queued for despawn this tick.
type DespawnSystem struct {
	dispatcher *combat.Dispatcher
	indexes    []*ecs.SpatialIndex
}

func NewDespawnSystem(dispatcher *combat.Dispatcher, indexes ...*ecs.SpatialIndex) *DespawnSystem {
	return &DespawnSystem{dispatcher: dispatcher, indexes: indexes}
}

func (s *DespawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	now := w.Now()
	queue := w.Events()

	ecs.ForEach(w, component.LifetimeComponent.Kind(), func(e ecs.Entity, l *component.Lifetime) {
		if l.Expires.Due(now) {
			queue.Despawn(e)
		}
	})

	ecs.ForEach(w, component.CombatantComponent.Kind(), func(e ecs.Entity, c *component.Combatant) {
		if c.Removal.Due(now) {
			queue.Despawn(e)
		}
	})

	for _, evt := range queue.Drain() {
		if evt.Type != ecs.EventDespawn {
			continue
		}
		if !ecs.DestroyEntity(w, evt.Entity) {
			continue
		}
		for _, idx := range s.indexes {
			idx.Remove(evt.Entity)
		}
		s.dispatcher.Forget(evt.Entity.Ref())
	}
}
