package system

import (
	"github.com/milk9111/gunship/combat"
	"github.com/milk9111/gunship/ecs"
	"github.com/milk9111/gunship/ecs/component"
	"github.com/milk9111/gunship/ecs/entity"
)

// CollisionSystem finds overlapping colliders and hands each contact to the
// dispatcher. The broadphase runs on the ground plane; the exact test is a
// sphere overlap in 3D.
type CollisionSystem struct {
	index      *ecs.SpatialIndex
	dispatcher *combat.Dispatcher
	ledger     *Ledger
	detonator  *detonator
}

func NewCollisionSystem(index *ecs.SpatialIndex, dispatcher *combat.Dispatcher, ledger *Ledger, spawner *entity.Spawner, events *combat.Emitter) *CollisionSystem {
	if index == nil {
		index = ecs.NewSpatialIndex()
	}
	if dispatcher == nil {
		dispatcher = combat.NewDispatcher(nil, nil)
	}
	return &CollisionSystem{
		index:      index,
		dispatcher: dispatcher,
		ledger:     ledger,
		detonator:  &detonator{spawner: spawner, events: events},
	}
}

func (s *CollisionSystem) Index() *ecs.SpatialIndex {
	return s.index
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	s.sync(w)

	for _, pair := range s.index.Pairs() {
		a, b := pair[0], pair[1]
		ca, okA := ecs.Get(w, a, component.ColliderComponent.Kind())
		cb, okB := ecs.Get(w, b, component.ColliderComponent.Kind())
		if !okA || !okB {
			continue
		}
		if position(w, a).Dist(position(w, b)) > ca.Radius+cb.Radius {
			continue
		}

		reaction, ok := s.dispatcher.Resolve(combat.Contact{A: a.Ref(), B: b.Ref(), TagA: ca.Tag, TagB: cb.Tag})
		if !ok {
			continue
		}
		s.ledger.Apply(w, reaction)
		s.spend(w, ecs.FromRef(reaction.Consumed))
	}
}

// sync mirrors current collider positions into the index.
func (s *CollisionSystem) sync(w *ecs.World) {
	ecs.ForEach2(w, component.ColliderComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, c *component.Collider, t *component.Transform) {
		s.index.Upsert(e, t.Position, c.Radius)
	})
	for _, e := range s.index.Entities() {
		if !ecs.Has(w, e, component.ColliderComponent.Kind()) {
			s.index.Remove(e)
		}
	}
}

// spend takes a consumed projectile or pickup out of play. Its collider goes
// at once so later pairs this tick skip it; the entity goes at despawn.
func (s *CollisionSystem) spend(w *ecs.World, e ecs.Entity) {
	if p, ok := ecs.Get(w, e, component.ProjectileComponent.Kind()); ok && p.Arc != nil {
		s.detonator.detonate(w, e, p, position(w, e))
	}
	ecs.Remove(w, e, component.ColliderComponent.Kind())
	s.index.Remove(e)
	w.Events().Despawn(e)
}
