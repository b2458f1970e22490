package system

import (
	"github.com/milk9111/gunship/combat"
	"github.com/milk9111/gunship/common"
	"github.com/milk9111/gunship/ecs"
	"github.com/milk9111/gunship/ecs/component"
	"github.com/milk9111/gunship/ecs/entity"
)

// DefaultAcquireRadius bounds the hostile target search. Hostiles lock on
// from well outside their firing range and idle until the target closes.
const DefaultAcquireRadius = 500.0

// HostileSystem steps every enemy gun: target lock, aim servo and firing.
// All reads of the target go through last tick's snapshot.
type HostileSystem struct {
	spawner       *entity.Spawner
	events        *combat.Emitter
	AcquireRadius float64
}

func NewHostileSystem(spawner *entity.Spawner, events *combat.Emitter) *HostileSystem {
	return &HostileSystem{
		spawner:       spawner,
		events:        events,
		AcquireRadius: DefaultAcquireRadius,
	}
}

func (s *HostileSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	snap := w.Snapshot()
	ecs.ForEach3(w, component.HostileComponent.Kind(), component.TransformComponent.Kind(), component.CombatantComponent.Kind(), func(e ecs.Entity, h *component.Hostile, t *component.Transform, c *component.Combatant) {
		if !c.Health.Alive() {
			return
		}

		muzzle := t.Position.Add(h.Gun.Offset)
		sense := combat.Sense{
			Now: w.Now(),
			Dt:  w.Dt(),
			Track: func(id uint64) (float64, bool) {
				target := ecs.FromRef(id)
				if !ecs.IsAlive(w, target) {
					return 0, false
				}
				committed, ok := snap.Get(target)
				if !ok || !committed.Alive {
					return 0, false
				}
				return t.Position.Dist(committed.Position), true
			},
			Acquire: func() (uint64, bool) {
				found, ok := snap.Nearest(t.Position, s.AcquireRadius, c.Faction.Opposing())
				return found.ID, ok
			},
		}

		prev := h.FSM.State()
		fire := h.FSM.Update(sense)
		if next := h.FSM.State(); next != prev {
			w.Logger().Debug().Str("entity", e.String()).Str("kind", c.Variant).Str("from", prev.String()).Str("to", next.String()).Msg("hostile state")
		}

		id, ok := h.FSM.Target()
		if !ok {
			return
		}
		committed, ok := snap.Get(ecs.FromRef(id))
		if !ok {
			return
		}
		h.Aim.Track(muzzle, committed.Position, w.Dt())
		t.Yaw, t.Pitch = h.Aim.Yaw, h.Aim.Pitch

		if !fire {
			return
		}

		dir := h.Aim.Forward()
		if h.AimAtTarget {
			dir = committed.Position.Sub(muzzle)
		}
		s.fire(w, e, h, muzzle, dir)
	})
}

func (s *HostileSystem) fire(w *ecs.World, owner ecs.Entity, h *component.Hostile, muzzle, dir common.Vec3) {
	if s.spawner == nil || h.Projectile == "" {
		return
	}
	if _, err := s.spawner.Bullet(w, h.Projectile, muzzle, dir, owner); err != nil {
		w.Logger().Debug().Err(err).Str("entity", owner.String()).Msg("hostile misfire")
		return
	}
	if s.events != nil {
		s.events.Emit(combat.Event{
			Type:     combat.EventShotFired,
			SourceID: owner.Ref(),
			Kind:     h.Projectile,
			Pos:      muzzle,
			Time:     w.Now().Seconds(),
		})
	}
}
