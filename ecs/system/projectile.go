package system

import (
	"github.com/milk9111/gunship/combat"
	"github.com/milk9111/gunship/common"
	"github.com/milk9111/gunship/ecs"
	"github.com/milk9111/gunship/ecs/component"
	"github.com/milk9111/gunship/ecs/entity"
)

// ProjectileSystem moves bullets in straight lines and flies missiles along
// their homing arcs.
type ProjectileSystem struct {
	detonator *detonator
}

func NewProjectileSystem(spawner *entity.Spawner, events *combat.Emitter) *ProjectileSystem {
	return &ProjectileSystem{detonator: &detonator{spawner: spawner, events: events}}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := w.Dt()
	snap := w.Snapshot()
	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Projectile, t *component.Transform) {
		if p.Arc == nil {
			t.Position = p.Linear.Step(t.Position, dt)
			return
		}
		if p.Detonated {
			return
		}

		target := ecs.FromRef(p.Target)
		committed, ok := snap.Get(target)
		alive := ok && committed.Alive && ecs.IsAlive(w, target)

		pos, impact := p.Arc.Advance(dt, committed.Position, alive)
		t.Position = pos
		if heading := p.Arc.Heading(); heading.Len() > 0 {
			t.Yaw = common.Yaw(heading)
			t.Pitch = common.Pitch(heading)
		}

		if impact {
			s.detonator.detonate(w, e, p, pos)
		}
	})
}

// detonator resolves a missile's single hit: the impact event, the
// explosion marker and removal at the end of the tick.
type detonator struct {
	spawner *entity.Spawner
	events  *combat.Emitter
}

func (d *detonator) detonate(w *ecs.World, e ecs.Entity, p *component.Projectile, pos common.Vec3) {
	if p.Detonated {
		return
	}
	p.Detonated = true

	if d.events != nil {
		d.events.Emit(combat.Event{
			Type:     combat.EventMissileImpact,
			SourceID: e.Ref(),
			TargetID: p.Target,
			Kind:     string(p.Kind),
			Pos:      pos,
			Time:     w.Now().Seconds(),
		})
	}

	if d.spawner != nil {
		if spec, ok := d.spawner.ProjectileSpec(p.Prefab); ok && spec.Explosion != "" {
			at := pos.Add(spec.ExplosionOffset.Vec3())
			if _, err := d.spawner.Marker(w, spec.Explosion, at); err != nil {
				w.Logger().Debug().Err(err).Str("entity", e.String()).Msg("explosion marker skipped")
			}
		}
	}

	w.Events().Despawn(e)
}
