package sim

import (
	"sort"
	"time"

	"github.com/milk9111/gunship/combat"
	"github.com/milk9111/gunship/common"
	"github.com/milk9111/gunship/ecs"
	"github.com/milk9111/gunship/ecs/component"
)

// Class groups entities for presentation.
type Class string

const (
	ClassPlayer     Class = "player"
	ClassHostile    Class = "hostile"
	ClassProjectile Class = "projectile"
	ClassPickup     Class = "pickup"
	ClassMarker     Class = "marker"
)

// EntityView is what a renderer needs to draw one entity.
type EntityView struct {
	ID    uint64
	Class Class
	// Kind is the prefab, variant or tag name.
	Kind     string
	Position common.Vec3
	Yaw      float64
	Pitch    float64
	Radius   float64
	Alive    bool
	Health   float64
}

// Snapshot is a read-only view of the run for HUDs and hosts.
type Snapshot struct {
	Tick uint64
	Time time.Duration

	Position  common.Vec3
	Health    int
	MaxHealth int

	Bullets      int
	Magazine     int
	BulletState  combat.AmmoState
	BulletReload float64

	Missiles      int
	MissileLoaded bool
	MissileReload float64

	BulletWarning   bool
	MissileWarning  bool
	NoTargetWarning bool

	Kills  int
	Earned int

	Dead            bool
	GameOverVisible bool

	Entities []EntityView
}

func (s *Sim) Snapshot() Snapshot {
	w := s.world
	now := w.Now()
	snap := Snapshot{
		Tick:   w.Tick(),
		Time:   now,
		Kills:  s.kills,
		Earned: s.earned,
	}

	if t, ok := ecs.Get(w, s.player, component.TransformComponent.Kind()); ok {
		snap.Position = t.Position
	}
	if c, ok := ecs.Get(w, s.player, component.CombatantComponent.Kind()); ok {
		snap.Health = c.Health.Current
		snap.MaxHealth = c.Health.Max
	}
	if ws, ok := ecs.Get(w, s.player, component.WeaponStationComponent.Kind()); ok {
		snap.Bullets = ws.Bullets.Reserve()
		snap.Magazine = ws.Bullets.Magazine()
		snap.BulletState = ws.Bullets.State()
		snap.BulletReload = ws.Bullets.ReloadProgress()
		snap.Missiles = ws.Missiles.Count()
		snap.MissileLoaded = ws.Missiles.Loaded()
		snap.MissileReload = ws.Missiles.ReloadProgress()
		snap.BulletWarning = ws.BulletWarning.Pending(now)
		snap.MissileWarning = ws.MissileWarning.Pending(now)
		snap.NoTargetWarning = ws.NoTargetWarning.Pending(now)
	}
	if p, ok := ecs.Get(w, s.player, component.PilotComponent.Kind()); ok {
		snap.Dead = p.Dead
		snap.GameOverVisible = p.GameOver.Due(now)
	}

	snap.Entities = s.views()
	return snap
}

func (s *Sim) views() []EntityView {
	w := s.world
	var out []EntityView
	ecs.ForEach(w, component.TransformComponent.Kind(), func(e ecs.Entity, t *component.Transform) {
		v := EntityView{
			ID:       e.Ref(),
			Position: t.Position,
			Yaw:      t.Yaw,
			Pitch:    t.Pitch,
			Alive:    true,
			Health:   1,
		}
		if col, ok := ecs.Get(w, e, component.ColliderComponent.Kind()); ok {
			v.Radius = col.Radius
		}
		if c, ok := ecs.Get(w, e, component.CombatantComponent.Kind()); ok {
			v.Kind = c.Variant
			v.Alive = c.Health.Alive()
			v.Health = c.Health.Fraction()
		}

		switch {
		case ecs.Has(w, e, component.PlayerTagComponent.Kind()):
			v.Class = ClassPlayer
		case ecs.Has(w, e, component.HostileTagComponent.Kind()):
			v.Class = ClassHostile
		default:
			if p, ok := ecs.Get(w, e, component.ProjectileComponent.Kind()); ok {
				v.Class, v.Kind = ClassProjectile, p.Prefab
			} else if p, ok := ecs.Get(w, e, component.PickupComponent.Kind()); ok {
				v.Class, v.Kind = ClassPickup, string(p.Kind)
			} else if m, ok := ecs.Get(w, e, component.MarkerComponent.Kind()); ok {
				v.Class, v.Kind = ClassMarker, m.Kind
			} else {
				return
			}
		}
		out = append(out, v)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
